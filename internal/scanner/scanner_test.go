package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanClassifiesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "report.pdf"), "doc")
	writeFile(t, filepath.Join(root, "report.jpg"), "img")
	writeFile(t, filepath.Join(root, "notes.TXT"), "doc")
	writeFile(t, filepath.Join(root, "archive.zip"), "other")

	result, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(result.Documents) != 2 {
		t.Errorf("documents = %d, want 2", len(result.Documents))
	}
	if len(result.Media) != 1 {
		t.Errorf("media = %d, want 1", len(result.Media))
	}
	if result.TotalFiles != 4 {
		t.Errorf("total files = %d, want 4 (unclassified still counted)", result.TotalFiles)
	}
}

func TestScanSkipsHiddenEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".secret"), "hidden")
	writeFile(t, filepath.Join(root, "report.pdf"), "doc")

	result, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(result.Documents) != 1 || result.Documents[0].Filename != "report.pdf" {
		t.Fatalf("documents = %+v, want exactly report.pdf", result.Documents)
	}
	if result.TotalFiles != 1 {
		t.Errorf("total files = %d, want 1 (hidden file not counted)", result.TotalFiles)
	}
}

func TestScanWalksIntoHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".stash", "paper.docx"), "doc")

	result, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	// The hidden directory itself is not recorded, but files inside it are.
	if result.TotalFolders != 0 {
		t.Errorf("total folders = %d, want 0", result.TotalFolders)
	}
	if len(result.Documents) != 1 {
		t.Errorf("documents = %d, want 1", len(result.Documents))
	}
}

func TestScanCountsNestedFolders(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "deep.md"), "doc")
	writeFile(t, filepath.Join(root, "a", "image.png"), "img")

	result, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if result.TotalFolders != 2 {
		t.Errorf("total folders = %d, want 2", result.TotalFolders)
	}
	if len(result.Folders) != 2 {
		t.Errorf("folders = %v, want 2 entries", result.Folders)
	}
	if result.TotalFiles != 2 {
		t.Errorf("total files = %d, want 2", result.TotalFiles)
	}
}

func TestScanRecordFields(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Zhang-2023-Annual.docx"), "content")

	result, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Documents) != 1 {
		t.Fatalf("documents = %d, want 1", len(result.Documents))
	}

	rec := result.Documents[0]
	if rec.Stem != "Zhang-2023-Annual" {
		t.Errorf("stem = %q, want Zhang-2023-Annual", rec.Stem)
	}
	if rec.Extension != "docx" {
		t.Errorf("extension = %q, want docx", rec.Extension)
	}
	if rec.SizeBytes != int64(len("content")) {
		t.Errorf("size = %d, want %d", rec.SizeBytes, len("content"))
	}
	if !filepath.IsAbs(rec.AbsolutePath) {
		t.Errorf("absolute path = %q, want absolute", rec.AbsolutePath)
	}
	if rec.LastModified.IsZero() {
		t.Error("last modified not populated")
	}
}

func TestScanMissingPath(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestScanDeterministic(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.pdf", "a.pdf", "c.jpg"} {
		writeFile(t, filepath.Join(root, name), "x")
	}

	first, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	second, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(first.Documents) != len(second.Documents) {
		t.Fatalf("document counts differ: %d vs %d", len(first.Documents), len(second.Documents))
	}
	for i := range first.Documents {
		if first.Documents[i].Filename != second.Documents[i].Filename {
			t.Errorf("order differs at %d: %q vs %q", i, first.Documents[i].Filename, second.Documents[i].Filename)
		}
	}
}
