package docreader

import (
	"archive/zip"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeDocx(t *testing.T, path string, documentXML string) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	defer file.Close()

	zw := zip.NewWriter(file)
	entry, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := entry.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}

func TestParagraphsFromTxt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	content := "first line\n\n  second line  \n\t\nthird\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Paragraphs(path)
	if err != nil {
		t.Fatalf("Paragraphs: %v", err)
	}
	want := []string{"first line", "second line", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paragraphs = %v, want %v", got, want)
	}
}

func TestParagraphsFromDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.docx")
	documentXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Introduction</w:t></w:r></w:p>
    <w:p><w:r><w:t>Split </w:t></w:r><w:r><w:t>run</w:t></w:r></w:p>
    <w:p><w:r><w:t>   </w:t></w:r></w:p>
    <w:p><w:r><w:t>Conclusion</w:t></w:r></w:p>
  </w:body>
</w:document>`
	writeDocx(t, path, documentXML)

	got, err := Paragraphs(path)
	if err != nil {
		t.Fatalf("Paragraphs: %v", err)
	}
	want := []string{"Introduction", "Split run", "Conclusion"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paragraphs = %v, want %v", got, want)
	}
}

func TestParagraphsUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Paragraphs(path)
	if err != nil {
		t.Fatalf("Paragraphs: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("paragraphs = %v, want none for unsupported format", got)
	}
}

func TestContentSwallowsFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.txt")
	if got := Content(missing); got != "" {
		t.Errorf("Content(missing) = %q, want empty", got)
	}

	corrupt := filepath.Join(t.TempDir(), "bad.docx")
	if err := os.WriteFile(corrupt, []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := Content(corrupt); got != "" {
		t.Errorf("Content(corrupt docx) = %q, want empty", got)
	}
}

func TestContentJoinsParagraphs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("alpha\n\nbeta\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := Content(path); got != "alpha\nbeta" {
		t.Errorf("Content = %q, want %q", got, "alpha\nbeta")
	}
}
