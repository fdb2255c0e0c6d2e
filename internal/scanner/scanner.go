package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"docshelf/internal/textutil"
)

// Sentinel errors classifying scan failures.
var (
	ErrNotFound   = errors.New("scan path not found")
	ErrPermission = errors.New("scan path permission denied")
)

// documentExtensions and mediaExtensions are the fixed classification
// sets. Files outside both sets count toward the file total only.
var documentExtensions = map[string]struct{}{
	"doc": {}, "docx": {}, "pdf": {}, "txt": {}, "xlsx": {},
	"xls": {}, "ppt": {}, "pptx": {}, "wps": {}, "md": {},
}

var mediaExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "tif": {}, "tiff": {},
	"gif": {}, "bmp": {}, "svg": {}, "mp4": {}, "avi": {},
}

// IsDocumentExtension reports whether ext (lowercase, no dot) names a
// supported document format.
func IsDocumentExtension(ext string) bool {
	_, ok := documentExtensions[strings.ToLower(ext)]
	return ok
}

// IsMediaExtension reports whether ext names a supported media format.
func IsMediaExtension(ext string) bool {
	_, ok := mediaExtensions[strings.ToLower(ext)]
	return ok
}

// FileRecord describes one visible file discovered during a scan.
type FileRecord struct {
	Filename     string
	Stem         string
	Extension    string
	AbsolutePath string
	SizeBytes    int64
	LastModified time.Time
}

// NewFileRecord builds a FileRecord for a file outside of a scan, used
// by single-file ingestion.
func NewFileRecord(path string, info fs.FileInfo) FileRecord {
	name := filepath.Base(path)
	return FileRecord{
		Filename:     name,
		Stem:         textutil.Stem(name),
		Extension:    textutil.Extension(name),
		AbsolutePath: path,
		SizeBytes:    info.Size(),
		LastModified: info.ModTime(),
	}
}

// Result is the complete snapshot produced by one scan.
type Result struct {
	Root         string
	TotalFolders int
	TotalFiles   int
	Folders      []string
	Documents    []FileRecord
	Media        []FileRecord
}

// Scan recursively enumerates root, classifying every visible file.
// Failures are classified via ErrNotFound / ErrPermission and abort the
// scan; no partial result is returned.
func Scan(root string) (*Result, error) {
	target, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan path: %w", err)
	}

	if _, err := os.Stat(target); err != nil {
		return nil, classify(target, err)
	}

	result := &Result{Root: target}
	err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == target {
			return nil
		}

		hidden := strings.HasPrefix(entry.Name(), ".")
		if entry.IsDir() {
			// Hidden directories are not recorded but their contents
			// are still walked.
			if !hidden {
				result.Folders = append(result.Folders, path)
				result.TotalFolders++
			}
			return nil
		}
		if hidden {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		record := FileRecord{
			Filename:     entry.Name(),
			Stem:         textutil.Stem(entry.Name()),
			Extension:    textutil.Extension(entry.Name()),
			AbsolutePath: path,
			SizeBytes:    info.Size(),
			LastModified: info.ModTime(),
		}

		switch {
		case IsDocumentExtension(record.Extension):
			result.Documents = append(result.Documents, record)
		case IsMediaExtension(record.Extension):
			result.Media = append(result.Media, record)
		}
		result.TotalFiles++
		return nil
	})
	if err != nil {
		return nil, classify(target, err)
	}

	return result, nil
}

func classify(target string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, target)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, target)
	default:
		return fmt.Errorf("scan %s: %w", target, err)
	}
}
