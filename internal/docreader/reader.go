package docreader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docshelf/internal/textutil"
)

// Paragraphs returns the ordered non-empty paragraphs of a document, or
// an error when the file cannot be read. Unsupported extensions return
// no paragraphs and no error.
func Paragraphs(path string) ([]string, error) {
	switch textutil.Extension(filepath.Base(path)) {
	case "txt", "md":
		return textLines(path)
	case "docx":
		return docxParagraphs(path)
	default:
		return nil, nil
	}
}

// Content renders a document body as one paragraph per line. Extraction
// failure is non-fatal by contract, so any error collapses to empty
// content.
func Content(path string) string {
	paragraphs, err := Paragraphs(path)
	if err != nil || len(paragraphs) == 0 {
		return ""
	}
	return strings.Join(paragraphs, "\n")
}

func textLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return lines, nil
}
