package docreader

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const docxDocumentPath = "word/document.xml"

// docxParagraphs pulls the visible paragraph text out of a docx archive.
// A docx file is a zip whose main body lives in word/document.xml;
// paragraph boundaries are <w:p> elements and the text runs are <w:t>.
func docxParagraphs(path string) ([]string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer archive.Close()

	var document *zip.File
	for _, file := range archive.File {
		if file.Name == docxDocumentPath {
			document = file
			break
		}
	}
	if document == nil {
		return nil, fmt.Errorf("docx missing %s", docxDocumentPath)
	}

	reader, err := document.Open()
	if err != nil {
		return nil, fmt.Errorf("open docx body: %w", err)
	}
	defer reader.Close()

	return parseDocumentXML(reader)
}

func parseDocumentXML(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse docx body: %w", err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "p":
				current.Reset()
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch tok.Name.Local {
			case "p":
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				current.Reset()
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(tok)
			}
		}
	}
	return paragraphs, nil
}
