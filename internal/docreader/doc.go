// Package docreader extracts paragraph text from document files.
//
// Plain-text formats (txt, md) are read line by line; docx archives are
// unpacked and the paragraph text pulled from word/document.xml. Content
// extraction is strictly best-effort: unsupported formats, unreadable
// files, and corrupt archives all yield empty content so ingestion never
// aborts over a body it cannot read.
package docreader
