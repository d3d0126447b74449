package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Supported upload MIME types
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTXT  = "text/plain"
)

// ErrEmptyFile is returned for zero-length uploads
var ErrEmptyFile = errors.New("uploaded file is empty")

// UnsupportedTypeError identifies an upload with a MIME type the parser
// cannot handle.
type UnsupportedTypeError struct {
	MimeType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s. Please upload PDF, DOCX, or TXT files.", e.MimeType)
}

// SupportedType reports whether the MIME type is accepted for upload
func SupportedType(mimeType string) bool {
	switch normalizeMimeType(mimeType, "") {
	case MimePDF, MimeDOCX, MimeTXT:
		return true
	}
	return false
}

// ExtractText extracts plain text from an uploaded resume file. The format
// is chosen by MIME type, with the filename extension as a fallback for
// browsers that upload DOCX as application/zip or octet-stream.
func ExtractText(data []byte, mimeType, filename string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	switch normalizeMimeType(mimeType, filename) {
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	case MimeTXT:
		if !utf8.Valid(data) {
			return "", errors.New("text file is not valid UTF-8")
		}
		return string(data), nil
	default:
		return "", &UnsupportedTypeError{MimeType: mimeType}
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF file: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return buf.String(), nil
}

// extractDOCX reads word/document.xml from the OOXML archive and strips the
// markup, emitting newlines at paragraph and line-break boundaries.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX file: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("failed to parse DOCX file: document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX file: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX file: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

// normalizeMimeType maps the ambiguous zip/octet-stream types browsers send
// for DOCX uploads onto the canonical type
func normalizeMimeType(mimeType, filename string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean != "application/zip" && clean != "application/octet-stream" {
		return clean
	}
	if strings.ToLower(filepath.Ext(filename)) == ".docx" {
		return MimeDOCX
	}
	return clean
}
