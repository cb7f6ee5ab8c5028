// Package document turns uploaded files into the plain text the analysis
// routines consume.
package document

import (
	"archive/zip"
	"bytes"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/crypto/blake2b"
)

// Supported file extensions
const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
	ExtTXT  = ".txt"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrExtractionFailed    = errors.New("failed to extract text")
)

// SupportedExtensions lists the extensions Extract understands
var SupportedExtensions = []string{ExtPDF, ExtDOCX, ExtTXT}

// FileType returns the lowercased extension of filename
func FileType(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// IsSupported reports whether filename has a supported extension
func IsSupported(filename string) bool {
	ext := FileType(filename)
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// IsPlainText reports whether text is valid UTF-8 without NUL bytes
func IsPlainText(text string) bool {
	return utf8.ValidString(text) && !strings.ContainsRune(text, 0)
}

// Checksum returns the hex BLAKE2b-256 digest of data
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Extract returns the raw text of a document, choosing the reader by extension
func Extract(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch FileType(filename) {
	case ExtPDF:
		text, err = extractPDF(data)
	case ExtDOCX:
		text, err = extractDOCX(data)
	case ExtTXT:
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, FileType(filename))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return text, nil
}

// extractPDF reads every page's text; pages are separated by blank lines
func extractPDF(data []byte) (text string, err error) {
	// The reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(content)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// extractDOCX reads the paragraphs of word/document.xml, one blank line apart
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		return readWordParagraphs(rc)
	}
	return "", errors.New("word/document.xml not found")
}

func readWordParagraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				current.WriteByte('\t')
			case "br", "cr":
				current.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return strings.Join(paragraphs, "\n\n"), nil
}
