// Package extract converts uploaded resume documents into plain text.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MIME types accepted by the extractor.
const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

var (
	// ErrUnsupportedFormat is returned for MIME types or file extensions
	// outside the closed set of supported formats.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrExtraction is returned when a document of a supported format
	// cannot be decoded (corrupt file, encrypted PDF, empty stream).
	ErrExtraction = errors.New("document extraction failed")
)

// Format is the declared type of an uploaded document.
type Format int

const (
	FormatPDF Format = iota
	FormatDOCX
	FormatPlain
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	case FormatPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Document is the result of a successful extraction.
type Document struct {
	RawText      string
	SourceFormat Format
}

// DetectFormat maps a declared MIME type to a Format. Unrecognized types
// fail loudly instead of being decoded as raw text.
func DetectFormat(mime string) (Format, error) {
	switch strings.TrimSpace(strings.ToLower(mime)) {
	case MimePDF:
		return FormatPDF, nil
	case MimeDOCX:
		return FormatDOCX, nil
	case MimePlain:
		return FormatPlain, nil
	default:
		return 0, fmt.Errorf("%w: mime type %q", ErrUnsupportedFormat, mime)
	}
}

// FormatForPath maps a file extension to a Format.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".txt":
		return FormatPlain, nil
	default:
		return 0, fmt.Errorf("%w: file %q", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Text extracts plain text from the document bytes. The transform is pure:
// the input buffer is not retained after the call returns.
func Text(data []byte, format Format) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: zero-length stream", ErrExtraction)
	}

	var (
		text string
		err  error
	)

	switch format {
	case FormatPDF:
		text, err = pdfText(data)
	case FormatDOCX:
		text, err = docxText(data)
	case FormatPlain:
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%w: plain text is not valid utf-8", ErrExtraction)
		}
		text = string(data)
	default:
		return nil, fmt.Errorf("%w: format %d", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, err
	}

	return &Document{RawText: text, SourceFormat: format}, nil
}
