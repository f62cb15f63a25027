package extract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// docxText extracts paragraph text in document order, one paragraph per line.
func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: reading docx: %v", ErrExtraction, err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: parsing docx body: %v", ErrExtraction, err)
	}

	return strings.Join(paragraphs, "\n"), nil
}

// docxParagraphs walks the word/document.xml body collecting the text runs
// of each w:p element.
func docxParagraphs(content string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		paragraphs []string
		current    strings.Builder
		inRunText  bool
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRunText = true
			case "tab":
				current.WriteByte('\t')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRunText = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inRunText {
				current.Write(t)
			}
		}
	}

	// Text outside a closed paragraph still counts.
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	return paragraphs, nil
}
