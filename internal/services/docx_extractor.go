package services

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/pkg/errors"
)

type DOCXExtractor struct{}

func NewDOCXExtractor() *DOCXExtractor {
	return &DOCXExtractor{}
}

func (d *DOCXExtractor) Extract(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse docx")
	}
	defer doc.Close()

	return documentXMLToText(doc.Editable().GetContent())
}

// documentXMLToText collects the runs of word/document.xml, one line per paragraph.
func documentXMLToText(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var sb strings.Builder
	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to read docx body")
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br", "cr":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
