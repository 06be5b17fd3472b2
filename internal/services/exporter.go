package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	ExportFormatMarkdown = "md"
	ExportFormatPDF      = "pdf"
	ExportFormatText     = "txt"
	ExportFormatXLSX     = "xlsx"
)

const questionsSheet = "Questions"

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._ -]+`)

// ExportedFile is a generated download.
type ExportedFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

type Exporter interface {
	ExportJobSpec(jobTitle, content, format string) (*ExportedFile, error)
	ExportQuestions(questions []string, format string) (*ExportedFile, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return exporter{}
}

func (e exporter) ExportJobSpec(jobTitle, content, format string) (*ExportedFile, error) {
	baseName := exportBaseName(jobTitle, "job-spec")

	switch format {
	case "", ExportFormatMarkdown:
		return &ExportedFile{
			FileName:    baseName + ".md",
			ContentType: "text/markdown; charset=utf-8",
			Data:        []byte(content),
		}, nil
	case ExportFormatPDF:
		data, err := renderMarkdownPDF(content)
		if err != nil {
			return nil, errors.Wrap(err, "failed to render job specification PDF")
		}
		return &ExportedFile{
			FileName:    baseName + ".pdf",
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, errors.Errorf("unsupported job specification export format %q", format)
	}
}

func (e exporter) ExportQuestions(questions []string, format string) (*ExportedFile, error) {
	switch format {
	case "", ExportFormatText:
		var sb strings.Builder
		for i, q := range questions {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, strings.TrimSpace(q))
		}
		return &ExportedFile{
			FileName:    "interview-questions.txt",
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte(sb.String()),
		}, nil
	case ExportFormatXLSX:
		buf, err := writeQuestionsWorkbook(questions)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build questions workbook")
		}
		return &ExportedFile{
			FileName:    "interview-questions.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        buf.Bytes(),
		}, nil
	default:
		return nil, errors.Errorf("unsupported questions export format %q", format)
	}
}

func exportBaseName(title, fallback string) string {
	name := strings.TrimSpace(unsafeFileNameChars.ReplaceAllString(title, ""))
	if name == "" {
		return fallback
	}
	return name
}

// renderMarkdownPDF understands the subset of markdown the generators emit:
// "#" titles, "##" headings, "-" bullets and plain paragraphs.
func renderMarkdownPDF(content string) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("pdf render panic recover: %v", r)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			pdf.Ln(3)
		case strings.HasPrefix(line, "## "):
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 13)
			pdf.MultiCell(0, 7, tr(strings.TrimPrefix(line, "## ")), "", "L", false)
		case strings.HasPrefix(line, "# "):
			pdf.SetFont("Helvetica", "B", 18)
			pdf.MultiCell(0, 10, tr(strings.TrimPrefix(line, "# ")), "", "L", false)
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetX(25)
			pdf.MultiCell(0, 6, tr("- "+line[2:]), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		}
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeQuestionsWorkbook(questions []string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", questionsSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(questionsSheet, "A1", "B1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(questionsSheet, "B", "B", 100); err != nil {
		return nil, err
	}

	if err := writeRow(f, 1, "#", "Question"); err != nil {
		return nil, err
	}
	for i, q := range questions {
		if err := writeRow(f, i+2, i+1, strings.TrimSpace(q)); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func writeRow(f *excelize.File, row int, values ...any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(questionsSheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
