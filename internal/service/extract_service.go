package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExtractService converts uploaded financial statements into flat text blobs.
// Supported formats: .pdf, .csv, .xlsx, .xls, .txt.
type ExtractService struct {
	logger *zap.Logger
}

func NewExtractService(logger *zap.Logger) *ExtractService {
	return &ExtractService{
		logger: logger,
	}
}

// ExtractText dispatches on the file extension. Unsupported extensions fail
// before any I/O happens.
func (s *ExtractService) ExtractText(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	var text string
	var err error
	switch ext {
	case ".pdf":
		text, err = s.extractPDF(filePath)
	case ".csv":
		text, err = s.extractCSV(filePath)
	case ".xlsx", ".xls":
		text, err = s.extractSpreadsheet(filePath)
	case ".txt":
		text, err = s.extractPlainText(filePath)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	s.logger.Info("Text extraction completed",
		zap.String("file", filepath.Base(filePath)),
		zap.String("format", ext),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}

// extractPDF joins per-page text runs with a space and pages with a newline.
// Runs that carry percent-style encoding are decoded.
func (s *ExtractService) extractPDF(pdfPath string) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %v", ErrExtractionFailed, err)
	}
	defer doc.Close()

	var builder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}

		runs := strings.Fields(pageText)
		for j, run := range runs {
			runs[j] = decodeRun(run)
		}
		if len(runs) > 0 {
			builder.WriteString(strings.Join(runs, " "))
			builder.WriteString("\n")
		}
	}

	return builder.String(), nil
}

// decodeRun undoes percent-style encoding left over by some PDF producers.
// Runs that fail to decode are kept as-is.
func decodeRun(run string) string {
	if !strings.Contains(run, "%") {
		return run
	}
	decoded, err := url.QueryUnescape(run)
	if err != nil {
		return run
	}
	return decoded
}

// extractCSV renders every row as a space-joined line, in row order. There is
// no header detection: all rows are included.
func (s *ExtractService) extractCSV(csvPath string) (string, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return "", fmt.Errorf("%w: open csv: %v", ErrExtractionFailed, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var builder strings.Builder
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: read csv: %v", ErrExtractionFailed, err)
		}
		builder.WriteString(strings.Join(record, " "))
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// extractSpreadsheet reads the first sheet only, rendering rows like the CSV
// path does.
func (s *ExtractService) extractSpreadsheet(xlsxPath string) (string, error) {
	file, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return "", fmt.Errorf("%w: open spreadsheet: %v", ErrExtractionFailed, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: spreadsheet has no sheets", ErrExtractionFailed)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("%w: read sheet: %v", ErrExtractionFailed, err)
	}

	var builder strings.Builder
	for _, row := range rows {
		builder.WriteString(strings.Join(row, " "))
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

func (s *ExtractService) extractPlainText(txtPath string) (string, error) {
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("%w: read text file: %v", ErrExtractionFailed, err)
	}
	return string(data), nil
}
