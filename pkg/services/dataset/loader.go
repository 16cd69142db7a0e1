package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

// Loader parses an uploaded CSV or spreadsheet file into a domain.Table.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file content according to its declared extension. CSV for
// ".csv", excelize for spreadsheet extensions, mirroring the upload rule
// "csv if it says csv, otherwise treat it as a workbook". Any parse failure
// is returned as *domain.UnreadableFileError and the caller must halt.
func (l *Loader) Load(r io.Reader, filename string) (*domain.Table, error) {
	var (
		table *domain.Table
		err   error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		table, err = l.loadCSV(r)
	default:
		table, err = l.loadWorkbook(r)
	}

	if err != nil {
		return nil, &domain.UnreadableFileError{Filename: filename, Err: err}
	}
	return table, nil
}

func (l *Loader) loadCSV(r io.Reader) (*domain.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("file contains no header row")
	}

	return domain.NewTable(records[0], records[1:]), nil
}

func (l *Loader) loadWorkbook(r io.Reader) (*domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("sheet contains no header row")
	}

	return domain.NewTable(rows[0], rows[1:]), nil
}
