package table

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/mirnatools/targetnets/pkg/errors"
)

// ReadFile reads the raw workbook bytes from path. Kept separate from Parse
// so callers can hash the raw bytes for cache keys.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input table %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

// parseXLSX decodes the first sheet of an .xlsx workbook. The header row
// carries the miRNA names; everything below it is target cells.
func parseXLSX(data []byte) (Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeInvalidTable, err, "open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, errors.New(errors.ErrCodeInvalidTable, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeInvalidTable, err, "read sheet %s", sheets[0])
	}
	return fromRows(rows), nil
}

// parseCSV decodes a comma-separated table with the same header convention
// as the xlsx sheets. Ragged rows are allowed.
func parseCSV(data []byte) (Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, errors.Wrap(errors.ErrCodeInvalidTable, err, "parse csv")
		}
		rows = append(rows, record)
	}
	return fromRows(rows), nil
}
