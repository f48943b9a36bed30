package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/metaboclass/metaboclass/pkg/classify"
	apperrors "github.com/metaboclass/metaboclass/pkg/errors"
)

// WriteCSV writes the result table to w as CSV.
//
// The header holds the table's populated columns in canonical order;
// pathway lists are joined with "; " within their cell.
func WriteCSV(t *classify.Table, w io.Writer) error {
	cols := t.Columns()

	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	cells := make([]string, len(cols))
	for _, row := range t.Rows() {
		for i, col := range cols {
			cells[i] = row.CellString(col)
		}
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("write row %q: %w", row.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the result table to w as an array of row objects.
//
// Only populated columns appear as keys; pathway columns keep their list
// shape instead of being joined.
func WriteJSON(t *classify.Table, w io.Writer) error {
	cols := t.Columns()

	rows := make([]map[string]any, 0, t.Len())
	for _, row := range t.Rows() {
		obj := make(map[string]any, len(cols))
		for _, col := range cols {
			if v, ok := row.Value(col); ok {
				obj[col] = v
			}
		}
		rows = append(rows, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFile writes the table to a file at path in the given format
// ("csv" or "json").
func ExportFile(t *classify.Table, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	switch format {
	case "csv":
		err = WriteCSV(t, f)
	case "json":
		err = WriteJSON(t, f)
	default:
		err = apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported format %q (must be csv or json)", format)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
