package io

import (
	"encoding/csv"
	"io"
	"strings"

	apperrors "github.com/metaboclass/metaboclass/pkg/errors"
)

// ReadNames reads metabolite names from one column of a CSV.
//
// When column is empty, the first column is used and the first row is
// assumed to be a header and skipped. When column is set, the header row is
// located case-insensitively and the matching column is read.
//
// Names are returned exactly as they appear, in input order, duplicates and
// empty strings included; validation is deliberately not performed (an
// unmatchable name simply fails resolution downstream).
func ReadNames(r io.Reader, column string) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "input is empty")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "read header")
	}

	idx := 0
	if column != "" {
		idx = -1
		for i, col := range header {
			if strings.EqualFold(strings.TrimSpace(col), column) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "missing required column %q", column)
		}
	}

	var names []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "read row %d", len(names)+2)
		}
		if idx >= len(rec) {
			return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
				"row %d has %d columns, want at least %d", len(names)+2, len(rec), idx+1)
		}
		names = append(names, rec[idx])
	}
	return names, nil
}
