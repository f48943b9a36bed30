package io

import (
	"slices"
	"strings"
	"testing"

	apperrors "github.com/metaboclass/metaboclass/pkg/errors"
)

func TestReadNamesFirstColumn(t *testing.T) {
	input := "metabolite,concentration\nglucose,1.2\ncitric acid,0.4\nglucose,2.0\n"

	names, err := ReadNames(strings.NewReader(input), "")
	if err != nil {
		t.Fatalf("ReadNames() error: %v", err)
	}
	want := []string{"glucose", "citric acid", "glucose"}
	if !slices.Equal(names, want) {
		t.Errorf("ReadNames() = %v, want %v (duplicates preserved)", names, want)
	}
}

func TestReadNamesNamedColumn(t *testing.T) {
	input := "sample,Compound\nS1,glucose\nS2,quercetin\n"

	names, err := ReadNames(strings.NewReader(input), "compound")
	if err != nil {
		t.Fatalf("ReadNames() error: %v", err)
	}
	want := []string{"glucose", "quercetin"}
	if !slices.Equal(names, want) {
		t.Errorf("ReadNames() = %v, want %v (header match is case-insensitive)", names, want)
	}
}

func TestReadNamesMissingColumn(t *testing.T) {
	input := "sample,compound\nS1,glucose\n"

	_, err := ReadNames(strings.NewReader(input), "metabolite")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", apperrors.GetCode(err), apperrors.ErrCodeInvalidInput)
	}
}

func TestReadNamesEmptyInput(t *testing.T) {
	_, err := ReadNames(strings.NewReader(""), "")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", apperrors.GetCode(err), apperrors.ErrCodeInvalidInput)
	}
}

func TestReadNamesShortRow(t *testing.T) {
	input := "sample,compound\nS1,glucose\nS2\n"

	_, err := ReadNames(strings.NewReader(input), "compound")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", apperrors.GetCode(err), apperrors.ErrCodeInvalidFormat)
	}
}

func TestReadNamesHeaderOnly(t *testing.T) {
	names, err := ReadNames(strings.NewReader("metabolite\n"), "")
	if err != nil {
		t.Fatalf("ReadNames() error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("ReadNames() = %v, want no names", names)
	}
}
