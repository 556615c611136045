package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tesouraria_backend/internals/constants"
	congregationModel "tesouraria_backend/internals/features/church/congregation/model"
	launchModel "tesouraria_backend/internals/features/finance/launch/model"
)

func TestCoerceNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"12345", int64(12345)},
		{" 42 ", int64(42)},
		{"", nil},
		{"12a45", nil},
		{"12.45", nil},
		{"-12", nil},
	}
	for _, tt := range tests {
		if got := CoerceNumeric(tt.in); got != tt.want {
			t.Errorf("CoerceNumeric(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCoerceTaxID(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"123.456.789-01", int64(12345678901)},
		{"12.345.678/0001-99", int64(12345678000199)},
		{"", nil},
		{"sem dígitos", nil},
		// 16 digits: kept as text to avoid precision loss
		{"1234567890123456", "1234567890123456"},
	}
	for _, tt := range tests {
		if got := CoerceTaxID(tt.in); got != tt.want {
			t.Errorf("CoerceTaxID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func exportCongregation(t *testing.T) congregationModel.CongregationModel {
	t.Helper()
	var cong congregationModel.CongregationModel
	err := cong.SetAccountMap(congregationModel.AccountMap{
		constants.AccountCategoryDizimo: {
			AccountPlan:     "1001",
			FinancialEntity: "77",
			PaymentMethod:   "3",
		},
	})
	if err != nil {
		t.Fatalf("SetAccountMap: %v", err)
	}
	return cong
}

func TestMapRowSelectsTripleByType(t *testing.T) {
	desc := "dízimo de março"
	doc := "0042"
	src := &RowSource{
		Launch: launchModel.LaunchModel{
			LaunchType:        constants.LaunchTypeDizimo,
			LaunchDate:        time.Date(2025, 3, 5, 3, 0, 0, 0, time.UTC),
			LaunchValue:       decimal.RequireFromString("150.50"),
			LaunchDescription: &desc,
			LaunchTalonNumber: &doc,
		},
		Congregation: exportCongregation(t),
		SubjectName:  "Maria",
		SubjectTax:   "123.456.789-01",
	}

	cells := MapRow(src)
	if len(cells) != len(Headers) {
		t.Fatalf("row has %d cells for %d headers", len(cells), len(Headers))
	}
	if cells[1] != int64(1001) || cells[2] != int64(77) || cells[3] != int64(3) {
		t.Errorf("triple cells = %v %v %v, want 1001 77 3", cells[1], cells[2], cells[3])
	}
	if cells[4] != int64(42) {
		t.Errorf("document = %v, want 42", cells[4])
	}
	if cells[5] != desc {
		t.Errorf("historic = %v, want description", cells[5])
	}
	if cells[7] != int64(12345678901) {
		t.Errorf("tax id = %v, want 12345678901", cells[7])
	}
	if cells[9] != 150.50 {
		t.Errorf("value = %v, want 150.50", cells[9])
	}
}

func TestMapRowMissingTripleYieldsEmptyCells(t *testing.T) {
	// OFERTA_CULTO has no entry in the account map above
	src := &RowSource{
		Launch: launchModel.LaunchModel{
			LaunchType:  constants.LaunchTypeOfertaCulto,
			LaunchDate:  time.Date(2025, 3, 5, 3, 0, 0, 0, time.UTC),
			LaunchValue: decimal.NewFromInt(10),
		},
		Congregation: exportCongregation(t),
	}

	cells := MapRow(src)
	if cells[1] != nil || cells[2] != nil || cells[3] != nil {
		t.Errorf("missing triple must map to empty cells, got %v %v %v", cells[1], cells[2], cells[3])
	}
	// no description: the type name fills the historic column
	if cells[5] != string(constants.LaunchTypeOfertaCulto) {
		t.Errorf("historic = %v, want type name", cells[5])
	}
}

func TestBuildWorkbook(t *testing.T) {
	src := &RowSource{
		Launch: launchModel.LaunchModel{
			LaunchType:  constants.LaunchTypeDizimo,
			LaunchDate:  time.Date(2025, 3, 5, 3, 0, 0, 0, time.UTC),
			LaunchValue: decimal.NewFromInt(100),
		},
		Congregation: exportCongregation(t),
		SubjectName:  "Maria",
	}

	buf, err := BuildWorkbook([]*RowSource{src})
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty workbook")
	}
	// xlsx is a zip container
	b := buf.Bytes()
	if b[0] != 'P' || b[1] != 'K' {
		t.Fatalf("workbook does not start with zip magic: % x", b[:4])
	}
}

func TestBuildWorkbookNoRows(t *testing.T) {
	// a filter matching nothing still yields a valid headers-only file
	buf, err := BuildWorkbook(nil)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	b := buf.Bytes()
	if len(b) < 4 || b[0] != 'P' || b[1] != 'K' {
		t.Fatalf("workbook does not start with zip magic")
	}
}

func TestFilename(t *testing.T) {
	name := Filename(time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC))
	if len(name) == 0 || name[len(name)-5:] != ".xlsx" {
		t.Fatalf("filename = %q", name)
	}
}
