// file: internals/features/finance/export/service/export_service.go
package service

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	congregationModel "tesouraria_backend/internals/features/church/congregation/model"
	launchModel "tesouraria_backend/internals/features/finance/launch/model"
	"tesouraria_backend/internals/helpers/timex"
)

/* =========================
   Cell coercion
   ========================= */

// CoerceNumeric turns a digit-only source into a number cell; anything else
// yields an empty cell, never a coercion error.
func CoerceNumeric(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return n
}

// CoerceTaxID strips non-digits first; more than 15 digits stays text so
// the spreadsheet does not round the id away.
func CoerceTaxID(s string) interface{} {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return nil
	}
	if len(digits) > 15 {
		return digits
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return digits
	}
	return n
}

/* =========================
   Row mapping
   ========================= */

// RowSource is one launch with its related records pre-resolved; the
// controller fills it, the mapper never touches the database.
type RowSource struct {
	Launch       launchModel.LaunchModel
	Congregation congregationModel.CongregationModel

	SubjectName string
	SubjectTax  string

	ClassificationCode        string
	ClassificationDescription string
}

// Headers in the column order the external accounting system expects.
var Headers = []string{
	"Data",
	"Conta",
	"Código do Caixa",
	"Forma Pagamento",
	"Documento",
	"Histórico",
	"Nome",
	"CPF/CNPJ",
	"Classificação",
	"Valor",
}

// MapRow flattens one source into cells, selecting the accounting triple by
// the launch's type. Every field is best-effort; a missing relation leaves
// its cells empty.
func MapRow(src *RowSource) []interface{} {
	l := &src.Launch
	triple := src.Congregation.TripleFor(l.LaunchType)

	historic := string(l.LaunchType)
	if l.LaunchDescription != nil && *l.LaunchDescription != "" {
		historic = *l.LaunchDescription
	}

	doc := ""
	if l.LaunchTalonNumber != nil {
		doc = *l.LaunchTalonNumber
	}

	classification := src.ClassificationCode
	if src.ClassificationDescription != "" {
		if classification != "" {
			classification += " - "
		}
		classification += src.ClassificationDescription
	}

	value, _ := l.LaunchValue.Round(2).Float64()

	return []interface{}{
		l.LaunchDate.In(timex.Location()),
		CoerceNumeric(triple.AccountPlan),
		CoerceNumeric(triple.FinancialEntity),
		CoerceNumeric(triple.PaymentMethod),
		CoerceNumeric(doc),
		historic,
		src.SubjectName,
		CoerceTaxID(src.SubjectTax),
		classification,
		value,
	}
}

/* =========================
   Workbook
   ========================= */

const sheetName = "Lançamentos"

// numeric/code columns, right-aligned; B..E codes, H tax id, J value
var numericColumns = []string{"B", "C", "D", "E", "H", "J"}

// BuildWorkbook writes the styled sheet. A failure here is a hard error;
// callers must not mark anything EXPORTED when it fires.
func BuildWorkbook(rows []*RowSource) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Calibri", Size: 10, Bold: true},
	})
	if err != nil {
		return nil, err
	}
	textStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return nil, err
	}
	numberStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, err
	}
	dateFormat := "dd/mm/yyyy"
	dateStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Size: 10},
		CustomNumFmt: &dateFormat,
	})
	if err != nil {
		return nil, err
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastCol, headerStyle); err != nil {
		return nil, err
	}

	for r, src := range rows {
		cells := MapRow(src)
		for c, v := range cells {
			if v == nil {
				continue
			}
			name, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetName, name, v); err != nil {
				return nil, err
			}
		}
	}

	if len(rows) > 0 {
		last := len(rows) + 1
		lastRow := strconv.Itoa(last)
		if err := f.SetCellStyle(sheetName, "A2", "A"+lastRow, dateStyle); err != nil {
			return nil, err
		}
		for _, col := range numericColumns {
			if err := f.SetCellStyle(sheetName, col+"2", col+lastRow, numberStyle); err != nil {
				return nil, err
			}
		}
		for _, col := range []string{"F", "G", "I"} {
			if err := f.SetCellStyle(sheetName, col+"2", col+lastRow, textStyle); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

// Filename stamps the download in the operating timezone.
func Filename(now time.Time) string {
	return "lancamentos-" + now.In(timex.Location()).Format("20060102-150405") + ".xlsx"
}
