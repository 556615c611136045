package service

import (
	"testing"

	"tesouraria_backend/internals/features/imports/pipeline"
)

func TestInferLaunchColumnsFromHeader(t *testing.T) {
	// shuffled columns, mixed case, accented description header
	header := []string{"Nr. Recibo", "Contribuinte", "Descrição", "Data Culto", "Valor (R$)"}
	cols := inferLaunchColumns(header)

	if cols.document != 0 {
		t.Errorf("document = %d, want 0", cols.document)
	}
	if cols.subject != 1 {
		t.Errorf("subject = %d, want 1", cols.subject)
	}
	if cols.description != 2 {
		t.Errorf("description = %d, want 2", cols.description)
	}
	if cols.date != 3 {
		t.Errorf("date = %d, want 3", cols.date)
	}
	if cols.value != 4 {
		t.Errorf("value = %d, want 4", cols.value)
	}
	if cols.minColumns() != 5 {
		t.Errorf("minColumns = %d, want 5", cols.minColumns())
	}
}

func TestInferLaunchColumnsFallback(t *testing.T) {
	cols := inferLaunchColumns([]string{"x", "y", "z"})
	if cols != launchColumnFallback {
		t.Fatalf("cols = %+v, want fixed fallback %+v", cols, launchColumnFallback)
	}
	// description and document are optional; only date and value set the floor
	if cols.minColumns() != 2 {
		t.Errorf("minColumns = %d, want 2", cols.minColumns())
	}
}

func TestMinColumnsIgnoresOptionalPositions(t *testing.T) {
	// a file without description/document columns: the unnamed optional
	// fields keep fallback positions 3 and 4, which must not raise the floor
	cols := inferLaunchColumns([]string{"Data", "Valor", "Contribuinte"})
	if cols.date != 0 || cols.value != 1 || cols.subject != 2 {
		t.Fatalf("cols = %+v, want date=0 value=1 subject=2", cols)
	}
	if cols.minColumns() != 2 {
		t.Fatalf("minColumns = %d, want 2", cols.minColumns())
	}
}

func TestShortLaunchFileRowsAccepted(t *testing.T) {
	raw := []byte("Data,Valor,Contribuinte\n01/02/2025,10,Maria\n02/02/2025,20,Ana\n")
	cols := inferLaunchColumns(pipeline.Header(raw))

	var subjects []string
	res := pipeline.Run(raw, cols.minColumns(), func(fields []string) (pipeline.Outcome, error) {
		subjects = append(subjects, field(fields, cols.subject))
		if field(fields, cols.description) != "" || field(fields, cols.document) != "" {
			t.Errorf("optional fields should read empty, got %q %q",
				field(fields, cols.description), field(fields, cols.document))
		}
		return pipeline.OutcomeCreated, nil
	})

	if res.HasErrors() {
		t.Fatalf("errors = %v, want none", res.Errors)
	}
	if res.Created != 2 {
		t.Errorf("created = %d, want 2", res.Created)
	}
	if len(subjects) != 2 || subjects[0] != "Maria" || subjects[1] != "Ana" {
		t.Errorf("subjects = %v, want [Maria Ana]", subjects)
	}
}

func TestInferLaunchColumnsPartialHeader(t *testing.T) {
	// only the date names itself; everything else keeps its fixed slot
	cols := inferLaunchColumns([]string{"col1", "col2", "col3", "col4", "data"})
	if cols.date != 4 {
		t.Errorf("date = %d, want 4", cols.date)
	}
	if cols.value != launchColumnFallback.value {
		t.Errorf("value = %d, want fallback %d", cols.value, launchColumnFallback.value)
	}
	if cols.subject != launchColumnFallback.subject {
		t.Errorf("subject = %d, want fallback %d", cols.subject, launchColumnFallback.subject)
	}
}

func TestFieldOutOfRange(t *testing.T) {
	fields := []string{"a", " b "}
	if got := field(fields, 1); got != "b" {
		t.Errorf("field(1) = %q, want trimmed %q", got, "b")
	}
	if got := field(fields, 5); got != "" {
		t.Errorf("field(5) = %q, want empty", got)
	}
	if got := field(fields, -1); got != "" {
		t.Errorf("field(-1) = %q, want empty", got)
	}
}
