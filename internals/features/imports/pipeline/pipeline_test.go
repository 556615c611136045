package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestRunSkipsHeaderAndCountsLines(t *testing.T) {
	raw := []byte("codigo,nome\nC1,Sede\nC2,Jardim\n")

	var seen [][]string
	res := Run(raw, 2, func(fields []string) (Outcome, error) {
		seen = append(seen, fields)
		return OutcomeCreated, nil
	})

	if res.Created != 2 || res.Updated != 0 || res.HasErrors() {
		t.Fatalf("result = %+v, want 2 created, clean", res)
	}
	if len(seen) != 2 || seen[0][0] != "C1" || seen[1][1] != "Jardim" {
		t.Fatalf("handler saw %v", seen)
	}
}

func TestRunErrorLineNumbersCountHeader(t *testing.T) {
	// first data row is line 2; row "C2" (line 3) fails
	raw := []byte("codigo,nome\nC1,Sede\nC2,Jardim\nC3,Centro\n")

	res := Run(raw, 2, func(fields []string) (Outcome, error) {
		if fields[0] == "C2" {
			return 0, errors.New("código de congregação já existe")
		}
		return OutcomeCreated, nil
	})

	if res.Created != 2 {
		t.Fatalf("created = %d, want 2 (partial success commits)", res.Created)
	}
	if len(res.Errors) != 1 || !strings.HasPrefix(res.Errors[0], "linha 3: ") {
		t.Fatalf("errors = %v, want one tagged 'linha 3'", res.Errors)
	}
}

func TestRunMinColumnCheck(t *testing.T) {
	raw := []byte("a,b,c\n1,2,3\nonly-one\n4,5,6\n")

	res := Run(raw, 3, func(fields []string) (Outcome, error) {
		return OutcomeCreated, nil
	})

	if res.Created != 2 {
		t.Fatalf("created = %d, want 2", res.Created)
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "linha 3") {
		t.Fatalf("errors = %v, want short row flagged at linha 3", res.Errors)
	}
}

func TestRunDecodesLatin1(t *testing.T) {
	// "Conceição" encoded as ISO8859-1: ç=0xE7, ã=0xE3
	raw := []byte("codigo,nome\nC1,Concei\xe7\xe3o\n")

	var got string
	res := Run(raw, 2, func(fields []string) (Outcome, error) {
		got = fields[1]
		return OutcomeCreated, nil
	})

	if res.HasErrors() {
		t.Fatalf("errors = %v", res.Errors)
	}
	if got != "Conceição" {
		t.Fatalf("decoded name = %q, want %q", got, "Conceição")
	}
}

func TestRunHandlesCRLFAndBlankLines(t *testing.T) {
	raw := []byte("a,b\r\n1,2\r\n\r\n3,4\r\n")

	res := Run(raw, 2, func(fields []string) (Outcome, error) {
		return OutcomeUpdated, nil
	})
	if res.Updated != 2 || res.HasErrors() {
		t.Fatalf("result = %+v, want 2 updated", res)
	}
}

func TestHeader(t *testing.T) {
	raw := []byte("Data, Valor ,Contribuinte\n01/02/2025,10,Maria\n")
	h := Header(raw)
	want := []string{"Data", "Valor", "Contribuinte"}
	if len(h) != len(want) {
		t.Fatalf("header = %v", h)
	}
	for i := range want {
		if h[i] != want[i] {
			t.Fatalf("header[%d] = %q, want %q", i, h[i], want[i])
		}
	}
}
