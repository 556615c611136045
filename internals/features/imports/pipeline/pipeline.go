// file: internals/features/imports/pipeline/pipeline.go
package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Result is the outcome of one file: whatever succeeded stays committed
// even when Errors is non-empty.
type Result struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors"`
}

func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

func (r *Result) addError(line int, msg string) {
	r.Errors = append(r.Errors, fmt.Sprintf("linha %d: %s", line, msg))
}

// Outcome tells the pipeline how to count one handled row.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeUpdated
)

// RowHandler processes one data row; fields are trimmed and already
// guaranteed to have at least the minimum column count.
type RowHandler func(fields []string) (Outcome, error)

// Run decodes a Latin-1 CSV payload and feeds every data row to the
// handler. Line 1 is the header and is skipped; error lines are numbered
// 1-based counting the header, so the first data row is "linha 2".
// Fields split on comma with no quoting, matching the upstream files.
func Run(raw []byte, minColumns int, handle RowHandler) Result {
	var res Result

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		res.addError(1, "arquivo não pôde ser decodificado como Latin-1")
		return res
	}

	lines := strings.Split(strings.ReplaceAll(string(decoded), "\r\n", "\n"), "\n")
	for i, line := range lines {
		lineNo := i + 1
		if lineNo == 1 {
			continue // header
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}
		if len(fields) < minColumns {
			res.addError(lineNo, fmt.Sprintf("esperadas %d colunas, recebidas %d", minColumns, len(fields)))
			continue
		}

		outcome, err := handle(fields)
		if err != nil {
			res.addError(lineNo, err.Error())
			continue
		}
		switch outcome {
		case OutcomeUpdated:
			res.Updated++
		default:
			res.Created++
		}
	}
	return res
}

// Header returns the raw header fields of a Latin-1 CSV payload, used by
// importers that infer column positions from header names.
func Header(raw []byte) []string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil
	}
	nl := strings.IndexByte(string(decoded), '\n')
	first := string(decoded)
	if nl >= 0 {
		first = first[:nl]
	}
	first = strings.TrimSuffix(first, "\r")
	fields := strings.Split(first, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
