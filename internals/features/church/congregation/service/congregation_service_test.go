package service

import (
	"errors"
	"testing"
)

func TestEnsureDeletable(t *testing.T) {
	tests := []struct {
		name         string
		contributors int64
		launches     int64
		wantErr      bool
	}{
		{name: "no dependents", contributors: 0, launches: 0, wantErr: false},
		{name: "contributors block", contributors: 3, launches: 0, wantErr: true},
		{name: "launches block", contributors: 0, launches: 1, wantErr: true},
		{name: "both block", contributors: 2, launches: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureDeletable(tt.contributors, tt.launches)
			if tt.wantErr {
				if !errors.Is(err, ErrHasDependents) {
					t.Fatalf("err = %v, want ErrHasDependents", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
		})
	}
}
