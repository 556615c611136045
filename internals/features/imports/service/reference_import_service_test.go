package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	contributorModel "tesouraria_backend/internals/features/church/contributor/model"
	"tesouraria_backend/internals/features/imports/pipeline"
)

func TestApplyContributorUpsert(t *testing.T) {
	existingID := uuid.New()
	photo := "contributors/foto.webp"
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	existing := func(code string) *contributorModel.ContributorModel {
		return &contributorModel.ContributorModel{
			ContributorID:        existingID,
			ContributorCode:      code,
			ContributorName:      "Maria Antiga",
			ContributorPhotoPath: &photo,
			ContributorCreatedAt: createdAt,
		}
	}

	tests := []struct {
		name            string
		byCPF           *contributorModel.ContributorModel
		rowCode         string
		codeHeldByOther bool
		wantOutcome     pipeline.Outcome
		wantErr         bool
	}{
		{name: "new cpf inserts", byCPF: nil, rowCode: "C-10", wantOutcome: pipeline.OutcomeCreated},
		{name: "same cpf same code updates", byCPF: existing("C-10"), rowCode: "C-10", wantOutcome: pipeline.OutcomeUpdated},
		{name: "same cpf new free code updates", byCPF: existing("C-10"), rowCode: "C-11", wantOutcome: pipeline.OutcomeUpdated},
		{name: "code held by another contributor errors", byCPF: existing("C-10"), rowCode: "C-99", codeHeldByOther: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &contributorModel.ContributorModel{
				ContributorCode: tt.rowCode,
				ContributorName: "Maria Nova",
			}
			outcome, err := applyContributorUpsert(m, tt.byCPF, tt.codeHeldByOther)

			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if outcome != tt.wantOutcome {
				t.Errorf("outcome = %v, want %v", outcome, tt.wantOutcome)
			}
		})
	}
}

func TestApplyContributorUpsertPreservesIdentity(t *testing.T) {
	existingID := uuid.New()
	photo := "contributors/foto.webp"
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	byCPF := &contributorModel.ContributorModel{
		ContributorID:        existingID,
		ContributorCode:      "C-10",
		ContributorName:      "Maria Antiga",
		ContributorPhotoPath: &photo,
		ContributorCreatedAt: createdAt,
	}

	m := &contributorModel.ContributorModel{
		ContributorCode: "C-10",
		ContributorName: "Maria Atualizada",
	}
	if _, err := applyContributorUpsert(m, byCPF, false); err != nil {
		t.Fatalf("err = %v", err)
	}

	// name changes in place; id, photo and creation time survive
	if m.ContributorID != existingID {
		t.Errorf("id = %v, want existing %v", m.ContributorID, existingID)
	}
	if m.ContributorName != "Maria Atualizada" {
		t.Errorf("name = %q, want updated name", m.ContributorName)
	}
	if m.ContributorPhotoPath == nil || *m.ContributorPhotoPath != photo {
		t.Errorf("photo = %v, want preserved %q", m.ContributorPhotoPath, photo)
	}
	if !m.ContributorCreatedAt.Equal(createdAt) {
		t.Errorf("created_at = %v, want preserved %v", m.ContributorCreatedAt, createdAt)
	}
}
