package dto

import (
	"time"

	"github.com/google/uuid"

	model "tesouraria_backend/internals/features/church/supplier/model"
)

type CreateSupplierRequest struct {
	SupplierCode     string  `json:"supplier_code" validate:"required,max=20"`
	SupplierName     string  `json:"supplier_name" validate:"required,min=2,max=120"`
	SupplierTaxID    *string `json:"supplier_tax_id,omitempty" validate:"omitempty,max=18"`
	SupplierIsPerson bool    `json:"supplier_is_person"`
}

func (r CreateSupplierRequest) ToModel() *model.SupplierModel {
	return &model.SupplierModel{
		SupplierCode:     r.SupplierCode,
		SupplierName:     r.SupplierName,
		SupplierTaxID:    r.SupplierTaxID,
		SupplierIsPerson: r.SupplierIsPerson,
	}
}

type UpdateSupplierRequest struct {
	SupplierName     *string `json:"supplier_name,omitempty" validate:"omitempty,min=2,max=120"`
	SupplierTaxID    *string `json:"supplier_tax_id,omitempty" validate:"omitempty,max=18"`
	SupplierIsPerson *bool   `json:"supplier_is_person,omitempty"`
}

func (r UpdateSupplierRequest) ApplyTo(m *model.SupplierModel) {
	if r.SupplierName != nil {
		m.SupplierName = *r.SupplierName
	}
	if r.SupplierTaxID != nil {
		m.SupplierTaxID = r.SupplierTaxID
	}
	if r.SupplierIsPerson != nil {
		m.SupplierIsPerson = *r.SupplierIsPerson
	}
}

type SupplierResponse struct {
	SupplierID        uuid.UUID `json:"supplier_id"`
	SupplierCode      string    `json:"supplier_code"`
	SupplierName      string    `json:"supplier_name"`
	SupplierTaxID     *string   `json:"supplier_tax_id,omitempty"`
	SupplierIsPerson  bool      `json:"supplier_is_person"`
	SupplierCreatedAt time.Time `json:"supplier_created_at"`
}

func FromModel(m *model.SupplierModel) SupplierResponse {
	return SupplierResponse{
		SupplierID:        m.SupplierID,
		SupplierCode:      m.SupplierCode,
		SupplierName:      m.SupplierName,
		SupplierTaxID:     m.SupplierTaxID,
		SupplierIsPerson:  m.SupplierIsPerson,
		SupplierCreatedAt: m.SupplierCreatedAt,
	}
}

func FromModels(ms []model.SupplierModel) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
