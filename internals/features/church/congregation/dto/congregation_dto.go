package dto

import (
	"time"

	"github.com/google/uuid"

	model "tesouraria_backend/internals/features/church/congregation/model"
)

type CreateCongregationRequest struct {
	CongregationCode    string           `json:"congregation_code" validate:"required,max=20"`
	CongregationName    string           `json:"congregation_name" validate:"required,min=2,max=120"`
	CongregationAddress *string          `json:"congregation_address,omitempty"`
	AccountMap          model.AccountMap `json:"account_map,omitempty"`
}

func (r CreateCongregationRequest) ToModel() (*model.CongregationModel, error) {
	m := &model.CongregationModel{
		CongregationCode:    r.CongregationCode,
		CongregationName:    r.CongregationName,
		CongregationAddress: r.CongregationAddress,
	}
	if err := m.SetAccountMap(r.AccountMap); err != nil {
		return nil, err
	}
	return m, nil
}

type UpdateCongregationRequest struct {
	CongregationName    *string           `json:"congregation_name,omitempty" validate:"omitempty,min=2,max=120"`
	CongregationAddress *string           `json:"congregation_address,omitempty"`
	AccountMap          *model.AccountMap `json:"account_map,omitempty"`
}

func (r UpdateCongregationRequest) ApplyTo(m *model.CongregationModel) error {
	if r.CongregationName != nil {
		m.CongregationName = *r.CongregationName
	}
	if r.CongregationAddress != nil {
		m.CongregationAddress = r.CongregationAddress
	}
	if r.AccountMap != nil {
		if err := m.SetAccountMap(*r.AccountMap); err != nil {
			return err
		}
	}
	return nil
}

type CongregationResponse struct {
	CongregationID      uuid.UUID        `json:"congregation_id"`
	CongregationCode    string           `json:"congregation_code"`
	CongregationName    string           `json:"congregation_name"`
	CongregationAddress *string          `json:"congregation_address,omitempty"`
	AccountMap          model.AccountMap `json:"account_map"`
	CongregationCreated time.Time        `json:"congregation_created_at"`
}

func FromModel(m *model.CongregationModel) CongregationResponse {
	am, err := m.GetAccountMap()
	if err != nil {
		am = model.AccountMap{}
	}
	return CongregationResponse{
		CongregationID:      m.CongregationID,
		CongregationCode:    m.CongregationCode,
		CongregationName:    m.CongregationName,
		CongregationAddress: m.CongregationAddress,
		AccountMap:          am,
		CongregationCreated: m.CongregationCreatedAt,
	}
}

func FromModels(ms []model.CongregationModel) []CongregationResponse {
	out := make([]CongregationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
