// file: internals/features/church/congregation/model/congregation_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tesouraria_backend/internals/constants"
)

/* =========================
   Account map payload (JSONB)
   ========================= */

// AccountTriple is the external-accounting coordinate for one launch
// category: filled only at export time.
type AccountTriple struct {
	AccountPlan     string `json:"account_plan,omitempty"`
	FinancialEntity string `json:"financial_entity,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty"`
}

// AccountMap keys a triple per launch category (oferta, ebd, campanha,
// votos, dizimo, saida, missao, circulo).
type AccountMap map[constants.AccountCategory]AccountTriple

/* =========================
   Model: congregations
   ========================= */

type CongregationModel struct {
	CongregationID      uuid.UUID `json:"congregation_id" gorm:"column:congregation_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CongregationCode    string    `json:"congregation_code" gorm:"column:congregation_code;type:varchar(20);unique;not null"`
	CongregationName    string    `json:"congregation_name" gorm:"column:congregation_name;type:varchar(120);not null"`
	CongregationAddress *string   `json:"congregation_address,omitempty" gorm:"column:congregation_address;type:text"`

	// per-category accounting triples (JSONB)
	CongregationAccountMap datatypes.JSON `json:"congregation_account_map,omitempty" gorm:"column:congregation_account_map;type:jsonb"`

	CongregationCreatedAt time.Time `json:"congregation_created_at" gorm:"column:congregation_created_at;type:timestamptz;not null;default:now()"`
	CongregationUpdatedAt time.Time `json:"congregation_updated_at" gorm:"column:congregation_updated_at;type:timestamptz;not null;default:now()"`
}

func (CongregationModel) TableName() string { return "congregations" }

func (m *CongregationModel) BeforeCreate(tx *gorm.DB) error {
	m.CongregationUpdatedAt = time.Now().UTC()
	return nil
}

func (m *CongregationModel) BeforeUpdate(tx *gorm.DB) error {
	m.CongregationUpdatedAt = time.Now().UTC()
	return nil
}

func (m *CongregationModel) SetAccountMap(am AccountMap) error {
	if am == nil {
		m.CongregationAccountMap = nil
		return nil
	}
	b, err := json.Marshal(am)
	if err != nil {
		return err
	}
	m.CongregationAccountMap = datatypes.JSON(b)
	return nil
}

func (m *CongregationModel) GetAccountMap() (AccountMap, error) {
	if len(m.CongregationAccountMap) == 0 {
		return AccountMap{}, nil
	}
	var am AccountMap
	if err := json.Unmarshal(m.CongregationAccountMap, &am); err != nil {
		return nil, err
	}
	return am, nil
}

// TripleFor resolves the accounting triple for a launch type via the total
// type→category table. Missing entries come back zero-valued (empty cells
// at export, never an error).
func (m *CongregationModel) TripleFor(t constants.LaunchType) AccountTriple {
	am, err := m.GetAccountMap()
	if err != nil {
		return AccountTriple{}
	}
	return am[constants.AccountCategoryFor(t)]
}
