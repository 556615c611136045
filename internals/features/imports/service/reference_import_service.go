// file: internals/features/imports/service/reference_import_service.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	classificationModel "tesouraria_backend/internals/features/church/classification/model"
	congregationModel "tesouraria_backend/internals/features/church/congregation/model"
	contributorModel "tesouraria_backend/internals/features/church/contributor/model"
	supplierModel "tesouraria_backend/internals/features/church/supplier/model"
	profileModel "tesouraria_backend/internals/features/users/profile/model"
	userModel "tesouraria_backend/internals/features/users/user/model"
	"tesouraria_backend/internals/features/imports/pipeline"
	helper "tesouraria_backend/internals/helpers"
	"tesouraria_backend/internals/helpers/timex"
)

// ImportService runs the per-entity CSV importers. Every row commits on
// its own; a failed row never rolls back its predecessors.
type ImportService struct {
	DB *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{DB: db}
}

/* =========================
   Congregation
   columns: code, name, address?
   ========================= */

func (s *ImportService) ImportCongregations(raw []byte) pipeline.Result {
	return pipeline.Run(raw, 2, func(fields []string) (pipeline.Outcome, error) {
		m := &congregationModel.CongregationModel{
			CongregationCode: fields[0],
			CongregationName: fields[1],
		}
		if m.CongregationCode == "" || m.CongregationName == "" {
			return 0, errors.New("código e nome são obrigatórios")
		}
		if len(fields) > 2 && fields[2] != "" {
			addr := fields[2]
			m.CongregationAddress = &addr
		}
		if err := s.DB.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return 0, errors.New("código de congregação já existe: " + m.CongregationCode)
			}
			return 0, err
		}
		return pipeline.OutcomeCreated, nil
	})
}

/* =========================
   Contributor
   columns: code, name, cpf?, position?, type?, congregation_code
   Upsert key is the CPF: a row whose CPF matches an existing contributor
   updates it in place; a code collision against a different contributor
   is a row error.
   ========================= */

// applyContributorUpsert merges an incoming row into the contributor that
// already holds its CPF. byCPF is nil when the CPF is new; codeHeldByOther
// flags the row's code belonging to a third contributor. On update the row
// keeps the existing id, photo and creation time so only the mutable
// fields change.
func applyContributorUpsert(m *contributorModel.ContributorModel, byCPF *contributorModel.ContributorModel, codeHeldByOther bool) (pipeline.Outcome, error) {
	if byCPF == nil {
		return pipeline.OutcomeCreated, nil
	}
	if byCPF.ContributorCode != m.ContributorCode && codeHeldByOther {
		return 0, errors.New("código já pertence a outro contribuinte: " + m.ContributorCode)
	}
	m.ContributorID = byCPF.ContributorID
	m.ContributorPhotoPath = byCPF.ContributorPhotoPath
	m.ContributorCreatedAt = byCPF.ContributorCreatedAt
	return pipeline.OutcomeUpdated, nil
}

func (s *ImportService) ImportContributors(raw []byte) pipeline.Result {
	return pipeline.Run(raw, 6, func(fields []string) (pipeline.Outcome, error) {
		code, name := fields[0], fields[1]
		if code == "" || name == "" {
			return 0, errors.New("código e nome são obrigatórios")
		}

		congID, err := s.congregationIDByCode(fields[5])
		if err != nil {
			return 0, err
		}

		ctype := contributorModel.ContributorTypeMembro
		if fields[4] != "" {
			ctype = contributorModel.ContributorType(strings.ToUpper(fields[4]))
			if !ctype.Valid() {
				return 0, errors.New("tipo de contribuinte inválido: " + fields[4])
			}
		}

		m := &contributorModel.ContributorModel{
			ContributorCode:           code,
			ContributorName:           name,
			ContributorType:           ctype,
			ContributorCongregationID: congID,
		}
		if fields[2] != "" {
			cpf := fields[2]
			m.ContributorCPF = &cpf
		}
		if fields[3] != "" {
			pos := fields[3]
			m.ContributorPosition = &pos
		}

		if m.ContributorCPF != nil {
			var existing contributorModel.ContributorModel
			err := s.DB.First(&existing, "contributor_cpf = ?", *m.ContributorCPF).Error
			switch {
			case err == nil:
				codeHeldByOther := false
				if existing.ContributorCode != code {
					var clash int64
					if err := s.DB.Model(&contributorModel.ContributorModel{}).
						Where("contributor_code = ? AND contributor_id <> ?", code, existing.ContributorID).
						Count(&clash).Error; err != nil {
						return 0, err
					}
					codeHeldByOther = clash > 0
				}
				outcome, err := applyContributorUpsert(m, &existing, codeHeldByOther)
				if err != nil {
					return 0, err
				}
				if err := s.DB.Save(m).Error; err != nil {
					return 0, err
				}
				return outcome, nil
			case errors.Is(err, gorm.ErrRecordNotFound):
				// falls through to insert
			default:
				return 0, err
			}
		}

		if err := s.DB.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return 0, errors.New("código de contribuinte já existe: " + code)
			}
			return 0, err
		}
		return pipeline.OutcomeCreated, nil
	})
}

/* =========================
   Supplier
   columns: code, name, tax_id?, is_person (S/N)?
   ========================= */

func (s *ImportService) ImportSuppliers(raw []byte) pipeline.Result {
	return pipeline.Run(raw, 2, func(fields []string) (pipeline.Outcome, error) {
		m := &supplierModel.SupplierModel{
			SupplierCode: fields[0],
			SupplierName: fields[1],
		}
		if m.SupplierCode == "" || m.SupplierName == "" {
			return 0, errors.New("código e nome são obrigatórios")
		}
		if len(fields) > 2 && fields[2] != "" {
			tax := fields[2]
			m.SupplierTaxID = &tax
		}
		if len(fields) > 3 {
			m.SupplierIsPerson = strings.EqualFold(fields[3], "S")
		}
		if err := s.DB.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return 0, errors.New("código ou CPF/CNPJ de fornecedor já existe: " + m.SupplierCode)
			}
			return 0, err
		}
		return pipeline.OutcomeCreated, nil
	})
}

/* =========================
   Classification
   columns: code, short_code, description
   ========================= */

func (s *ImportService) ImportClassifications(raw []byte) pipeline.Result {
	return pipeline.Run(raw, 3, func(fields []string) (pipeline.Outcome, error) {
		m := &classificationModel.ClassificationModel{
			ClassificationCode:        fields[0],
			ClassificationShortCode:   fields[1],
			ClassificationDescription: fields[2],
		}
		if m.ClassificationCode == "" || m.ClassificationShortCode == "" || m.ClassificationDescription == "" {
			return 0, errors.New("código, código curto e descrição são obrigatórios")
		}
		if err := s.DB.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return 0, errors.New("código de classificação já existe: " + m.ClassificationCode)
			}
			return 0, err
		}
		return pipeline.OutcomeCreated, nil
	})
}

/* =========================
   User
   columns: user_name, full_name, email?, password, profile_name,
            valid_from?, valid_to?
   ========================= */

func (s *ImportService) ImportUsers(raw []byte, createdBy string) pipeline.Result {
	return pipeline.Run(raw, 5, func(fields []string) (pipeline.Outcome, error) {
		userName, fullName, email, password, profileName := fields[0], fields[1], fields[2], fields[3], fields[4]
		if userName == "" || fullName == "" || password == "" || profileName == "" {
			return 0, errors.New("usuário, nome, senha e perfil são obrigatórios")
		}

		var profile profileModel.ProfileModel
		if err := s.DB.First(&profile, "profile_name = ?", profileName).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, errors.New("perfil não encontrado: " + profileName)
			}
			return 0, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}

		m := &userModel.UserModel{
			UserName:      userName,
			UserFullName:  fullName,
			UserPassword:  string(hash),
			UserProfileID: profile.ProfileID,
			UserCreatedBy: createdBy,
		}
		if email != "" {
			m.UserEmail = &email
		}
		if len(fields) > 5 && fields[5] != "" {
			from, err := timex.ParseCalendarDate(fields[5])
			if err != nil {
				return 0, errors.New("data de início inválida: " + fields[5])
			}
			m.UserValidFrom = &from
		}
		if len(fields) > 6 && fields[6] != "" {
			to, err := timex.ParseCalendarDate(fields[6])
			if err != nil {
				return 0, errors.New("data de fim inválida: " + fields[6])
			}
			m.UserValidTo = &to
		}

		if err := s.DB.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return 0, errors.New("usuário já existe: " + userName)
			}
			return 0, err
		}
		return pipeline.OutcomeCreated, nil
	})
}

/* =========================
   User-Congregation association
   columns: user_name, congregation_code
   ========================= */

func (s *ImportService) ImportUserCongregations(raw []byte) pipeline.Result {
	return pipeline.Run(raw, 2, func(fields []string) (pipeline.Outcome, error) {
		userName, congCode := fields[0], fields[1]
		if userName == "" || congCode == "" {
			return 0, errors.New("usuário e código de congregação são obrigatórios")
		}

		var user userModel.UserModel
		if err := s.DB.First(&user, "user_name = ?", userName).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, errors.New("usuário não encontrado: " + userName)
			}
			return 0, err
		}
		congID, err := s.congregationIDByCode(congCode)
		if err != nil {
			return 0, err
		}

		uc := &userModel.UserCongregationModel{
			UserCongregationUserID:         user.UserID,
			UserCongregationCongregationID: congID,
		}
		if err := s.DB.Create(uc).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return 0, errors.New("associação já existe: " + userName + " / " + congCode)
			}
			return 0, err
		}
		return pipeline.OutcomeCreated, nil
	})
}

func (s *ImportService) congregationIDByCode(code string) (uuid.UUID, error) {
	if code == "" {
		return uuid.Nil, errors.New("código de congregação é obrigatório")
	}
	var cong congregationModel.CongregationModel
	if err := s.DB.First(&cong, "congregation_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, errors.New("congregação não encontrada: " + code)
		}
		return uuid.Nil, err
	}
	return cong.CongregationID, nil
}
