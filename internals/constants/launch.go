package constants

/* =========================
   Launch types
   ========================= */

type LaunchType string

const (
	LaunchTypeDizimo      LaunchType = "DIZIMO"
	LaunchTypeOfertaCulto LaunchType = "OFERTA_CULTO"
	LaunchTypeVoto        LaunchType = "VOTO"
	LaunchTypeEbd         LaunchType = "EBD"
	LaunchTypeCampanha    LaunchType = "CAMPANHA"
	LaunchTypeMissao      LaunchType = "MISSAO"
	LaunchTypeCirculo     LaunchType = "CIRCULO"
	LaunchTypeSaida       LaunchType = "SAIDA"
	LaunchTypeCarne       LaunchType = "CARNE_REVIVER"
)

var AllLaunchTypes = []LaunchType{
	LaunchTypeDizimo,
	LaunchTypeOfertaCulto,
	LaunchTypeVoto,
	LaunchTypeEbd,
	LaunchTypeCampanha,
	LaunchTypeMissao,
	LaunchTypeCirculo,
	LaunchTypeSaida,
	LaunchTypeCarne,
}

func (t LaunchType) Valid() bool {
	for _, v := range AllLaunchTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsEntry reports whether the type sits on the income side of a summary.
func (t LaunchType) IsEntry() bool {
	return t != LaunchTypeSaida
}

/* =========================
   Launch statuses
   ========================= */

type LaunchStatus string

const (
	LaunchStatusNormal   LaunchStatus = "NORMAL"
	LaunchStatusApproved LaunchStatus = "APPROVED"
	LaunchStatusCanceled LaunchStatus = "CANCELED"
	LaunchStatusExported LaunchStatus = "EXPORTED"
)

func (s LaunchStatus) Valid() bool {
	switch s {
	case LaunchStatusNormal, LaunchStatusApproved, LaunchStatusCanceled, LaunchStatusExported:
		return true
	}
	return false
}

/* =========================
   Congregation account categories
   ========================= */

// AccountCategory keys the per-congregation (account plan, financial entity,
// payment method) triple used to fill the external accounting columns.
type AccountCategory string

const (
	AccountCategoryDizimo   AccountCategory = "dizimo"
	AccountCategoryOferta   AccountCategory = "oferta"
	AccountCategoryVotos    AccountCategory = "votos"
	AccountCategoryEbd      AccountCategory = "ebd"
	AccountCategoryCampanha AccountCategory = "campanha"
	AccountCategoryMissao   AccountCategory = "missao"
	AccountCategoryCirculo  AccountCategory = "circulo"
	AccountCategorySaida    AccountCategory = "saida"
)

// accountCategoryByType is total over AllLaunchTypes. CARNE_REVIVER carnets
// settle against the campaign accounts.
var accountCategoryByType = map[LaunchType]AccountCategory{
	LaunchTypeDizimo:      AccountCategoryDizimo,
	LaunchTypeOfertaCulto: AccountCategoryOferta,
	LaunchTypeVoto:        AccountCategoryVotos,
	LaunchTypeEbd:         AccountCategoryEbd,
	LaunchTypeCampanha:    AccountCategoryCampanha,
	LaunchTypeMissao:      AccountCategoryMissao,
	LaunchTypeCirculo:     AccountCategoryCirculo,
	LaunchTypeSaida:       AccountCategorySaida,
	LaunchTypeCarne:       AccountCategoryCampanha,
}

func AccountCategoryFor(t LaunchType) AccountCategory {
	return accountCategoryByType[t]
}

// CreatedByImport marks launches that entered through the CSV importer.
const CreatedByImport = "IMPORTED"
