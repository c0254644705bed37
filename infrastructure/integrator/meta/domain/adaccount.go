package metadomain

// AdAccount é uma conta de anúncios retornada por /me/adaccounts. ID vem com o
// prefixo act_; AccountID é a forma numérica usada para montar caminhos
// act_<account_id>.
type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountID     string `json:"account_id"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
	TimezoneName  string `json:"timezone_name"`
}

type AdAccountList struct {
	Data []AdAccount `json:"data"`
}

// FundingSource é uma forma de pagamento cadastrada na conta de anúncios
type FundingSource struct {
	ID            string `json:"id,omitempty"`
	DisplayString string `json:"display_string,omitempty"`
	Type          int    `json:"type,omitempty"`
}

// AdAccountOverview são os campos de faturamento consultados pela checagem de
// saldo. Os valores monetários chegam como strings em centavos.
type AdAccountOverview struct {
	AccountStatus        int             `json:"account_status"`
	DisableReason        int             `json:"disable_reason,omitempty"`
	Balance              string          `json:"balance,omitempty"`
	AmountSpent          string          `json:"amount_spent,omitempty"`
	SpendCap             string          `json:"spend_cap,omitempty"`
	MinDailyBudget       float64         `json:"min_daily_budget,omitempty"`
	FundingSourceDetails []FundingSource `json:"funding_source_details,omitempty"`
}
