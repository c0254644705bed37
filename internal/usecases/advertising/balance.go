package advertising

import (
	"fmt"
	"math"
	"strconv"

	metadomain "github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/domain"
	"github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpilot/fb-campaign-api/internal/domain"
	"github.com/adpilot/fb-campaign-api/pkg/utils"
)

// Limite em dólares abaixo do qual o saldo restante do spend_cap gera aviso
const lowRemainingThreshold = 10

const activeAccountStatus = 1

// AccountData é o resumo de faturamento devolvido pela checagem de saldo.
// Valores monetários já convertidos de centavos para exibição; nulos quando a
// conta não informa o campo.
type AccountData struct {
	AccountStatus    int     `json:"account_status"`
	HasPaymentMethod bool    `json:"has_payment_method"`
	Balance          *string `json:"balance"`
	AmountSpent      *string `json:"amount_spent"`
	SpendCap         *string `json:"spend_cap"`
	MinDailyBudget   *string `json:"min_daily_budget"`
	FundingSources   int     `json:"funding_sources"`
}

type BalanceResponse struct {
	Success     bool        `json:"success"`
	CanRunAds   bool        `json:"canRunAds"`
	AccountData AccountData `json:"accountData"`
	Warnings    []string    `json:"warnings"`
	Errors      []string    `json:"errors"`
}

// CheckAccountBalance consulta os campos de faturamento da conta e aplica a
// política de elegibilidade. A política é só consultiva: a criação de campanha
// não depende dela.
func (s *Service) CheckAccountBalance(req *domain.CheckBalanceRequest) (*BalanceResponse, error) {
	overview, err := s.client.GetAdAccountOverview(req.AccountID, req.AccessToken)
	s.audit.Record(metaclient.OpAdAccountOverview.Name, req.AccountID, err)
	if err != nil {
		return nil, err
	}

	return evaluateBalance(overview), nil
}

// evaluateBalance classifica a conta: erros zeram canRunAds, avisos não.
func evaluateBalance(overview *metadomain.AdAccountOverview) *BalanceResponse {
	canRunAds := true
	warnings := []string{}
	errors := []string{}

	// 1 = ativa, 2 = desabilitada, 3 = pendência financeira, 7 = em revisão
	if overview.AccountStatus != activeAccountStatus {
		canRunAds = false
		errors = append(errors, fmt.Sprintf("Account status is not active (Status code: %d)", overview.AccountStatus))

		if overview.DisableReason != 0 {
			errors = append(errors, fmt.Sprintf("Reason: %d", overview.DisableReason))
		}
	}

	hasPaymentMethod := len(overview.FundingSourceDetails) > 0
	if !hasPaymentMethod {
		canRunAds = false
		errors = append(errors, "No payment method added to this ad account")
	}

	if overview.SpendCap != "" {
		spent := parseCents(overview.AmountSpent)
		spendCap := parseCents(overview.SpendCap)
		remaining := spendCap - spent

		if remaining <= 0 {
			canRunAds = false
			errors = append(errors, fmt.Sprintf("Account spending limit reached ($%.2f)", spendCap))
		} else if remaining < lowRemainingThreshold {
			warnings = append(warnings, fmt.Sprintf("Only $%.2f remaining in account spending limit", remaining))
		}
	}

	if overview.Balance != "" {
		balance := parseCents(overview.Balance)
		if balance < 0 {
			warnings = append(warnings, fmt.Sprintf("Negative balance: $%.2f owed", math.Abs(balance)))
		}
	}

	data := AccountData{
		AccountStatus:    overview.AccountStatus,
		HasPaymentMethod: hasPaymentMethod,
		Balance:          displayCents(overview.Balance),
		AmountSpent:      displayCents(overview.AmountSpent),
		SpendCap:         displayCents(overview.SpendCap),
		FundingSources:   len(overview.FundingSourceDetails),
	}
	if overview.MinDailyBudget != 0 {
		v := utils.CentsToDisplay(overview.MinDailyBudget)
		data.MinDailyBudget = &v
	}

	return &BalanceResponse{
		Success:     true,
		CanRunAds:   canRunAds,
		AccountData: data,
		Warnings:    warnings,
		Errors:      errors,
	}
}

// parseCents converte a string em centavos para dólares; vazio ou inválido
// vale zero
func parseCents(raw string) float64 {
	cents, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return cents / 100
}

func displayCents(raw string) *string {
	if raw == "" {
		return nil
	}
	cents, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	v := utils.CentsToDisplay(cents)
	return &v
}
