package metadomain

import "encoding/json"

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// Campaign é uma campanha listada de act_<id>/campaigns. Orçamentos vêm como
// strings em centavos; insights são repassados sem remodelagem.
type Campaign struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Objective      string          `json:"objective,omitempty"`
	Status         string          `json:"status,omitempty"`
	CreatedTime    string          `json:"created_time,omitempty"`
	UpdatedTime    string          `json:"updated_time,omitempty"`
	DailyBudget    string          `json:"daily_budget,omitempty"`
	LifetimeBudget string          `json:"lifetime_budget,omitempty"`
	Insights       json.RawMessage `json:"insights,omitempty"`
}

type CampaignList struct {
	Data   []Campaign `json:"data"`
	Paging Paging     `json:"paging"`
}

// CreateResult é a resposta das criações da Marketing API: apenas o id da
// entidade materializada pelo Facebook.
type CreateResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success,omitempty"`
}
