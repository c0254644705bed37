package domain

// Requisições da Marketing API. As entidades seguem uma cadeia linear estrita:
// Campaign → AdSet (campaignId) → Creative (pageId) → Ad (adsetId + creativeId).
// Cada passo é uma chamada independente; falha parcial deixa as entidades já
// criadas vivas no Facebook, sem rollback automático.

type AdAccountsRequest struct {
	AccessToken string `json:"accessToken"`
}

type CheckBalanceRequest struct {
	AccountID   string `json:"accountId"`
	AccessToken string `json:"accessToken"`
}

type CreateCampaignRequest struct {
	AccountID           string   `json:"accountId"`
	AccessToken         string   `json:"accessToken"`
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status,omitempty"`
	SpecialAdCategories []string `json:"special_ad_categories,omitempty"`
}

type UpdateCampaignRequest struct {
	AccountID   string `json:"accountId"`
	AccessToken string `json:"accessToken"`
	CampaignID  string `json:"campaignId"`
	Name        string `json:"name,omitempty"`
	Status      string `json:"status,omitempty"`
	Objective   string `json:"objective,omitempty"`
}

type DeleteCampaignRequest struct {
	AccountID   string `json:"accountId"`
	AccessToken string `json:"accessToken"`
	CampaignID  string `json:"campaignId"`
}

type ListCampaignsRequest struct {
	AccountID   string `json:"accountId"`
	AccessToken string `json:"accessToken"`
	Limit       int    `json:"limit,omitempty"`
}

type GeoLocations struct {
	Countries []string            `json:"countries,omitempty"`
	Cities    []map[string]string `json:"cities,omitempty"`
	Regions   []map[string]string `json:"regions,omitempty"`
}

type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Targeting é serializado como string JSON no parâmetro targeting, convenção da
// Graph API para campos com valor aninhado.
type Targeting struct {
	GeoLocations *GeoLocations `json:"geo_locations,omitempty"`
	AgeMin       int           `json:"age_min,omitempty"`
	AgeMax       int           `json:"age_max,omitempty"`
	Genders      []int         `json:"genders,omitempty"`
	Interests    []Interest    `json:"interests,omitempty"`
}

// CreateAdSetRequest cria um conjunto de anúncios. Orçamentos e lance chegam em
// unidades monetárias e são convertidos para centavos antes do envio; pelo menos
// um entre dailyBudget e lifetimeBudget é obrigatório.
type CreateAdSetRequest struct {
	AccountID        string     `json:"accountId"`
	AccessToken      string     `json:"accessToken"`
	CampaignID       string     `json:"campaignId"`
	Name             string     `json:"name"`
	DailyBudget      *float64   `json:"dailyBudget,omitempty"`
	LifetimeBudget   *float64   `json:"lifetimeBudget,omitempty"`
	BillingEvent     string     `json:"billingEvent"`
	OptimizationGoal string     `json:"optimizationGoal"`
	BidAmount        *float64   `json:"bidAmount,omitempty"`
	StartTime        string     `json:"startTime,omitempty"`
	EndTime          string     `json:"endTime,omitempty"`
	Targeting        *Targeting `json:"targeting,omitempty"`
	Status           string     `json:"status,omitempty"`
}

type CallToActionValue struct {
	Link string `json:"link,omitempty"`
}

type CallToAction struct {
	Type  string             `json:"type"`
	Value *CallToActionValue `json:"value,omitempty"`
}

type CreateCreativeRequest struct {
	AccountID    string        `json:"accountId"`
	AccessToken  string        `json:"accessToken"`
	Name         string        `json:"name"`
	PageID       string        `json:"pageId"`
	ImageURL     string        `json:"imageUrl,omitempty"`
	ImageHash    string        `json:"imageHash,omitempty"`
	VideoID      string        `json:"videoId,omitempty"`
	Title        string        `json:"title,omitempty"`
	Body         string        `json:"body,omitempty"`
	LinkURL      string        `json:"linkUrl,omitempty"`
	CallToAction *CallToAction `json:"callToAction,omitempty"`
}

type CreateAdRequest struct {
	AccountID   string `json:"accountId"`
	AccessToken string `json:"accessToken"`
	Name        string `json:"name"`
	AdsetID     string `json:"adsetId"`
	CreativeID  string `json:"creativeId"`
	Status      string `json:"status,omitempty"`
}
