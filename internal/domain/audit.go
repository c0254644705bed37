package domain

import "time"

// OperationAudit registra o desfecho de uma chamada à Graph API para
// visibilidade operacional. Nenhum token é gravado, apenas identificadores.
type OperationAudit struct {
	ID           string    `json:"id"`
	Operation    string    `json:"operation"`
	TargetID     string    `json:"target_id"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
