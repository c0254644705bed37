package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// GraphError é o erro retornado quando a Graph API responde com status não-2xx.
// Message é a mensagem extraída de error.message quando presente; Raw carrega o
// corpo bruto da resposta para o campo details do envelope da API.
type GraphError struct {
	StatusCode int
	Message    string
	Raw        []byte
}

func (e *GraphError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Graph API respondeu com status %d", e.StatusCode)
}

// Details devolve o corpo bruto decodificado para inclusão na resposta da API
func (e *GraphError) Details() any {
	if len(e.Raw) == 0 {
		return nil
	}

	var details any
	if err := jsonUnmarshal(e.Raw, &details); err != nil {
		return string(e.Raw)
	}
	return details
}
