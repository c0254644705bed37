package authenticating

import "errors"

// Erros específicos para o contexto de autenticação
var (
	ErrTokenExchange      = errors.New("error exchanging code for access token")
	ErrFetchPages         = errors.New("error fetching user pages")
	ErrNotDevelopment     = errors.New("endpoint only available in development mode")
	ErrSystemTokenMissing = errors.New("system user token not configured")
)
