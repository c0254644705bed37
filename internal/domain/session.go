package domain

// Page é uma página do Facebook gerenciada pelo usuário, copiada da resposta de
// /me/accounts. O access_token é escopado à página e é exigido em todas as
// operações de feed (publicar, listar e excluir posts).
type Page struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

// Session é o estado do usuário autenticado. Não existe espelho no servidor: a
// sessão inteira vive no cookie fbData, serializada como JSON em base64.
type Session struct {
	UserToken string `json:"userToken"`
	Pages     []Page `json:"pages"`
}
