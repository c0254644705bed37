package authenticating

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpilot/fb-campaign-api/internal/config"
	"github.com/adpilot/fb-campaign-api/internal/domain"
)

// Escopos solicitados no diálogo OAuth. Conjunto fixo: páginas e anúncios.
var loginScopes = []string{
	"pages_show_list",
	"pages_read_engagement",
	"pages_manage_posts",
	"pages_manage_engagement",
	"ads_management",
	"ads_read",
	"business_management",
}

type Authenticator interface {
	LoginURL() string
	HandleCallback(code string) (*domain.Session, error)
	DevToken() (string, error)
}

type Service struct {
	cfg    *config.Config
	client metaclient.Client
}

func NewService(cfg *config.Config, client metaclient.Client) Authenticator {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// LoginURL monta a URL do diálogo OAuth do Facebook com o conjunto fixo de escopos
func (s *Service) LoginURL() string {
	return fmt.Sprintf(
		"%s/%s/dialog/oauth?client_id=%s&redirect_uri=%s&scope=%s&response_type=code",
		s.cfg.Meta.OAuthDialogURL,
		s.cfg.Meta.Version,
		url.QueryEscape(s.cfg.Meta.AppID),
		url.QueryEscape(s.cfg.Meta.RedirectURI),
		strings.Join(loginScopes, ","),
	)
}

// HandleCallback troca o code por um token de usuário, busca as páginas
// gerenciadas e monta a sessão. A sessão resultante vive apenas no cookie.
func (s *Service) HandleCallback(code string) (*domain.Session, error) {
	userToken, err := s.client.ExchangeCodeForToken(code)
	if err != nil {
		logrus.WithError(err).Error("Erro ao trocar code por token de usuário")
		return nil, errors.Wrap(ErrTokenExchange, err.Error())
	}

	pages, err := s.client.GetUserPages(userToken)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar páginas do usuário")
		return nil, errors.Wrap(ErrFetchPages, err.Error())
	}

	session := &domain.Session{
		UserToken: userToken,
		Pages:     make([]domain.Page, 0, len(pages)),
	}

	for _, page := range pages {
		session.Pages = append(session.Pages, domain.Page{
			ID:          page.ID,
			Name:        page.Name,
			AccessToken: page.AccessToken,
		})
	}

	logrus.WithField("pages", len(session.Pages)).Info("Sessão criada com sucesso")

	return session, nil
}

// DevToken devolve o token de system user pré-configurado, disponível apenas em
// modo de desenvolvimento
func (s *Service) DevToken() (string, error) {
	if !s.cfg.App.IsDevelopment() {
		return "", ErrNotDevelopment
	}

	if s.cfg.Meta.SystemUserToken == "" {
		return "", ErrSystemTokenMissing
	}

	return s.cfg.Meta.SystemUserToken, nil
}
