// Package session codifica a sessão do usuário no cookie fbData. O valor padrão
// é JSON em base64, sem assinatura, legível pelo frontend. Quando um segredo de
// assinatura é configurado, o valor passa a ser um JWT HS256: o conteúdo deixa
// de ser forjável, mas o formato do cookie muda.
package session

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/adpilot/fb-campaign-api/internal/config"
	"github.com/adpilot/fb-campaign-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Codec struct {
	cfg config.Session
}

func NewCodec(cfg config.Session) *Codec {
	return &Codec{cfg: cfg}
}

type signedClaims struct {
	UserToken string        `json:"userToken"`
	Pages     []domain.Page `json:"pages"`
	jwt.RegisteredClaims
}

// Encode serializa a sessão para o valor do cookie
func (c *Codec) Encode(s *domain.Session) (string, error) {
	if c.cfg.SigningSecret != "" {
		claims := signedClaims{
			UserToken: s.UserToken,
			Pages:     s.Pages,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(c.cfg.MaxAgeSeconds) * time.Second)),
			},
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		return token.SignedString([]byte(c.cfg.SigningSecret))
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(payload), nil
}

// Decode desserializa o valor do cookie. Qualquer valor malformado (base64
// inválido, JSON inválido, assinatura inválida) é tratado como sessão ausente,
// nunca como erro fatal.
func (c *Codec) Decode(value string) (*domain.Session, bool) {
	if value == "" {
		return nil, false
	}

	if c.cfg.SigningSecret != "" {
		claims := &signedClaims{}
		token, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (any, error) {
			return []byte(c.cfg.SigningSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return nil, false
		}

		return &domain.Session{UserToken: claims.UserToken, Pages: claims.Pages}, true
	}

	payload, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, false
	}

	session := &domain.Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, false
	}

	if session.UserToken == "" {
		return nil, false
	}

	return session, true
}

// Cookie monta o cookie de sessão com os atributos fixos esperados pelo frontend
func (c *Codec) Cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     c.cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   c.cfg.MaxAgeSeconds,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie monta o cookie de logout: mesmo nome, valor vazio e expiração
// no passado. O logout é sempre a sobrescrita do cookie, nunca uma exclusão em
// armazenamento.
func (c *Codec) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	}
}
