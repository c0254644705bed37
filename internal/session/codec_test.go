package session

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adpilot/fb-campaign-api/internal/config"
	"github.com/adpilot/fb-campaign-api/internal/domain"
)

func testConfig() config.Session {
	return config.Session{
		CookieName:    "fbData",
		MaxAgeSeconds: 86400,
	}
}

func testSession() *domain.Session {
	return &domain.Session{
		UserToken: "user_token",
		Pages: []domain.Page{
			{ID: "page_1", Name: "Minha Página", AccessToken: "page_token"},
		},
	}
}

func TestEncodeDecode(t *testing.T) {
	codec := NewCodec(testConfig())

	value, err := codec.Encode(testSession())
	assert.NoError(t, err)

	// Sem segredo de assinatura o valor é base64 puro, decodificável por fora
	_, err = base64.StdEncoding.DecodeString(value)
	assert.NoError(t, err)

	decoded, ok := codec.Decode(value)
	assert.True(t, ok)
	assert.Equal(t, "user_token", decoded.UserToken)
	assert.Len(t, decoded.Pages, 1)
	assert.Equal(t, "page_token", decoded.Pages[0].AccessToken)
}

func TestDecode_ValoresMalformados(t *testing.T) {
	codec := NewCodec(testConfig())

	tests := []struct {
		name  string
		value string
	}{
		{"Valor vazio", ""},
		{"Base64 inválido", "%%%não-é-base64%%%"},
		{"JSON inválido", base64.StdEncoding.EncodeToString([]byte("não é json"))},
		{"Sessão sem token", base64.StdEncoding.EncodeToString([]byte(`{"pages":[]}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, ok := codec.Decode(tt.value)
			assert.False(t, ok)
			assert.Nil(t, decoded)
		})
	}
}

func TestEncodeDecode_ComAssinatura(t *testing.T) {
	cfg := testConfig()
	cfg.SigningSecret = "segredo-de-teste"
	codec := NewCodec(cfg)

	value, err := codec.Encode(testSession())
	assert.NoError(t, err)

	decoded, ok := codec.Decode(value)
	assert.True(t, ok)
	assert.Equal(t, "user_token", decoded.UserToken)

	// Valor adulterado é sessão ausente
	_, ok = codec.Decode(value + "x")
	assert.False(t, ok)

	// Valor assinado com outro segredo é sessão ausente
	other := NewCodec(config.Session{CookieName: "fbData", MaxAgeSeconds: 86400, SigningSecret: "outro-segredo"})
	_, ok = other.Decode(value)
	assert.False(t, ok)
}

func TestCookie(t *testing.T) {
	codec := NewCodec(testConfig())

	cookie := codec.Cookie("valor")

	assert.Equal(t, "fbData", cookie.Name)
	assert.Equal(t, "valor", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)
}

func TestExpiredCookie(t *testing.T) {
	codec := NewCodec(testConfig())

	cookie := codec.ExpiredCookie()

	assert.Equal(t, "fbData", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.Expires.Before(time.Now()))
}
