package cookie

import (
	"errors"
	"net/http"
	"time"

	"room-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
)

const (
	AccessTokenCookieName = "admin_session"
)

var ErrMissingSession = errors.New("admin session cookie missing")

// Codec encrypts and authenticates the admin session cookie.
type Codec struct {
	cfg   config.CookieConfig
	codec *securecookie.SecureCookie
}

func NewCodec(cfg config.CookieConfig) *Codec {
	return &Codec{
		cfg:   cfg,
		codec: securecookie.New([]byte(cfg.HashKey), []byte(cfg.BlockKey)),
	}
}

func (c *Codec) SetAccessToken(ctx *gin.Context, accessToken string, expiry time.Duration) error {
	encoded, err := c.codec.Encode(AccessTokenCookieName, accessToken)
	if err != nil {
		return err
	}

	ctx.SetSameSite(getSameSite(c.cfg.SameSite))
	ctx.SetCookie(
		AccessTokenCookieName,
		encoded,
		int(expiry.Seconds()),
		"/",
		c.cfg.Domain,
		c.cfg.Secure,
		true, // HttpOnly
	)
	return nil
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(getSameSite(c.cfg.SameSite))
	ctx.SetCookie(
		AccessTokenCookieName,
		"",
		-1,
		"/",
		c.cfg.Domain,
		c.cfg.Secure,
		true,
	)
}

func (c *Codec) GetAccessToken(ctx *gin.Context) (string, error) {
	raw, err := ctx.Cookie(AccessTokenCookieName)
	if err != nil || raw == "" {
		return "", ErrMissingSession
	}

	var token string
	if err := c.codec.Decode(AccessTokenCookieName, raw, &token); err != nil {
		return "", err
	}
	return token, nil
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
