package middleware

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/trailforge/backend/api/transport"
	"github.com/trailforge/backend/pkg/token"
)

// issueExpired signs a structurally valid token whose expiry is in the past.
func issueExpired(secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func authedRequest(header string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/profile")
	if header != "" {
		ctx.Request.Header.Set("Authorization", header)
	}
	return ctx
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) transport.Envelope {
	t.Helper()
	var env transport.Envelope
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &env))
	return env
}

func TestAuthResolvesIssuedIdentity(t *testing.T) {
	tokens := token.NewManager("secret", 7*24*time.Hour)
	signed, err := tokens.Issue(42)
	require.NoError(t, err)

	var gotID int
	var called bool
	handler := Auth(tokens, nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
		gotID, _ = UserID(ctx)
	})

	ctx := authedRequest("Bearer " + signed)
	handler(ctx)

	assert.True(t, called)
	assert.Equal(t, 42, gotID)
}

func TestAuthMissingHeader(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)

	var called bool
	handler := Auth(tokens, nil)(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := authedRequest("")
	handler(ctx)

	assert.False(t, called, "handler must not run without credentials")
	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())

	env := decodeEnvelope(t, ctx)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Missing or invalid authorization token", env.Error)
	assert.Nil(t, env.Data)
}

func TestAuthWrongScheme(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	signed, err := tokens.Issue(1)
	require.NoError(t, err)

	var called bool
	handler := Auth(tokens, nil)(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := authedRequest("Basic " + signed)
	handler(ctx)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
	assert.Equal(t, "Missing or invalid authorization token", decodeEnvelope(t, ctx).Error)
}

func TestAuthExpiredToken(t *testing.T) {
	expired, err := issueExpired("secret")
	require.NoError(t, err)

	tokens := token.NewManager("secret", time.Hour)
	var called bool
	handler := Auth(tokens, nil)(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := authedRequest("Bearer " + expired)
	handler(ctx)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
	assert.Equal(t, "Invalid token", decodeEnvelope(t, ctx).Error)
}

func TestAuthTamperedToken(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	other := token.NewManager("other-secret", time.Hour)
	signed, err := other.Issue(42)
	require.NoError(t, err)

	var called bool
	handler := Auth(tokens, nil)(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := authedRequest("Bearer " + signed)
	handler(ctx)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
	assert.Equal(t, "Invalid token", decodeEnvelope(t, ctx).Error)
}
