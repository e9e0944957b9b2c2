package api

import (
	"errors"

	"github.com/rjharshittiwari/A2P-website/internal/auth"
	"github.com/rjharshittiwari/A2P-website/internal/entity"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "a2p_session"

	sessionKeyState   = "state"
	sessionKeyEmail   = "email"
	sessionKeyName    = "name"
	sessionKeyPicture = "picture"
)

// AuthHandler exposes the Google login flow over cookie sessions. The
// session store is built in main from config and passed in; there is no
// package-level secret.
type AuthHandler struct {
	flow  *auth.Service
	store *sessions.CookieStore
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(flow *auth.Service, store *sessions.CookieStore) *AuthHandler {
	return &AuthHandler{flow: flow, store: store}
}

// GoogleLogin starts the OAuth handshake --> GET /auth/google
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	state := uuid.NewString()

	url, err := h.flow.AuthCodeURL(state)
	if err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			return c.JSON(500, map[string]string{
				"error": "Google OAuth is not configured. Set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET.",
			})
		}
		logger.Error().Err(err).Msg("Building authorization URL failed")
		return c.JSON(500, map[string]string{"error": "OAuth error"})
	}

	sess, _ := h.store.Get(c.Request(), sessionName)
	sess.Values[sessionKeyState] = state
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logger.Error().Err(err).Msg("Saving session failed")
		return c.JSON(500, map[string]string{"error": "OAuth error"})
	}

	return c.Redirect(302, url)
}

// GoogleCallback completes the OAuth handshake --> GET /auth/google/callback
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	sess, _ := h.store.Get(c.Request(), sessionName)

	want, _ := sess.Values[sessionKeyState].(string)
	if want == "" || c.QueryParam("state") != want {
		logger.Error().Msg("OAuth callback state mismatch")
		return c.JSON(500, map[string]string{"error": "Callback error"})
	}

	user, err := h.flow.CompleteLogin(c.Request().Context(), c.QueryParam("code"))
	if err != nil {
		logger.Error().Err(err).Msg("OAuth callback failed")
		return c.JSON(500, map[string]string{"error": "Callback error"})
	}

	delete(sess.Values, sessionKeyState)
	sess.Values[sessionKeyEmail] = user.Email
	sess.Values[sessionKeyName] = user.Name
	sess.Values[sessionKeyPicture] = user.Picture
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logger.Error().Err(err).Msg("Saving session failed")
		return c.JSON(500, map[string]string{"error": "Callback error"})
	}

	return c.Redirect(302, "/index.html")
}

// Logout clears the whole session --> GET /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, _ := h.store.Get(c.Request(), sessionName)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logger.Error().Err(err).Msg("Clearing session failed")
	}

	return c.JSON(200, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

// CurrentUser returns the session profile, or a null user when nobody is
// logged in. Always 200; the logged-out state is data, not an error.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	sess, _ := h.store.Get(c.Request(), sessionName)

	email, _ := sess.Values[sessionKeyEmail].(string)
	if email == "" {
		return c.JSON(200, map[string]interface{}{
			"user":   nil,
			"status": "not_logged_in",
		})
	}

	name, _ := sess.Values[sessionKeyName].(string)
	picture, _ := sess.Values[sessionKeyPicture].(string)
	return c.JSON(200, map[string]interface{}{
		"user":   entity.SessionUser{Email: email, Name: name, Picture: picture},
		"status": "logged_in",
	})
}
