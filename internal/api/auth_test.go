package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rjharshittiwari/A2P-website/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider stands in for Google: it issues a token for any code and
// serves a canned userinfo profile.
type fakeProvider struct {
	server *httptest.Server
	name   string
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{name: "Alice"}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-access-token","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"google-1","email":"alice@example.com","name":%q,"picture":"http://pics/alice.png"}`, p.name)
	})

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakeProvider) oauthConfig() config.OAuth {
	return config.OAuth{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:5000/auth/google/callback",
		AuthURL:      p.server.URL + "/auth",
		TokenURL:     p.server.URL + "/token",
		UserinfoURL:  p.server.URL + "/userinfo",
	}
}

// testClient carries cookies across requests the way a browser would.
type testClient struct {
	e       *echo.Echo
	cookies []*http.Cookie
}

func (c *testClient) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		replaced := false
		for i, old := range c.cookies {
			if old.Name == cookie.Name {
				c.cookies[i] = cookie
				replaced = true
				break
			}
		}
		if !replaced {
			c.cookies = append(c.cookies, cookie)
		}
	}
	return rec
}

// login walks the full handshake and returns the callback response.
func (c *testClient) login(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()

	rec := c.get("/auth/google")
	require.Equal(t, 302, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)

	return c.get("/auth/google/callback?code=test-code&state=" + state)
}

func TestGoogleLoginRedirect(t *testing.T) {
	provider := newFakeProvider(t)
	e, _ := newTestApp(t, provider.oauthConfig())
	client := &testClient{e: e}

	rec := client.get("/auth/google")
	require.Equal(t, 302, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Contains(t, location.String(), provider.server.URL+"/auth")
	assert.NotEmpty(t, location.Query().Get("state"))
	assert.Contains(t, location.Query().Get("scope"), "userinfo.email")
}

func TestGoogleLoginNotConfigured(t *testing.T) {
	e, _ := newTestApp(t, config.OAuth{})
	client := &testClient{e: e}

	rec := client.get("/auth/google")
	require.Equal(t, 500, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "not configured")
}

func TestOAuthLoginLogoutCycle(t *testing.T) {
	provider := newFakeProvider(t)
	e, db := newTestApp(t, provider.oauthConfig())
	client := &testClient{e: e}

	rec := client.login(t)
	require.Equal(t, 302, rec.Code)
	assert.Equal(t, "/index.html", rec.Header().Get("Location"))

	rec = client.get("/auth/user")
	require.Equal(t, 200, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "logged_in", body["status"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "Alice", user["name"])

	// A second login for the same Google account updates the stored row
	// instead of creating a duplicate.
	provider.name = "Alice Renamed"
	rec = client.login(t)
	require.Equal(t, 302, rec.Code)

	var count int
	var name string
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	require.NoError(t, db.QueryRow(`SELECT name FROM users WHERE google_id = 'google-1'`).Scan(&name))
	assert.Equal(t, 1, count)
	assert.Equal(t, "Alice Renamed", name)

	rec = client.get("/auth/logout")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])

	rec = client.get("/auth/user")
	require.Equal(t, 200, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "not_logged_in", body["status"])
	assert.Nil(t, body["user"])
}

func TestCallbackStateMismatch(t *testing.T) {
	provider := newFakeProvider(t)
	e, _ := newTestApp(t, provider.oauthConfig())
	client := &testClient{e: e}

	rec := client.get("/auth/google")
	require.Equal(t, 302, rec.Code)

	rec = client.get("/auth/google/callback?code=test-code&state=forged-state")
	require.Equal(t, 500, rec.Code)
}

func TestCurrentUserWithoutSession(t *testing.T) {
	e, _ := newTestApp(t, config.OAuth{})
	client := &testClient{e: e}

	rec := client.get("/auth/user")
	require.Equal(t, 200, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "not_logged_in", body["status"])
	assert.Nil(t, body["user"])
}
