package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rjharshittiwari/A2P-website/internal/config"
	"github.com/rjharshittiwari/A2P-website/internal/entity"
	"github.com/rjharshittiwari/A2P-website/internal/repository"
	"github.com/rjharshittiwari/A2P-website/internal/service"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const defaultUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// ErrNotConfigured means the Google client ID or secret is missing.
var ErrNotConfigured = errors.New("google oauth client is not configured")

// UpstreamError wraps a failure talking to the identity provider.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "identity provider error: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Service drives the three-legged OAuth handshake against Google:
// authorization URL, code exchange, profile fetch, user upsert.
type Service struct {
	users       *repository.UserRepository
	oauth       *oauth2.Config
	userinfoURL string
}

// NewService creates a new instance of Service.
func NewService(users *repository.UserRepository, cfg config.OAuth) *Service {
	endpoint := google.Endpoint
	if cfg.AuthURL != "" && cfg.TokenURL != "" {
		endpoint = oauth2.Endpoint{AuthURL: cfg.AuthURL, TokenURL: cfg.TokenURL}
	}

	userinfoURL := cfg.UserinfoURL
	if userinfoURL == "" {
		userinfoURL = defaultUserinfoURL
	}

	return &Service{
		users:       users,
		userinfoURL: userinfoURL,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: endpoint,
		},
	}
}

func (s *Service) configured() bool {
	return s.oauth.ClientID != "" && s.oauth.ClientSecret != ""
}

// AuthCodeURL builds the provider consent URL carrying the CSRF state token.
func (s *Service) AuthCodeURL(state string) (string, error) {
	if !s.configured() {
		return "", ErrNotConfigured
	}
	return s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	), nil
}

type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// CompleteLogin exchanges the authorization code, fetches the user's Google
// profile, upserts the user row and returns the profile to store in the
// session.
func (s *Service) CompleteLogin(ctx context.Context, code string) (*entity.SessionUser, error) {
	if !s.configured() {
		return nil, ErrNotConfigured
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		logger.Error().Err(err).Msg("OAuth code exchange failed")
		return nil, &UpstreamError{Err: err}
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		logger.Error().Err(err).Msg("Fetching Google profile failed")
		return nil, &UpstreamError{Err: err}
	}

	user := entity.User{
		Email:          profile.Email,
		Name:           profile.Name,
		GoogleID:       profile.ID,
		ProfilePicture: profile.Picture,
	}
	if _, err := s.users.UpsertUser(ctx, &user); err != nil {
		logger.Error().Err(err).Msg("Upserting user failed")
		return nil, &service.StorageError{Err: err}
	}

	return &entity.SessionUser{
		Email:   profile.Email,
		Name:    profile.Name,
		Picture: profile.Picture,
	}, nil
}

func (s *Service) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	resp, err := s.oauth.Client(ctx, token).Get(s.userinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}

	profile := googleProfile{}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
