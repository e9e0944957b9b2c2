package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// OAuth holds the Google client settings. AuthURL, TokenURL and UserinfoURL
// default to Google's endpoints and exist so tests can point the flow at a
// fake provider.
type OAuth struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	UserinfoURL  string
}

type Config struct {
	Addr          string
	DatabasePath  string
	SessionSecret string
	Google        OAuth
}

// Load reads configuration from the environment, overlaying a .env file
// when one is present next to the binary or in a parent directory.
func Load() *Config {
	loadDotenv()

	return &Config{
		Addr:          ":" + envOr("PORT", "5000"),
		DatabasePath:  envOr("DATABASE_PATH", "a2p_academy.db"),
		SessionSecret: sessionSecret(),
		Google: OAuth{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  envOr("GOOGLE_REDIRECT_URI", "http://localhost:5000/auth/google/callback"),
		},
	}
}

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			return
		}
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// sessionSecret returns SESSION_SECRET, or a fresh random secret so the
// service still runs without one. Sessions then die with the process.
func sessionSecret() string {
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		return v
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
