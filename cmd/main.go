package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/rjharshittiwari/A2P-website/internal/api"
	"github.com/rjharshittiwari/A2P-website/internal/auth"
	"github.com/rjharshittiwari/A2P-website/internal/config"
	"github.com/rjharshittiwari/A2P-website/internal/repository"
	"github.com/rjharshittiwari/A2P-website/internal/service"
	"github.com/rjharshittiwari/A2P-website/migrations"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func connectDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Str("database", cfg.DatabasePath).Msg("Failed to open database")
	}
	defer db.Close()

	if err := migrations.AutoMigrateAll(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	userRepo := repository.NewUserRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)

	registrationService := service.NewRegistrationService(*registrationRepo)
	contactService := service.NewContactService(*inquiryRepo)
	healthService := service.NewHealthService(*registrationRepo)
	authFlow := auth.NewService(userRepo, cfg.Google)

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	}

	registrationHandler := api.NewRegistrationHandler(*registrationService)
	contactHandler := api.NewContactHandler(*contactService)
	healthHandler := api.NewHealthHandler(*healthService)
	authHandler := api.NewAuthHandler(authFlow, store)

	e := echo.New()
	e.HTTPErrorHandler = api.HTTPErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Routes
	e.GET("/auth/google", authHandler.GoogleLogin)
	e.GET("/auth/google/callback", authHandler.GoogleCallback)
	e.GET("/auth/logout", authHandler.Logout)
	e.GET("/auth/user", authHandler.CurrentUser)

	e.POST("/api/register", registrationHandler.SubmitRegistration)
	e.GET("/api/registrations", registrationHandler.ListRegistrations)
	e.POST("/api/contact", contactHandler.SubmitContact)
	e.GET("/api/contact/:id", contactHandler.GetInquiry)
	e.GET("/api/inquiries", contactHandler.ListInquiries)
	e.GET("/api/health", healthHandler.Health)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(302, "/index.html")
	})

	logger.Info().Str("addr", cfg.Addr).Str("database", cfg.DatabasePath).Msg("Starting A2P Academy backend")

	// Start server
	e.Logger.Fatal(e.Start(cfg.Addr))
}
