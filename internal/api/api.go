package api

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/rjharshittiwari/A2P-website/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const apiVersion = "1.0"

type RegistrationHandler struct {
	registrationService service.RegistrationService
}

// NewRegistrationHandler creates a new instance of RegistrationHandler.
func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// SubmitRegistration handles a student registration --> POST /api/register
func (h *RegistrationHandler) SubmitRegistration(c echo.Context) error {
	// Bind is a no-op on a bodyless request, so catch that here.
	if c.Request().ContentLength == 0 {
		return c.JSON(400, map[string]string{"status": "error", "message": "Request body is empty"})
	}

	in := service.RegistrationInput{}
	if err := c.Bind(&in); err != nil {
		return c.JSON(400, map[string]string{"status": "error", "message": "Request body is empty"})
	}

	created, err := h.registrationService.SubmitRegistration(c.Request().Context(), in)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(201, map[string]interface{}{
		"status":          "success",
		"message":         "Registration submitted successfully!",
		"registration_id": created.ID,
		"data": map[string]interface{}{
			"id":        created.ID,
			"full_name": created.FullName,
			"email":     created.Email,
			"course":    created.Course,
		},
	})
}

// ListRegistrations returns all registrations, newest first --> GET /api/registrations
func (h *RegistrationHandler) ListRegistrations(c echo.Context) error {
	registrations, err := h.registrationService.ListRegistrations(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(200, map[string]interface{}{
		"status":        "success",
		"count":         len(registrations),
		"registrations": registrations,
	})
}

type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new instance of ContactHandler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SubmitContact handles a contact form submission --> POST /api/contact
func (h *ContactHandler) SubmitContact(c echo.Context) error {
	// Bind is a no-op on a bodyless request, so catch that here.
	if c.Request().ContentLength == 0 {
		return c.JSON(400, map[string]string{"status": "error", "message": "Request body is empty"})
	}

	in := service.ContactInput{}
	if err := c.Bind(&in); err != nil {
		return c.JSON(400, map[string]string{"status": "error", "message": "Request body is empty"})
	}

	created, err := h.contactService.SubmitInquiry(c.Request().Context(), in)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(201, map[string]interface{}{
		"status":     "success",
		"message":    "Thank you for contacting us. We will get back to you soon!",
		"inquiry_id": created.ID,
		"data": map[string]interface{}{
			"id":    created.ID,
			"name":  created.Name,
			"email": created.Email,
		},
	})
}

// GetInquiry returns one inquiry by ID --> GET /api/contact/:id
func (h *ContactHandler) GetInquiry(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"status": "error", "message": "Invalid inquiry ID"})
	}

	inquiry, err := h.contactService.GetInquiry(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(404, map[string]string{"status": "error", "message": "Inquiry not found"})
		}
		return writeServiceError(c, err)
	}

	return c.JSON(200, map[string]interface{}{
		"status":  "success",
		"inquiry": inquiry,
	})
}

// ListInquiries returns all contact inquiries, newest first --> GET /api/inquiries
func (h *ContactHandler) ListInquiries(c echo.Context) error {
	inquiries, err := h.contactService.ListInquiries(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(200, map[string]interface{}{
		"status":    "success",
		"count":     len(inquiries),
		"inquiries": inquiries,
	})
}

type HealthHandler struct {
	healthService service.HealthService
}

// NewHealthHandler creates a new instance of HealthHandler.
func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Health reports liveness and probes storage --> GET /api/health
func (h *HealthHandler) Health(c echo.Context) error {
	if err := h.healthService.CheckStorage(c.Request().Context()); err != nil {
		return c.JSON(503, map[string]interface{}{
			"status":   "Backend running but database error",
			"database": "error",
		})
	}

	return c.JSON(200, map[string]interface{}{
		"status":    "Backend is running",
		"database":  "connected",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   apiVersion,
	})
}
