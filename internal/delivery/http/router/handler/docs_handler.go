package handler

import (
	"net/http"

	"resumebuilder/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// APIDocs serves a machine-readable index of the API surface.
func APIDocs(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"service": "resumebuilder",
		"endpoints": []map[string]string{
			{"method": "POST", "path": "/api/auth/register", "description": "Register a local account"},
			{"method": "POST", "path": "/api/auth/login", "description": "Log in with email and password"},
			{"method": "POST", "path": "/api/auth/oauth/callback", "description": "Complete an external provider login"},
			{"method": "GET", "path": "/api/auth/me", "description": "Current account profile"},
			{"method": "POST", "path": "/api/resumes", "description": "Create a resume"},
			{"method": "GET", "path": "/api/resumes", "description": "List own resumes"},
			{"method": "GET", "path": "/api/resumes/:id", "description": "Fetch a resume by id"},
			{"method": "PUT", "path": "/api/resumes/:id", "description": "Update an owned resume"},
			{"method": "DELETE", "path": "/api/resumes/:id", "description": "Delete an owned resume"},
			{"method": "GET", "path": "/api/resumes/:id/share-qr", "description": "QR code for the resume share link"},
			{"method": "GET", "path": "/api/pdf/resume/:id", "description": "Download an owned resume as PDF"},
			{"method": "POST", "path": "/api/email/send-resume", "description": "Email an owned resume as PDF"},
			{"method": "GET", "path": "/api/admin/users", "description": "List all accounts (admin)"},
		},
	}, "API documentation")
}
