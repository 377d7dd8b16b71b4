package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AnalyzeResponse is the envelope returned for a completed analysis.
type AnalyzeResponse struct {
	Success    bool `json:"success"`
	Data       any  `json:"data"`
	Analysis   any  `json:"analysis"`
	StatusCode int  `json:"status_code"`
}

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Details    string `json:"details,omitempty"`
}

// Success sends a completed analysis using the shared envelope format.
func Success(c echo.Context, data, analysis any) error {
	return c.JSON(http.StatusOK, AnalyzeResponse{
		Success:    true,
		Data:       data,
		Analysis:   analysis,
		StatusCode: http.StatusOK,
	})
}

// Error sends an error response using the shared envelope format.
// Details is optional context safe to show the caller.
func Error(c echo.Context, status int, message string, details ...string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	payload := ErrorResponse{
		Error:      message,
		StatusCode: status,
	}
	if len(details) > 0 {
		payload.Details = details[0]
	}
	return c.JSON(status, payload)
}
