package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/spec-scribe/internal/models"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "fiber error keeps its code",
			err:        fiber.NewError(fiber.StatusNotFound, "Cannot GET /nope"),
			wantStatus: http.StatusNotFound,
			wantDetail: "Cannot GET /nope",
		},
		{
			name:       "validation error",
			err:        models.NewValidationError("%s is required", "job_title"),
			wantStatus: http.StatusBadRequest,
			wantDetail: "job_title is required",
		},
		{
			name:       "wrapped extraction error",
			err:        errors.Wrap(&models.ExtractionError{FileName: "cv.png", Err: errors.New("unsupported file type: image/png")}, "upload"),
			wantStatus: http.StatusBadRequest,
			wantDetail: "upload: unsupported file type: image/png",
		},
		{
			name:       "generation error",
			err:        &models.GenerationError{Err: errors.New("quota exceeded")},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Error generating content: quota exceeded",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var got models.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantDetail, got.Detail)
		})
	}
}
