package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/translation-review/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid body", inner)

	assert.Equal(t, "invalid body: parse failed", err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("invalid rating")

	wrapped := fmt.Errorf("rate translation: %w", original)
	doubleWrapped := fmt.Errorf("session: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	assert.Equal(t, "invalid rating", ve.Message)
}

func TestGlobalErrorHandler_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperr.NewValidation("bad"), want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("get: %w", apperr.NewNotFound("sample", "x")), want: http.StatusNotFound},
		{name: "conflict", err: apperr.NewConflict("save in progress", nil), want: http.StatusConflict},
		{name: "unauthorized", err: apperr.NewUnauthorized("login required"), want: http.StatusUnauthorized},
		{name: "upstream", err: apperr.NewUpstream("remote save failed", errors.New("boom")), want: http.StatusBadGateway},
		{name: "echo", err: echo.NewHTTPError(http.StatusTeapot, "tea"), want: http.StatusTeapot},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			apperr.GlobalErrorHandler()(tt.err, c)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
