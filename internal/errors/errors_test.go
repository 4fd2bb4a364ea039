package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", NewError("missing").Mark(ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"already exists", NewError("busy").Mark(ErrAlreadyExists), http.StatusConflict, ErrCodeAlreadyExists},
		{"validation", NewError("bad").Mark(ErrValidation), http.StatusBadRequest, ErrCodeValidation},
		{"extension window", NewError("window").Mark(ErrInvalidExtensionWindow), http.StatusBadRequest, ErrCodeInvalidExtensionWindow},
		{"http client", WithError(errors.New("dial")).Mark(ErrHTTPClient), http.StatusBadGateway, ErrCodeHTTPClient},
		{"unmarked", errors.New("boom"), http.StatusInternalServerError, ErrCodeSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, HTTPStatusFromErr(tt.err))
			assert.Equal(t, tt.wantCode, CodeFromErr(tt.err))
		})
	}
}

func TestNewErrorDetail(t *testing.T) {
	err := NewError("drop input is invalid").
		WithHint("Please correct the drop details").
		WithReportableDetails(map[string]any{"endMeterReading": "required"}).
		Mark(ErrValidation)

	detail := NewErrorDetail(err)
	assert.Equal(t, "Please correct the drop details", detail.Display)
	assert.Equal(t, ErrCodeValidation, detail.Code)
	assert.Equal(t, map[string]any{"endMeterReading": "required"}, detail.Details)
}

func TestNewErrorDetail_NoHint(t *testing.T) {
	detail := NewErrorDetail(errors.New("boom"))
	assert.Equal(t, "An unexpected error occurred", detail.Display)
	assert.Equal(t, ErrCodeSystemError, detail.Code)
	assert.Nil(t, detail.Details)
}
