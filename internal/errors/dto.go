package errors

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Display string         `json:"message"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// NewErrorDetail flattens an error into the shape returned to callers
func NewErrorDetail(err error) ErrorDetail {
	return ErrorDetail{
		Display: DisplayMessage(err),
		Code:    CodeFromErr(err),
		Details: SafeDetails(err),
	}
}

// CodeFromErr returns the machine readable code of the first sentinel the error is marked with
func CodeFromErr(err error) string {
	for e := range statusCodeMap {
		if ie, ok := e.(*InternalError); ok && Is(err, ie) {
			return ie.Code
		}
	}
	return ErrCodeSystemError
}

// DisplayMessage returns the first non-empty hint attached to err
func DisplayMessage(err error) string {
	// GetAllHints is post-order traversal
	for _, hint := range errors.GetAllHints(err) {
		if hint = strings.TrimSpace(hint); hint != "" {
			return hint
		}
	}
	return "An unexpected error occurred"
}

// SafeDetails merges every reportable detail map attached to err
func SafeDetails(err error) map[string]any {
	details := make(map[string]any)

	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			jsonStr, ok := strings.CutPrefix(payload, "__json__:")
			if !ok || jsonStr == "" {
				continue
			}
			var jsonDetails map[string]any
			if err := json.Unmarshal([]byte(jsonStr), &jsonDetails); err == nil {
				for k, v := range jsonDetails {
					details[k] = v
				}
			}
		}
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// Is reports whether err is marked with or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
