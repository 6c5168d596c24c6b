package api

import (
	"net/http"

	"github.com/Venkatesh1410/smartbill/internal/common"
)

// Error is the typed failure raised for any non-2xx response. Message is the
// backend's {message} field when present, otherwise the fixed default of the
// call site that failed.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap maps authentication failures onto the shared sentinel so callers
// can match with errors.Is(err, common.ErrUnauthorized).
func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return common.ErrUnauthorized
	}
	return nil
}
