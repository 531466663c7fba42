package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"geldplan/internal/core"
)

// Request bodies are small; anything bigger is abuse.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads the request body into dst. The body size is capped and
// trailing garbage is rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// requireMethod writes a 405 and returns false when the method mismatches.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// periodParam reads the period query parameter, defaulting to the current
// month.
func periodParam(r *http.Request) string {
	if p := strings.TrimSpace(r.URL.Query().Get("period")); p != "" {
		return p
	}
	return core.PeriodOf(time.Now())
}

// validationStatus maps domain validation failures to 422 and everything
// else to 500.
func validationStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidPaymentDay),
		errors.Is(err, core.ErrInvalidGroupType),
		errors.Is(err, core.ErrInvalidRate),
		errors.Is(err, core.ErrEmptyCreditor),
		errors.Is(err, core.ErrInvalidPeriod):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
