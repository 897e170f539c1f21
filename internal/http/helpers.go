package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"tally/internal/core"
	"tally/internal/i18n"
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeRawJSON writes an already-encoded payload, used for cached responses.
func writeRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// writeError sends a localized error message plus a stable machine code.
func writeError(w http.ResponseWriter, status int, lang i18n.Language, code string, key i18n.Key) {
	writeJSON(w, status, errorResponse{
		Error:   code,
		Message: i18n.T(lang, key),
	})
}

// validationKey maps a domain validation error to its message key.
func validationKey(err error) (i18n.Key, bool) {
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		return i18n.KeyDateRequired, true
	case errors.Is(err, core.ErrInvalidAmount):
		return i18n.KeyAmountPositive, true
	case errors.Is(err, core.ErrSourceTooShort):
		return i18n.KeySourceMin2, true
	case errors.Is(err, core.ErrCategoryTooShort):
		return i18n.KeyCategoryMin2, true
	case errors.Is(err, core.ErrItemTooShort):
		return i18n.KeyItemMin2, true
	case errors.Is(err, core.ErrClientTooShort):
		return i18n.KeyClientNameRequired, true
	case errors.Is(err, core.ErrDescriptionTooShort):
		return i18n.KeyDescriptionMin5, true
	case errors.Is(err, core.ErrInvalidTime):
		return i18n.KeyInvalidTimeFormat, true
	default:
		return "", false
	}
}

// language resolves the display language for a request: the lang query
// parameter wins, then the X-Language header, then the configured default.
func (s *Server) language(r *http.Request) i18n.Language {
	if raw := r.URL.Query().Get("lang"); raw != "" {
		return i18n.ParseLanguage(raw, s.defaultLang)
	}
	if raw := r.Header.Get("X-Language"); raw != "" {
		return i18n.ParseLanguage(raw, s.defaultLang)
	}
	return s.defaultLang
}

// clientIP extracts the client address, honoring proxy headers.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		if i := strings.IndexByte(ip, ','); i >= 0 {
			ip = ip[:i]
		}
		return strings.TrimSpace(ip)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// decodeJSON reads a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
