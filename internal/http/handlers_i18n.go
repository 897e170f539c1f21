package http

import (
	"net/http"

	"tally/internal/i18n"
)

type languagePayload struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	names := map[i18n.Language]i18n.Key{
		i18n.English:    i18n.KeyEnglish,
		i18n.Vietnamese: i18n.KeyVietnamese,
		i18n.Japanese:   i18n.KeyJapanese,
	}

	out := make([]languagePayload, 0, len(names))
	for _, l := range i18n.Languages() {
		out = append(out, languagePayload{
			Code:    string(l),
			Name:    i18n.T(lang, names[l]),
			Default: l == s.defaultLang,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleMessages returns the full message table for a language, so clients
// can render labels without one request per key.
func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	messages := make(map[string]string, len(i18n.AllKeys))
	for _, key := range i18n.AllKeys {
		messages[string(key)] = i18n.T(lang, key)
	}

	writeJSON(w, http.StatusOK, struct {
		Language string            `json:"language"`
		Messages map[string]string `json:"messages"`
	}{
		Language: string(lang),
		Messages: messages,
	})
}
