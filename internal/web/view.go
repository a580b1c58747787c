package web

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

const (
	noticeKey = "notice"
	alertKey  = "alert"
)

// View is the model a page is rendered from. Pages are rendered as JSON documents named after the
// view; Notice and Alert carry the flash messages of the request.
type View struct {
	Name        string            `json:"view"`
	Notice      string            `json:"notice,omitempty"`
	Alert       string            `json:"alert,omitempty"`
	Error       string            `json:"error,omitempty"`
	CurrentUser *domain.User      `json:"current_user,omitempty"`
	User        *domain.User      `json:"user,omitempty"`
	Wiki        *domain.Wiki      `json:"wiki,omitempty"`
	Wikis       []domain.Wiki     `json:"wikis,omitempty"`
	Revisions   []domain.Revision `json:"revisions,omitempty"`
	Charges     []domain.Charge   `json:"charges,omitempty"`
}

// flash stores a message shown by the next rendered page.
func (h *Handler) flash(w http.ResponseWriter, r *http.Request, kind, msg string) {
	if err := h.session(r).PutString(w, "flash."+kind, msg); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("failed to store flash message")
	}
}

// render writes v with the given status. Pending flash messages are consumed, unless v already carries
// a message of the same kind.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, v View) {
	s := h.session(r)
	for kind, dst := range map[string]*string{noticeKey: &v.Notice, alertKey: &v.Alert} {
		msg, err := s.PopString(w, "flash."+kind)
		if err != nil {
			log.Warn().Err(err).Str("kind", kind).Msg("failed to read flash message")
			continue
		}
		if *dst == "" {
			*dst = msg
		}
	}
	v.CurrentUser = CurrentUser(r.Context())
	writeJSON(w, status, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
