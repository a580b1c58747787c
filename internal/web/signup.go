package web

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blocipedia/internal/billing"
	"github.com/sidereusnuntius/blocipedia/internal/db"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
	"github.com/sidereusnuntius/blocipedia/internal/service"
)

func SignUp(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := r.ParseForm(); err != nil {
			h.render(w, r, http.StatusBadRequest, View{Name: "signup", Alert: "Malformed form."})
			return
		}

		username := r.PostForm.Get("username")
		email := r.PostForm.Get("email")
		password := r.PostForm.Get("password")

		id, err := h.service.CreateUser(ctx, username, password, email, false)
		if err != nil {
			if code := GetCode(err); code == http.StatusInternalServerError {
				log.Error().Err(err).Msg("failed to create user")
				h.render(w, r, code, View{Name: "signup", Alert: "Unable to sign up. Please try again."})
			} else {
				h.render(w, r, code, View{Name: "signup", Alert: err.Error()})
			}
			return
		}

		u, err := h.service.GetUser(ctx, id)
		if err == nil {
			err = h.signIn(w, r, domain.Account{UserID: u.ID, Username: u.Username})
		}
		if err != nil {
			log.Error().Err(err).Int64("user", id).Msg("failed to sign in new user")
			http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
			return
		}

		h.flash(w, r, noticeKey, "Welcome! You have signed up successfully.")
		http.Redirect(w, r, WikisPath, http.StatusSeeOther)
	}
}

func GetSignup(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, View{Name: "signup"})
	}
}

// GetCode maps an error to the status code of the response reporting it.
func GetCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, billing.ErrUnknownCustomer):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrConflict), errors.Is(err, db.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, billing.ErrMalformedEvent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
