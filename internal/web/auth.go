package web

import (
	"context"
	"encoding/gob"
	"errors"
	"net/http"

	"github.com/alexedwards/scs"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blocipedia/internal/db"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

const SessionKey = "user"

// Session is what the session cookie remembers about a signed in user. Everything else, such as
// admin status, is reloaded on every request.
type Session struct {
	UserID   int64
	Username string
}

func init() {
	gob.Register(Session{})
}

type (
	userKey    struct{}
	sessionKey struct{}
)

// CurrentUser returns the signed in user, or nil for anonymous visitors.
func CurrentUser(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userKey{}).(*domain.User)
	return u
}

// session returns the cookie session loaded by SessionMiddleware. Values put in it are written to the
// response's cookie, so they must be put before the response header is written.
func (h *Handler) session(r *http.Request) *scs.Session {
	if s, ok := r.Context().Value(sessionKey{}).(*scs.Session); ok {
		return s
	}
	return h.SessionManager.Load(r)
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			session := handler.SessionManager.Load(r)
			ctx = context.WithValue(ctx, sessionKey{}, session)

			var s Session
			err := session.GetObject(SessionKey, &s)
			if err == nil && s.UserID != 0 {
				u, err := handler.service.GetUser(ctx, s.UserID)
				switch {
				case err == nil:
					ctx = context.WithValue(ctx, userKey{}, &u)
				case errors.Is(err, db.ErrNotFound):
					// The account is gone; forget it.
					_ = session.Destroy(w)
				default:
					log.Error().Err(err).Int64("user", s.UserID).Msg("failed to load session user")
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
			}

			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handler.session(r).Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}
		http.Redirect(w, r, WikisPath, http.StatusSeeOther)
	}
}

func Login(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := r.ParseForm(); err != nil {
			handler.render(w, r, http.StatusBadRequest, View{Name: "login", Alert: "Malformed form."})
			return
		}

		u, authenticated, err := handler.service.AuthenticateUser(ctx, r.PostForm.Get("user"), r.PostForm.Get("password"))
		if err != nil {
			log.Error().Err(err).Msg("authentication failed")
			handler.render(w, r, GetCode(err), View{Name: "login", Alert: "Unable to sign in. Please try again."})
			return
		}
		if !authenticated {
			handler.render(w, r, http.StatusUnauthorized, View{Name: "login", Alert: "Invalid username, email or password."})
			return
		}

		if err = handler.signIn(w, r, u); err != nil {
			log.Error().Err(err).Msg("failed to create session")
			handler.render(w, r, http.StatusInternalServerError, View{Name: "login", Alert: "Unable to sign in. Please try again."})
			return
		}
		handler.flash(w, r, noticeKey, "Signed in successfully.")
		http.Redirect(w, r, WikisPath, http.StatusSeeOther)
	}
}

func GetLogin(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.render(w, r, http.StatusOK, View{Name: "login"})
	}
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request, u domain.Account) error {
	return h.session(r).PutObject(w, SessionKey, Session{
		UserID:   u.UserID,
		Username: u.Username,
	})
}
