package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blocipedia/internal/db"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
	"github.com/sidereusnuntius/blocipedia/internal/policy"
)

const (
	signInAlert        = "You need to sign in or sign up before continuing."
	privateSignInAlert = "You must be signed in to view private wiki."
	privateAlert       = "You are not allowed to view that wiki."
	ownerAlert         = "You must be the owner of this wiki or an admin to do that."
	adminAlert         = "You must be an admin to do that."
)

type wikiKey struct{}

// GetWiki returns the wiki loaded by Guard.
func GetWiki(ctx context.Context) (domain.Wiki, bool) {
	w, ok := ctx.Value(wikiKey{}).(domain.Wiki)
	return w, ok
}

func targetsWiki(a policy.Action) bool {
	switch a {
	case policy.Show, policy.History, policy.Edit, policy.Update, policy.Destroy:
		return true
	}
	return false
}

// Guard authorizes action before the handler runs. For actions on an existing wiki it loads the wiki
// named by the id URL parameter and hands it to the handler through the request context.
func (h *Handler) Guard(action policy.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			actor := CurrentUser(ctx)

			if !targetsWiki(action) {
				if policy.Authorize(actor, action, nil) != policy.Allow {
					h.redirect(w, r, LoginRoute, alertKey, signInAlert)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			// Anonymous visitors are sent to sign in before the wiki is even looked up.
			if policy.Authorize(actor, action, nil) == policy.RequireSignIn {
				h.redirect(w, r, LoginRoute, alertKey, signInAlert)
				return
			}

			id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
			if err != nil {
				h.render(w, r, http.StatusNotFound, View{Name: "not_found", Error: "wiki not found"})
				return
			}
			wiki, err := h.service.GetWiki(ctx, id)
			if err != nil {
				if !errors.Is(err, db.ErrNotFound) {
					log.Error().Err(err).Int64("wiki", id).Msg("failed to load wiki")
				}
				h.render(w, r, GetCode(err), View{Name: "not_found", Error: "wiki not found"})
				return
			}

			switch policy.Authorize(actor, action, &wiki) {
			case policy.Allow:
				next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, wikiKey{}, wiki)))
			case policy.RequireSignIn:
				h.redirect(w, r, LoginRoute, alertKey, privateSignInAlert)
			default:
				if action == policy.Show || action == policy.History {
					h.redirect(w, r, WikisPath, alertKey, privateAlert)
				} else {
					h.redirect(w, r, wikiPath(wiki.ID), alertKey, ownerAlert)
				}
			}
		})
	}
}

// GuardUser authorizes an action on the account named by the id URL parameter.
func (h *Handler) GuardUser(action policy.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
			if err != nil {
				h.render(w, r, http.StatusNotFound, View{Name: "not_found", Error: "user not found"})
				return
			}

			switch policy.AuthorizeUser(CurrentUser(r.Context()), action, id) {
			case policy.Allow:
				next.ServeHTTP(w, r)
			case policy.RequireSignIn:
				h.redirect(w, r, LoginRoute, alertKey, signInAlert)
			default:
				msg := adminAlert
				if action == policy.LinkBilling {
					msg = "You may only link your own billing account."
				}
				h.redirect(w, r, WikisPath, alertKey, msg)
			}
		})
	}
}

// redirect flashes msg and redirects to path.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, path, kind, msg string) {
	h.flash(w, r, kind, msg)
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func wikiPath(id int64) string {
	return fmt.Sprintf("%s/%d", WikisPath, id)
}
