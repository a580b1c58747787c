package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
	"github.com/sidereusnuntius/blocipedia/internal/service"
	"github.com/sidereusnuntius/blocipedia/internal/validate"
)

// MaxFormSize bounds the size of a wiki form.
const MaxFormSize = validate.MaxBodyLen + 64*1024

// wikiParams reads the wiki attributes present in the form. Fields absent from the form are left
// nil, so that updates only touch what was submitted.
func wikiParams(w http.ResponseWriter, r *http.Request) (domain.WikiParams, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFormSize)
	if err := r.ParseForm(); err != nil {
		return domain.WikiParams{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	var p domain.WikiParams
	if r.PostForm.Has("title") {
		title := r.PostForm.Get("title")
		p.Title = &title
	}
	if r.PostForm.Has("body") {
		body := r.PostForm.Get("body")
		p.Body = &body
	}
	if r.PostForm.Has("private") {
		private, err := parseCheckbox(r.PostForm.Get("private"))
		if err != nil {
			return domain.WikiParams{}, fmt.Errorf("%w: private: %s", service.ErrInvalidInput, err)
		}
		p.Private = &private
	}
	return p, nil
}

func parseCheckbox(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on":
		return true, nil
	case "", "off":
		return false, nil
	}
	return strconv.ParseBool(v)
}

func ListWikis(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wikis, err := h.service.ListWikis(ctx, CurrentUser(ctx))
		if err != nil {
			log.Error().Err(err).Msg("failed to list wikis")
			h.render(w, r, GetCode(err), View{Name: "index", Alert: "Unable to list wikis."})
			return
		}
		h.render(w, r, http.StatusOK, View{Name: "index", Wikis: wikis})
	}
}

func ShowWiki(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wiki, _ := GetWiki(r.Context())
		h.render(w, r, http.StatusOK, View{Name: "show", Wiki: &wiki})
	}
}

// WikiHistory lists the edits made to a wiki, newest first.
func WikiHistory(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wiki, _ := GetWiki(ctx)
		revisions, err := h.service.GetRevisionList(ctx, wiki.ID)
		if err != nil {
			log.Error().Err(err).Int64("wiki", wiki.ID).Msg("failed to list revisions")
			h.render(w, r, GetCode(err), View{Name: "history", Wiki: &wiki, Alert: "Unable to load the history of this wiki."})
			return
		}
		h.render(w, r, http.StatusOK, View{Name: "history", Wiki: &wiki, Revisions: revisions})
	}
}

func NewWiki(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, View{Name: "new", Wiki: &domain.Wiki{}})
	}
}

func CreateWiki(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actor := CurrentUser(ctx)

		params, err := wikiParams(w, r)
		var wiki domain.Wiki
		if err == nil {
			wiki, err = h.service.CreateWiki(ctx, *actor, params)
		}
		if err != nil {
			attempted := domain.Wiki{UserID: actor.ID}
			params.Apply(&attempted)
			h.formError(w, r, "new", &attempted, err, "Error creating wiki. Please try again.")
			return
		}

		log.Debug().Int64("wiki", wiki.ID).Int64("user", actor.ID).Msg("created wiki")
		h.redirect(w, r, wikiPath(wiki.ID), noticeKey, "Wiki was saved successfully.")
	}
}

func EditWiki(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wiki, _ := GetWiki(r.Context())
		h.render(w, r, http.StatusOK, View{Name: "edit", Wiki: &wiki})
	}
}

func UpdateWiki(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wiki, _ := GetWiki(ctx)
		actor := CurrentUser(ctx)

		params, err := wikiParams(w, r)
		var updated domain.Wiki
		if err == nil {
			updated, err = h.service.UpdateWiki(ctx, *actor, wiki, params)
		}
		if err != nil {
			params.Apply(&wiki)
			h.formError(w, r, "edit", &wiki, err, "Error saving wiki. Please try again.")
			return
		}

		h.redirect(w, r, wikiPath(updated.ID), noticeKey, "Wiki was updated successfully.")
	}
}

func DestroyWiki(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wiki, _ := GetWiki(ctx)

		if err := h.service.DeleteWiki(ctx, wiki.ID); err != nil {
			log.Error().Err(err).Int64("wiki", wiki.ID).Msg("failed to delete wiki")
			h.render(w, r, GetCode(err), View{
				Name:  "show",
				Wiki:  &wiki,
				Alert: "There was an error deleting the wiki.",
			})
			return
		}

		h.redirect(w, r, WikisPath, noticeKey, fmt.Sprintf("\"%s\" was deleted successfully.", wiki.Title))
	}
}

// formError re-renders a wiki form after a failed save. Invalid input is reported with 422; anything
// else is unexpected and logged.
func (h *Handler) formError(w http.ResponseWriter, r *http.Request, view string, wiki *domain.Wiki, err error, alert string) {
	v := View{Name: view, Wiki: wiki, Alert: alert}
	code := GetCode(err)
	if errors.Is(err, service.ErrInvalidInput) {
		code = http.StatusUnprocessableEntity
		v.Error = err.Error()
	} else {
		log.Error().Err(err).Str("view", view).Msg("failed to save wiki")
	}
	h.render(w, r, code, v)
}
