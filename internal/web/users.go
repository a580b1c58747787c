package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// SetAdmin grants or revokes admin status, according to the admin form field.
func SetAdmin(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

		if err := r.ParseForm(); err != nil {
			h.render(w, r, http.StatusBadRequest, View{Name: "user", Alert: "Malformed form."})
			return
		}
		admin, err := parseCheckbox(r.PostForm.Get("admin"))
		if err != nil {
			h.render(w, r, http.StatusUnprocessableEntity, View{Name: "user", Alert: "admin must be a boolean."})
			return
		}

		if err = h.service.SetAdmin(ctx, id, admin); err != nil {
			h.userError(w, r, id, err)
			return
		}
		log.Info().Int64("user", id).Bool("admin", admin).Int64("by", CurrentUser(ctx).ID).Msg("changed admin status")
		h.showUser(w, r, id, "User was updated successfully.")
	}
}

// LinkBilling associates the user with the payment provider's customer given in the customer_id form
// field. Charges of that customer are recorded against the user from then on.
func LinkBilling(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

		if err := r.ParseForm(); err != nil {
			h.render(w, r, http.StatusBadRequest, View{Name: "user", Alert: "Malformed form."})
			return
		}

		if err := h.service.LinkBillingAccount(ctx, id, r.PostForm.Get("customer_id")); err != nil {
			h.userError(w, r, id, err)
			return
		}
		h.showUser(w, r, id, "Billing account was linked successfully.")
	}
}

func ListCharges(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actor := CurrentUser(ctx)

		charges, err := h.service.GetCharges(ctx, actor.ID)
		if err != nil {
			log.Error().Err(err).Int64("user", actor.ID).Msg("failed to list charges")
			h.render(w, r, GetCode(err), View{Name: "charges", Alert: "Unable to list charges."})
			return
		}
		h.render(w, r, http.StatusOK, View{Name: "charges", Charges: charges})
	}
}

func (h *Handler) showUser(w http.ResponseWriter, r *http.Request, id int64, notice string) {
	u, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		h.userError(w, r, id, err)
		return
	}
	h.render(w, r, http.StatusOK, View{Name: "user", User: &u, Notice: notice})
}

func (h *Handler) userError(w http.ResponseWriter, r *http.Request, id int64, err error) {
	code := GetCode(err)
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Int64("user", id).Msg("failed to update user")
		h.render(w, r, code, View{Name: "user", Alert: "Unable to update the user."})
		return
	}
	h.render(w, r, code, View{Name: "user", Alert: "Unable to update the user.", Error: err.Error()})
}
