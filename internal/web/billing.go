package web

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blocipedia/internal/billing"
	"github.com/stripe/stripe-go/v82/webhook"
)

const WebhookBodyLimit = 64 * 1024

type webhookResponse struct {
	Received bool   `json:"received"`
	Status   string `json:"status,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BillingWebhook receives the payment provider's events. The signature is the only authentication of
// this endpoint: events that fail verification are rejected before anything is decoded.
func BillingWebhook(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secret := h.Config.Stripe.WebhookSecret.Reveal()
		if secret == "" || h.Billing == nil {
			writeJSON(w, http.StatusServiceUnavailable, webhookResponse{Error: "billing webhook is not configured"})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, WebhookBodyLimit)
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, webhookResponse{Error: "failed to read request body"})
			return
		}

		sig := r.Header.Get("Stripe-Signature")
		if strings.TrimSpace(sig) == "" {
			writeJSON(w, http.StatusBadRequest, webhookResponse{Error: "invalid signature"})
			return
		}
		event, err := webhook.ConstructEventWithOptions(payload, sig, secret, webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
		if err != nil {
			log.Warn().Err(err).Msg("rejected billing event")
			writeJSON(w, http.StatusBadRequest, webhookResponse{Error: "invalid signature"})
			return
		}

		l := log.With().Str("event", event.ID).Str("type", string(event.Type)).Logger()
		err = h.Billing.Dispatch(r.Context(), event)
		switch {
		case err == nil:
			l.Debug().Msg("processed billing event")
			writeJSON(w, http.StatusOK, webhookResponse{Received: true, Status: "processed"})
		case errors.Is(err, billing.ErrUnhandledEvent):
			l.Debug().Msg("ignored billing event")
			writeJSON(w, http.StatusOK, webhookResponse{Received: true, Status: "ignored"})
		case errors.Is(err, billing.ErrUnknownCustomer):
			l.Error().Err(err).Msg("billing event for a customer not linked to any user")
			writeJSON(w, GetCode(err), webhookResponse{Error: "unknown customer"})
		case errors.Is(err, billing.ErrMalformedEvent):
			l.Warn().Err(err).Msg("malformed billing event")
			writeJSON(w, GetCode(err), webhookResponse{Error: "malformed event"})
		default:
			l.Error().Err(err).Msg("failed to process billing event")
			writeJSON(w, http.StatusInternalServerError, webhookResponse{Error: "failed to process event"})
		}
	}
}

// BillingConfig exposes the settings a client needs to start a payment.
func BillingConfig(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"publishable_key": h.Config.Stripe.PublishableKey,
		})
	}
}
