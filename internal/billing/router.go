// Package billing records the payment provider's events against local users.
package billing

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/stripe/stripe-go/v82"
)

var (
	// ErrUnhandledEvent is returned by Dispatch for event types no handler is registered for.
	ErrUnhandledEvent = errors.New("unhandled event type")
	ErrMalformedEvent = errors.New("malformed event")
	// ErrUnknownCustomer means the event's customer is not linked to any user.
	ErrUnknownCustomer = errors.New("unknown customer")
)

type Handler interface {
	Handle(ctx context.Context, event stripe.Event) error
}

type HandlerFunc func(ctx context.Context, event stripe.Event) error

func (f HandlerFunc) Handle(ctx context.Context, event stripe.Event) error {
	return f(ctx, event)
}

// Router dispatches events to the handler registered for their type. Its table is fixed at
// construction, so a Router may be shared by concurrent requests.
type Router struct {
	handlers map[stripe.EventType]Handler
}

func NewRouter(handlers map[stripe.EventType]Handler) *Router {
	return &Router{handlers: maps.Clone(handlers)}
}

func (r *Router) Handles(t stripe.EventType) bool {
	_, ok := r.handlers[t]
	return ok
}

func (r *Router) Dispatch(ctx context.Context, event stripe.Event) error {
	h, ok := r.handlers[event.Type]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnhandledEvent, event.Type)
	}
	return h.Handle(ctx, event)
}
