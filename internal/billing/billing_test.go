package billing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/blocipedia/internal/db"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
	mock_db "github.com/sidereusnuntius/blocipedia/internal/mocks"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"
)

var ctx = context.Background()

const chargeJSON = `{
	"id": "ch_123",
	"object": "charge",
	"amount": 1500,
	"customer": "cus_abc",
	"payment_method_details": {
		"type": "card",
		"card": {"brand": "visa", "last4": "4242", "exp_month": 8, "exp_year": 2031}
	}
}`

func chargeEvent(raw string) stripe.Event {
	return stripe.Event{
		ID:   "evt_1",
		Type: stripe.EventTypeChargeSucceeded,
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}
}

func TestRouter_Dispatch(t *testing.T) {
	called := 0
	table := map[stripe.EventType]Handler{
		stripe.EventTypeChargeSucceeded: HandlerFunc(func(context.Context, stripe.Event) error {
			called++
			return nil
		}),
	}
	r := NewRouter(table)
	// Mutating the source table must not affect the router.
	delete(table, stripe.EventTypeChargeSucceeded)

	if err := r.Dispatch(ctx, stripe.Event{Type: stripe.EventTypeChargeSucceeded}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if called != 1 {
		t.Errorf("expected the handler to be called once, got %d", called)
	}

	err := r.Dispatch(ctx, stripe.Event{Type: stripe.EventTypeChargeRefunded})
	if !errors.Is(err, ErrUnhandledEvent) {
		t.Errorf("expected %q, got %v", ErrUnhandledEvent, err)
	}
	if r.Handles(stripe.EventTypeChargeRefunded) || !r.Handles(stripe.EventTypeChargeSucceeded) {
		t.Error("Handles disagrees with the routing table")
	}
}

func TestChargeRecorder_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_db.NewMockDB(ctrl)
	rec := NewChargeRecorder(m)

	want := domain.Charge{
		UserID:   5,
		StripeID: "ch_123",
		Amount:   1500,
		Card:     domain.Card{Last4: "4242", Brand: "visa", ExpMonth: 8, ExpYear: 2031},
	}
	m.EXPECT().GetUserByBillingID(ctx, "cus_abc").Return(domain.User{ID: 5, BillingID: "cus_abc"}, nil)
	m.EXPECT().UpsertCharge(ctx, want).Return(want, nil)

	if err := rec.Handle(ctx, chargeEvent(chargeJSON)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestChargeRecorder_UnknownCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_db.NewMockDB(ctrl)
	rec := NewChargeRecorder(m)

	m.EXPECT().GetUserByBillingID(ctx, "cus_abc").Return(domain.User{}, db.ErrNotFound)

	err := rec.Handle(ctx, chargeEvent(chargeJSON))
	if !errors.Is(err, ErrUnknownCustomer) {
		t.Errorf("expected %q, got %v", ErrUnknownCustomer, err)
	}
}

func TestChargeRecorder_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_db.NewMockDB(ctrl)
	rec := NewChargeRecorder(m)

	m.EXPECT().GetUserByBillingID(ctx, "cus_abc").Return(domain.User{ID: 5}, nil)
	m.EXPECT().UpsertCharge(ctx, gomock.Any()).Return(domain.Charge{}, db.ErrInternal)

	_, err := rec.Record(ctx, domain.ChargeEvent{ChargeID: "ch_1", CustomerID: "cus_abc"})
	if !errors.Is(err, db.ErrInternal) {
		t.Errorf("expected %q, got %v", db.ErrInternal, err)
	}
}

func TestChargeRecorder_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := NewChargeRecorder(mock_db.NewMockDB(ctrl))

	for name, event := range map[string]stripe.Event{
		"no data":     {ID: "evt_2", Type: stripe.EventTypeChargeSucceeded},
		"not json":    chargeEvent(`{"id":`),
		"no customer": chargeEvent(`{"id": "ch_9", "amount": 100}`),
	} {
		t.Run(name, func(t *testing.T) {
			if err := rec.Handle(ctx, event); !errors.Is(err, ErrMalformedEvent) {
				t.Errorf("expected %q, got %v", ErrMalformedEvent, err)
			}
		})
	}
}

func TestChargeEventFrom_NoCard(t *testing.T) {
	got, err := ChargeEventFrom(stripe.Charge{
		ID:       "ch_2",
		Amount:   300,
		Customer: &stripe.Customer{ID: "cus_x"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := domain.ChargeEvent{ChargeID: "ch_2", CustomerID: "cus_x", Amount: 300}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}
