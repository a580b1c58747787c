package domain

// Card describes the payment card used for a charge.
type Card struct {
	Last4    string `json:"last4"`
	Brand    string `json:"brand"`
	ExpMonth int64  `json:"exp_month"`
	ExpYear  int64  `json:"exp_year"`
}

// ChargeEvent is the provider independent content of a "charge succeeded" billing event.
type ChargeEvent struct {
	ChargeID   string
	CustomerID string
	// Amount is expressed in the currency's minor unit.
	Amount int64
	Card   Card
}

// Charge is a locally recorded successful payment. StripeID is unique per user.
type Charge struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	StripeID string `json:"stripe_id"`
	Amount   int64  `json:"amount"`
	Card     Card   `json:"card"`
	Created  int64  `json:"created"`
	Updated  int64  `json:"updated"`
}
