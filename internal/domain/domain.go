package domain

// Account holds a local user's credentials; it is only loaded when authenticating or creating a user.
type Account struct {
	UserID   int64
	Username string
	Email    string
	Password string
	Admin    bool
}

// User is an actor of the wiki. Admins bypass ownership checks.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Admin    bool   `json:"admin"`
	// BillingID is the user's customer id at the payment provider; empty until the account is linked.
	BillingID string `json:"billing_id,omitempty"`
	Created   int64  `json:"created"`
}
