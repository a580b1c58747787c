// Package policy decides what an actor may do with a wiki. Every function here is pure: the actor, the
// action and the resource are all it looks at. A nil actor is an anonymous visitor.
package policy

import "github.com/sidereusnuntius/blocipedia/internal/domain"

type Action int

const (
	Index Action = iota
	Show
	History
	New
	Create
	Edit
	Update
	Destroy
	// SetAdmin flips another user's admin status.
	SetAdmin
	// LinkBilling associates a user with a payment provider customer.
	LinkBilling
	ListCharges
)

var actionNames = [...]string{
	Index:       "index",
	Show:        "show",
	History:     "history",
	New:         "new",
	Create:      "create",
	Edit:        "edit",
	Update:      "update",
	Destroy:     "destroy",
	SetAdmin:    "set_admin",
	LinkBilling: "link_billing",
	ListCharges: "list_charges",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

type Decision int

const (
	Allow Decision = iota
	// RequireSignIn means the action is refused to anonymous visitors but might be allowed after
	// signing in.
	RequireSignIn
	Deny
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RequireSignIn:
		return "require_sign_in"
	default:
		return "deny"
	}
}

// CanView reports whether actor may read w: public wikis are readable by everyone, private ones by
// their owner and by admins.
func CanView(actor *domain.User, w domain.Wiki) bool {
	if !w.Private {
		return true
	}
	return isAdmin(actor) || w.IsOwnedBy(actor)
}

// Visible filters the wikis actor may read, keeping their order.
func Visible(actor *domain.User, wikis []domain.Wiki) []domain.Wiki {
	visible := make([]domain.Wiki, 0, len(wikis))
	for _, w := range wikis {
		if CanView(actor, w) {
			visible = append(visible, w)
		}
	}
	return visible
}

// Authorize decides on a wiki action. w is ignored by actions that do not target an existing wiki
// (Index, New, Create) and may be nil for them; for the others a nil w is denied.
func Authorize(actor *domain.User, action Action, w *domain.Wiki) Decision {
	switch action {
	case Index:
		return Allow
	case New, Create, ListCharges:
		return signedIn(actor)
	case Show, History:
		switch {
		case w == nil:
			return Deny
		case CanView(actor, *w):
			return Allow
		case actor == nil:
			return RequireSignIn
		default:
			return Deny
		}
	case Edit, Update, Destroy:
		switch {
		case actor == nil:
			return RequireSignIn
		case w == nil:
			return Deny
		case actor.Admin || w.IsOwnedBy(actor):
			return Allow
		default:
			return Deny
		}
	}
	return Deny
}

// AuthorizeUser decides on an action targeting another user's account.
func AuthorizeUser(actor *domain.User, action Action, target int64) Decision {
	if actor == nil {
		return RequireSignIn
	}
	switch action {
	case SetAdmin:
		if actor.Admin {
			return Allow
		}
	case LinkBilling:
		if actor.Admin || actor.ID == target {
			return Allow
		}
	}
	return Deny
}

func signedIn(actor *domain.User) Decision {
	if actor == nil {
		return RequireSignIn
	}
	return Allow
}

func isAdmin(actor *domain.User) bool {
	return actor != nil && actor.Admin
}
