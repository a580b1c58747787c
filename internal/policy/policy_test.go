package policy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

var (
	owner  = &domain.User{ID: 1, Username: "owner"}
	other  = &domain.User{ID: 2, Username: "other"}
	admin  = &domain.User{ID: 3, Username: "admin", Admin: true}
	public = domain.Wiki{ID: 10, Title: "public", UserID: 1}
	secret = domain.Wiki{ID: 11, Title: "secret", UserID: 1, Private: true}
)

func TestCanView(t *testing.T) {
	cases := []struct {
		name  string
		actor *domain.User
		wiki  domain.Wiki
		want  bool
	}{
		{"guest public", nil, public, true},
		{"guest private", nil, secret, false},
		{"other public", other, public, true},
		{"other private", other, secret, false},
		{"owner private", owner, secret, true},
		{"admin private", admin, secret, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CanView(c.actor, c.wiki); got != c.want {
				t.Errorf("expected %t, got %t", c.want, got)
			}
		})
	}
}

func TestVisible(t *testing.T) {
	all := []domain.Wiki{public, secret}

	if diff := cmp.Diff([]domain.Wiki{public}, Visible(nil, all)); diff != "" {
		t.Errorf("guest listing mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]domain.Wiki{public}, Visible(other, all)); diff != "" {
		t.Errorf("non-owner listing mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(all, Visible(owner, all)); diff != "" {
		t.Errorf("owner listing mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(all, Visible(admin, all)); diff != "" {
		t.Errorf("admin listing mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthorize(t *testing.T) {
	cases := []struct {
		actor  *domain.User
		action Action
		wiki   *domain.Wiki
		want   Decision
	}{
		{nil, Index, nil, Allow},
		{nil, Show, &public, Allow},
		{nil, Show, &secret, RequireSignIn},
		{nil, History, &secret, RequireSignIn},
		{nil, New, nil, RequireSignIn},
		{nil, Create, nil, RequireSignIn},
		{nil, Edit, &public, RequireSignIn},
		{nil, Update, &public, RequireSignIn},
		{nil, Destroy, &public, RequireSignIn},

		{other, Show, &public, Allow},
		{other, Show, &secret, Deny},
		{other, New, nil, Allow},
		{other, Create, nil, Allow},
		{other, Edit, &public, Deny},
		{other, Update, &public, Deny},
		{other, Destroy, &public, Deny},

		{owner, Show, &secret, Allow},
		{owner, Edit, &secret, Allow},
		{owner, Update, &public, Allow},
		{owner, Destroy, &public, Allow},

		{admin, Show, &secret, Allow},
		{admin, Edit, &public, Allow},
		{admin, Update, &secret, Allow},
		{admin, Destroy, &secret, Allow},

		{owner, Edit, nil, Deny},
		{owner, Action(99), &public, Deny},
	}

	for _, c := range cases {
		name := "guest"
		if c.actor != nil {
			name = c.actor.Username
		}
		if c.wiki != nil {
			name += "/" + c.wiki.Title
		}
		t.Run(name+"/"+c.action.String(), func(t *testing.T) {
			if got := Authorize(c.actor, c.action, c.wiki); got != c.want {
				t.Errorf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestAuthorizeUser(t *testing.T) {
	cases := []struct {
		name   string
		actor  *domain.User
		action Action
		target int64
		want   Decision
	}{
		{"guest promotes", nil, SetAdmin, 1, RequireSignIn},
		{"user promotes", other, SetAdmin, 2, Deny},
		{"admin promotes", admin, SetAdmin, 1, Allow},
		{"user links self", other, LinkBilling, 2, Allow},
		{"user links other", other, LinkBilling, 1, Deny},
		{"admin links other", admin, LinkBilling, 1, Allow},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AuthorizeUser(c.actor, c.action, c.target); got != c.want {
				t.Errorf("expected %s, got %s", c.want, got)
			}
		})
	}
}
