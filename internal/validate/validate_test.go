package validate

import (
	"strings"
	"testing"

	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

func TestWiki(t *testing.T) {
	cases := []struct {
		name    string
		wiki    domain.Wiki
		wantErr bool
	}{
		{"valid", domain.Wiki{Title: "Go", Body: "A language."}, false},
		{"empty body", domain.Wiki{Title: "Go"}, false},
		{"empty title", domain.Wiki{Body: "A language."}, true},
		{"blank title", domain.Wiki{Title: "   ", Body: "A language."}, true},
		{"long title", domain.Wiki{Title: strings.Repeat("a", MaxTitleLen+1)}, true},
		{"long body", domain.Wiki{Title: "Go", Body: strings.Repeat("a", MaxBodyLen+1)}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Wiki(c.wiki)
			if c.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !c.wantErr && err != nil {
				t.Errorf("unexpected error: %s", err)
			}
		})
	}
}

func TestSignUpForm(t *testing.T) {
	if err := SignUpForm("sarah", "correct horse", "sarah@example.org"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}

	err := SignUpForm("", "short", "not an email")
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, msg := range []string{"empty username", "password too short"} {
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("expected %q in %q", msg, err)
		}
	}
}

func TestUsername(t *testing.T) {
	for _, name := range []string{"with space", "at@sign", strings.Repeat("x", MaxUsernameLen+1)} {
		if Username(name) == nil {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
