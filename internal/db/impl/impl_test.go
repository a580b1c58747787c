package impl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sidereusnuntius/blocipedia/internal/db"
	"github.com/sidereusnuntius/blocipedia/internal/diff"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
	"github.com/sidereusnuntius/blocipedia/internal/initialization"
)

var DB db.DB
var ctx = context.Background()

func TestMain(m *testing.M) {
	d, err := initialization.OpenDB("file:impl_test?mode=memory&cache=shared")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open connection: %s", err)
		os.Exit(1)
	}

	err = initialization.SetupDB(d, "../../../migrations", "impl_test")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %s", err)
		os.Exit(1)
	}
	DB = New(d)

	code := m.Run()
	d.Close()
	os.Exit(code)
}

func createUser(t *testing.T, username string, admin bool) int64 {
	t.Helper()
	id, err := DB.InsertUser(ctx, domain.Account{
		Username: username,
		Email:    username + "@example.org",
		Password: "hashed",
		Admin:    admin,
	})
	if err != nil {
		t.Fatalf("failed to create user %s: %s", username, err)
	}
	return id
}

func TestInsertUser_Conflict(t *testing.T) {
	createUser(t, "duplicate", false)

	_, err := DB.InsertUser(ctx, domain.Account{
		Username: "DUPLICATE",
		Email:    "someone.else@example.org",
		Password: "hashed",
	})
	if !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected %q, got %v", db.ErrConflict, err)
	}
}

func TestGetAuthData(t *testing.T) {
	id := createUser(t, "authdata", true)

	byName, err := DB.GetAuthDataByUsername(ctx, "authdata")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	byEmail, err := DB.GetAuthDataByEmail(ctx, "authdata@example.org")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := domain.Account{
		UserID:   id,
		Username: "authdata",
		Email:    "authdata@example.org",
		Password: "hashed",
		Admin:    true,
	}
	if diff := cmp.Diff(want, byName); diff != "" {
		t.Errorf("by username mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, byEmail); diff != "" {
		t.Errorf("by email mismatch (-want +got):\n%s", diff)
	}

	if _, err = DB.GetAuthDataByUsername(ctx, "nobody"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %q, got %v", db.ErrNotFound, err)
	}
}

func TestSetAdmin(t *testing.T) {
	id := createUser(t, "promoted", false)

	if err := DB.SetAdmin(ctx, id, true); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	u, err := DB.GetUserByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !u.Admin {
		t.Error("expected user to be an admin")
	}

	if err = DB.SetAdmin(ctx, -1, true); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %q, got %v", db.ErrNotFound, err)
	}
}

func TestSetBillingID(t *testing.T) {
	first := createUser(t, "billed", false)
	second := createUser(t, "billed2", false)

	if err := DB.SetBillingID(ctx, first, "cus_billed"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	u, err := DB.GetUserByBillingID(ctx, "cus_billed")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if u.ID != first || u.BillingID != "cus_billed" {
		t.Errorf("unexpected user %+v", u)
	}

	if err = DB.SetBillingID(ctx, second, "cus_billed"); !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected %q, got %v", db.ErrConflict, err)
	}

	if _, err = DB.GetUserByBillingID(ctx, "cus_unknown"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %q, got %v", db.ErrNotFound, err)
	}
	if _, err = DB.GetUserByBillingID(ctx, ""); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %q for an empty billing id, got %v", db.ErrNotFound, err)
	}
}

func TestWikiCRUD(t *testing.T) {
	owner := createUser(t, "wikiowner", false)
	editor := createUser(t, "wikieditor", true)

	before, err := DB.CountWikis(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	created, err := DB.CreateWiki(ctx, domain.Wiki{
		Title:   "Gophers",
		Body:    "Gophers burrow.",
		Private: true,
		UserID:  owner,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if created.ID == 0 || created.Created == 0 {
		t.Errorf("expected generated id and timestamps, got %+v", created)
	}

	after, _ := DB.CountWikis(ctx)
	if after != before+1 {
		t.Errorf("expected count %d, got %d", before+1, after)
	}

	fetched, err := DB.GetWiki(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(created, fetched); diff != "" {
		t.Errorf("fetched wiki mismatch (-want +got):\n%s", diff)
	}

	t.Run("list", func(t *testing.T) {
		list, err := DB.ListWikis(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		found := false
		for _, w := range list {
			found = found || w.ID == created.ID
		}
		if !found {
			t.Error("created wiki missing from the list")
		}
	})

	t.Run("update", func(t *testing.T) {
		fetched.Title = "T2"
		fetched.Body = "B2"
		updated, err := DB.UpdateWiki(ctx, fetched, editor)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		want := fetched
		if diff := cmp.Diff(want, updated, cmpopts.IgnoreFields(domain.Wiki{}, "Updated")); diff != "" {
			t.Errorf("updated wiki mismatch (-want +got):\n%s", diff)
		}
		if updated.UserID != owner {
			t.Errorf("owner changed from %d to %d", owner, updated.UserID)
		}

		revisions, err := DB.GetRevisionList(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if len(revisions) != 1 {
			t.Fatalf("expected 1 revision, got %d", len(revisions))
		}
		r := revisions[0]
		if r.UserID != editor || r.Username != "wikieditor" || r.Title != "T2" {
			t.Errorf("unexpected revision %+v", r)
		}
		body, err := diff.Apply("Gophers burrow.", r.Diff)
		if err != nil || body != "B2" {
			t.Errorf("revision diff does not reproduce the edit: %q, %v", body, err)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		_, err := DB.UpdateWiki(ctx, domain.Wiki{ID: -1, Title: "x"}, editor)
		if !errors.Is(err, db.ErrNotFound) {
			t.Errorf("expected %q, got %v", db.ErrNotFound, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := DB.DeleteWiki(ctx, created.ID); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if _, err := DB.GetWiki(ctx, created.ID); !errors.Is(err, db.ErrNotFound) {
			t.Errorf("expected %q, got %v", db.ErrNotFound, err)
		}
		revisions, err := DB.GetRevisionList(ctx, created.ID)
		if err != nil || len(revisions) != 0 {
			t.Errorf("expected revisions to be deleted with the wiki, got %d, %v", len(revisions), err)
		}
		if err := DB.DeleteWiki(ctx, created.ID); !errors.Is(err, db.ErrNotFound) {
			t.Errorf("expected %q, got %v", db.ErrNotFound, err)
		}
	})
}

func TestCreateWiki_UnknownOwner(t *testing.T) {
	_, err := DB.CreateWiki(ctx, domain.Wiki{Title: "orphan", UserID: 987654})
	if err == nil {
		t.Error("expected the foreign key to reject a wiki without owner")
	}
}

func TestUpsertCharge_Idempotent(t *testing.T) {
	user := createUser(t, "payer", false)
	other := createUser(t, "payer2", false)

	charge := domain.Charge{
		UserID:   user,
		StripeID: "ch_1",
		Amount:   1500,
		Card:     domain.Card{Last4: "4242", Brand: "visa", ExpMonth: 12, ExpYear: 2030},
	}

	first, err := DB.UpsertCharge(ctx, charge)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	charge.Amount = 2500
	charge.Card.Last4 = "1881"
	second, err := DB.UpsertCharge(ctx, charge)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected the same row, got ids %d and %d", first.ID, second.ID)
	}
	if second.Amount != 2500 || second.Card.Last4 != "1881" {
		t.Errorf("expected last delivered values, got %+v", second)
	}

	// The same external id for another user is a distinct charge.
	charge.UserID = other
	third, err := DB.UpsertCharge(ctx, charge)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if third.ID == first.ID {
		t.Error("charges of different users must not be merged")
	}

	charges, err := DB.GetCharges(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := []domain.Charge{second}
	if diff := cmp.Diff(want, charges, cmpopts.IgnoreFields(domain.Charge{}, "Updated")); diff != "" {
		t.Errorf("charges mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleError(t *testing.T) {
	d := &dbImpl{}
	if d.HandleError(nil) != nil {
		t.Error("nil must stay nil")
	}
	err := d.HandleError(errors.New("disk on fire"))
	if !errors.Is(err, db.ErrInternal) || !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("unexpected error: %v", err)
	}
}
