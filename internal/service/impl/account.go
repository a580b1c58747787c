package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/blocipedia/internal/db"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
	"github.com/sidereusnuntius/blocipedia/internal/service"
	"github.com/sidereusnuntius/blocipedia/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser confirms the user's identity and, if their credentials are correct, returns data to be put
// in the login session, such as the user's name and id. user is either the user's username or their email.
func (s *AppService) AuthenticateUser(ctx context.Context, user, password string) (u domain.Account, authenticated bool, err error) {
	user = strings.ToLower(strings.TrimSpace(user))

	if validate.Email(user) == nil {
		u, err = s.DB.GetAuthDataByEmail(ctx, user)
	} else if validate.Username(user) == nil {
		u, err = s.DB.GetAuthDataByUsername(ctx, user)
	} else {
		return domain.Account{}, false, nil
	}

	if errors.Is(err, db.ErrNotFound) {
		return domain.Account{}, false, nil
	} else if err != nil {
		return domain.Account{}, false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.Account{}, false, nil
	} else if err != nil {
		return domain.Account{}, false, err
	}

	u.Password = ""
	return u, true, nil
}

func (s *AppService) CreateUser(ctx context.Context, username, password, email string, admin bool) (int64, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	err := validate.SignUpForm(username, password, email)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return 0, err
	}

	id, err := s.DB.InsertUser(ctx, domain.Account{
		Username: username,
		Email:    email,
		Password: string(hash),
		Admin:    admin,
	})
	return id, translate(err)
}

func (s *AppService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return s.DB.GetUserByID(ctx, id)
}

func (s *AppService) SetAdmin(ctx context.Context, id int64, admin bool) error {
	return s.DB.SetAdmin(ctx, id, admin)
}
