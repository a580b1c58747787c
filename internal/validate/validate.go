package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
	MaxUsernameLen = 64
	MaxTitleLen    = 255
	MaxBodyLen     = 256 * 1024
)

func SignUpForm(name, password, email string) error {
	return errors.Join(
		Username(name),
		Email(email),
		Password(password),
	)
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	_, err := mail.ParseAddress(email)

	return err
}

func Username(username string) error {
	if l := len(username); l == 0 {
		return errors.New("empty username")
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}
	if strings.ContainsAny(username, " \t\n@/") {
		return errors.New("username contains invalid characters")
	}
	return nil
}

func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("empty title")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return fmt.Errorf("title too long; max %d characters", MaxTitleLen)
	}
	return nil
}

func Body(body string) error {
	if len(body) > MaxBodyLen {
		return fmt.Errorf("body too long; max %d bytes", MaxBodyLen)
	}
	return nil
}

// Wiki validates a wiki as it is about to be persisted.
func Wiki(w domain.Wiki) error {
	return errors.Join(Title(w.Title), Body(w.Body))
}
