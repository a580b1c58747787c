package db

//go:generate mockgen -destination=../mocks/mock_db.go -package=mock_db github.com/sidereusnuntius/blocipedia/internal/db DB

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal database error")
)

type DB interface {
	Users
	Wikis
	Charges
}
