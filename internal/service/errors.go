package service

import (
	"errors"

	"companyapi/internal/repository"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidPageNumber = errors.New("page number must be 1 or greater")
)

// translate maps repository absence onto ErrNotFound and passes every other error through untouched.
func translate(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
