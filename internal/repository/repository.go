// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import "errors"

// ErrNotFound is returned when the requested row does not exist,
// including UPDATE and DELETE statements that affect no rows.
var ErrNotFound = errors.New("record not found")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// ContactFilter narrows a contact query. Nil fields impose no constraint;
// present fields are combined with AND.
type ContactFilter struct {
	CountryID *int64
	CompanyID *int64
}
