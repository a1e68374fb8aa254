// Package service implements the business layer of the panel: one service
// per record type, each mediating between form DTOs and the database.
package service

import "errors"

// The two application-level failure kinds of the service layer. Services
// wrap them with context, match with errors.Is.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)
