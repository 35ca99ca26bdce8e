package adapter

import "errors"

var (
	ErrEmptyAddress   = errors.New("empty address")
	ErrInvalidAddress = errors.New("address must include host and scheme")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
