package adapter

import "errors"

var (
	ErrEmptyAddress  = errors.New("empty address")
	ErrAddressNoHost = errors.New("address must include host and scheme")
	ErrNoToken       = errors.New("no bearer token set")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)
