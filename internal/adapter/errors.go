package adapter

import "errors"

var (
	ErrNotFound   = errors.New("card not found")
	ErrNotCreated = errors.New("card not created")
	ErrNotUpdated = errors.New("card not updated")
	ErrNotDeleted = errors.New("card not deleted")

	ErrBadRequest          = errors.New("bad request")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedResponse  = errors.New("unexpected response")
)
