package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreFailure       = errors.New("account store failure")
	ErrHashVerification   = errors.New("password hash verification failed")
	ErrTokenIssuance      = errors.New("session token issuance failed")
)
