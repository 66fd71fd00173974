package errs

import (
	"errors"
)

var (
	ErrEmptyCustomer          = errors.New("empty customer")
	ErrEmptyMovieList         = errors.New("empty movie list")
	ErrOutOfStock             = errors.New("movie out of stock")
	ErrCreditCheckUnavailable = errors.New("credit-check service unavailable, retry later")
	ErrCustomerDenylisted     = errors.New("customer denylisted")

	ErrInvalidDays   = errors.New("days must be positive")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrUserName      = errors.New("username is required")
)
