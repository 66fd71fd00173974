package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Movie struct {
	MovieUid string          `json:"movieUid" db:"movie_uid"`
	Name     string          `json:"name" db:"name"`
	Stock    int             `json:"stock" db:"stock"`
	Price    decimal.Decimal `json:"price" db:"price" swaggertype:"string"`
}

type Customer struct {
	Username string `json:"username" db:"username"`
	Email    string `json:"email,omitempty" db:"email"`
}

type Status string

const (
	StatusRented   Status = "RENTED"
	StatusReturned Status = "RETURNED"
	// StatusExtended marks a rental whose copies were taken over by an extension.
	StatusExtended Status = "EXTENDED"
)

// Rental is never changed once built; extending one produces a new Rental.
type Rental struct {
	RentalUid  string          `json:"rentalUid"`
	// ExtendsUid is the rental this one extends, empty for a fresh rental.
	ExtendsUid string          `json:"extendsUid,omitempty"`
	Customer   Customer        `json:"customer"`
	Movies     []Movie         `json:"movies"`
	Status     Status          `json:"status"`
	RentedAt   time.Time       `json:"rentedAt"`
	DueAt      time.Time       `json:"dueAt"`
	Value      decimal.Decimal `json:"value" swaggertype:"string"`
}

// CreditStanding is the outcome of a blacklist lookup.
type CreditStanding uint8

const (
	StandingClear CreditStanding = iota + 1
	StandingDenylisted
	StandingUnavailable
)

func (s CreditStanding) String() string {
	switch s {
	case StandingClear:
		return "clear"
	case StandingDenylisted:
		return "denylisted"
	case StandingUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

type RentRequest struct {
	MovieUids []string `json:"movieUids"`
}

type ExtendRequest struct {
	Days int `json:"days" validate:"required"`
}

type CreateMovieRequest struct {
	Name  string          `json:"name" validate:"required"`
	Stock int             `json:"stock" validate:"min=0"`
	Price decimal.Decimal `json:"price" swaggertype:"string"`
}

type NotifyOverdueResponse struct {
	Notified int `json:"notified"`
}
