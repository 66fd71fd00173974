package handler

import (
	"context"

	"github.com/Astemirdum/movie-rental/rental/internal/model"
	"github.com/Astemirdum/movie-rental/rental/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RentalService interface {
	RentMovies(ctx context.Context, customer *model.Customer, movieUids []string) (model.Rental, error)
	ExtendRental(ctx context.Context, username, rentalUid string, days int) (model.Rental, error)
	NotifyOverdue(ctx context.Context) (int, error)
	GetRentals(ctx context.Context, username string) ([]model.Rental, error)
	ReturnRental(ctx context.Context, username, rentalUid string) error
	ListMovies(ctx context.Context) ([]model.Movie, error)
	CreateMovie(ctx context.Context, req model.CreateMovieRequest) (model.Movie, error)
}

var _ RentalService = (*service.Service)(nil)
