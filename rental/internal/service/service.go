package service

import (
	"context"
	"time"

	"github.com/Astemirdum/movie-rental/pkg/calendar"
	"github.com/Astemirdum/movie-rental/rental/internal/errs"
	"github.com/Astemirdum/movie-rental/rental/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Repository interface {
	SaveRental(ctx context.Context, rental model.Rental) error
	PendingRentals(ctx context.Context) ([]model.Rental, error)

	GetMovies(ctx context.Context, movieUids []string) ([]model.Movie, error)
	ListMovies(ctx context.Context) ([]model.Movie, error)
	CreateMovie(ctx context.Context, movie model.Movie) (model.Movie, error)
	GetRental(ctx context.Context, rentalUid string) (model.Rental, error)
	GetRentals(ctx context.Context, username string) ([]model.Rental, error)
	ReturnRental(ctx context.Context, username, rentalUid string) error
}

type CreditChecker interface {
	IsDenylisted(ctx context.Context, customer model.Customer) (bool, error)
}

type Notifier interface {
	NotifyOverdue(ctx context.Context, customer model.Customer) error
}

type Service struct {
	log      *zap.Logger
	repo     Repository
	credit   CreditChecker
	notifier Notifier
	clock    calendar.Clock
	skipDay  time.Weekday
}

type Option func(s *Service)

func WithClock(clock calendar.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithSkipDay sets the weekday a due date may not fall on.
func WithSkipDay(day time.Weekday) Option {
	return func(s *Service) {
		s.skipDay = day
	}
}

func NewService(repo Repository, credit CreditChecker, notifier Notifier, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log.Named("service"),
		repo:     repo,
		credit:   credit,
		notifier: notifier,
		clock:    calendar.System,
		skipDay:  time.Sunday,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Rent(ctx context.Context, customer *model.Customer, movies []model.Movie) (model.Rental, error) {
	if customer == nil {
		return model.Rental{}, errs.ErrEmptyCustomer
	}
	if len(movies) == 0 {
		return model.Rental{}, errs.ErrEmptyMovieList
	}
	for i := range movies {
		if movies[i].Stock <= 0 {
			return model.Rental{}, errs.ErrOutOfStock
		}
	}

	switch s.creditStanding(ctx, *customer) {
	case model.StandingUnavailable:
		return model.Rental{}, errs.ErrCreditCheckUnavailable
	case model.StandingDenylisted:
		return model.Rental{}, errs.ErrCustomerDenylisted
	case model.StandingClear:
	}

	now := s.clock.Now()
	rental := model.Rental{
		RentalUid: uuid.NewString(),
		Customer:  *customer,
		Movies:    append([]model.Movie(nil), movies...),
		Status:    model.StatusRented,
		RentedAt:  now,
		DueAt:     dueDate(now, s.skipDay),
		Value:     TotalValue(movies),
	}
	if err := s.repo.SaveRental(ctx, rental); err != nil {
		return model.Rental{}, err
	}
	s.log.Debug("rented",
		zap.String("rental_uid", rental.RentalUid),
		zap.String("username", customer.Username),
		zap.Int("movies", len(movies)),
		zap.Stringer("value", rental.Value),
	)
	return rental, nil
}

// creditStanding never fails: a broken lookup is reported as StandingUnavailable.
func (s *Service) creditStanding(ctx context.Context, customer model.Customer) model.CreditStanding {
	denylisted, err := s.credit.IsDenylisted(ctx, customer)
	if err != nil {
		s.log.Warn("credit check", zap.String("username", customer.Username), zap.Error(err))
		return model.StandingUnavailable
	}
	if denylisted {
		return model.StandingDenylisted
	}
	return model.StandingClear
}

// NotifyOverdue sends one notice per pending rental past its due date and
// returns how many were sent.
func (s *Service) NotifyOverdue(ctx context.Context) (int, error) {
	rentals, err := s.repo.PendingRentals(ctx)
	if err != nil {
		return 0, err
	}
	now := s.clock.Now()
	notified := 0
	for _, rental := range rentals {
		if !rental.DueAt.Before(now) {
			continue
		}
		if err := s.notifier.NotifyOverdue(ctx, rental.Customer); err != nil {
			return notified, err
		}
		notified++
	}
	return notified, nil
}

// Extend saves a new rental for the same customer and movies, due days from now
// and worth days times the original value. The original rental is left as is.
func (s *Service) Extend(ctx context.Context, rental model.Rental, days int) (model.Rental, error) {
	if days <= 0 {
		return model.Rental{}, errs.ErrInvalidDays
	}
	extended := model.Rental{
		RentalUid:  uuid.NewString(),
		ExtendsUid: rental.RentalUid,
		Customer:   rental.Customer,
		Movies:     append([]model.Movie(nil), rental.Movies...),
		Status:     model.StatusRented,
		RentedAt:   s.clock.Now(),
		DueAt:      s.clock.OffsetFromNow(days),
		Value:      rental.Value.Mul(decimal.NewFromInt(int64(days))),
	}
	if err := s.repo.SaveRental(ctx, extended); err != nil {
		return model.Rental{}, err
	}
	return extended, nil
}

func (s *Service) RentMovies(ctx context.Context, customer *model.Customer, movieUids []string) (model.Rental, error) {
	var movies []model.Movie
	if customer != nil && len(movieUids) > 0 {
		var err error
		if movies, err = s.repo.GetMovies(ctx, movieUids); err != nil {
			return model.Rental{}, err
		}
	}
	return s.Rent(ctx, customer, movies)
}

func (s *Service) ExtendRental(ctx context.Context, username, rentalUid string, days int) (model.Rental, error) {
	if days <= 0 {
		return model.Rental{}, errs.ErrInvalidDays
	}
	rental, err := s.repo.GetRental(ctx, rentalUid)
	if err != nil {
		return model.Rental{}, err
	}
	if rental.Customer.Username != username {
		return model.Rental{}, errs.ErrNotFound
	}
	return s.Extend(ctx, rental, days)
}

func (s *Service) GetRentals(ctx context.Context, username string) ([]model.Rental, error) {
	return s.repo.GetRentals(ctx, username)
}

func (s *Service) ReturnRental(ctx context.Context, username, rentalUid string) error {
	return s.repo.ReturnRental(ctx, username, rentalUid)
}

func (s *Service) ListMovies(ctx context.Context) ([]model.Movie, error) {
	return s.repo.ListMovies(ctx)
}

func (s *Service) CreateMovie(ctx context.Context, req model.CreateMovieRequest) (model.Movie, error) {
	if req.Price.IsNegative() {
		return model.Movie{}, errs.ErrNegativePrice
	}
	return s.repo.CreateMovie(ctx, model.Movie{
		MovieUid: uuid.NewString(),
		Name:     req.Name,
		Stock:    req.Stock,
		Price:    req.Price,
	})
}
