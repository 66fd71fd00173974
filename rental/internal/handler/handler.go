package handler

import (
	"net/http"

	"github.com/Astemirdum/movie-rental/pkg/validate"
	"github.com/Astemirdum/movie-rental/rental/internal/errs"
	"github.com/Astemirdum/movie-rental/rental/internal/model"
	_ "github.com/Astemirdum/movie-rental/rental/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	rentalSvc RentalService
	log       *zap.Logger
}

func New(rentalSvc RentalService, log *zap.Logger) *Handler {
	return &Handler{
		rentalSvc: rentalSvc,
		log:       log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
	}))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	// operator routes, not published through the gateway
	manage := e.Group("/manage", newRateLimiterMW(baseRPS))
	manage.GET("/health", h.Health)
	manage.POST("/rentals/overdue/notify", h.NotifyOverdue,
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)))

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)
	h.register(api)

	return e
}

func (h *Handler) register(api *echo.Group) {
	api.GET("/movies", h.ListMovies)
	api.POST("/movies", h.CreateMovie)

	api.POST("/rentals", h.RentMovies, customerMW)
	api.GET("/rentals", h.GetRentals, customerMW)
	api.POST("/rentals/:rentalUid/extend", h.ExtendRental, customerMW)
	api.POST("/rentals/:rentalUid/return", h.ReturnRental, customerMW)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// ListMovies godoc
// @Summary  List the catalog
// @Tags     movies
// @Produce  json
// @Success  200  {array}   model.Movie
// @Failure  500  {object}  echo.HTTPError
// @Router   /movies [get]
func (h *Handler) ListMovies(c echo.Context) error {
	movies, err := h.rentalSvc.ListMovies(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, movies)
}

// CreateMovie godoc
// @Summary  Add a movie to the catalog
// @Tags     movies
// @Accept   json
// @Produce  json
// @Param    movie  body      model.CreateMovieRequest  true  "movie"
// @Success  201    {object}  model.Movie
// @Failure  400    {object}  echo.HTTPError
// @Failure  409    {object}  echo.HTTPError
// @Router   /movies [post]
func (h *Handler) CreateMovie(c echo.Context) error {
	var req model.CreateMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	movie, err := h.rentalSvc.CreateMovie(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, movie)
}

// RentMovies godoc
// @Summary  Rent movies
// @Tags     rentals
// @Accept   json
// @Produce  json
// @Param    X-User-Name   header    string             true   "customer username"
// @Param    X-User-Email  header    string             false  "customer email"
// @Param    rent          body      model.RentRequest  true   "movie uids in basket order"
// @Success  201           {object}  model.Rental
// @Failure  400           {object}  echo.HTTPError
// @Failure  401           {object}  echo.HTTPError
// @Failure  403           {object}  echo.HTTPError
// @Failure  404           {object}  echo.HTTPError
// @Failure  503           {object}  echo.HTTPError
// @Router   /rentals [post]
func (h *Handler) RentMovies(c echo.Context) error {
	customer, err := getCustomer(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.RentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rental, err := h.rentalSvc.RentMovies(c.Request().Context(), customer, req.MovieUids)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rental)
}

// GetRentals godoc
// @Summary  List the caller's rentals
// @Tags     rentals
// @Produce  json
// @Param    X-User-Name  header    string  true  "customer username"
// @Success  200          {array}   model.Rental
// @Failure  401          {object}  echo.HTTPError
// @Router   /rentals [get]
func (h *Handler) GetRentals(c echo.Context) error {
	customer, err := getCustomer(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rentals, err := h.rentalSvc.GetRentals(c.Request().Context(), customer.Username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rentals)
}

// ExtendRental godoc
// @Summary  Extend a rental by a number of days
// @Tags     rentals
// @Accept   json
// @Produce  json
// @Param    X-User-Name  header    string               true  "customer username"
// @Param    rentalUid    path      string               true  "rental uid"
// @Param    extend       body      model.ExtendRequest  true  "days"
// @Success  201          {object}  model.Rental
// @Failure  400          {object}  echo.HTTPError
// @Failure  401          {object}  echo.HTTPError
// @Failure  404          {object}  echo.HTTPError
// @Router   /rentals/{rentalUid}/extend [post]
func (h *Handler) ExtendRental(c echo.Context) error {
	customer, err := getCustomer(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rentalUid := c.Param("rentalUid")
	if rentalUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "rentalUid is empty")
	}
	var req model.ExtendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rental, err := h.rentalSvc.ExtendRental(c.Request().Context(), customer.Username, rentalUid, req.Days)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rental)
}

// ReturnRental godoc
// @Summary  Return a rental
// @Tags     rentals
// @Param    X-User-Name  header    string  true  "customer username"
// @Param    rentalUid    path      string  true  "rental uid"
// @Success  204
// @Failure  401          {object}  echo.HTTPError
// @Failure  404          {object}  echo.HTTPError
// @Router   /rentals/{rentalUid}/return [post]
func (h *Handler) ReturnRental(c echo.Context) error {
	customer, err := getCustomer(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rentalUid := c.Param("rentalUid")
	if rentalUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "rentalUid is empty")
	}
	if err := h.rentalSvc.ReturnRental(c.Request().Context(), customer.Username, rentalUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) NotifyOverdue(c echo.Context) error {
	n, err := h.rentalSvc.NotifyOverdue(c.Request().Context())
	if err != nil {
		h.log.Error("NotifyOverdue", zap.Int("notified", n), zap.Error(err))
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.NotifyOverdueResponse{Notified: n})
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrEmptyCustomer),
		errors.Is(err, errs.ErrEmptyMovieList),
		errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrInvalidDays),
		errors.Is(err, errs.ErrNegativePrice):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrCustomerDenylisted):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrCreditCheckUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
