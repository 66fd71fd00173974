package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Astemirdum/movie-rental/pkg/database"
	"github.com/Astemirdum/movie-rental/rental/internal/errs"
	"github.com/Astemirdum/movie-rental/rental/internal/model"
	"github.com/Astemirdum/movie-rental/rental/internal/service"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var _ service.Repository = (*repository)(nil)

type repository struct {
	db  *sqlx.DB
	qb  sq.StatementBuilderType
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		qb:  database.StatementBuilder(db),
		log: log.Named("repo"),
	}, nil
}

const (
	moviesTableName       = `movies`
	rentalsTableName      = `rentals`
	rentalMoviesTableName = `rental_movies`
)

var rentalColumns = []string{"rental_uid", "extends_uid", "username", "email", "status", "rented_at", "due_at", "value"}

type rentalRow struct {
	RentalUid  string          `db:"rental_uid"`
	ExtendsUid sql.NullString  `db:"extends_uid"`
	Username   string          `db:"username"`
	Email      string          `db:"email"`
	Status     model.Status    `db:"status"`
	RentedAt   time.Time       `db:"rented_at"`
	DueAt      time.Time       `db:"due_at"`
	Value      decimal.Decimal `db:"value"`
}

func (r rentalRow) toModel(movies []model.Movie) model.Rental {
	return model.Rental{
		RentalUid:  r.RentalUid,
		ExtendsUid: r.ExtendsUid.String,
		Customer:   model.Customer{Username: r.Username, Email: r.Email},
		Movies:     movies,
		Status:     r.Status,
		RentedAt:   r.RentedAt,
		DueAt:      r.DueAt,
		Value:      r.Value,
	}
}

type rentalMovieRow struct {
	RentalUid string          `db:"rental_uid"`
	Position  int             `db:"position"`
	MovieUid  string          `db:"movie_uid"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Stock     int             `db:"stock"`
}

// SaveRental stores the rental with its basket. A fresh rental takes one copy
// of every basket entry out of stock and fails with errs.ErrOutOfStock when a
// copy is missing. An extension takes over the copies of the rental it extends,
// which is marked StatusExtended.
func (r *repository) SaveRental(ctx context.Context, rental model.Rental) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if rental.ExtendsUid != "" {
		if err = r.takeOver(ctx, tx, rental); err != nil {
			return err
		}
	}

	q, args, err := r.qb.Insert(rentalsTableName).
		Columns(rentalColumns...).
		Values(rental.RentalUid, sql.NullString{String: rental.ExtendsUid, Valid: rental.ExtendsUid != ""},
			rental.Customer.Username, rental.Customer.Email, rental.Status,
			rental.RentedAt.UTC(), rental.DueAt.UTC(), rental.Value).
		ToSql()
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("SaveRental", zap.String("q", q), zap.Any("args", args))
		return translate(err)
	}

	if rental.ExtendsUid == "" {
		for _, m := range rental.Movies {
			if err = r.availableCount(ctx, tx, m.MovieUid, false); err != nil {
				return err
			}
		}
	}

	if len(rental.Movies) > 0 {
		ins := r.qb.Insert(rentalMoviesTableName).Columns("rental_uid", "position", "movie_uid", "name", "price")
		for i, m := range rental.Movies {
			ins = ins.Values(rental.RentalUid, i, m.MovieUid, m.Name, m.Price)
		}
		if q, args, err = ins.ToSql(); err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, q, args...); err != nil {
			return errors.Wrap(err, "insert rental movies")
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}

func (r *repository) PendingRentals(ctx context.Context) ([]model.Rental, error) {
	return r.selectRentals(ctx, sq.Eq{"status": model.StatusRented}, "due_at")
}

func (r *repository) GetRentals(ctx context.Context, username string) ([]model.Rental, error) {
	return r.selectRentals(ctx, sq.Eq{"username": username}, "rented_at")
}

func (r *repository) GetRental(ctx context.Context, rentalUid string) (model.Rental, error) {
	q, args, err := r.qb.Select(rentalColumns...).
		From(rentalsTableName).
		Where(sq.Eq{"rental_uid": rentalUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}
	var row rentalRow
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rental{}, errs.ErrNotFound
		}
		return model.Rental{}, err
	}
	movies, err := r.rentalMovies(ctx, []string{row.RentalUid})
	if err != nil {
		return model.Rental{}, err
	}
	return row.toModel(movies[row.RentalUid]), nil
}

// ReturnRental closes a pending rental and puts its copies back in stock.
func (r *repository) ReturnRental(ctx context.Context, username, rentalUid string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = r.setStatus(ctx, tx, username, rentalUid, model.StatusReturned); err != nil {
		return err
	}

	q, args, err := r.qb.Select("movie_uid").
		From(rentalMoviesTableName).
		Where(sq.Eq{"rental_uid": rentalUid}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return err
	}
	var movieUids []string
	if err = tx.SelectContext(ctx, &movieUids, q, args...); err != nil {
		return err
	}
	for _, uid := range movieUids {
		if err = r.availableCount(ctx, tx, uid, true); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}

func (r *repository) takeOver(ctx context.Context, tx *sqlx.Tx, rental model.Rental) error {
	err := r.setStatus(ctx, tx, rental.Customer.Username, rental.ExtendsUid, model.StatusExtended)
	if err != nil {
		return errors.Wrapf(err, "extended rental %s", rental.ExtendsUid)
	}
	return nil
}

// setStatus moves a pending rental of username to status.
func (r *repository) setStatus(ctx context.Context, tx *sqlx.Tx, username, rentalUid string, status model.Status) error {
	q, args, err := r.qb.Update(rentalsTableName).
		Set("status", status).
		Where(sq.Eq{"rental_uid": rentalUid, "username": username, "status": model.StatusRented}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// availableCount takes a copy of the movie out of stock, or puts one back
// when isReturn is set.
func (r *repository) availableCount(ctx context.Context, tx *sqlx.Tx, movieUid string, isReturn bool) error {
	upd := r.qb.Update(moviesTableName).Where(sq.Eq{"movie_uid": movieUid})
	if isReturn {
		upd = upd.Set("stock", sq.Expr("stock + 1"))
	} else {
		upd = upd.Set("stock", sq.Expr("stock - 1")).Where(sq.Gt{"stock": 0})
	}
	q, args, err := upd.ToSql()
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 && !isReturn {
		return errors.Wrapf(errs.ErrOutOfStock, "movie %s", movieUid)
	}
	return nil
}

func (r *repository) selectRentals(ctx context.Context, where sq.Eq, orderBy string) ([]model.Rental, error) {
	q, args, err := r.qb.Select(rentalColumns...).
		From(rentalsTableName).
		Where(where).
		OrderBy(orderBy, "rental_uid").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []rentalRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []model.Rental{}, nil
	}

	uids := make([]string, 0, len(rows))
	for _, row := range rows {
		uids = append(uids, row.RentalUid)
	}
	movies, err := r.rentalMovies(ctx, uids)
	if err != nil {
		return nil, err
	}

	rentals := make([]model.Rental, 0, len(rows))
	for _, row := range rows {
		rentals = append(rentals, row.toModel(movies[row.RentalUid]))
	}
	return rentals, nil
}

// rentalMovies loads the basket of each rental in position order. Stock is the
// catalog's current stock, not the stock at rental time.
func (r *repository) rentalMovies(ctx context.Context, rentalUids []string) (map[string][]model.Movie, error) {
	q, args, err := r.qb.Select("rm.rental_uid", "rm.position", "rm.movie_uid", "rm.name", "rm.price", "coalesce(m.stock, 0) as stock").
		From(rentalMoviesTableName + " rm").
		LeftJoin(moviesTableName + " m on m.movie_uid = rm.movie_uid").
		Where(sq.Eq{"rm.rental_uid": rentalUids}).
		OrderBy("rm.rental_uid", "rm.position").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []rentalMovieRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		r.log.Error("rentalMovies", zap.String("q", q), zap.Error(err))
		return nil, err
	}
	out := make(map[string][]model.Movie, len(rentalUids))
	for _, row := range rows {
		out[row.RentalUid] = append(out[row.RentalUid], model.Movie{
			MovieUid: row.MovieUid,
			Name:     row.Name,
			Stock:    row.Stock,
			Price:    row.Price,
		})
	}
	return out, nil
}

// translate maps driver constraint errors onto errs.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errors.Wrap(errs.ErrAlreadyExists, pgErr.ConstraintName)
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(liteErr.Error(), "UNIQUE") {
		return errs.ErrAlreadyExists
	}
	return err
}
