package repository

import (
	"context"

	"github.com/Astemirdum/movie-rental/rental/internal/errs"
	"github.com/Astemirdum/movie-rental/rental/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var movieColumns = []string{"movie_uid", "name", "stock", "price"}

// GetMovies returns one movie per uid, in the order of movieUids.
func (r *repository) GetMovies(ctx context.Context, movieUids []string) ([]model.Movie, error) {
	q, args, err := r.qb.Select(movieColumns...).
		From(moviesTableName).
		Where(sq.Eq{"movie_uid": movieUids}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var found []model.Movie
	if err := r.db.SelectContext(ctx, &found, q, args...); err != nil {
		return nil, err
	}

	byUid := make(map[string]model.Movie, len(found))
	for _, m := range found {
		byUid[m.MovieUid] = m
	}
	movies := make([]model.Movie, 0, len(movieUids))
	for _, uid := range movieUids {
		m, ok := byUid[uid]
		if !ok {
			return nil, errors.Wrapf(errs.ErrNotFound, "movie %s", uid)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func (r *repository) ListMovies(ctx context.Context) ([]model.Movie, error) {
	q, args, err := r.qb.Select(movieColumns...).
		From(moviesTableName).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListMovies", zap.String("query", q))

	movies := []model.Movie{}
	if err := r.db.SelectContext(ctx, &movies, q, args...); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *repository) CreateMovie(ctx context.Context, movie model.Movie) (model.Movie, error) {
	q, args, err := r.qb.Insert(moviesTableName).
		Columns(movieColumns...).
		Values(movie.MovieUid, movie.Name, movie.Stock, movie.Price).
		ToSql()
	if err != nil {
		return model.Movie{}, err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("CreateMovie", zap.String("q", q), zap.Any("args", args))
		return model.Movie{}, translate(err)
	}
	return movie, nil
}
