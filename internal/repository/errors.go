package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"yayayum/internal/middleware"
	"yayayum/internal/models"
	"yayayum/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes for integrity violations.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// mapStoreError normalizes a storage outcome into the models error taxonomy.
// Codec and store faults are logged and counted; the rest are caller errors.
func mapStoreError(ctx context.Context, resource string, id any, err error) error {
	if err == nil {
		return nil
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}

	var codecErr *models.CodecError
	if errors.As(err, &codecErr) {
		reportFault(ctx, models.KindCodec, resource, err)
		return models.NewCodecError(codecErr)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return models.NewStoreError(err)
	}

	switch {
	case isForeignKeyViolation(err):
		return models.NewReferenceError("Referenced dish or user does not exist", err)
	case isUniqueViolation(err):
		return models.NewReferenceError(resource+" already exists", err)
	case isCheckViolation(err):
		return models.NewValidationError(resource + " value violates a table constraint")
	}

	reportFault(ctx, models.KindStore, resource, err)
	return models.NewStoreError(err)
}

func reportFault(ctx context.Context, kind models.ErrorKind, resource string, err error) {
	observability.StoreFaults.WithLabelValues(string(kind), resource).Inc()
	middleware.Logger.ErrorContext(ctx, "entity store fault",
		slog.String("kind", string(kind)),
		slog.String("resource", resource),
		slog.String("error", err.Error()),
	)
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func isCheckViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCheckViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintCheck
	}
	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}
