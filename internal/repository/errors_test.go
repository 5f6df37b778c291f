package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"yayayum/internal/models"
	"yayayum/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapStoreError(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		err  error
		want models.ErrorKind
	}{
		{"Record Not Found", gorm.ErrRecordNotFound, models.KindNotFound},
		{"Gorm Foreign Key", gorm.ErrForeignKeyViolated, models.KindReference},
		{"Gorm Duplicate", gorm.ErrDuplicatedKey, models.KindReference},
		{"Gorm Check", gorm.ErrCheckConstraintViolated, models.KindValidation},
		{"Postgres Foreign Key", &pgconn.PgError{Code: "23503"}, models.KindReference},
		{"Wrapped Postgres Unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), models.KindReference},
		{"SQLite Foreign Key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, models.KindReference},
		{"SQLite Primary Key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, models.KindReference},
		{"SQLite Check", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, models.KindValidation},
		{"Message Fallback", errors.New("FOREIGN KEY constraint failed"), models.KindReference},
		{"Codec", fmt.Errorf("sql: Scan error: %w", &models.CodecError{Input: "v1:Soup", Reason: "unknown"}), models.KindCodec},
		{"Deadline", context.DeadlineExceeded, models.KindStore},
		{"Other", errors.New("dial tcp: connection refused"), models.KindStore},
		{"Already Mapped", models.NewValidationError("rating out of range"), models.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapStoreError(ctx, "Rating", 1, tt.err)
			assert.Equal(t, tt.want, models.KindOf(got))
		})
	}

	assert.NoError(t, mapStoreError(ctx, "Rating", 1, nil))
}

func TestMapStoreError_NotFoundMessage(t *testing.T) {
	err := mapStoreError(context.Background(), "Dish", uint(9), gorm.ErrRecordNotFound)
	assert.EqualError(t, err, "Dish with ID 9 not found")
}

func TestMapStoreError_CountsFaults(t *testing.T) {
	ctx := context.Background()
	codec := observability.StoreFaults.WithLabelValues(string(models.KindCodec), "Dish")
	store := observability.StoreFaults.WithLabelValues(string(models.KindStore), "Dish")
	beforeCodec := testutil.ToFloat64(codec)
	beforeStore := testutil.ToFloat64(store)

	_ = mapStoreError(ctx, "Dish", 1, &models.CodecError{Reason: "unknown"})
	_ = mapStoreError(ctx, "Dish", 1, errors.New("disk I/O error"))
	_ = mapStoreError(ctx, "Dish", 1, gorm.ErrRecordNotFound)

	assert.Equal(t, beforeCodec+1, testutil.ToFloat64(codec))
	assert.Equal(t, beforeStore+1, testutil.ToFloat64(store))
}
