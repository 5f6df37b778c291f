// Package repository implements the entity store: one repository per entity
// kind over an injected *gorm.DB.
package repository

import (
	"context"

	"yayayum/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// newestFirst orders ratings by date, breaking ties by id.
var newestFirst = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "date"}, Desc: true},
	{Column: clause.Column{Name: "id"}, Desc: true},
}}

// traced starts a store span; call the returned func with the final error.
func traced(ctx context.Context, db *gorm.DB, table, operation string) (context.Context, func(*error)) {
	ctx, span := observability.StartStoreSpan(ctx, db.Dialector.Name(), operation, table)
	return ctx, func(errp *error) {
		observability.EndStoreSpan(span, *errp)
	}
}
