// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built straight from SQL and never go through the
// container aggregate, so rows the engine would reject are still visible.
package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ContainerView is the read model of a container joined with its location
// and catalog item. Nullable columns stay pointers.
type ContainerView struct {
	Code         string
	SKU          *string
	Quantity     *int
	Status       *string
	LocationCode *string
	ItemName     *string
}

const selectContainerViews = `
	SELECT
		c.code,
		c.sku,
		c.quantity,
		c.status,
		l.code,
		i.name
	FROM containers c
	LEFT JOIN locations l ON l.id = c.location_id
	LEFT JOIN items i ON i.sku = c.sku
`

func scanContainerViews(ctx context.Context, db *gorm.DB, sql string, args ...any) ([]ContainerView, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ContainerView, 0)
	for rows.Next() {
		view, err := scanContainerView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func scanContainerView(rows *sql.Rows) (ContainerView, error) {
	var (
		view         ContainerView
		sku          sql.NullString
		quantity     sql.NullInt64
		status       sql.NullString
		locationCode sql.NullString
		itemName     sql.NullString
	)

	if err := rows.Scan(&view.Code, &sku, &quantity, &status, &locationCode, &itemName); err != nil {
		return ContainerView{}, err
	}

	view.SKU = nullString(sku)
	view.Status = nullString(status)
	view.LocationCode = nullString(locationCode)
	view.ItemName = nullString(itemName)
	if quantity.Valid {
		q := int(quantity.Int64)
		view.Quantity = &q
	}

	return view, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
