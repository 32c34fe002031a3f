package repository

import (
	"context"
)

// Exists reports whether a row with the given id is present.
func (t *Table[T]) Exists(ctx context.Context, id uint) (bool, error) {
	total, err := t.CountWhere(ctx, IDEquals(id))
	if err != nil {
		return false, err
	}
	return total > 0, nil
}

// FindByIDs loads every row whose id is in ids, ordered by id. An empty id set
// returns an empty slice without touching the store.
func (t *Table[T]) FindByIDs(ctx context.Context, ids []uint) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}

	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	rows := make([]T, 0, len(ids))
	if err := t.query(ctx, In("id", ids)).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, t.fail("find by ids", err)
	}
	return rows, nil
}
