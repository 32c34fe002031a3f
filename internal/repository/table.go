package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageError wraps any failure reported by the relational store.
type StorageError struct {
	Op    string
	Table string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Predicate narrows a query. A nil Predicate selects every row.
type Predicate func(*gorm.DB) *gorm.DB

// Table is a typed accessor over one catalog table.
type Table[T any] struct {
	conn    *gorm.DB
	name    string
	timeout time.Duration
}

func NewTable[T any](conn *gorm.DB, timeout time.Duration) *Table[T] {
	var zero T
	name := fmt.Sprintf("%T", zero)
	if tn, ok := any(zero).(interface{ TableName() string }); ok {
		name = tn.TableName()
	}
	return &Table[T]{
		conn:    conn,
		name:    name,
		timeout: timeout,
	}
}

func (t *Table[T]) Name() string {
	return t.name
}

func (t *Table[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || t.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, t.timeout)
}

func (t *Table[T]) fail(op string, err error) error {
	return &StorageError{Op: op, Table: t.name, Err: err}
}

func (t *Table[T]) query(ctx context.Context, pred Predicate) *gorm.DB {
	db := t.conn.WithContext(ctx).Model(new(T))
	if pred != nil {
		db = pred(db)
	}
	return db
}

func (t *Table[T]) FindAll(ctx context.Context) ([]T, error) {
	return t.FindWhere(ctx, nil)
}

// FindByID returns nil without an error when no row has the given id.
func (t *Table[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	var row T
	err := t.conn.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, t.fail("find by id", err)
	}
	return &row, nil
}

func (t *Table[T]) FindWhere(ctx context.Context, pred Predicate) ([]T, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	rows := make([]T, 0)
	if err := t.query(ctx, pred).Find(&rows).Error; err != nil {
		return nil, t.fail("find", err)
	}
	return rows, nil
}

func (t *Table[T]) CountWhere(ctx context.Context, pred Predicate) (int64, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := t.query(ctx, pred).Count(&total).Error; err != nil {
		return 0, t.fail("count", err)
	}
	return total, nil
}

// FindPage returns at most limit rows matching pred, sorted by order, after skipping offset rows.
func (t *Table[T]) FindPage(ctx context.Context, pred Predicate, order string, offset, limit int) ([]T, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	rows := make([]T, 0, limit)
	err := t.query(ctx, pred).Order(order).Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, t.fail("find page", err)
	}
	return rows, nil
}

// Insert stores row and fills in its generated id. Association fields are never written.
func (t *Table[T]) Insert(ctx context.Context, row *T) error {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	if err := t.conn.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return t.fail("insert", err)
	}
	return nil
}
