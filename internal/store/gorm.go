package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Gorm is the persistent backing: one relational table per resource, keys
// assigned by the database's auto-increment. Concurrent creates rely on the
// engine's own transaction guarantees; no extra locking here.
type Gorm[T any, P Pointer[T]] struct {
	db *gorm.DB
}

func NewGorm[T any, P Pointer[T]](db *gorm.DB) *Gorm[T, P] {
	return &Gorm[T, P]{db: db}
}

func (g *Gorm[T, P]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := g.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (g *Gorm[T, P]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	err := g.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserts with a zero key so the engine assigns the real one; rec
// carries the assigned key back to the caller.
func (g *Gorm[T, P]) Create(ctx context.Context, rec *T) error {
	P(rec).SetID(0)
	return g.db.WithContext(ctx).Create(rec).Error
}

// Update saves the full record over an existing row. Absent keys are a
// silent no-op, never an insert.
func (g *Gorm[T, P]) Update(ctx context.Context, id uint, rec *T) error {
	var existing T
	err := g.db.WithContext(ctx).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	P(rec).SetID(id)
	return g.db.WithContext(ctx).Save(rec).Error
}

func (g *Gorm[T, P]) Delete(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(new(T), id).Error
}
