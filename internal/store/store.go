// Package store provides the persistence layer behind every portal
// resource: one generic CRUD contract with two interchangeable backings,
// an in-memory map and a GORM-managed relational table.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound reports that no record matches the requested key. It is the
// only non-fault condition a store returns; anything else is a real fault
// from the backing medium.
var ErrNotFound = errors.New("record not found")

// Entity is implemented by every model: access to the primary key so the
// generic stores can assign and compare it.
type Entity interface {
	GetID() uint
	SetID(id uint)
}

// Pointer constrains a type parameter to "pointer to T that is an Entity".
type Pointer[T any] interface {
	*T
	Entity
}

// Store is the CRUD contract shared by all resources.
//
// Get returns ErrNotFound for absent keys. Update and Delete are silent
// no-ops when the key is absent: a nil error with no effect.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, id uint, rec *T) error
	Delete(ctx context.Context, id uint) error
}

// The memory backing runs the same model hooks GORM runs, so behavior like
// message timestamp stamping and user token defaulting does not depend on
// which backing is configured. Hook order matches GORM: BeforeSave, then
// BeforeCreate.

func callSaveHook(rec any) error {
	if h, ok := rec.(interface{ BeforeSave(*gorm.DB) error }); ok {
		return h.BeforeSave(nil)
	}
	return nil
}

func callCreateHook(rec any) error {
	if h, ok := rec.(interface{ BeforeCreate(*gorm.DB) error }); ok {
		return h.BeforeCreate(nil)
	}
	return nil
}
