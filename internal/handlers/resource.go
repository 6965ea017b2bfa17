package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"jobportal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Resource binds one store to the uniform five-endpoint CRUD contract.
// Every portal resource goes through this one handler; only the record
// type and the path segment differ.
type Resource[T any, P store.Pointer[T]] struct {
	name  string
	store store.Store[T]
}

func NewResource[T any, P store.Pointer[T]](name string, s store.Store[T]) *Resource[T, P] {
	return &Resource[T, P]{name: name, store: s}
}

// Register mounts the five routes for one resource under the api group.
func Register[T any, P store.Pointer[T]](api *gin.RouterGroup, name string, s store.Store[T]) {
	r := NewResource[T, P](name, s)
	api.GET("/"+name, r.List)
	api.GET("/"+name+"/:id", r.Get)
	api.POST("/"+name, r.Create)
	api.PUT("/"+name+"/:id", r.Update)
	api.DELETE("/"+name+"/:id", r.Delete)
}

func (r *Resource[T, P]) List(c *gin.Context) {
	recs, err := r.store.List(c.Request.Context())
	if err != nil {
		r.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (r *Resource[T, P]) Get(c *gin.Context) {
	id, ok := r.pathID(c)
	if !ok {
		return
	}
	rec, err := r.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": r.name + " not found"})
		return
	}
	if err != nil {
		r.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (r *Resource[T, P]) Create(c *gin.Context) {
	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := r.store.Create(c.Request.Context(), &rec); err != nil {
		r.fail(c, "create", err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/%s/%d", r.name, P(&rec).GetID()))
	c.JSON(http.StatusCreated, &rec)
}

// Update rejects a body whose key disagrees with the path, then performs a
// full-record replacement. Updating a missing record is not an error.
func (r *Resource[T, P]) Update(c *gin.Context) {
	id, ok := r.pathID(c)
	if !ok {
		return
	}
	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if P(&rec).GetID() != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body id does not match path id"})
		return
	}
	if err := r.store.Update(c.Request.Context(), id, &rec); err != nil {
		r.fail(c, "update", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes the record if present. Deleting a missing record is not
// an error.
func (r *Resource[T, P]) Delete(c *gin.Context) {
	id, ok := r.pathID(c)
	if !ok {
		return
	}
	if err := r.store.Delete(c.Request.Context(), id); err != nil {
		r.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Resource[T, P]) pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// fail logs the fault with its resource and operation and answers with a
// generic 500; driver detail never reaches the caller.
func (r *Resource[T, P]) fail(c *gin.Context, op string, err error) {
	log.Error().Err(err).Str("resource", r.name).Str("operation", op).Msg("store operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
