package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobportal/internal/models"
	"jobportal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, store.NewMemoryStores())
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSkillRoundTrip(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/skills", gin.H{"SkillName": "Go", "SkillDescription": "Backend"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/skills/1", w.Header().Get("Location"))

	var created models.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.SkillID)
	assert.Equal(t, "Go", created.SkillName)
	assert.Equal(t, "Backend", created.SkillDescription)

	w = doJSON(r, http.MethodGet, "/api/skills/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestListSkills(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/skills", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	doJSON(r, http.MethodPost, "/api/skills", gin.H{"SkillName": "Go"})
	doJSON(r, http.MethodPost, "/api/skills", gin.H{"SkillName": "SQL"})

	w = doJSON(r, http.MethodGet, "/api/skills", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var skills []models.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &skills))
	assert.Len(t, skills, 2)
}

func TestGetMissingSkillIs404(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/skills/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutKeyMismatchIs400(t *testing.T) {
	r := newTestRouter()
	doJSON(r, http.MethodPost, "/api/skills", gin.H{"SkillName": "Go"})

	// Mismatching body key is rejected whether or not either record exists.
	w := doJSON(r, http.MethodPut, "/api/skills/1", gin.H{"SkillID": 2, "SkillName": "Rust"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/api/skills/7", gin.H{"SkillID": 8, "SkillName": "Rust"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutReplacesRecord(t *testing.T) {
	r := newTestRouter()
	doJSON(r, http.MethodPost, "/api/skills", gin.H{"SkillName": "Go", "SkillDescription": "Backend"})

	w := doJSON(r, http.MethodPut, "/api/skills/1", gin.H{"SkillID": 1, "SkillName": "Rust"})
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/skills/1", nil)
	var got models.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Rust", got.SkillName)
	assert.Empty(t, got.SkillDescription)
}

func TestPutMissingRecordIs204(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPut, "/api/skills/5", gin.H{"SkillID": 5, "SkillName": "Go"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The no-op update must not have created anything.
	w = doJSON(r, http.MethodGet, "/api/skills/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMissingSkillIs204(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodDelete, "/api/skills/999", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteExistingSkill(t *testing.T) {
	r := newTestRouter()
	doJSON(r, http.MethodPost, "/api/skills", gin.H{"SkillName": "Go"})

	w := doJSON(r, http.MethodDelete, "/api/skills/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/api/skills/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNonNumericIDIs400(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/skills/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMissingRequiredFieldIs400(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/skills", gin.H{"SkillDescription": "no name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/users", gin.H{
		"Username": "ada", "Password": "pw", "Email": "ada@example.com", "UserRole": "Admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserAssignsToken(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/users", gin.H{
		"Username": "ada", "Password": "pw", "Email": "ada@example.com", "UserRole": "JobSeeker",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var u models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.NotEmpty(t, u.AuthenticationToken)
}

func TestCreateMessageOverridesTimestamp(t *testing.T) {
	r := newTestRouter()

	before := time.Now()
	w := doJSON(r, http.MethodPost, "/api/messages", gin.H{
		"SenderID": 1, "ReceiverID": 2, "MessageContent": "hi",
		"Timestamp": "2001-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var msg models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.False(t, msg.Timestamp.Before(before), "client-supplied timestamp must be overridden")
}

// failingStore simulates an unreachable backing medium.
type failingStore struct{}

func (failingStore) List(context.Context) ([]models.Skill, error) {
	return nil, errors.New("connection refused")
}
func (failingStore) Get(context.Context, uint) (*models.Skill, error) {
	return nil, errors.New("connection refused")
}
func (failingStore) Create(context.Context, *models.Skill) error {
	return errors.New("connection refused")
}
func (failingStore) Update(context.Context, uint, *models.Skill) error {
	return errors.New("connection refused")
}
func (failingStore) Delete(context.Context, uint) error {
	return errors.New("connection refused")
}

func TestStoreFaultIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register[models.Skill, *models.Skill](r.Group("/api"), "skills", failingStore{})

	for _, tc := range []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/api/skills", nil},
		{http.MethodGet, "/api/skills/1", nil},
		{http.MethodPost, "/api/skills", gin.H{"SkillName": "Go"}},
		{http.MethodPut, "/api/skills/1", gin.H{"SkillID": 1, "SkillName": "Go"}},
		{http.MethodDelete, "/api/skills/1", nil},
	} {
		w := doJSON(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, "%s %s", tc.method, tc.path)
		// Driver detail must not leak.
		assert.NotContains(t, w.Body.String(), "connection refused")
	}
}
