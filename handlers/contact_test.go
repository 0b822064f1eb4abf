package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"vitrine/database"
	"vitrine/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactStore struct {
	messages map[uuid.UUID]models.ContactMessage
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{messages: map[uuid.UUID]models.ContactMessage{}}
}

func (f *fakeContactStore) InsertContactMessage(ctx context.Context, req models.CreateContactRequest) (*models.ContactMessage, error) {
	now := time.Now()
	msg := models.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Company:   req.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.messages[msg.ID] = msg
	return &msg, nil
}

func (f *fakeContactStore) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	for _, m := range f.messages {
		messages = append(messages, m)
	}
	return messages, nil
}

func (f *fakeContactStore) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.messages[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.messages, id)
	return nil
}

func (f *fakeContactStore) DeleteContactMessages(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := f.messages[id]; ok {
			delete(f.messages, id)
			deleted++
		}
	}
	return deleted, nil
}

func newContactRouter(store *fakeContactStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/contact", CreateContactMessage(store))
	r.GET("/api/contact/messages", ListContactMessages(store))
	r.DELETE("/api/contact/messages/:id", DeleteContactMessage(store))
	r.POST("/api/contact/messages/deleteMany", DeleteContactMessagesMany(store))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateContactMessage(t *testing.T) {
	store := newFakeContactStore()
	r := newContactRouter(store)

	w := postJSON(t, r, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "Hello there",
		"company": "Analytical Engines Ltd",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.messages, 1)
	for _, msg := range store.messages {
		assert.Equal(t, "Ada", msg.Name)
		require.NotNil(t, msg.Company)
		assert.Equal(t, "Analytical Engines Ltd", *msg.Company)
		assert.False(t, msg.Read, "messages start unread")
	}
}

func TestCreateContactMessage_MissingFields(t *testing.T) {
	store := newFakeContactStore()
	r := newContactRouter(store)

	tests := []map[string]string{
		{"email": "a@b.com", "message": "hi"},
		{"name": "Ada", "message": "hi"},
		{"name": "Ada", "email": "a@b.com"},
		{"name": "Ada", "email": "not-an-email", "message": "hi"},
	}

	for _, payload := range tests {
		w := postJSON(t, r, "/api/contact", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %v", payload)
	}
	assert.Empty(t, store.messages)
}

func TestListContactMessages(t *testing.T) {
	store := newFakeContactStore()
	r := newContactRouter(store)

	postJSON(t, r, "/api/contact", map[string]string{"name": "A", "email": "a@b.com", "message": "one"})
	postJSON(t, r, "/api/contact", map[string]string{"name": "B", "email": "b@b.com", "message": "two"})

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success  bool                    `json:"success"`
		Messages []models.ContactMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Messages, 2)
}

func TestDeleteContactMessage_NotFound(t *testing.T) {
	store := newFakeContactStore()
	r := newContactRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/contact/messages/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteContactMessagesMany(t *testing.T) {
	store := newFakeContactStore()
	r := newContactRouter(store)

	postJSON(t, r, "/api/contact", map[string]string{"name": "A", "email": "a@b.com", "message": "one"})
	postJSON(t, r, "/api/contact", map[string]string{"name": "B", "email": "b@b.com", "message": "two"})

	ids := []uuid.UUID{uuid.New()}
	for id := range store.messages {
		ids = append(ids, id)
	}

	w := postJSON(t, r, "/api/contact/messages/deleteMany", map[string]any{"ids": ids})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Deleted int64 `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Deleted, "unknown ids are skipped")
	assert.Empty(t, store.messages)
}

func TestDeleteContactMessagesMany_EmptyIDs(t *testing.T) {
	store := newFakeContactStore()
	r := newContactRouter(store)

	w := postJSON(t, r, "/api/contact/messages/deleteMany", map[string]any{"ids": []uuid.UUID{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
