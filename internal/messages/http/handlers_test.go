package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enesocakci/portfolio-backend/internal/messages/domain"
)

type fakeStore struct {
	added  []domain.Message
	addErr error
	list   []domain.Message
}

func (f *fakeStore) Add(_ context.Context, m domain.Message) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, m)
	return nil
}

func (f *fakeStore) List(context.Context) ([]domain.Message, error) {
	return f.list, nil
}

func setupRouter(store MessageStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(store).Register(r)
	return r
}

func TestSendMessage(t *testing.T) {
	store := &fakeStore{}
	r := setupRouter(store)

	body := []byte(`{"Name":"Ada","Soyad":"Lovelace","email":"ada@x.com","subject":"hi","message":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/send-message", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, store.added, 1)
	assert.Equal(t, "Ada", store.added[0].Name)
	assert.Equal(t, "Lovelace", store.added[0].Surname)
	assert.Equal(t, "hello", store.added[0].Body)
}

func TestSendMessage_StoreError(t *testing.T) {
	r := setupRouter(&fakeStore{addErr: errors.New("store down")})

	body := []byte(`{"Name":"Ada","email":"ada@x.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/send-message", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "store down",
		"raw store errors must not leak to clients")
}

func TestListMessages(t *testing.T) {
	r := setupRouter(&fakeStore{list: []domain.Message{
		{ID: "m2", Name: "B"},
		{ID: "m1", Name: "A"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var messages []domain.Message
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, "m2", messages[0].ID)
}
