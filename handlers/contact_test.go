package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"brightpath/models"
)

type fakeMailer struct {
	id    string
	err   error
	sent  []models.ContactRequest
	calls int
}

func (f *fakeMailer) SendContact(ctx context.Context, req models.ContactRequest) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, req)
	return f.id, nil
}

func contactRouter(h *ContactHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/contact", h.HandleContact)
	return r
}

func TestContactRequiresFields(t *testing.T) {
	h := NewContactHandler(&fakeMailer{}, true, zap.NewNop())
	r := contactRouter(h)

	w, _ := doJSON(t, r, http.MethodPost, "/api/contact", `{"name":"Jane Doe"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactUnconfiguredReturnsMock(t *testing.T) {
	mailer := &fakeMailer{}
	h := NewContactHandler(mailer, false, zap.NewNop())
	r := contactRouter(h)

	w, body := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Jane Doe","email":"jane@x.com","message":"hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, true, body["mockResponse"])
	assert.Zero(t, mailer.calls)
}

func TestContactForwardsSubmission(t *testing.T) {
	mailer := &fakeMailer{id: "msg-1"}
	h := NewContactHandler(mailer, true, zap.NewNop())
	r := contactRouter(h)

	w, body := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Jane Doe","email":"jane@x.com","message":"hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "msg-1", body["id"])
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "jane@x.com", mailer.sent[0].Email)
}

func TestContactDeliveryFailureIs502(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("delivery refused")}
	h := NewContactHandler(mailer, true, zap.NewNop())
	r := contactRouter(h)

	w, body := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Jane Doe","email":"jane@x.com","message":"hello"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, false, body["success"])
}
