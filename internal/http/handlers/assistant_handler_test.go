// README: Assistant handler tests (binding, quota gate, turn persistence).
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripdesk/internal/http/handlers"
	"tripdesk/internal/modules/conversation"
	"tripdesk/internal/modules/usage"
	"tripdesk/internal/service"
)

type stubAssistant struct {
	env service.Envelope
}

func (s *stubAssistant) ProcessMessage(_ context.Context, _ service.Input) service.Envelope {
	return s.env
}

type stubQuota struct {
	err error
}

func (s *stubQuota) UseRequest(_ context.Context, _ string) error { return s.err }

type recordingTurns struct {
	saved []conversation.Record
	err   error
}

func (r *recordingTurns) SaveTurn(_ context.Context, rec conversation.Record) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, rec)
	return nil
}

func buildTestRouter(assistant handlers.MessageProcessor, quota handlers.QuotaService, turns handlers.TurnSaver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewAssistantHandler(assistant, quota, turns, zap.NewNop())
	r.POST("/api/assistant/chat", h.Chat)
	return r
}

func doChat(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/chat", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatReturnsEnvelope(t *testing.T) {
	turns := &recordingTurns{}
	r := buildTestRouter(&stubAssistant{env: service.Envelope{
		Type:    service.TypeResponse,
		Message: "hello there",
	}}, &stubQuota{}, turns)

	w := doChat(r, map[string]string{"uid": "user1", "message": "hi"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var env service.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Message != "hello there" {
		t.Errorf("message = %q", env.Message)
	}

	// One user turn and one assistant turn persisted.
	if len(turns.saved) != 2 {
		t.Fatalf("saved %d turns, want 2", len(turns.saved))
	}
	if turns.saved[0].Role != conversation.RoleUser || turns.saved[1].Role != conversation.RoleAssistant {
		t.Errorf("roles = %s, %s", turns.saved[0].Role, turns.saved[1].Role)
	}
}

func TestChatRejectsMissingFields(t *testing.T) {
	r := buildTestRouter(&stubAssistant{}, &stubQuota{}, &recordingTurns{})

	w := doChat(r, map[string]string{"uid": "user1"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing message: status = %d", w.Code)
	}

	w = doChat(r, map[string]string{"message": "hi"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing uid: status = %d", w.Code)
	}

	w = doChat(r, map[string]string{"uid": "not a valid id!!", "message": "hi"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid uid: status = %d", w.Code)
	}
}

func TestChatQuotaExhausted(t *testing.T) {
	r := buildTestRouter(&stubAssistant{}, &stubQuota{err: usage.ErrQuotaExhausted}, &recordingTurns{})

	w := doChat(r, map[string]string{"uid": "user1", "message": "hi"})
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}
}

func TestChatSurvivesPersistenceFailure(t *testing.T) {
	r := buildTestRouter(&stubAssistant{env: service.Envelope{
		Type:    service.TypeResponse,
		Message: "still here",
	}}, &stubQuota{}, &recordingTurns{err: errors.New("db down")})

	w := doChat(r, map[string]string{"uid": "user1", "message": "hi"})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d: a dead history store must not block the reply", w.Code)
	}
}
