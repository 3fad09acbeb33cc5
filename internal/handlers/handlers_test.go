package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"otbasy/internal/assistant"
	"otbasy/internal/models"
	"otbasy/internal/service"
	"otbasy/internal/storage"
	"otbasy/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	appStore := store.New(storage.NewMemoryStore(), assistant.New(nil), time.Millisecond)
	if err := appStore.Init(t.Context()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(appStore.Close)

	sessions := service.NewSessionService("test-secret", time.Hour)
	middleware := NewMiddleware(sessions)
	authHandler := NewAuthHandler(appStore, sessions)
	taskHandler := NewTaskHandler(appStore)
	familyHandler := NewFamilyHandler(appStore, mustEmailService(t))
	assistantHandler := NewAssistantHandler(appStore)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/tasks", middleware.RequireAuth(taskHandler.List))
	mux.HandleFunc("POST /api/tasks", middleware.RequireAuth(taskHandler.Create))
	mux.HandleFunc("POST /api/tasks/{id}/toggle", middleware.RequireAuth(taskHandler.Toggle))
	mux.HandleFunc("DELETE /api/tasks/{id}", middleware.RequireAuth(taskHandler.Delete))
	mux.HandleFunc("GET /api/families", middleware.RequireAuth(familyHandler.List))
	mux.HandleFunc("POST /api/families", middleware.RequireAuth(familyHandler.Create))
	mux.HandleFunc("POST /api/assistant", middleware.RequireAuth(assistantHandler.Ask))

	server := httptest.NewServer(Logging(mux))
	t.Cleanup(server.Close)
	return server
}

func mustEmailService(t *testing.T) *service.EmailService {
	t.Helper()
	email, err := service.NewEmailService("", "", "")
	if err != nil {
		t.Fatalf("NewEmailService: %v", err)
	}
	return email
}

func login(t *testing.T, server *httptest.Server) string {
	t.Helper()
	resp, err := http.Post(server.URL+"/api/login", "application/json",
		strings.NewReader(`{"email":"aigul@example.com","password":"secret"}`))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	if body.Token == "" {
		t.Fatal("login returned no token")
	}
	return body.Token
}

func doJSON(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func TestLoginRejectsEmptyPassword(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/login", "application/json",
		strings.NewReader(`{"email":"aigul@example.com","password":""}`))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/tasks")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/tasks", "not-a-token", "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestMeReturnsSessionUser(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/me", token, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		t.Fatalf("decoding user: %v", err)
	}
	if user.Email != "aigul@example.com" {
		t.Errorf("email = %q", user.Email)
	}
}

func TestTaskLifecycle(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/tasks", token,
		`{"title":"Купить арбуз","priority":"low","familyId":"1","familyName":"Семья Касымовых"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var task models.Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		t.Fatalf("decoding task: %v", err)
	}
	resp.Body.Close()
	if task.Completed {
		t.Error("new task should start incomplete")
	}

	resp = doJSON(t, http.MethodPost, server.URL+"/api/tasks/"+task.ID+"/toggle", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle status = %d, want 200", resp.StatusCode)
	}
	var toggled models.Task
	if err := json.NewDecoder(resp.Body).Decode(&toggled); err != nil {
		t.Fatalf("decoding toggled task: %v", err)
	}
	resp.Body.Close()
	if !toggled.Completed {
		t.Error("toggle should complete the task")
	}

	resp = doJSON(t, http.MethodDelete, server.URL+"/api/tasks/"+task.ID, token, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodDelete, server.URL+"/api/tasks/"+task.ID, token, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("repeat delete status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/tasks", token,
		`{"title":"","priority":"low","familyId":"1"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateFamilyReturnsJoinCode(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/families", token,
		`{"name":"Новая семья","description":"проверка"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var family models.Family
	if err := json.NewDecoder(resp.Body).Decode(&family); err != nil {
		t.Fatalf("decoding family: %v", err)
	}
	if len(family.Code) != models.CodeLength {
		t.Errorf("code = %q, want %d characters", family.Code, models.CodeLength)
	}
	if len(family.Members) != 1 {
		t.Errorf("members = %d, want the creator only", len(family.Members))
	}
}

func TestAskAssistantAccepted(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/assistant", token,
		`{"text":"Что приготовить на ужин?","familyId":"1"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", resp.StatusCode)
	}

	var question models.AIMessage
	if err := json.NewDecoder(resp.Body).Decode(&question); err != nil {
		t.Fatalf("decoding question: %v", err)
	}
	if !question.IsUser {
		t.Error("recorded question should be flagged as the user's")
	}
}
