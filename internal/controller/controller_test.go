package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"truth_buddy_backend/internal/config"
	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/internal/repository"
	"truth_buddy_backend/internal/service"
	"truth_buddy_backend/internal/session"
	"truth_buddy_backend/internal/util"
	"truth_buddy_backend/pkg/localstore"

	"github.com/gin-gonic/gin"
)

type failingProber struct{}

func (failingProber) Probe(ctx context.Context) error { return errors.New("down") }

// newTestRouter wires every controller over the fallback store, mirroring the
// production route table.
func newTestRouter(t *testing.T) (*gin.Engine, *repository.QuestionRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := localstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("localstore.New: %v", err)
	}
	selector := repository.NewSelector(failingProber{})

	users := repository.NewUserRepository(nil, store, selector, session.NewCache(nil))
	questions := repository.NewQuestionRepository(nil, store, selector)
	answers := repository.NewUserAnswerRepository(nil, store, selector)
	verifications := repository.NewVerificationRequestRepository(nil, store, selector)

	storage := service.NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
	})
	userService := service.NewUserService(users, answers)
	questionService := service.NewQuestionService(questions)
	answerService := service.NewAnswerService(users, questions, answers)
	leaderboardService := service.NewLeaderboardService(users)
	verificationService := service.NewVerificationService(verifications, users, storage)

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/health", NewHealthController(selector).Check)
		api.POST("/auth/login", NewAuthController(userService).Login)
		api.POST("/auth/logout", NewAuthController(userService).Logout)
		api.GET("/user", NewUserController(userService).GetCurrentUser)
		api.PUT("/user/profile", NewUserController(userService).UpdateProfile)
		api.POST("/user/refresh", NewUserController(userService).RefreshUser)
		api.GET("/questions/home", NewQuestionController(questionService).HomeFeed)
		api.GET("/questions", NewQuestionController(questionService).List)
		api.POST("/questions/:id/answer", NewAnswerController(answerService).Submit)
		api.GET("/leaderboard", NewLeaderboardController(leaderboardService).Get)
		api.POST("/verify", NewVerificationController(verificationService).Verify)
		api.GET("/verify/history", NewVerificationController(verificationService).History)
	}
	return router, questions
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthReportsFallback(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp util.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data := resp.Data.(map[string]interface{})
	if data["storage"] != "fallback" {
		t.Fatalf("storage = %v, want fallback", data["storage"])
	}
}

func TestGetCurrentUserCreatesOne(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/user", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp util.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	data := resp.Data.(map[string]interface{})
	user := data["user"].(map[string]interface{})
	if user["nickname"] == "" {
		t.Fatal("new user has no nickname")
	}
	if data["stats"] == nil {
		t.Fatal("response carries no stats")
	}
}

func TestSubmitAnswerEndToEnd(t *testing.T) {
	router, questions := newTestRouter(t)

	q, _ := questions.Create(context.Background(), &model.Question{
		Title:         "2+2?",
		Options:       model.StringList{"3", "4"},
		CorrectAnswer: 1,
	})

	path := fmt.Sprintf("/api/questions/%s/answer", q.ID)
	w := doJSON(t, router, http.MethodPost, path, gin.H{"selected_answer": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}

	// Same question again is a no-op, not an error.
	w = doJSON(t, router, http.MethodPost, path, gin.H{"selected_answer": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("repeat status = %d, want 200", w.Code)
	}
	var resp util.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	data := resp.Data.(map[string]interface{})
	if data["already_answered"] != true {
		t.Fatalf("repeat not flagged: %v", data["already_answered"])
	}
}

func TestSubmitAnswerValidation(t *testing.T) {
	router, questions := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/questions/missing/answer", gin.H{"selected_answer": 0})
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing question status = %d, want 404", w.Code)
	}

	q, _ := questions.Create(context.Background(), &model.Question{
		Title:   "q",
		Options: model.StringList{"a", "b"},
	})
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/questions/%s/answer", q.ID), gin.H{"selected_answer": 9})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range status = %d, want 400", w.Code)
	}
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/questions/%s/answer", q.ID), gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing body status = %d, want 400", w.Code)
	}
}

func TestUpdateProfileRequiresNickname(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/user/profile", gin.H{"city": "Mumbai"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/api/user/profile", gin.H{"nickname": "QuizHero", "city": "Mumbai"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
}

func TestVerifyRequiresContent(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/verify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty verify status = %d, want 400", w.Code)
	}
}

func TestVerifyTextReturnsCreated(t *testing.T) {
	router, _ := newTestRouter(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("content_text", "the moon landing happened in 1969"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/verify", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body = %s", w.Code, w.Body.String())
	}

	var resp util.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data := resp.Data.(map[string]interface{})
	if data["verification_result"] == nil {
		t.Fatal("response carries no verification result")
	}
}

func TestLeaderboardEmptyIsOK(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/leaderboard?city=Mumbai", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
