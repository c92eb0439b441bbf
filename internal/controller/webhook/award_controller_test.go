package webhook_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/annamandarin/gamify/internal/controller/webhook"
	"github.com/annamandarin/gamify/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubAchievementService struct {
	awarded   []model.Achievement
	err       error
	studentID uuid.UUID
	score     int
	timeTaken int
}

func (s *stubAchievementService) EvaluateForAttempt(studentID uuid.UUID, score, timeTaken int) ([]model.Achievement, error) {
	s.studentID = studentID
	s.score = score
	s.timeTaken = timeTaken
	return s.awarded, s.err
}

func newAwardRouter(svc *stubAchievementService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := webhook.NewAwardController(svc)
	router.POST("/functions/v1/award-achievement", ctrl.AwardAchievements)
	router.OPTIONS("/functions/v1/award-achievement", ctrl.Preflight)
	return router
}

func postAward(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/award-achievement", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAwardAchievementsSuccess(t *testing.T) {
	svc := &stubAchievementService{awarded: []model.Achievement{{ID: 1}, {ID: 2}}}
	router := newAwardRouter(svc)

	studentID := uuid.New()
	w := postAward(t, router, `{"record":{"student_id":"`+studentID.String()+`","score":100,"time_taken":45}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Awarded 2 new achievement(s)" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if svc.studentID != studentID || svc.score != 100 || svc.timeTaken != 45 {
		t.Fatalf("evaluator called with wrong arguments: %s %d %d", svc.studentID, svc.score, svc.timeTaken)
	}
}

func TestAwardAchievementsMissingRecord(t *testing.T) {
	router := newAwardRouter(&stubAchievementService{})

	w := postAward(t, router, `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Error != "No record found in request" {
		t.Fatalf("unexpected error %q", resp.Error)
	}
}

func TestAwardAchievementsMalformedBody(t *testing.T) {
	router := newAwardRouter(&stubAchievementService{})

	w := postAward(t, router, `{not json`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid request body") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestAwardAchievementsIncompleteRecord(t *testing.T) {
	router := newAwardRouter(&stubAchievementService{})

	w := postAward(t, router, `{"record":{"student_id":"`+uuid.NewString()+`","score":80}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "score and time_taken") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestAwardAchievementsInvalidStudentID(t *testing.T) {
	router := newAwardRouter(&stubAchievementService{})

	w := postAward(t, router, `{"record":{"student_id":"not-a-uuid","score":80,"time_taken":60}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid student_id") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestAwardAchievementsEvaluationFailure(t *testing.T) {
	router := newAwardRouter(&stubAchievementService{err: errors.New("error loading achievement catalog: connection refused")})

	w := postAward(t, router, `{"record":{"student_id":"`+uuid.NewString()+`","score":80,"time_taken":60}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "connection refused") {
		t.Fatalf("expected the evaluator error in the body, got %q", w.Body.String())
	}
}

func TestAwardAchievementsPreflight(t *testing.T) {
	router := newAwardRouter(&stubAchievementService{})

	req := httptest.NewRequest(http.MethodOptions, "/functions/v1/award-achievement", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on preflight, got %d", w.Code)
	}
}
