package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/annamandarin/gamify/internal/leaderboard"
	"github.com/annamandarin/gamify/internal/model"
	"github.com/annamandarin/gamify/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

// --- in-memory fakes for the storage collaborators ---

type fakeAchievementRepo struct {
	catalog []model.Achievement
	err     error
}

func (f *fakeAchievementRepo) Create(a *model.Achievement) error { return nil }
func (f *fakeAchievementRepo) FindAll() ([]model.Achievement, error) {
	return f.catalog, f.err
}
func (f *fakeAchievementRepo) FindByID(id uint) (*model.Achievement, error) {
	for i := range f.catalog {
		if f.catalog[i].ID == id {
			return &f.catalog[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeGrantRepo struct {
	granted   map[uint]bool
	createErr map[uint]error
	created   []model.StudentAchievement
}

func newFakeGrantRepo() *fakeGrantRepo {
	return &fakeGrantRepo{granted: make(map[uint]bool), createErr: make(map[uint]error)}
}

func (f *fakeGrantRepo) Create(grant *model.StudentAchievement) error {
	if err := f.createErr[grant.AchievementID]; err != nil {
		return err
	}
	if f.granted[grant.AchievementID] {
		return gorm.ErrDuplicatedKey
	}
	f.granted[grant.AchievementID] = true
	f.created = append(f.created, *grant)
	return nil
}

func (f *fakeGrantRepo) FindAchievementIDsByStudent(uuid.UUID) ([]uint, error) {
	var ids []uint
	for id := range f.granted {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeGrantRepo) FindAllByStudentWithAchievements(uuid.UUID) ([]model.StudentAchievement, error) {
	return f.created, nil
}

type fakeAttemptRepo struct {
	completed int64
}

func (f *fakeAttemptRepo) Create(*model.QuizAttempt) error { return nil }
func (f *fakeAttemptRepo) FindByID(uint) (*model.QuizAttempt, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttemptRepo) FindAllByStudent(uuid.UUID) ([]model.QuizAttempt, error) {
	return nil, nil
}
func (f *fakeAttemptRepo) CountByStudent(uuid.UUID) (int64, error) { return f.completed, nil }

type fakeStudentRepo struct {
	pointsAdded  int
	addPointsErr error
}

func (f *fakeStudentRepo) Create(*model.Student) error { return nil }
func (f *fakeStudentRepo) FindByID(id uuid.UUID) (*model.Student, error) {
	return &model.Student{ID: id}, nil
}
func (f *fakeStudentRepo) AddPoints(_ uuid.UUID, delta int) error {
	if f.addPointsErr != nil {
		return f.addPointsErr
	}
	f.pointsAdded += delta
	return nil
}

type fakeBoard struct {
	added int
}

func (f *fakeBoard) AddPoints(_ context.Context, _ string, delta int) error {
	f.added += delta
	return nil
}

func (f *fakeBoard) Top(context.Context, int64) ([]leaderboard.Entry, error) {
	return nil, nil
}

// --- pure rule core ---

func TestEligibleAchievementsOrSemantics(t *testing.T) {
	catalog := []model.Achievement{
		{ID: 1, Name: "Perfectionist", ReqPerfectScore: boolPtr(true), PointsReward: 50},
		{ID: 2, Name: "Speed Demon", ReqFastCompletion: intPtr(60), PointsReward: 30},
		{ID: 3, Name: "Dedicated", ReqQuizzesCompleted: intPtr(5), PointsReward: 40},
		{ID: 4, Name: "All Rounder", ReqPerfectScore: boolPtr(true), ReqFastCompletion: intPtr(30), PointsReward: 100},
	}

	// Fast but imperfect: satisfies Speed Demon, and All Rounder via its
	// fast-completion requirement alone (any one criterion is enough).
	got := service.EligibleAchievements(catalog, map[uint]bool{},
		service.AttemptStats{QuizzesCompleted: 1},
		service.AttemptFacts{Score: 80, TimeTaken: 25})

	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 4 {
		t.Fatalf("expected achievements 2 and 4, got %+v", got)
	}
}

func TestEligibleAchievementsSkipsGranted(t *testing.T) {
	catalog := []model.Achievement{
		{ID: 1, Name: "Perfectionist", ReqPerfectScore: boolPtr(true)},
	}
	granted := map[uint]bool{1: true}

	got := service.EligibleAchievements(catalog, granted,
		service.AttemptStats{}, service.AttemptFacts{Score: 100, TimeTaken: 10})
	if len(got) != 0 {
		t.Fatalf("already granted achievements must not be re-evaluated, got %+v", got)
	}
}

func TestEligibleAchievementsNoRequirementMet(t *testing.T) {
	catalog := []model.Achievement{
		{ID: 1, ReqPerfectScore: boolPtr(true)},
		{ID: 2, ReqFastCompletion: intPtr(10)},
		{ID: 3, ReqQuizzesCompleted: intPtr(100)},
	}

	got := service.EligibleAchievements(catalog, map[uint]bool{},
		service.AttemptStats{QuizzesCompleted: 2},
		service.AttemptFacts{Score: 90, TimeTaken: 300})
	if len(got) != 0 {
		t.Fatalf("expected no eligible achievements, got %+v", got)
	}
}

// --- evaluator side effects ---

func newEvaluator(catalog []model.Achievement, grants *fakeGrantRepo, attempts *fakeAttemptRepo, students *fakeStudentRepo, board *fakeBoard) service.AchievementService {
	return service.NewAchievementService(
		&fakeAchievementRepo{catalog: catalog}, grants, attempts, students, board,
	)
}

func TestEvaluateForAttemptGrantsOnce(t *testing.T) {
	studentID := uuid.New()
	catalog := []model.Achievement{
		{ID: 7, Name: "Dedicated", ReqQuizzesCompleted: intPtr(3), PointsReward: 40},
	}
	grants := newFakeGrantRepo()
	students := &fakeStudentRepo{}
	board := &fakeBoard{}
	svc := newEvaluator(catalog, grants, &fakeAttemptRepo{completed: 3}, students, board)

	awarded, err := svc.EvaluateForAttempt(studentID, 80, 120)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if len(awarded) != 1 || awarded[0].ID != 7 {
		t.Fatalf("expected achievement 7 to be awarded, got %+v", awarded)
	}
	if students.pointsAdded != 40 {
		t.Fatalf("expected 40 reward points applied, got %d", students.pointsAdded)
	}
	if board.added != 40 {
		t.Fatalf("expected reward mirrored into leaderboard, got %d", board.added)
	}

	// A second run over unchanged history must not grant again.
	awarded, err = svc.EvaluateForAttempt(studentID, 80, 120)
	if err != nil {
		t.Fatalf("second evaluate failed: %v", err)
	}
	if len(awarded) != 0 {
		t.Fatalf("expected no new grants on re-run, got %+v", awarded)
	}
	if students.pointsAdded != 40 {
		t.Fatalf("reward must be applied exactly once, got %d", students.pointsAdded)
	}
}

func TestEvaluateForAttemptDuplicateInsertTreatedAsGranted(t *testing.T) {
	studentID := uuid.New()
	catalog := []model.Achievement{
		{ID: 1, Name: "Speed Demon", ReqFastCompletion: intPtr(60), PointsReward: 30},
	}
	grants := newFakeGrantRepo()
	grants.createErr[1] = gorm.ErrDuplicatedKey
	students := &fakeStudentRepo{}
	svc := newEvaluator(catalog, grants, &fakeAttemptRepo{}, students, &fakeBoard{})

	awarded, err := svc.EvaluateForAttempt(studentID, 50, 30)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if len(awarded) != 0 {
		t.Fatalf("duplicate insert must not count as a fresh award, got %+v", awarded)
	}
	if students.pointsAdded != 0 {
		t.Fatalf("duplicate grant must not apply its reward again, got %d", students.pointsAdded)
	}
}

func TestEvaluateForAttemptEntryFailureDoesNotAbortScan(t *testing.T) {
	studentID := uuid.New()
	catalog := []model.Achievement{
		{ID: 1, Name: "Speed Demon", ReqFastCompletion: intPtr(60), PointsReward: 30},
		{ID: 2, Name: "Perfectionist", ReqPerfectScore: boolPtr(true), PointsReward: 50},
	}
	grants := newFakeGrantRepo()
	grants.createErr[1] = errors.New("insert failed")
	students := &fakeStudentRepo{}
	svc := newEvaluator(catalog, grants, &fakeAttemptRepo{}, students, &fakeBoard{})

	awarded, err := svc.EvaluateForAttempt(studentID, 100, 30)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if len(awarded) != 1 || awarded[0].ID != 2 {
		t.Fatalf("remaining catalog entries must still be evaluated, got %+v", awarded)
	}
	if students.pointsAdded != 50 {
		t.Fatalf("expected only the surviving entry's reward, got %d", students.pointsAdded)
	}
}

func TestEvaluateForAttemptRewardFailureKeepsGrant(t *testing.T) {
	studentID := uuid.New()
	catalog := []model.Achievement{
		{ID: 1, Name: "Perfectionist", ReqPerfectScore: boolPtr(true), PointsReward: 50},
	}
	grants := newFakeGrantRepo()
	students := &fakeStudentRepo{addPointsErr: errors.New("update failed")}
	svc := newEvaluator(catalog, grants, &fakeAttemptRepo{}, students, &fakeBoard{})

	awarded, err := svc.EvaluateForAttempt(studentID, 100, 30)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if len(awarded) != 1 {
		t.Fatalf("grant stands even when the reward fails, got %+v", awarded)
	}
	if !grants.granted[1] {
		t.Fatal("expected the grant row to be recorded")
	}
}
