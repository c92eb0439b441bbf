package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/annamandarin/gamify/internal/leaderboard"
	"github.com/annamandarin/gamify/internal/model"
	"github.com/annamandarin/gamify/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptStats are the cumulative figures the evaluator aggregates from a
// student's attempt history.
type AttemptStats struct {
	QuizzesCompleted int
}

// AttemptFacts are the fields of the triggering attempt the rules look at.
type AttemptFacts struct {
	Score     int
	TimeTaken int
}

// AchievementService runs the catalog scan after each completed attempt and
// grants every newly satisfied achievement.
type AchievementService interface {
	EvaluateForAttempt(studentID uuid.UUID, score, timeTaken int) ([]model.Achievement, error)
}

type achievementService struct {
	achievementRepo repository.AchievementRepository
	grantRepo       repository.StudentAchievementRepository
	attemptRepo     repository.QuizAttemptRepository
	studentRepo     repository.StudentRepository
	board           leaderboard.Store
}

func NewAchievementService(
	achievementRepo repository.AchievementRepository,
	grantRepo repository.StudentAchievementRepository,
	attemptRepo repository.QuizAttemptRepository,
	studentRepo repository.StudentRepository,
	board leaderboard.Store,
) AchievementService {
	return &achievementService{
		achievementRepo: achievementRepo,
		grantRepo:       grantRepo,
		attemptRepo:     attemptRepo,
		studentRepo:     studentRepo,
		board:           board,
	}
}

// EligibleAchievements is the pure rule core: it returns the catalog entries
// not yet granted whose requirements the attempt or the cumulative stats
// satisfy. An entry with several requirement fields is satisfied when ANY
// one of them holds.
func EligibleAchievements(catalog []model.Achievement, grantedIDs map[uint]bool, stats AttemptStats, attempt AttemptFacts) []model.Achievement {
	var eligible []model.Achievement
	for _, a := range catalog {
		if grantedIDs[a.ID] {
			continue
		}
		if requirementMet(a, stats, attempt) {
			eligible = append(eligible, a)
		}
	}
	return eligible
}

func requirementMet(a model.Achievement, stats AttemptStats, attempt AttemptFacts) bool {
	if a.ReqPerfectScore != nil && *a.ReqPerfectScore && attempt.Score == 100 {
		return true
	}
	if a.ReqFastCompletion != nil && attempt.TimeTaken <= *a.ReqFastCompletion {
		return true
	}
	if a.ReqQuizzesCompleted != nil && stats.QuizzesCompleted >= *a.ReqQuizzesCompleted {
		return true
	}
	return false
}

// EvaluateForAttempt loads the catalog, the student's grant set, and the
// attempt history, then grants every newly satisfied achievement and applies
// its point reward. A failure on one catalog entry does not abort the scan;
// read failures before the scan abort the whole run.
func (s *achievementService) EvaluateForAttempt(studentID uuid.UUID, score, timeTaken int) ([]model.Achievement, error) {
	catalog, err := s.achievementRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Stringer("studentID", studentID).Msg("EvaluateForAttempt: failed to load achievement catalog")
		return nil, fmt.Errorf("error loading achievement catalog: %w", err)
	}

	grantedIDs, err := s.grantRepo.FindAchievementIDsByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Stringer("studentID", studentID).Msg("EvaluateForAttempt: failed to load granted achievements")
		return nil, fmt.Errorf("error loading granted achievements: %w", err)
	}
	granted := make(map[uint]bool, len(grantedIDs))
	for _, id := range grantedIDs {
		granted[id] = true
	}

	completed, err := s.attemptRepo.CountByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Stringer("studentID", studentID).Msg("EvaluateForAttempt: failed to count attempts")
		return nil, fmt.Errorf("error loading attempt history: %w", err)
	}

	stats := AttemptStats{QuizzesCompleted: int(completed)}
	facts := AttemptFacts{Score: score, TimeTaken: timeTaken}

	var awarded []model.Achievement
	for _, a := range EligibleAchievements(catalog, granted, stats, facts) {
		grant := model.StudentAchievement{StudentID: studentID, AchievementID: a.ID}
		if err := s.grantRepo.Create(&grant); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent run beat us to it; the unique index makes the
				// grant idempotent.
				log.Debug().Stringer("studentID", studentID).Uint("achievementID", a.ID).Msg("EvaluateForAttempt: achievement already granted")
				continue
			}
			log.Error().Err(err).Stringer("studentID", studentID).Uint("achievementID", a.ID).Msg("EvaluateForAttempt: failed to insert grant, continuing scan")
			continue
		}

		if err := s.studentRepo.AddPoints(studentID, a.PointsReward); err != nil {
			// The grant stands without its reward; surfaced loudly so the
			// inconsistency can be repaired out of band.
			log.Error().Err(err).Stringer("studentID", studentID).Uint("achievementID", a.ID).Int("reward", a.PointsReward).
				Msg("EvaluateForAttempt: grant recorded but point reward not applied")
			awarded = append(awarded, a)
			continue
		}

		if err := s.board.AddPoints(context.Background(), studentID.String(), a.PointsReward); err != nil {
			log.Warn().Err(err).Stringer("studentID", studentID).Msg("EvaluateForAttempt: failed to mirror reward into leaderboard")
		}

		log.Info().Stringer("studentID", studentID).Str("achievement", a.Name).Int("reward", a.PointsReward).Msg("Achievement awarded")
		awarded = append(awarded, a)
	}

	return awarded, nil
}
