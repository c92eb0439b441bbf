package service

import (
	"context"
	"fmt"

	"github.com/annamandarin/gamify/internal/dto"
	"github.com/annamandarin/gamify/internal/leaderboard"
	"github.com/annamandarin/gamify/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type StudentService interface {
	GetProfile(studentID uuid.UUID) (*dto.StudentProfileDTO, error)
	GetLeaderboard(limit int64) ([]dto.LeaderboardEntryDTO, error)
}

type studentService struct {
	studentRepo  repository.StudentRepository
	grantRepo    repository.StudentAchievementRepository
	scoreService ScoreService
	board        leaderboard.Store
}

func NewStudentService(
	studentRepo repository.StudentRepository,
	grantRepo repository.StudentAchievementRepository,
	scoreService ScoreService,
	board leaderboard.Store,
) StudentService {
	return &studentService{
		studentRepo:  studentRepo,
		grantRepo:    grantRepo,
		scoreService: scoreService,
		board:        board,
	}
}

func (s *studentService) GetProfile(studentID uuid.UUID) (*dto.StudentProfileDTO, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		log.Warn().Err(err).Stringer("studentID", studentID).Msg("GetProfile: student not found")
		return nil, fmt.Errorf("student not found with ID %s: %w", studentID, err)
	}

	resp := dto.StudentProfileDTO{
		ID:          student.ID,
		Name:        student.Name,
		TotalPoints: student.TotalPoints,
	}
	if badge := s.scoreService.GetBadgeByPoints(student.TotalPoints); badge != nil {
		resp.Badge = &dto.BadgeDTO{Name: badge.Name, MinPoints: badge.MinPoints, MaxPoints: badge.MaxPoints}
	}

	grants, err := s.grantRepo.FindAllByStudentWithAchievements(studentID)
	if err != nil {
		log.Error().Err(err).Stringer("studentID", studentID).Msg("GetProfile: failed to load achievements")
		return nil, fmt.Errorf("error fetching achievements for student %s: %w", studentID, err)
	}
	for _, grant := range grants {
		var granted dto.GrantedAchievementDTO
		if err := copier.Copy(&granted.AchievementDTO, &grant.Achievement); err != nil {
			log.Error().Err(err).Uint("achievementID", grant.AchievementID).Msg("GetProfile: error copying achievement to DTO")
			continue
		}
		granted.AwardedAt = grant.AwardedAt
		resp.Achievements = append(resp.Achievements, granted)
	}
	return &resp, nil
}

func (s *studentService) GetLeaderboard(limit int64) ([]dto.LeaderboardEntryDTO, error) {
	entries, err := s.board.Top(context.Background(), limit)
	if err != nil {
		log.Error().Err(err).Msg("GetLeaderboard: failed to read leaderboard")
		return nil, fmt.Errorf("error fetching leaderboard: %w", err)
	}

	dtos := make([]dto.LeaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		row := dto.LeaderboardEntryDTO{StudentID: entry.StudentID, Points: entry.Points}
		if id, parseErr := uuid.Parse(entry.StudentID); parseErr == nil {
			if student, findErr := s.studentRepo.FindByID(id); findErr == nil {
				row.Name = student.Name
			}
		}
		dtos = append(dtos, row)
	}
	return dtos, nil
}
