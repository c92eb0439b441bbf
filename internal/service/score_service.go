package service

import (
	"github.com/annamandarin/gamify/internal/model"
)

// Point values awarded per correct answer, by difficulty tier.
const (
	PointsEasy   = 2
	PointsMedium = 3
	PointsHard   = 5
)

// PointsForDifficulty returns the fixed per-tier point value.
func PointsForDifficulty(d model.Difficulty) int {
	switch d {
	case model.DifficultyEasy:
		return PointsEasy
	case model.DifficultyMedium:
		return PointsMedium
	case model.DifficultyHard:
		return PointsHard
	}
	return 0
}

// TimeBonusTier is a labelled bracket of the elapsed-time percentage.
type TimeBonusTier struct {
	Label      string  `json:"label"`
	MaxPercent float64 `json:"max_percent"`
	Bonus      int     `json:"bonus"`
}

// timeBonusTiers is ordered ascending by MaxPercent; the first tier whose
// threshold is met wins. Above the last threshold there is no bonus.
var timeBonusTiers = []TimeBonusTier{
	{Label: "Lightning Fast", MaxPercent: 25, Bonus: 30},
	{Label: "Quick Thinker", MaxPercent: 50, Bonus: 20},
	{Label: "Steady Pace", MaxPercent: 75, Bonus: 10},
}

// Badge is one rung of the fixed cumulative-point ladder.
type Badge struct {
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
	MaxPoints int    `json:"max_points"`
}

// badgeLadder is static configuration: five contiguous, non-overlapping
// ranges. Totals above the top range have outgrown the ladder.
var badgeLadder = []Badge{
	{Name: "Bronze Learner", MinPoints: 0, MaxPoints: 100},
	{Name: "Silver Scholar", MinPoints: 101, MaxPoints: 200},
	{Name: "Gold Achiever", MinPoints: 201, MaxPoints: 300},
	{Name: "Platinum Master", MinPoints: 301, MaxPoints: 400},
	{Name: "Diamond Legend", MinPoints: 401, MaxPoints: 500},
}

// ScoreService computes attempt point totals. All methods are pure and
// total over their inputs; they never return an error.
type ScoreService interface {
	CalculateQuizScore(answers []model.GradedAnswer, timeTaken, timeLimit int) model.ScoreBreakdown
	GetTimeBonusTier(timeTaken, timeLimit int) *TimeBonusTier
	GetBadgeByPoints(totalPoints int) *Badge
}

type scoreService struct{}

func NewScoreService() ScoreService {
	return &scoreService{}
}

// CalculateQuizScore maps a completed attempt to its point breakdown.
// Incorrect answers contribute nothing regardless of difficulty.
func (s *scoreService) CalculateQuizScore(answers []model.GradedAnswer, timeTaken, timeLimit int) model.ScoreBreakdown {
	var b model.ScoreBreakdown
	for _, a := range answers {
		if !a.IsCorrect {
			continue
		}
		switch a.Difficulty {
		case model.DifficultyEasy:
			b.EasyQuestions++
			b.EasyPoints += PointsEasy
		case model.DifficultyMedium:
			b.MediumQuestions++
			b.MediumPoints += PointsMedium
		case model.DifficultyHard:
			b.HardQuestions++
			b.HardPoints += PointsHard
		}
	}
	b.TimeBonus = timeBonus(timeTaken, timeLimit)
	b.TotalPoints = b.EasyPoints + b.MediumPoints + b.HardPoints + b.TimeBonus
	return b
}

// GetTimeBonusTier returns the tier earned for the elapsed time, or nil when
// no tier applies. The tier labels feed user-facing feedback, not scoring.
func (s *scoreService) GetTimeBonusTier(timeTaken, timeLimit int) *TimeBonusTier {
	if timeLimit <= 0 {
		return nil
	}
	p := float64(timeTaken) / float64(timeLimit) * 100
	for i := range timeBonusTiers {
		if p <= timeBonusTiers[i].MaxPercent {
			tier := timeBonusTiers[i]
			return &tier
		}
	}
	return nil
}

// GetBadgeByPoints maps a cumulative point total to its ladder rung, or nil
// when the total falls outside the ladder.
func (s *scoreService) GetBadgeByPoints(totalPoints int) *Badge {
	for i := range badgeLadder {
		if totalPoints >= badgeLadder[i].MinPoints && totalPoints <= badgeLadder[i].MaxPoints {
			badge := badgeLadder[i]
			return &badge
		}
	}
	return nil
}

// timeBonus is a non-increasing step function of the elapsed percentage.
// A non-positive time limit guards the division and yields no bonus.
func timeBonus(timeTaken, timeLimit int) int {
	if timeLimit <= 0 {
		return 0
	}
	p := float64(timeTaken) / float64(timeLimit) * 100
	switch {
	case p <= 25:
		return 30
	case p <= 50:
		return 20
	case p <= 75:
		return 10
	default:
		return 0
	}
}
