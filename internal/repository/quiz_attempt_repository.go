package repository

import (
	"github.com/annamandarin/gamify/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizAttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	FindByID(id uint) (*model.QuizAttempt, error)
	FindAllByStudent(studentID uuid.UUID) ([]model.QuizAttempt, error)
	CountByStudent(studentID uuid.UUID) (int64, error)
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *quizAttemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.Preload("Quiz").First(&attempt, id).Error
	return &attempt, err
}

func (r *quizAttemptRepository) FindAllByStudent(studentID uuid.UUID) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *quizAttemptRepository) CountByStudent(studentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizAttempt{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}
