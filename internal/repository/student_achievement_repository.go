package repository

import (
	"github.com/annamandarin/gamify/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentAchievementRepository interface {
	Create(grant *model.StudentAchievement) error
	FindAchievementIDsByStudent(studentID uuid.UUID) ([]uint, error)
	FindAllByStudentWithAchievements(studentID uuid.UUID) ([]model.StudentAchievement, error)
}

type studentAchievementRepository struct {
	db *gorm.DB
}

func NewStudentAchievementRepository(db *gorm.DB) StudentAchievementRepository {
	return &studentAchievementRepository{db: db}
}

// Create inserts a grant row. The unique index on (student_id,
// achievement_id) surfaces a duplicate grant as gorm.ErrDuplicatedKey.
func (r *studentAchievementRepository) Create(grant *model.StudentAchievement) error {
	return r.db.Create(grant).Error
}

func (r *studentAchievementRepository) FindAchievementIDsByStudent(studentID uuid.UUID) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.StudentAchievement{}).
		Where("student_id = ?", studentID).
		Pluck("achievement_id", &ids).Error
	return ids, err
}

func (r *studentAchievementRepository) FindAllByStudentWithAchievements(studentID uuid.UUID) ([]model.StudentAchievement, error) {
	var grants []model.StudentAchievement
	err := r.db.Preload("Achievement").
		Where("student_id = ?", studentID).
		Order("awarded_at DESC").
		Find(&grants).Error
	return grants, err
}
