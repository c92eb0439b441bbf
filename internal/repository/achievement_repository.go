package repository

import (
	"github.com/annamandarin/gamify/internal/model"
	"gorm.io/gorm"
)

type AchievementRepository interface {
	Create(achievement *model.Achievement) error
	FindAll() ([]model.Achievement, error)
	FindByID(id uint) (*model.Achievement, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(achievement *model.Achievement) error {
	return r.db.Create(achievement).Error
}

func (r *achievementRepository) FindAll() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.db.Order("created_at ASC").Find(&achievements).Error
	return achievements, err
}

func (r *achievementRepository) FindByID(id uint) (*model.Achievement, error) {
	var achievement model.Achievement
	err := r.db.First(&achievement, id).Error
	return &achievement, err
}
