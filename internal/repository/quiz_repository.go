package repository

import (
	"github.com/annamandarin/gamify/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindAllWithQuestionCount() ([]struct {
		model.Quiz
		QuestionCount int
	}, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates associated questions and options in one go when the
	// Quiz model carries them.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.First(&quiz, id).Error
	return &quiz, err
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_quiz ASC")
	}).Preload("Questions.Options").First(&quiz, id).Error
	return &quiz, err
}

func (r *quizRepository) FindAllWithQuestionCount() ([]struct {
	model.Quiz
	QuestionCount int
}, error) {
	var results []struct {
		model.Quiz
		QuestionCount int
	}
	err := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) as question_count").
		Order("quizzes.created_at DESC").
		Where("quizzes.deleted_at IS NULL").
		Scan(&results).Error
	return results, err
}
