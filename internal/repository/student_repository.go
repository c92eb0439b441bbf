package repository

import (
	"github.com/annamandarin/gamify/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.Student) error
	FindByID(id uuid.UUID) (*model.Student, error)
	AddPoints(id uuid.UUID, delta int) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id uuid.UUID) (*model.Student, error) {
	var student model.Student
	err := r.db.First(&student, "id = ?", id).Error
	return &student, err
}

// AddPoints increments the cumulative total in the database rather than
// read-modify-write, so concurrent awards cannot lose updates.
func (r *studentRepository) AddPoints(id uuid.UUID, delta int) error {
	return r.db.Model(&model.Student{}).
		Where("id = ?", id).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", delta)).Error
}
