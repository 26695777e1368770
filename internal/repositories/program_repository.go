package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rehla/internal/models/db_models"
)

type ProgramRepository interface {
	CreateProgram(ctx context.Context, program *db_models.Program) (uuid.UUID, error)
	DeleteProgram(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id string) (*db_models.Program, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Program, error)
}

type programRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) CreateProgram(ctx context.Context, program *db_models.Program) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(program).Error; err != nil {
		return uuid.Nil, err
	}
	return program.ID, nil
}

func (r *programRepository) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Program{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *programRepository) GetByID(ctx context.Context, id string) (*db_models.Program, error) {
	var program db_models.Program
	err := r.db.WithContext(ctx).First(&program, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

func (r *programRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Program, error) {
	var programs []db_models.Program
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}
