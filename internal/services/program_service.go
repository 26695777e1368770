package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"rehla/internal/models/db_models"
	"rehla/internal/models/request_models"
	"rehla/internal/repositories"
	"rehla/pkg/utils"
)

type ProgramServiceInterface interface {
	SaveProgram(ctx context.Context, userID string, req request_models.SaveProgramRequest) (*db_models.Program, error)
	GetProgramByID(ctx context.Context, userID string, programID string) (*db_models.Program, error)
	ListProgramsByUser(ctx context.Context, userID string) ([]db_models.Program, error)
	DeleteProgram(ctx context.Context, userID string, programID string) error
}

type ProgramService struct {
	programRepo repositories.ProgramRepository
}

func NewProgramService(programRepo repositories.ProgramRepository) ProgramServiceInterface {
	return &ProgramService{programRepo: programRepo}
}

// SaveProgram persists an itinerary the user chose to keep. The plan document
// is stored verbatim, so it must at least be valid JSON.
func (s *ProgramService) SaveProgram(ctx context.Context, userID string, req request_models.SaveProgramRequest) (*db_models.Program, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if !json.Valid(req.Plan) {
		return nil, utils.ErrInvalidInput
	}

	program := &db_models.Program{
		UserID:      uid,
		Destination: req.Destination,
		Budget:      req.Budget,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Interests:   req.Interests,
		Plan:        []byte(req.Plan),
	}

	if _, err := s.programRepo.CreateProgram(ctx, program); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return program, nil
}

func (s *ProgramService) GetProgramByID(ctx context.Context, userID string, programID string) (*db_models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if program == nil || program.UserID.String() != userID {
		return nil, utils.ErrProgramNotFound
	}
	return program, nil
}

func (s *ProgramService) ListProgramsByUser(ctx context.Context, userID string) ([]db_models.Program, error) {
	programs, err := s.programRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return programs, nil
}

func (s *ProgramService) DeleteProgram(ctx context.Context, userID string, programID string) error {
	program, err := s.GetProgramByID(ctx, userID, programID)
	if err != nil {
		return err
	}
	if err := s.programRepo.DeleteProgram(ctx, program.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
