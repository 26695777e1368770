package services

import (
	"context"
	"strings"

	"rehla/internal/models/db_models"
	"rehla/internal/models/request_models"
	"rehla/internal/repositories"
	"rehla/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (string, error)
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	GetProfile(ctx context.Context, userID string) (*db_models.Account, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

// SignUp registers an account and returns a signed session token.
func (s *AccountService) SignUp(ctx context.Context, req request_models.SignUpRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return "", utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        email,
		PasswordHash: hash,
		Role:         "user",
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return "", utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return token, nil
}

// Login never reveals whether the email or the password was wrong.
func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return token, nil
}

func (s *AccountService) GetProfile(ctx context.Context, userID string) (*db_models.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}
