package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rehla/internal/models/db_models"
	"rehla/internal/models/request_models"
	"rehla/pkg/utils"
)

type memAccountRepo struct {
	byEmail map[string]*db_models.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{byEmail: map[string]*db_models.Account{}}
}

func (r *memAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	r.byEmail[account.Email] = account
	return nil
}
func (r *memAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return r.byEmail[email], nil
}
func (r *memAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	for _, a := range r.byEmail {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func TestSignUpAndLogin(t *testing.T) {
	svc := NewAccountService(newMemAccountRepo())

	token, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		DisplayName: "Nour",
		Email:       "Nour@Example.com",
		Password:    "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Email matching is case-insensitive on login.
	token, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nour@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc := NewAccountService(newMemAccountRepo())

	req := request_models.SignUpRequest{DisplayName: "Nour", Email: "nour@example.com", Password: "correct horse"}
	_, err := svc.SignUp(context.Background(), req)
	require.NoError(t, err)

	req.Email = strings.ToUpper(req.Email)
	_, err = svc.SignUp(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAccountService(newMemAccountRepo())

	_, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		DisplayName: "Nour", Email: "nour@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "nour@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "nobody@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
