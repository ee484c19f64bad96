package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tripnote/internal/models/db_models"
	"tripnote/internal/models/request_models"
	"tripnote/pkg/utils"
)

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func (m *MockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func TestCreateAccount_Success(t *testing.T) {
	repo := new(MockAccountRepo)
	service := NewAccountService(repo)

	repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *db_models.Account) bool {
		// The password is stored hashed, never verbatim.
		return a.Email == "new@example.com" && a.Name == "지은" && a.PasswordHash != "supersecret1"
	})).Return(nil)

	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name:     "지은",
		Email:    "new@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	repo := new(MockAccountRepo)
	service := NewAccountService(repo)

	repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&db_models.Account{Email: "taken@example.com"}, nil)

	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name:     "지은",
		Email:    "taken@example.com",
		Password: "supersecret1",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockAccountRepo)
	service := NewAccountService(repo)

	hash, err := utils.HashPassword("supersecret1")
	require.NoError(t, err)
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&db_models.Account{
		Name:         "지은",
		Email:        "user@example.com",
		PasswordHash: hash,
	}, nil)

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "user@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "지은", claims.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockAccountRepo)
	service := NewAccountService(repo)

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&db_models.Account{
		Email:        "user@example.com",
		PasswordHash: hash,
	}, nil)

	_, err = service.Login(context.Background(), request_models.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	repo := new(MockAccountRepo)
	service := NewAccountService(repo)

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever123",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_RepositoryError(t *testing.T) {
	repo := new(MockAccountRepo)
	service := NewAccountService(repo)

	repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "user@example.com",
		Password: "supersecret1",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
