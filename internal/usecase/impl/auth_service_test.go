package impl

import (
	"context"
	"testing"

	"tourdesk/internal/domain/entity"
	domainerrors "tourdesk/internal/domain/errors"
	"tourdesk/internal/domain/repository"
	"tourdesk/internal/domain/service"
	mockRepo "tourdesk/internal/mocks/repository"
	mockSvc "tourdesk/internal/mocks/service"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "frontdesk",
		Email:    "frontdesk@example.com",
		Password: "Password123!",
		FullName: "Front Desk",
	}

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed-password", nil)

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = uuid.New()
		}).
		Return(nil)

	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().AccountRepo().Return(txAccountRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, entity.RoleAdmin, output.Account.Role)
	assert.Equal(t, "hashed-password", output.Account.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.Account.ID)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "frontdesk",
		Email:    "frontdesk@example.com",
		Password: "Password123!",
		FullName: "Front Desk",
	}

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed-password", nil)

	existing := &entity.Account{ID: uuid.New(), Email: input.Email}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)

	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().AccountRepo().Return(txAccountRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "frontdesk@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleAdmin,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed-password").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(account.ID, "admin").Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, account, output.Account)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "frontdesk@example.com",
		PasswordHash: "hashed-password",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed-password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    account.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown emails surface as bad credentials, not as a missing account.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:   uuid.New(),
		Role: entity.RoleCustomer,
	}

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{AccountID: account.ID, Role: "customer", Type: "refresh"}, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.tokenService.EXPECT().GenerateTokens(account.ID, "customer").Return("new-access", "new-refresh", nil)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Refresh_AccountDeleted(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{AccountID: accountID, Role: "customer", Type: "refresh"}, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_GetProfile_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "frontdesk@example.com"}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := fx.service.GetProfile(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}
