package impl

import (
	"context"
	"testing"

	"tourdesk/internal/domain/entity"
	domainerrors "tourdesk/internal/domain/errors"
	"tourdesk/internal/domain/repository"
	mockRepo "tourdesk/internal/mocks/repository"
	mockSvc "tourdesk/internal/mocks/service"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service       usecase.CustomerUsecase
	txManager     *mockRepo.MockTransactionManager
	accountRepo   *mockRepo.MockAccountRepository
	hasher        *mockSvc.MockPasswordHasher
	credGenerator *mockSvc.MockCredentialGenerator
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	credGenerator := mockSvc.NewMockCredentialGenerator(t)

	service := NewCustomerService(CustomerServiceParams{
		TxManager:     txManager,
		AccountRepo:   accountRepo,
		Hasher:        hasher,
		CredGenerator: credGenerator,
		Logger:        newDiscardLogger(),
	})

	return customerServiceFixtures{
		service:       service,
		txManager:     txManager,
		accountRepo:   accountRepo,
		hasher:        hasher,
		credGenerator: credGenerator,
	}
}

func TestCustomerService_Create_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CreateCustomerInput{
		Email:    "ana.lopez@example.com",
		FullName: "Ana Lopez",
		Phone:    "+34 600 000 000",
	}

	fx.credGenerator.EXPECT().Generate().Return("one-time-password", nil)
	fx.hasher.EXPECT().Hash("one-time-password").Return("hashed-credential", nil)

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().FindByUsername(ctx, "ana.lopez").Return(nil, repository.ErrAccountNotFound)
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

	output, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "one-time-password", output.TemporaryPassword)
	assert.Equal(t, entity.RoleCustomer, output.Customer.Role)
	assert.Equal(t, "ana.lopez", output.Customer.Username)
	assert.Equal(t, "hashed-credential", output.Customer.PasswordHash)
}

func TestCustomerService_Create_UsernameCollisionGetsSuffix(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CreateCustomerInput{
		Email:    "ana.lopez@example.com",
		FullName: "Ana Lopez",
	}

	fx.credGenerator.EXPECT().Generate().Return("one-time-password", nil)
	fx.hasher.EXPECT().Hash("one-time-password").Return("hashed-credential", nil)

	taken := &entity.Account{ID: uuid.New(), Username: "ana.lopez"}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().FindByUsername(ctx, "ana.lopez").Return(taken, nil)
	txAccountRepo.EXPECT().FindByUsername(ctx, mock.MatchedBy(func(username string) bool {
		return len(username) == len("ana.lopez")+9 && username[:len("ana.lopez")+1] == "ana.lopez-"
	})).Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().AccountRepo().Return(txAccountRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})

	output, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Contains(t, output.Customer.Username, "ana.lopez-")
}

func TestCustomerService_Create_EmailTaken(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := &usecase.CreateCustomerInput{
		Email:    "ana.lopez@example.com",
		FullName: "Ana Lopez",
	}

	fx.credGenerator.EXPECT().Generate().Return("one-time-password", nil)
	fx.hasher.EXPECT().Hash("one-time-password").Return("hashed-credential", nil)

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

	output, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestCustomerService_Get_RejectsAdminAccounts(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	admin := &entity.Account{ID: uuid.New(), Role: entity.RoleAdmin}

	fx.accountRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	got, err := fx.service.Get(ctx, admin.ID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_Update_MergesAndChecksEmail(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := &entity.Account{
		ID:       uuid.New(),
		Email:    "ana.lopez@example.com",
		FullName: "Ana Lopez",
		Role:     entity.RoleCustomer,
	}

	newEmail := "ana.lopez@newmail.com"
	newPhone := "+34 611 111 111"
	input := &usecase.UpdateCustomerInput{Email: &newEmail, Phone: &newPhone}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txAccountRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	txAccountRepo.EXPECT().FindByEmail(ctx, newEmail).Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().AccountRepo().Return(txAccountRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})

	updated, err := fx.service.Update(ctx, customer.ID, input)

	require.NoError(t, err)
	assert.Equal(t, newEmail, updated.Email)
	assert.Equal(t, newPhone, updated.Phone)
	assert.Equal(t, "Ana Lopez", updated.FullName)
}

func TestCustomerService_Update_RotatesSuppliedPassword(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := &entity.Account{
		ID:           uuid.New(),
		Email:        "ana.lopez@example.com",
		PasswordHash: "old-hash",
		Role:         entity.RoleCustomer,
	}

	newPassword := "fresh-secret-99"
	input := &usecase.UpdateCustomerInput{Password: &newPassword}

	fx.hasher.EXPECT().Hash(newPassword).Return("new-hash", nil)

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txAccountRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	txAccountRepo.EXPECT().Update(ctx, mock.MatchedBy(func(account *entity.Account) bool {
		return account.PasswordHash == "new-hash"
	})).Return(nil)

	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().AccountRepo().Return(txAccountRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})

	updated, err := fx.service.Update(ctx, customer.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
}

func TestCustomerService_Delete_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := &entity.Account{ID: uuid.New(), Role: entity.RoleCustomer}

	fx.accountRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.accountRepo.EXPECT().Delete(ctx, customer.ID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, customer.ID))
}

func TestCustomerService_List_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	expected := []*entity.Account{{ID: uuid.New(), Role: entity.RoleCustomer}}

	fx.accountRepo.EXPECT().FindByRole(ctx, entity.RoleCustomer).Return(expected, nil)

	customers, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, customers)
}

func TestCustomerService_Search_ScopedToCustomerRole(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	filter := repository.AccountSearchFilter{Name: "ana", Email: ""}
	expected := []*entity.Account{{ID: uuid.New(), FullName: "Ana Lopez"}}

	fx.accountRepo.EXPECT().Search(ctx, entity.RoleCustomer, filter).Return(expected, nil)

	customers, err := fx.service.Search(ctx, &usecase.SearchCustomersInput{Name: "ana"})

	require.NoError(t, err)
	assert.Equal(t, expected, customers)
}
