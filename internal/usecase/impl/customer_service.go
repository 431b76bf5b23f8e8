package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tourdesk/internal/delivery/context"
	"tourdesk/internal/domain/entity"
	domainerrors "tourdesk/internal/domain/errors"
	"tourdesk/internal/domain/repository"
	"tourdesk/internal/domain/service"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager     repository.TransactionManager
	accountRepo   repository.AccountRepository
	hasher        service.PasswordHasher
	credGenerator service.CredentialGenerator
	logger        *slog.Logger
}

// CustomerServiceParams holds dependencies for customerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	AccountRepo   repository.AccountRepository
	Hasher        service.PasswordHasher
	CredGenerator service.CredentialGenerator
	Logger        *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:     params.TxManager,
		accountRepo:   params.AccountRepo,
		hasher:        params.Hasher,
		credGenerator: params.CredGenerator,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a customer account on behalf of an administrator. The password
// is generated server-side; the plaintext is returned once and only its hash
// is stored.
func (srv *customerService) Create(ctx context.Context, input *usecase.CreateCustomerInput) (*usecase.CreateCustomerOutput, error) {
	srv.log(ctx).Info("Creating customer account", slog.String("email", input.Email))

	password, err := srv.credGenerator.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate customer credential", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAccountCreationFailed, "failed to generate credential")
	}

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash generated credential", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash generated credential")
	}

	var created *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, findErr := accountRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check email uniqueness")
		}

		username, usernameErr := srv.deriveUsername(ctx, accountRepo, input.Email)
		if usernameErr != nil {
			return usernameErr
		}

		newAccount := &entity.Account{
			Username:     username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Role:         entity.RoleCustomer,
			FullName:     input.FullName,
			Phone:        input.Phone,
			Address:      input.Address,
		}

		if createErr := accountRepo.Create(ctx, newAccount); createErr != nil {
			return errors.Wrap(createErr, "failed to create customer account")
		}

		created = newAccount

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute customer creation transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute customer creation transaction")
	}

	srv.log(ctx).Debug("Customer account created", slog.Any("customerID", created.ID))

	return &usecase.CreateCustomerOutput{
		Customer:          created,
		TemporaryPassword: password,
	}, nil
}

// deriveUsername builds a login handle from the email local part, falling back
// to a short random suffix when the handle is already taken.
func (srv *customerService) deriveUsername(ctx context.Context, accountRepo repository.AccountRepository, email string) (string, error) {
	base := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	if base == "" {
		base = "customer"
	}

	_, err := accountRepo.FindByUsername(ctx, base)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return base, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to check username uniqueness")
	}

	suffixed := base + "-" + uuid.New().String()[:8]

	_, err = accountRepo.FindByUsername(ctx, suffixed)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return suffixed, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to check username uniqueness")
	}

	return "", errors.Wrap(domainerrors.ErrUsernameAlreadyExists, "could not derive a free username")
}

// Get retrieves one customer account by ID. Accounts holding other roles are
// reported as not found so admins cannot be managed through this surface.
func (srv *customerService) Get(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	if account.Role != entity.RoleCustomer {
		return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "account is not a customer")
	}

	return account, nil
}

// List returns every customer account.
func (srv *customerService) List(ctx context.Context) ([]*entity.Account, error) {
	customers, err := srv.accountRepo.FindByRole(ctx, entity.RoleCustomer)
	if err != nil {
		srv.log(ctx).Error("Failed to list customers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// Search returns the customer accounts matching the filters.
func (srv *customerService) Search(ctx context.Context, input *usecase.SearchCustomersInput) ([]*entity.Account, error) {
	filter := repository.AccountSearchFilter{
		Name:  input.Name,
		Email: input.Email,
	}

	customers, err := srv.accountRepo.Search(ctx, entity.RoleCustomer, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to search customers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search customers")
	}

	return customers, nil
}

// Update applies a partial profile update to a customer account. A supplied
// password is re-hashed before storage; the role is never touched.
func (srv *customerService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateCustomerInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating customer", slog.Any("customerID", id))

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, findErr := accountRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
			}

			return errors.Wrap(findErr, "failed to find customer by id")
		}
		if account.Role != entity.RoleCustomer {
			return errors.Wrap(domainerrors.ErrCustomerNotFound, "account is not a customer")
		}

		if input.Email != nil && *input.Email != account.Email {
			_, lookupErr := accountRepo.FindByEmail(ctx, *input.Email)
			if lookupErr == nil {
				return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email already registered")
			}
			if !errors.Is(lookupErr, repository.ErrAccountNotFound) {
				return errors.Wrap(lookupErr, "failed to check email uniqueness")
			}
			account.Email = *input.Email
		}
		if input.FullName != nil {
			account.FullName = *input.FullName
		}
		if input.Phone != nil {
			account.Phone = *input.Phone
		}
		if input.Address != nil {
			account.Address = *input.Address
		}
		if input.Password != nil {
			hashed, hashErr := srv.hasher.Hash(*input.Password)
			if hashErr != nil {
				return errors.Wrap(hashErr, "failed to hash rotated password")
			}
			account.PasswordHash = hashed
		}

		if updateErr := accountRepo.Update(ctx, account); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update customer")
		}

		updated = account

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute customer update transaction", slog.Any("customerID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute customer update transaction")
	}

	return updated, nil
}

// Delete removes a customer account. Reservations referencing it keep their
// dangling customer reference.
func (srv *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting customer", slog.Any("customerID", id))

	if _, err := srv.Get(ctx, id); err != nil {
		return err
	}

	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
		}

		return errors.Wrap(err, "failed to delete customer")
	}

	return nil
}
