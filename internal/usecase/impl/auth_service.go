// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "hosting/internal/delivery/context"
	"hosting/internal/domain/entity"
	domainerrors "hosting/internal/domain/errors"
	"hosting/internal/domain/repository"
	"hosting/internal/domain/service"
	"hosting/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// unknownAccountPassword is hashed once and checked against on logins for
// unknown emails so that both failure paths pay for one bcrypt comparison.
const unknownAccountPassword = "hosting-unknown-account"

// authService implements the AuthUsecase interface. It keeps no per-request
// state between calls.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	dummyDigest  func() (string, error)
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		dummyDigest: sync.OnceValues(func() (string, error) {
			return params.Hasher.Hash(unknownAccountPassword)
		}),
		now:    time.Now,
		logger: params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account after checking that neither the username nor
// the email is taken. The check and the insert are separate round trips; the
// store's unique constraints decide a concurrent race.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("username", input.Username))

	_, err := srv.accountRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Registration rejected, account exists", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrAccountAlreadyExists, "registration failed")
	case !errors.Is(err, repository.ErrAccountNotFound):
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check existing account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, service.ErrPasswordTooLong) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleOrDefault(input.Role),
		CreatedAt:    srv.now().UTC(),
		Services:     []entity.LedgerItem{},
		Cart:         []entity.LedgerItem{},
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			srv.log(ctx).Info("Registration lost race on unique constraint", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrAccountAlreadyExists, "registration failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account.Public()}, nil
}

// Login verifies the credentials and issues an access token whose subject is
// the account id. An unknown email and a wrong password fail identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			if digest, hashErr := srv.dummyDigest(); hashErr == nil {
				srv.hasher.Check(input.Password, digest)
			}
			srv.log(ctx).Info("Login failed")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login failed")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, expiresAt, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternal, err.Error())
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		AccountID:   account.ID,
	}, nil
}

// Authorize decodes the token and returns its subject verbatim. A deleted
// account keeps passing until its tokens expire.
func (srv *authService) Authorize(ctx context.Context, token string) (string, error) {
	subject, err := srv.tokenService.Decode(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected")

		return "", errors.Wrap(domainerrors.ErrUnauthorized, "authorize failed")
	}

	return subject, nil
}
