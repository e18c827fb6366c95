package user

import (
	"context"
	"errors"
	"sync"

	"github.com/trezcool/darasa/core"
)

const (
	// DemoPassword is accepted for any email in mock mode.
	DemoPassword = "demo"

	demoUserID      = 1
	demoCoinBalance = 150
)

var (
	// errors
	ErrNotFound           = core.NewNotFoundError("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials. In demo mode, use any email with password 'demo'")

	demoHash     []byte
	demoHashOnce sync.Once
)

type (
	Repository interface {
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUserByID(ctx context.Context, id int) (User, error)
		// CurrentUser returns the session user.
		CurrentUser(ctx context.Context) (User, error)
		// Register acknowledges a registration. The new user is not stored.
		Register(ctx context.Context, nu NewUser) (RegisterResult, error)
		// Authenticate resolves credentials into the logged-in User.
		Authenticate(ctx context.Context, creds Credentials) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

// Current returns the session user known to the data source, used when the request carries no token.
func (svc *Service) Current(ctx context.Context) (User, error) {
	return svc.repo.CurrentUser(ctx)
}

func (svc *Service) Register(ctx context.Context, nu NewUser) (RegisterResult, error) {
	nu.Clean()
	return svc.repo.Register(ctx, nu)
}

func (svc *Service) Login(ctx context.Context, creds Credentials) (User, error) {
	creds.Clean()
	return svc.repo.Authenticate(ctx, creds)
}

// DemoUser builds the user logged in with the demo password.
func DemoUser(email string) User {
	demoHashOnce.Do(func() {
		var u User
		_ = u.SetPassword(DemoPassword)
		demoHash = u.PasswordHash
	})
	return User{
		ID:           demoUserID,
		Username:     usernameFromEmail(email),
		Email:        email,
		Role:         RoleStudent,
		CoinBalance:  demoCoinBalance,
		PasswordHash: demoHash,
	}
}
