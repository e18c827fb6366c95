package fixtures

import (
	"context"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
)

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}
	return first(repo.db.users, len(repo.db.users)), nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	if err := repo.db.wait(ctx); err != nil {
		return user.User{}, err
	}
	for _, usr := range repo.db.users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

// CurrentUser stands in for the session user with the first fixture.
func (repo *userRepository) CurrentUser(ctx context.Context) (user.User, error) {
	if err := repo.db.wait(ctx); err != nil {
		return user.User{}, err
	}
	if len(repo.db.users) == 0 {
		return user.User{}, user.ErrNotFound
	}
	return repo.db.users[0], nil
}

func (repo *userRepository) Register(ctx context.Context, _ user.NewUser) (user.RegisterResult, error) {
	if err := repo.db.wait(ctx); err != nil {
		return user.RegisterResult{}, err
	}
	return user.RegisterResult{Success: true, UserID: core.AckID, Message: "Registration successful"}, nil
}

// Authenticate accepts any email as long as the password is the demo one.
func (repo *userRepository) Authenticate(ctx context.Context, creds user.Credentials) (user.User, error) {
	if err := repo.db.wait(ctx); err != nil {
		return user.User{}, err
	}
	usr := user.DemoUser(creds.Email)
	if err := usr.CheckPassword(creds.Password); err != nil {
		return user.User{}, user.ErrInvalidCredentials
	}
	return usr, nil
}
