package remote

import (
	"context"
	"strconv"

	"github.com/trezcool/darasa/core/user"
)

type userRepository struct {
	c *Client
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(c *Client) user.Repository {
	return &userRepository{c: c}
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	users := make([]user.User, 0)
	err := repo.c.get(ctx, "/users", &users, nil)
	return users, err
}

func (repo *userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	var usr user.User
	err := repo.c.get(ctx, "/users/"+strconv.Itoa(id), &usr, user.ErrNotFound)
	return usr, err
}

func (repo *userRepository) CurrentUser(ctx context.Context) (user.User, error) {
	var usr user.User
	err := repo.c.get(ctx, "/users/me", &usr, user.ErrNotFound)
	return usr, err
}

func (repo *userRepository) Register(ctx context.Context, nu user.NewUser) (user.RegisterResult, error) {
	var res user.RegisterResult
	err := repo.c.post(ctx, "/auth/register", nu, &res)
	return res, err
}

func (repo *userRepository) Authenticate(ctx context.Context, creds user.Credentials) (user.User, error) {
	var res struct {
		Success bool      `json:"success"`
		Token   string    `json:"token"`
		User    user.User `json:"user"`
	}
	if err := repo.c.post(ctx, "/auth/login", creds, &res); err != nil {
		return user.User{}, err
	}
	if !res.Success {
		return user.User{}, user.ErrInvalidCredentials
	}
	return res.User, nil
}
