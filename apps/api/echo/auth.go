package echoapi

import (
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
)

const contextTokenKey = "userToken"

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	UserID      int    `json:"uid"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	CoinBalance int    `json:"coins,omitempty"`
	IsStudent   bool   `json:"is_student,omitempty"`
	IsTeacher   bool   `json:"is_teacher,omitempty"`
}

// User rebuilds the user carried by the token.
func (c Claims) User() user.User {
	return user.User{
		ID:          c.UserID,
		Username:    c.Username,
		Email:       c.Email,
		Role:        c.Role,
		CoinBalance: c.CoinBalance,
	}
}

type tokenAuth struct {
	jwtConfig middleware.JWTConfig
	issuer    string
	expiry    time.Duration
}

func newTokenAuth(conf *core.Config) *tokenAuth {
	return &tokenAuth{
		jwtConfig: middleware.JWTConfig{
			SigningKey:    []byte(conf.SecretKey),
			SigningMethod: middleware.AlgorithmHS256,
			ContextKey:    contextTokenKey,
			Claims:        new(Claims),
		},
		issuer: conf.AppName,
		expiry: conf.Server.JWTExpirationDelta,
	}
}

// optional validates the token when there is one, and lets anonymous requests through.
func (a *tokenAuth) optional() echo.MiddlewareFunc {
	conf := a.jwtConfig
	conf.Skipper = func(ctx echo.Context) bool {
		return ctx.Request().Header.Get(echo.HeaderAuthorization) == ""
	}
	return middleware.JWTWithConfig(conf)
}

func (a *tokenAuth) userClaims(usr user.User) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    a.issuer,
			Subject:   strconv.Itoa(usr.ID),
			Audience:  "Dashboard",
			ExpiresAt: now.Add(a.expiry).Unix(),
			IssuedAt:  now.Unix(),
		},
		UserID:      usr.ID,
		Username:    usr.Username,
		Email:       usr.Email,
		Role:        usr.Role,
		CoinBalance: usr.CoinBalance,
		IsStudent:   usr.IsStudent(),
		IsTeacher:   usr.IsTeacher(),
	}
}

// generateToken generates a signed JWT token string representing the user Claims.
func (a *tokenAuth) generateToken(usr user.User) (string, error) {
	method := jwt.GetSigningMethod(a.jwtConfig.SigningMethod)
	token := jwt.NewWithClaims(method, a.userClaims(usr))

	ss, err := token.SignedString(a.jwtConfig.SigningKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}
