package commands

import (
	"context"

	"sitlink/internal/domain/user"
	"sitlink/internal/infra"
	"sitlink/internal/pkg/errs"
	"sitlink/internal/pkg/jwt"
	"sitlink/internal/pkg/password"
	"sitlink/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	User        *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a bad password so the endpoint does not leak
			// which emails exist.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Verify(hash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, ok := user.ParseRole(view.Role)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      view.ID,
		AccessToken: token,
		User:        view,
	}, nil
}
