package commands

import (
	"context"

	"invoice-admin/internal/domain/user"
	"invoice-admin/internal/pkg/errs"
	"invoice-admin/internal/pkg/jwt"
	"invoice-admin/internal/pkg/password"
	"invoice-admin/internal/usecase/queries"
)

type AuthCommands interface {
	Login(ctx context.Context, email, plaintext string) (string, error)
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

// Login verifies credentials and issues a signed session token carrying the
// user id and role.
func (a *authCommandsImpl) Login(ctx context.Context, email, plaintext string) (string, error) {
	credentials, err := user.NewCredentials(email, plaintext)
	if err != nil {
		return "", errs.Mark(err, errs.ErrInvalidCredentials)
	}

	// Lookup and comparison failures collapse into the same error to prevent
	// user enumeration.
	view, hashed, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		return "", errs.Mark(err, errs.ErrInvalidCredentials)
	}

	if err := password.ComparePassword(hashed, credentials.Password()); err != nil {
		return "", errs.Mark(err, errs.ErrInvalidCredentials)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", errs.Mark(err, errs.ErrTokenGeneration)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return "", errs.Mark(err, errs.ErrTokenGeneration)
	}

	return token, nil
}
