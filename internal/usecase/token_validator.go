package usecase

import (
	"invoice-admin/internal/domain/user"
	"invoice-admin/internal/pkg/errs"
	"invoice-admin/internal/pkg/jwt"
)

// TokenValidator is the session lookup exposed to the authorization gate:
// it resolves an opaque token into the session's user id and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(tokenString string) (string, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", errs.Mark(err, errs.ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return "", "", errs.Mark(err, errs.ErrTokenValidation)
	}

	return claims.UserID, role, nil
}
