package usecase

import (
	"stayhub/internal/domain/staff"
	"stayhub/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, staff.Subject, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, staff.Subject, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, staff.Subject{}, err
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, staff.Subject{}, err
	}
	department, err := staff.NewDepartment(claims.Department)
	if err != nil {
		return uuid.Nil, staff.Subject{}, err
	}
	level, err := staff.NewAccessLevel(claims.AccessLevel)
	if err != nil {
		return uuid.Nil, staff.Subject{}, err
	}

	return claims.StaffID, staff.Subject{
		Role:        role,
		Department:  department,
		AccessLevel: level,
	}, nil
}
