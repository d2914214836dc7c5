package commands

import (
	"context"
	"log/slog"

	"stayhub/internal/domain/staff"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/queries"
)

type LoginResult struct {
	Token string
	Staff queries.AuthorizedStaffView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	staffRepo  StaffRepository
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(staffRepo StaffRepository, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a token carrying the role, department
// and access level the authorization middleware evaluates. Lookup misses and
// password mismatches collapse into one error so callers cannot probe which
// emails exist.
func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	addr, err := staff.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAuthenticationFailed)
	}

	snap, err := a.staffRepo.FindByEmail(ctx, addr.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAuthenticationFailed
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(snap.PasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrAuthenticationFailed)
	}

	role, err := staff.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	department, err := staff.NewDepartment(snap.Department)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	level, err := staff.NewAccessLevel(int(snap.AccessLevel))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	token, err := a.jwtService.GenerateToken(snap.ID, role, department, level)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	if err := a.staffRepo.TouchLastLogin(ctx, snap.ID); err != nil {
		// Login still succeeds; the timestamp is informational.
		a.logger.Warn("failed to record last login", slog.String("staff_id", snap.ID.String()))
	}

	return &LoginResult{
		Token: token,
		Staff: queries.AuthorizedStaffView{
			ID:          snap.ID,
			Email:       snap.Email,
			Role:        snap.Role,
			Department:  snap.Department,
			AccessLevel: snap.AccessLevel,
			IsActive:    snap.IsActive,
		},
	}, nil
}
