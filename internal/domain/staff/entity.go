package staff

import (
	"time"

	"github.com/google/uuid"
)

type Staff struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	department   Department
	accessLevel  AccessLevel
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewStaff(email Email, passwordHash string, role Role, department Department, accessLevel AccessLevel) *Staff {
	return &Staff{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		department:   department,
		accessLevel:  accessLevel,
		isActive:     true,
	}
}

func ReconstructStaff(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	department Department,
	accessLevel AccessLevel,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Staff {
	return &Staff{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		department:   department,
		accessLevel:  accessLevel,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Staff) ID() uuid.UUID           { return s.id }
func (s *Staff) Email() Email            { return s.email }
func (s *Staff) PasswordHash() string    { return s.passwordHash }
func (s *Staff) Role() Role              { return s.role }
func (s *Staff) Department() Department  { return s.department }
func (s *Staff) AccessLevel() AccessLevel { return s.accessLevel }
func (s *Staff) LastLogin() *time.Time   { return s.lastLogin }
func (s *Staff) IsActive() bool          { return s.isActive }
func (s *Staff) CreatedAt() time.Time    { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time    { return s.updatedAt }
