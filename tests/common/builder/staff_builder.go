//go:build unit || e2e

package builder

import (
	"time"

	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type StaffBuilder struct {
	ID          uuid.UUID
	Email       string
	Password    string
	Role        string
	Department  string
	AccessLevel int32
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewStaffBuilder() *StaffBuilder {
	now := time.Now()
	return &StaffBuilder{
		ID:          uuid.New(),
		Email:       "manager@stayhub.test",
		Password:    "password123",
		Role:        "manager",
		Department:  "front_office",
		AccessLevel: 4,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *StaffBuilder) BuildSnapshot() *commands.StaffSnapshot {
	hash, _ := password.HashPasswordCost(b.Password, bcrypt.MinCost)
	return &commands.StaffSnapshot{
		ID:           b.ID,
		Email:        b.Email,
		PasswordHash: hash,
		Role:         b.Role,
		Department:   b.Department,
		AccessLevel:  b.AccessLevel,
		IsActive:     b.IsActive,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *StaffBuilder) BuildView() queries.AuthorizedStaffView {
	return queries.AuthorizedStaffView{
		ID:          b.ID,
		Email:       b.Email,
		Role:        b.Role,
		Department:  b.Department,
		AccessLevel: b.AccessLevel,
		IsActive:    b.IsActive,
	}
}

func (b *StaffBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *StaffBuilder) WithEmail(email string) *StaffBuilder {
	b.Email = email
	return b
}

func (b *StaffBuilder) WithPassword(password string) *StaffBuilder {
	b.Password = password
	return b
}

func (b *StaffBuilder) WithRole(role string) *StaffBuilder {
	b.Role = role
	return b
}

func (b *StaffBuilder) WithDepartment(department string) *StaffBuilder {
	b.Department = department
	return b
}

func (b *StaffBuilder) WithAccessLevel(level int32) *StaffBuilder {
	b.AccessLevel = level
	return b
}

func (b *StaffBuilder) AsAdmin() *StaffBuilder {
	b.Role = "admin"
	b.AccessLevel = 5
	return b
}
