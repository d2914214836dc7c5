package response

import (
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token string        `json:"token"`
	Staff StaffResponse `json:"staff"`
}

type StaffResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	AccessLevel int32     `json:"access_level"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token: result.Token,
		Staff: StaffResponse{
			ID:          result.Staff.ID,
			Email:       result.Staff.Email,
			Role:        result.Staff.Role,
			Department:  result.Staff.Department,
			AccessLevel: result.Staff.AccessLevel,
		},
	}
}
