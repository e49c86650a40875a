package response

import (
	"mealvoucher/internal/usecase/commands"

	"github.com/google/uuid"
)

type TerminalLoginResponse struct {
	Token       string    `json:"token"`
	DeviceID    uuid.UUID `json:"deviceId"`
	CafeteriaID uuid.UUID `json:"cafeteriaId"`
}

func FromLoginResult(res *commands.LoginResult) *TerminalLoginResponse {
	return &TerminalLoginResponse{
		Token:       res.Token,
		DeviceID:    res.DeviceID,
		CafeteriaID: res.CafeteriaID,
	}
}
