package commands

import (
	"context"
	"log/slog"

	"mealvoucher/internal/infra"
	"mealvoucher/internal/pkg/clock"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/pkg/jwt"
	"mealvoucher/internal/pkg/password"
	"mealvoucher/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	Token       string
	DeviceID    uuid.UUID
	CafeteriaID uuid.UUID
}

type AuthCommands interface {
	// Login authenticates a cafeteria terminal by name and shared secret and
	// returns a bearer token carrying the terminal's identity.
	Login(ctx context.Context, name, secret string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	uow   shared.UnitOfWork
	jwt   *jwt.Service
	clock clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtSvc *jwt.Service, clk clock.Clock) AuthCommands {
	return &authUseCaseImpl{
		uow:   uow,
		jwt:   jwtSvc,
		clock: clk,
	}
}

func (c *authUseCaseImpl) Login(ctx context.Context, name, secret string) (*LoginResult, error) {
	terminal, err := c.uow.CommandReads().TerminalByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a bad secret so probes cannot enumerate terminals.
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !terminal.Active {
		return nil, errs.ErrTerminalInactive
	}

	if err := password.CompareSecret(terminal.SecretHash, secret); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := c.jwt.GenerateToken(terminal.ID, terminal.CafeteriaID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate terminal token")
	}

	err = c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Terminals().UpdateLastSeen(ctx, terminal.ID, c.clock.Now())
	})
	if err != nil {
		// last_seen_at is advisory; a failed touch never blocks login
		slog.Warn("failed to update terminal last seen", "terminal_id", terminal.ID, "error", err.Error())
	}

	return &LoginResult{Token: token, DeviceID: terminal.ID, CafeteriaID: terminal.CafeteriaID}, nil
}
