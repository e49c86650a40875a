//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mealvoucher/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Reference rows every e2e test can rely on. IDs are fixed so tests can
// address them without querying first.
var (
	TestStayID      = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	TestCafeteriaID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	TestTerminalName   = "e2e-terminal-01"
	TestTerminalSecret = "e2e-terminal-secret"

	TestStayCheckIn  = time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Second)
	TestStayCheckOut = time.Now().UTC().Add(7 * 24 * time.Hour).Truncate(time.Second)
)

var (
	secretHashOnce sync.Once
	secretHash     string
	secretHashErr  error
)

// terminalSecretHash computes the bcrypt hash once per process; hashing per
// reset would dominate suite runtime.
func terminalSecretHash() (string, error) {
	secretHashOnce.Do(func() {
		secretHash, secretHashErr = password.HashSecret(TestTerminalSecret)
	})
	return secretHash, secretHashErr
}

func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hash, err := terminalSecretHash()
	if err != nil {
		return fmt.Errorf("failed to hash terminal secret: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO stays (id, guest_name, check_in_date, check_out_date)
		VALUES ($1, 'E2E Guest', $2, $3)
		ON CONFLICT (id) DO NOTHING`,
		TestStayID, TestStayCheckIn, TestStayCheckOut)
	if err != nil {
		return fmt.Errorf("failed to seed stay: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO terminals (name, cafeteria_id, secret_hash, active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (name) DO NOTHING`,
		TestTerminalName, TestCafeteriaID, hash)
	if err != nil {
		return fmt.Errorf("failed to seed terminal: %w", err)
	}

	return nil
}

// ResetDB truncates all mutable tables and reseeds the reference rows.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE voucher_redemptions, redemption_sync_log, vouchers, terminals, stays CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	return SeedReferenceData(pool)
}
