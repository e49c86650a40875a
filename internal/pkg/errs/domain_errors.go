package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Voucher errors
	ErrVoucherNotFound   = errors.New("voucher not found")
	ErrVoucherExpired    = errors.New("voucher expired")
	ErrInvalidState      = errors.New("voucher not in redeemable state")
	ErrAlreadyRedeemed   = errors.New("voucher already redeemed")
	ErrInvalidTransition = errors.New("invalid voucher state transition")
	ErrSignatureMismatch = errors.New("voucher signature mismatch")

	// Issuance errors
	ErrStayNotFound        = errors.New("stay not found")
	ErrWindowOutsideStay   = errors.New("validity window outside stay window")
	ErrInvalidWindow       = errors.New("invalid validity window")
	ErrInvalidVoucherCount = errors.New("invalid voucher count")

	// Reconciliation errors
	ErrBatchTooLarge = errors.New("sync batch exceeds maximum size")

	// Terminal auth errors
	ErrTerminalNotFound   = errors.New("terminal not found")
	ErrTerminalInactive   = errors.New("terminal inactive")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
