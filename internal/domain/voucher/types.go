package voucher

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusRedeemed  Status = "redeemed"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRedeemed, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusActive, StatusRedeemed, StatusExpired, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown voucher status: %q", s)
	}
}
