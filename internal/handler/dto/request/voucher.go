package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IssueVouchersRequest struct {
	StayID     uuid.UUID `json:"stay_id" binding:"required"`
	ValidFrom  time.Time `json:"valid_from" binding:"required"`
	ValidUntil time.Time `json:"valid_until" binding:"required"`
	Count      int       `json:"count" binding:"required,min=1"`
	// Activate defaults to true; pass false to issue Pending vouchers that
	// get activated at check-in.
	Activate  *bool   `json:"activate,omitempty"`
	Allowance *string `json:"allowance,omitempty"`
}

func (r IssueVouchersRequest) ShouldActivate() bool {
	if r.Activate == nil {
		return true
	}
	return *r.Activate
}

func (r IssueVouchersRequest) GetAllowance() (*decimal.Decimal, error) {
	if r.Allowance == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*r.Allowance)
	if trimmed == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type RedeemVoucherRequest struct {
	Code  string  `json:"code" binding:"required"`
	Notes *string `json:"notes,omitempty"`
}

type RedeemBatchRequest struct {
	Codes []string `json:"codes" binding:"required,min=1"`
	Notes *string  `json:"notes,omitempty"`
}

type ValidateVoucherRequest struct {
	Code      string  `json:"code" binding:"required"`
	Signature *string `json:"signature,omitempty"`
}

type CancelVoucherRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type SyncAttemptRequest struct {
	LocalID        string    `json:"local_id" binding:"required"`
	VoucherCode    string    `json:"voucher_code" binding:"required"`
	LocalTimestamp time.Time `json:"local_timestamp" binding:"required"`
	Notes          *string   `json:"notes,omitempty"`
}

type SyncRedemptionsRequest struct {
	Attempts []SyncAttemptRequest `json:"attempts" binding:"required,min=1,dive"`
}
