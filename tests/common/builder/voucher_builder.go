//go:build unit || integration || e2e

package builder

import (
	"time"

	domvoucher "mealvoucher/internal/domain/voucher"
	reqdto "mealvoucher/internal/handler/dto/request"
	"mealvoucher/internal/usecase/queries"
	"mealvoucher/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VoucherBuilder struct {
	ID         uuid.UUID
	Code       string
	StayID     uuid.UUID
	Status     string
	ValidFrom  time.Time
	ValidUntil time.Time
	Allowance  decimal.Decimal
	Signature  string
	Activate   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	return &VoucherBuilder{
		ID:         uuid.New(),
		Code:       "MEAL-2025-0001",
		StayID:     uuid.New(),
		Status:     "active",
		ValidFrom:  now.Add(-24 * time.Hour),
		ValidUntil: now.Add(48 * time.Hour),
		Allowance:  decimal.RequireFromString("25.00"),
		Signature:  "deadbeef",
		Activate:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

func (b *VoucherBuilder) BuildDomain() (*domvoucher.Voucher, error) {
	return domvoucher.NewVoucher(
		b.ID,
		domvoucher.Code(b.Code),
		b.StayID,
		b.ValidFrom,
		b.ValidUntil,
		b.Allowance,
		b.Signature,
		b.Activate,
		b.CreatedAt,
	)
}

func (b *VoucherBuilder) BuildReconstructed() *domvoucher.Voucher {
	status, err := domvoucher.ParseStatus(b.Status)
	if err != nil {
		panic("builder: " + err.Error())
	}
	return domvoucher.Reconstruct(
		b.ID,
		domvoucher.Code(b.Code),
		b.StayID,
		status,
		b.ValidFrom,
		b.ValidUntil,
		b.Allowance,
		b.Signature,
		nil,
		nil,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *VoucherBuilder) BuildSnapshot() *shared.VoucherSnapshot {
	return &shared.VoucherSnapshot{
		ID:         b.ID,
		Code:       b.Code,
		StayID:     b.StayID,
		Status:     b.Status,
		ValidFrom:  b.ValidFrom,
		ValidUntil: b.ValidUntil,
		Allowance:  b.Allowance,
		Signature:  b.Signature,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *VoucherBuilder) BuildView() *queries.VoucherView {
	return &queries.VoucherView{
		ID:         b.ID,
		Code:       b.Code,
		StayID:     b.StayID,
		Status:     b.Status,
		ValidFrom:  b.ValidFrom,
		ValidUntil: b.ValidUntil,
		Allowance:  b.Allowance,
		Signature:  b.Signature,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *VoucherBuilder) BuildIssueRequestDTO() reqdto.IssueVouchersRequest {
	return reqdto.IssueVouchersRequest{
		StayID:     b.StayID,
		ValidFrom:  b.ValidFrom,
		ValidUntil: b.ValidUntil,
		Count:      2,
	}
}
