package response

import (
	"time"

	"mealvoucher/internal/usecase/commands"
	"mealvoucher/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RedemptionResponse struct {
	ID          uuid.UUID `json:"id"`
	RedeemedAt  time.Time `json:"redeemedAt"`
	DeviceID    uuid.UUID `json:"deviceId"`
	CafeteriaID uuid.UUID `json:"cafeteriaId"`
	Notes       *string   `json:"notes,omitempty"`
}

type VoucherResponse struct {
	ID           uuid.UUID           `json:"id"`
	Code         string              `json:"code"`
	StayID       uuid.UUID           `json:"stayId"`
	Status       string              `json:"status"`
	ValidFrom    time.Time           `json:"validFrom"`
	ValidUntil   time.Time           `json:"validUntil"`
	Allowance    string              `json:"allowance"`
	Signature    string              `json:"signature"`
	CancelReason *string             `json:"cancelReason,omitempty"`
	Redemption   *RedemptionResponse `json:"redemption,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

type IssuedVoucherResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	StayID     uuid.UUID `json:"stayId"`
	Status     string    `json:"status"`
	ValidFrom  time.Time `json:"validFrom"`
	ValidUntil time.Time `json:"validUntil"`
	Allowance  string    `json:"allowance"`
	Signature  string    `json:"signature"`
}

type RedeemResponse struct {
	VoucherID    uuid.UUID `json:"voucherId"`
	RedemptionID uuid.UUID `json:"redemptionId"`
	Code         string    `json:"code"`
	Status       string    `json:"status"`
	RedeemedAt   time.Time `json:"redeemedAt"`
}

type ConflictResponse struct {
	ExistingTimestamp time.Time `json:"existingTimestamp"`
	ExistingCafeteria uuid.UUID `json:"existingCafeteria"`
	ExistingDevice    uuid.UUID `json:"existingDevice"`
}

type BatchFailureResponse struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

type BatchRedeemResponse struct {
	Successful []RedeemResponse       `json:"successful"`
	Failed     []BatchFailureResponse `json:"failed"`
}

type ValidateResponse struct {
	Valid   bool             `json:"valid"`
	Reason  string           `json:"reason,omitempty"`
	Voucher *VoucherResponse `json:"voucher,omitempty"`
}

type SyncOutcomeResponse struct {
	LocalID      string            `json:"localId"`
	VoucherCode  string            `json:"voucherCode"`
	Outcome      string            `json:"outcome"`
	RedemptionID *uuid.UUID        `json:"redemptionId,omitempty"`
	RedeemedAt   *time.Time        `json:"redeemedAt,omitempty"`
	Existing     *ConflictResponse `json:"existing,omitempty"`
	Reason       string            `json:"reason,omitempty"`
}

type SyncResponse struct {
	Synced    int                   `json:"synced"`
	Conflicts int                   `json:"conflicts"`
	Errors    int                   `json:"errors"`
	Outcomes  []SyncOutcomeResponse `json:"outcomes"`
}

type ExpireSweepResponse struct {
	Expired int `json:"expired"`
}

func FromVoucherView(view *queries.VoucherView) *VoucherResponse {
	var resp VoucherResponse
	// Like-named scalar fields carry over; decimal and nested types below.
	_ = copier.Copy(&resp, view)
	resp.Allowance = view.Allowance.String()
	resp.Redemption = nil
	if view.Redemption != nil {
		resp.Redemption = &RedemptionResponse{
			ID:          view.Redemption.ID,
			RedeemedAt:  view.Redemption.RedeemedAt,
			DeviceID:    view.Redemption.DeviceID,
			CafeteriaID: view.Redemption.CafeteriaID,
			Notes:       view.Redemption.Notes,
		}
	}
	return &resp
}

func FromIssuedVoucher(v commands.IssuedVoucher) IssuedVoucherResponse {
	return IssuedVoucherResponse{
		ID:         v.ID,
		Code:       v.Code,
		StayID:     v.StayID,
		Status:     v.Status.String(),
		ValidFrom:  v.ValidFrom,
		ValidUntil: v.ValidUntil,
		Allowance:  v.Allowance.String(),
		Signature:  v.Signature,
	}
}

func FromRedeemResult(res *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{
		VoucherID:    res.VoucherID,
		RedemptionID: res.RedemptionID,
		Code:         res.Code,
		Status:       res.Status.String(),
		RedeemedAt:   res.RedeemedAt,
	}
}

func FromConflictInfo(info commands.ConflictInfo) *ConflictResponse {
	return &ConflictResponse{
		ExistingTimestamp: info.ExistingTimestamp,
		ExistingCafeteria: info.ExistingCafeteria,
		ExistingDevice:    info.ExistingDevice,
	}
}

func FromBatchRedeemResult(res *commands.BatchRedeemResult) *BatchRedeemResponse {
	resp := &BatchRedeemResponse{
		Successful: make([]RedeemResponse, 0, len(res.Successful)),
		Failed:     make([]BatchFailureResponse, 0, len(res.Failed)),
	}
	for _, s := range res.Successful {
		resp.Successful = append(resp.Successful, *FromRedeemResult(&s))
	}
	for _, f := range res.Failed {
		resp.Failed = append(resp.Failed, BatchFailureResponse{Code: f.Code, Reason: f.Reason})
	}
	return resp
}

func FromValidationResult(res *queries.ValidationResult) *ValidateResponse {
	resp := &ValidateResponse{Valid: res.Valid, Reason: res.Reason}
	if res.Voucher != nil {
		resp.Voucher = FromVoucherView(res.Voucher)
	}
	return resp
}

func FromReconcileResult(res *commands.ReconcileResult) *SyncResponse {
	resp := &SyncResponse{
		Synced:    res.Synced,
		Conflicts: res.Conflicts,
		Errors:    res.Errors,
		Outcomes:  make([]SyncOutcomeResponse, 0, len(res.Outcomes)),
	}
	for _, o := range res.Outcomes {
		out := SyncOutcomeResponse{
			LocalID:      o.LocalID,
			VoucherCode:  o.VoucherCode,
			Outcome:      o.Outcome,
			RedemptionID: o.RedemptionID,
			RedeemedAt:   o.RedeemedAt,
			Reason:       o.Reason,
		}
		if o.Existing != nil {
			out.Existing = FromConflictInfo(*o.Existing)
		}
		resp.Outcomes = append(resp.Outcomes, out)
	}
	return resp
}
