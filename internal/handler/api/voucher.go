package api

import (
	"errors"
	"net/http"

	reqdto "mealvoucher/internal/handler/dto/request"
	resdto "mealvoucher/internal/handler/dto/response"
	"mealvoucher/internal/handler/httperr"
	"mealvoucher/internal/handler/middleware"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/usecase/commands"
	"mealvoucher/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VoucherHandler struct {
	issueCommands     commands.IssueCommands
	redeemCommands    commands.RedeemCommands
	lifecycleCommands commands.LifecycleCommands
	reconcileCommands commands.ReconcileCommands
	voucherQueries    queries.VoucherQueries
}

func NewVoucherHandler(
	issueCommands commands.IssueCommands,
	redeemCommands commands.RedeemCommands,
	lifecycleCommands commands.LifecycleCommands,
	reconcileCommands commands.ReconcileCommands,
	voucherQueries queries.VoucherQueries,
) *VoucherHandler {
	return &VoucherHandler{
		issueCommands:     issueCommands,
		redeemCommands:    redeemCommands,
		lifecycleCommands: lifecycleCommands,
		reconcileCommands: reconcileCommands,
		voucherQueries:    voucherQueries,
	}
}

// @Summary Issue vouchers
// @Description Issue a batch of signed meal vouchers for a stay
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueVouchersRequest true "Issuance request"
// @Success 201 {array} resdto.IssuedVoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vouchers [post]
func (h *VoucherHandler) IssueVouchers(c *gin.Context) {
	var req reqdto.IssueVouchersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	allowance, err := req.GetAllowance()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid allowance format", nil)
		return
	}

	issued, err := h.issueCommands.Issue(c.Request.Context(), commands.IssueVouchersParams{
		StayID:     req.StayID,
		ValidFrom:  req.ValidFrom,
		ValidUntil: req.ValidUntil,
		Count:      req.Count,
		Activate:   req.ShouldActivate(),
		Allowance:  allowance,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrStayNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Stay not found", nil)
		case errors.Is(err, errs.ErrInvalidVoucherCount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Voucher count out of range", nil)
		case errors.Is(err, errs.ErrInvalidWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid validity window", nil)
		case errors.Is(err, errs.ErrWindowOutsideStay):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validity window falls outside the stay", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]resdto.IssuedVoucherResponse, len(issued))
	for i, v := range issued {
		response[i] = resdto.FromIssuedVoucher(v)
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Redeem voucher
// @Description Atomically validate and consume a voucher
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemVoucherRequest true "Redemption request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]string
// @Router /vouchers/redeem [post]
func (h *VoucherHandler) RedeemVoucher(c *gin.Context) {
	deviceID, cafeteriaID, ok := terminalIdentity(c)
	if !ok {
		return
	}

	var req reqdto.RedeemVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.redeemCommands.Redeem(c.Request.Context(), commands.RedeemParams{
		Code:        req.Code,
		DeviceID:    deviceID,
		CafeteriaID: cafeteriaID,
		Notes:       req.Notes,
	})
	if err != nil {
		h.writeRedeemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

// @Summary Redeem voucher batch
// @Description Redeem several vouchers in one call; each code resolves independently
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemBatchRequest true "Batch redemption request"
// @Success 200 {object} resdto.BatchRedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /vouchers/redeem-batch [post]
func (h *VoucherHandler) RedeemBatch(c *gin.Context) {
	deviceID, cafeteriaID, ok := terminalIdentity(c)
	if !ok {
		return
	}

	var req reqdto.RedeemBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.redeemCommands.RedeemBatch(c.Request.Context(), req.Codes, commands.RedeemParams{
		DeviceID:    deviceID,
		CafeteriaID: cafeteriaID,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBatchRedeemResult(result))
}

// @Summary Validate voucher
// @Description Check redeemability without consuming the voucher
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateVoucherRequest true "Validation request"
// @Success 200 {object} resdto.ValidateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /vouchers/validate [post]
func (h *VoucherHandler) ValidateVoucher(c *gin.Context) {
	var req reqdto.ValidateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.voucherQueries.Validate(c.Request.Context(), req.Code, req.Signature)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidationResult(result))
}

// @Summary Get voucher
// @Description Get voucher by ID, including its redemption record if any
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vouchers/{id} [get]
func (h *VoucherHandler) GetVoucher(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher ID format", nil)
		return
	}

	view, err := h.voucherQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVoucherNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Voucher not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

// @Summary List stay vouchers
// @Description List all vouchers issued for a stay
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stay ID"
// @Success 200 {array} resdto.VoucherResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /stays/{id}/vouchers [get]
func (h *VoucherHandler) ListStayVouchers(c *gin.Context) {
	stayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stay ID format", nil)
		return
	}

	views, err := h.voucherQueries.ListByStay(c.Request.Context(), stayID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.VoucherResponse, len(views))
	for i := range views {
		response[i] = resdto.FromVoucherView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Activate voucher
// @Description Move a Pending voucher to Active, e.g. at check-in
// @Tags vouchers
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vouchers/{id}/activate [post]
func (h *VoucherHandler) ActivateVoucher(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher ID format", nil)
		return
	}

	if err := h.lifecycleCommands.Activate(c.Request.Context(), id); err != nil {
		h.writeLifecycleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel voucher
// @Description Withdraw a Pending or Active voucher
// @Tags vouchers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Param request body reqdto.CancelVoucherRequest false "Cancellation reason"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vouchers/{id}/cancel [post]
func (h *VoucherHandler) CancelVoucher(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher ID format", nil)
		return
	}

	var req reqdto.CancelVoucherRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	if err := h.lifecycleCommands.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		h.writeLifecycleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Expire overdue vouchers
// @Description Sweep Active vouchers past their validity window into Expired
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ExpireSweepResponse
// @Failure 401 {object} map[string]string
// @Router /vouchers/expire-sweep [post]
func (h *VoucherHandler) ExpireSweep(c *gin.Context) {
	const sweepLimit = 500

	expired, err := h.lifecycleCommands.ExpireOverdue(c.Request.Context(), sweepLimit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ExpireSweepResponse{Expired: expired})
}

// @Summary Sync offline redemptions
// @Description Replay a terminal's queued redemptions; returns per-attempt outcomes
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SyncRedemptionsRequest true "Queued redemption attempts"
// @Success 200 {object} resdto.SyncResponse
// @Success 207 {object} resdto.SyncResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /redemptions/sync [post]
func (h *VoucherHandler) SyncRedemptions(c *gin.Context) {
	deviceID, cafeteriaID, ok := terminalIdentity(c)
	if !ok {
		return
	}

	var req reqdto.SyncRedemptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	attempts := make([]commands.RedemptionAttempt, len(req.Attempts))
	for i, a := range req.Attempts {
		attempts[i] = commands.RedemptionAttempt{
			LocalID:        a.LocalID,
			VoucherCode:    a.VoucherCode,
			CafeteriaID:    cafeteriaID,
			LocalTimestamp: a.LocalTimestamp,
			Notes:          a.Notes,
		}
	}

	result, err := h.reconcileCommands.Reconcile(c.Request.Context(), deviceID, attempts)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBatchTooLarge):
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Sync batch exceeds maximum size", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sync batch", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	status := http.StatusOK
	if result.Conflicts > 0 || result.Errors > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, resdto.FromReconcileResult(result))
}

func (h *VoucherHandler) writeRedeemError(c *gin.Context, err error) {
	var conflict *commands.AlreadyRedeemedError
	switch {
	case errors.As(err, &conflict):
		// The winner's record rides in the detail so the losing terminal can
		// show who redeemed and when.
		httperr.AbortWithError(c, http.StatusConflict, err, "Voucher already redeemed", resdto.FromConflictInfo(conflict.Existing))
	case errors.Is(err, errs.ErrVoucherNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Voucher not found", nil)
	case errors.Is(err, errs.ErrAlreadyRedeemed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Voucher already redeemed", nil)
	case errors.Is(err, errs.ErrVoucherExpired):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Voucher expired", nil)
	case errors.Is(err, errs.ErrInvalidState):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Voucher not in redeemable state", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func (h *VoucherHandler) writeLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrVoucherNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Voucher not found", nil)
	case errors.Is(err, errs.ErrInvalidState):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid voucher state for this operation", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func terminalIdentity(c *gin.Context) (deviceID, cafeteriaID uuid.UUID, ok bool) {
	// Unexpected here: RequireTerminal sets both keys before any handler runs.
	deviceID, ok = middleware.GetDeviceID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("device id missing from context"), "Internal server error", nil)
		return uuid.Nil, uuid.Nil, false
	}

	cafeteriaID, ok = middleware.GetCafeteriaID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("cafeteria id missing from context"), "Internal server error", nil)
		return uuid.Nil, uuid.Nil, false
	}

	return deviceID, cafeteriaID, true
}
