//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	reqdto "mealvoucher/internal/handler/dto/request"
	resdto "mealvoucher/internal/handler/dto/response"
	"mealvoucher/tests/common/dbtest"
	"mealvoucher/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type VoucherFlowSuite struct {
	SharedSuite
}

func TestVoucherFlowSuite(t *testing.T) {
	suite.Run(t, new(VoucherFlowSuite))
}

func (s *VoucherFlowSuite) login() string {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		reqdto.TerminalLoginRequest{
			Name:   dbtest.TestTerminalName,
			Secret: dbtest.TestTerminalSecret,
		}, "")
	s.Require().Equal(http.StatusOK, w.Code, "terminal login failed: %s", w.Body.String())

	var body resdto.TerminalLoginResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &body)
	s.Require().NotEmpty(body.Token)
	return body.Token
}

func (s *VoucherFlowSuite) issueVouchers(token string, count int, activate bool, from, until time.Time) []resdto.IssuedVoucherResponse {
	req := reqdto.IssueVouchersRequest{
		StayID:     dbtest.TestStayID,
		ValidFrom:  from,
		ValidUntil: until,
		Count:      count,
		Activate:   &activate,
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vouchers", req, token)
	s.Require().Equal(http.StatusCreated, w.Code, "issuance failed: %s", w.Body.String())

	var issued []resdto.IssuedVoucherResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &issued)
	s.Require().Len(issued, count)
	return issued
}

func (s *VoucherFlowSuite) redeem(token, code string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vouchers/redeem",
		reqdto.RedeemVoucherRequest{Code: code}, token)
}

func (s *VoucherFlowSuite) TestRedemptionIsExactlyOnce() {
	token := s.login()
	issued := s.issueVouchers(token, 1, true, dbtest.TestStayCheckIn, dbtest.TestStayCheckOut)
	code := issued[0].Code

	// Pre-redemption validation reports the voucher redeemable.
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vouchers/validate",
		reqdto.ValidateVoucherRequest{Code: code, Signature: &issued[0].Signature}, token)
	s.Equal(http.StatusOK, w.Code)
	var validation resdto.ValidateResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &validation)
	s.True(validation.Valid)

	// First redemption wins.
	first := s.redeem(token, code)
	s.Require().Equal(http.StatusOK, first.Code, first.Body.String())
	var redeemed resdto.RedeemResponse
	httptest.DecodeResponseBody(s.T(), first.Body, &redeemed)
	s.Equal("redeemed", redeemed.Status)

	// Second redemption conflicts and reports the winner's record.
	second := s.redeem(token, code)
	s.Require().Equal(http.StatusConflict, second.Code)
	var conflict struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Detail resdto.ConflictResponse `json:"detail"`
	}
	httptest.DecodeResponseBody(s.T(), second.Body, &conflict)
	s.False(conflict.Detail.ExistingTimestamp.IsZero())

	// The stored voucher carries the redemption record.
	get := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vouchers/"+redeemed.VoucherID.String(), nil, token)
	s.Equal(http.StatusOK, get.Code)
	var voucher resdto.VoucherResponse
	httptest.DecodeResponseBody(s.T(), get.Body, &voucher)
	s.Equal("redeemed", voucher.Status)
	s.Require().NotNil(voucher.Redemption)
	s.Equal(redeemed.RedemptionID, voucher.Redemption.ID)

	// Validation after redemption flags the voucher consumed.
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vouchers/validate",
		reqdto.ValidateVoucherRequest{Code: code}, token)
	s.Equal(http.StatusOK, w.Code)
	httptest.DecodeResponseBody(s.T(), w.Body, &validation)
	s.False(validation.Valid)
	s.Equal("ALREADY_REDEEMED", validation.Reason)
}

func (s *VoucherFlowSuite) TestConcurrentRedemptionsSingleWinner() {
	token := s.login()
	issued := s.issueVouchers(token, 1, true, dbtest.TestStayCheckIn, dbtest.TestStayCheckOut)

	payload, err := json.Marshal(reqdto.RedeemVoucherRequest{Code: issued[0].Code})
	s.Require().NoError(err)

	// Two terminals race on the same voucher; the row lock and the unique
	// redemption constraint arbitrate.
	start := make(chan struct{})
	statuses := make(chan int, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := nethttptest.NewRequest(http.MethodPost, "/api/vouchers/redeem", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)
			w := nethttptest.NewRecorder()
			<-start
			s.Router.ServeHTTP(w, req)
			statuses <- w.Code
		}()
	}
	close(start)
	wg.Wait()
	close(statuses)

	got := make(map[int]int)
	for status := range statuses {
		got[status]++
	}
	s.Equal(1, got[http.StatusOK], "exactly one redemption wins: %v", got)
	s.Equal(1, got[http.StatusConflict], "the other resolves as a conflict: %v", got)

	var redemptions int
	err = s.DB.QueryRow(s.T().Context(),
		"SELECT count(*) FROM voucher_redemptions").Scan(&redemptions)
	s.Require().NoError(err)
	s.Equal(1, redemptions)
}

func (s *VoucherFlowSuite) TestForgedSignatureIsRejected() {
	token := s.login()
	issued := s.issueVouchers(token, 1, true, dbtest.TestStayCheckIn, dbtest.TestStayCheckOut)

	forged := "0000000000000000000000000000000000000000000000000000000000000000"
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vouchers/validate",
		reqdto.ValidateVoucherRequest{Code: issued[0].Code, Signature: &forged}, token)

	s.Equal(http.StatusOK, w.Code)
	var validation resdto.ValidateResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &validation)
	s.False(validation.Valid)
	s.Equal("SIGNATURE_MISMATCH", validation.Reason)
}

func (s *VoucherFlowSuite) TestPendingActivationAndCancellation() {
	token := s.login()
	issued := s.issueVouchers(token, 1, false, dbtest.TestStayCheckIn, dbtest.TestStayCheckOut)
	s.Equal("pending", issued[0].Status)

	// Pending vouchers do not validate.
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vouchers/validate",
		reqdto.ValidateVoucherRequest{Code: issued[0].Code}, token)
	var validation resdto.ValidateResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &validation)
	s.Equal("NOT_ACTIVE", validation.Reason)

	// Activation at check-in makes them redeemable.
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/vouchers/"+issued[0].ID.String()+"/activate", nil, token)
	s.Equal(http.StatusNoContent, w.Code)

	// Cancellation withdraws them again.
	reason := "guest checked out early"
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/vouchers/"+issued[0].ID.String()+"/cancel",
		reqdto.CancelVoucherRequest{Reason: &reason}, token)
	s.Equal(http.StatusNoContent, w.Code)

	// Cancelled is terminal; redeeming fails.
	redeem := s.redeem(token, issued[0].Code)
	s.Equal(http.StatusUnprocessableEntity, redeem.Code)
}

func (s *VoucherFlowSuite) TestOfflineSyncReplaysExactlyOnce() {
	token := s.login()
	issued := s.issueVouchers(token, 2, true, dbtest.TestStayCheckIn, dbtest.TestStayCheckOut)

	// One voucher was already consumed online before the terminal synced.
	first := s.redeem(token, issued[0].Code)
	s.Require().Equal(http.StatusOK, first.Code)

	req := reqdto.SyncRedemptionsRequest{
		Attempts: []reqdto.SyncAttemptRequest{
			{LocalID: "offline-1", VoucherCode: issued[0].Code, LocalTimestamp: time.Now().UTC().Add(-time.Hour)},
			{LocalID: "offline-2", VoucherCode: issued[1].Code, LocalTimestamp: time.Now().UTC().Add(-time.Hour)},
		},
	}

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/redemptions/sync", req, token)
	s.Require().Equal(http.StatusMultiStatus, w.Code, w.Body.String())

	var sync resdto.SyncResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &sync)
	s.Equal(1, sync.Synced)
	s.Equal(1, sync.Conflicts)
	s.Require().Len(sync.Outcomes, 2)
	s.Equal("conflict", sync.Outcomes[0].Outcome)
	s.Require().NotNil(sync.Outcomes[0].Existing)
	s.Equal("synced", sync.Outcomes[1].Outcome)

	// Replaying the whole batch resolves every attempt as a conflict and
	// creates no new redemptions.
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/redemptions/sync", req, token)
	s.Require().Equal(http.StatusMultiStatus, w.Code)
	httptest.DecodeResponseBody(s.T(), w.Body, &sync)
	s.Equal(0, sync.Synced)
	s.Equal(2, sync.Conflicts)

	var redemptions int
	err := s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM voucher_redemptions").Scan(&redemptions)
	s.Require().NoError(err)
	s.Equal(2, redemptions)

	// The sync log deduplicated on (device_id, local_id).
	var logEntries int
	err = s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM redemption_sync_log").Scan(&logEntries)
	s.Require().NoError(err)
	s.Equal(2, logEntries)
}

func (s *VoucherFlowSuite) TestExpireSweep() {
	token := s.login()

	// A voucher whose window already closed, issued Active.
	issued := s.issueVouchers(token, 1, true,
		dbtest.TestStayCheckIn, dbtest.TestStayCheckIn.Add(time.Hour))

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vouchers/expire-sweep", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)

	var sweep resdto.ExpireSweepResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &sweep)
	s.Equal(1, sweep.Expired)

	get := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vouchers/"+issued[0].ID.String(), nil, token)
	var voucher resdto.VoucherResponse
	httptest.DecodeResponseBody(s.T(), get.Body, &voucher)
	s.Equal("expired", voucher.Status)
}

func (s *VoucherFlowSuite) TestEndpointsRequireToken() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vouchers/redeem",
		reqdto.RedeemVoucherRequest{Code: "MEAL-2025-0001"}, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vouchers/"+uuid.NewString(), nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}
