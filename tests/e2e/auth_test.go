//go:build e2e

package e2e

import (
	"net/http"
	"testing"

	reqdto "mealvoucher/internal/handler/dto/request"
	resdto "mealvoucher/internal/handler/dto/response"
	"mealvoucher/internal/pkg/password"
	"mealvoucher/tests/common/dbtest"
	"mealvoucher/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthFlowSuite struct {
	SharedSuite
}

func TestAuthFlowSuite(t *testing.T) {
	suite.Run(t, new(AuthFlowSuite))
}

func (s *AuthFlowSuite) TestLoginIssuesUsableToken() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		reqdto.TerminalLoginRequest{
			Name:   dbtest.TestTerminalName,
			Secret: dbtest.TestTerminalSecret,
		}, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var body resdto.TerminalLoginResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &body)
	s.Equal(dbtest.TestCafeteriaID, body.CafeteriaID)

	// The token works against a protected endpoint.
	validate := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/vouchers/validate",
		reqdto.ValidateVoucherRequest{Code: "MEAL-2025-0001"}, body.Token)
	s.Equal(http.StatusOK, validate.Code)

	// Login touches last_seen_at.
	var lastSeen any
	err := s.DB.QueryRow(s.T().Context(),
		"SELECT last_seen_at FROM terminals WHERE name = $1", dbtest.TestTerminalName).Scan(&lastSeen)
	s.Require().NoError(err)
	s.NotNil(lastSeen)
}

func (s *AuthFlowSuite) TestLoginRejectsWrongSecret() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		reqdto.TerminalLoginRequest{
			Name:   dbtest.TestTerminalName,
			Secret: "wrong-secret",
		}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthFlowSuite) TestLoginRejectsUnknownTerminal() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		reqdto.TerminalLoginRequest{
			Name:   "no-such-terminal",
			Secret: dbtest.TestTerminalSecret,
		}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthFlowSuite) TestLoginRejectsDeactivatedTerminal() {
	hash, err := password.HashSecret("retired-secret")
	s.Require().NoError(err)

	_, err = s.DB.Exec(s.T().Context(), `
		INSERT INTO terminals (name, cafeteria_id, secret_hash, active)
		VALUES ('retired-terminal', $1, $2, FALSE)`,
		uuid.New(), hash)
	s.Require().NoError(err)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		reqdto.TerminalLoginRequest{
			Name:   "retired-terminal",
			Secret: "retired-secret",
		}, "")
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AuthFlowSuite) TestMalformedTokenIsRejected() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vouchers/"+uuid.NewString(), nil,
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid.token")
	s.Equal(http.StatusUnauthorized, w.Code)
}
