//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"mealvoucher/internal/handler/api"
	reqdto "mealvoucher/internal/handler/dto/request"
	resdto "mealvoucher/internal/handler/dto/response"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/usecase/commands"
	"mealvoucher/tests/common/httptest"
	mockcommands "mealvoucher/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	auth   *mockcommands.MockAuthCommands
	router *gin.Engine
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.auth = mockcommands.NewMockAuthCommands(s.ctrl)

	handler := api.NewAuthHandler(s.auth)
	s.router = gin.New()
	s.router.POST("/api/auth/login", handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	result := &commands.LoginResult{
		Token:       "terminal.jwt.token",
		DeviceID:    uuid.New(),
		CafeteriaID: uuid.New(),
	}
	s.auth.EXPECT().
		Login(gomock.Any(), "cafeteria-west-01", "s3cret").
		Return(result, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		reqdto.TerminalLoginRequest{Name: "cafeteria-west-01", Secret: "s3cret"}, "")

	s.Equal(http.StatusOK, w.Code)
	var body resdto.TerminalLoginResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &body)
	s.Equal(result.Token, body.Token)
	s.Equal(result.DeviceID, body.DeviceID)
}

func (s *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	s.auth.EXPECT().
		Login(gomock.Any(), "cafeteria-west-01", "wrong").
		Return(nil, errs.ErrInvalidCredentials)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		reqdto.TerminalLoginRequest{Name: "cafeteria-west-01", Secret: "wrong"}, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid terminal credentials")
}

func (s *AuthHandlerTestSuite) TestLogin_InactiveTerminal() {
	s.auth.EXPECT().
		Login(gomock.Any(), "cafeteria-west-01", "s3cret").
		Return(nil, errs.ErrTerminalInactive)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		reqdto.TerminalLoginRequest{Name: "cafeteria-west-01", Secret: "s3cret"}, "")

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		map[string]any{"name": "cafeteria-west-01"}, "")

	s.Equal(http.StatusBadRequest, w.Code)
}
