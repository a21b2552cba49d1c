package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/services/auth/mocks"
)

func setupAuthHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockAuthUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(mockUC), mockUC, ctrl
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_NewUser(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), gomock.Any()).
		Return(&models.RegisterResponse{Phone: "0971234567"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/register", `{"phone_number":"0971234567"}`)

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User registered successfully", resp["message"])
}

func TestRegister_ExistingUser(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), gomock.Any()).
		Return(&models.RegisterResponse{Phone: "0971234567", IsExistingUser: true}, nil)

	c, rec := newJSONContext(http.MethodPost, "/register", `{"phone_number":"0971234567"}`)

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome back! OTP sent.", resp["message"])
}

func TestRegister_ValidationError(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError(map[string]string{
			"phone_number": "The phone number format is invalid.",
		}))

	c, rec := newJSONContext(http.MethodPost, "/register", `{"phone_number":"123"}`)

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	errs := resp["errors"].(map[string]interface{})
	assert.Contains(t, errs, "phone_number")
}

func TestVerifyOTP_InvalidCode(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidOTP)

	c, rec := newJSONContext(http.MethodPost, "/verify-otp", `{"phone_number":"0971234567","otp_code":"000000"}`)

	err := handler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid or expired OTP code", resp["error"])
}

func TestRefreshToken_MissingHeader(t *testing.T) {
	handler, _, ctrl := setupAuthHandlerTest(t)
	defer ctrl.Finish()

	c, rec := newJSONContext(http.MethodPost, "/refresh-token", "")

	err := handler.RefreshToken(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshToken_Rotated(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		RefreshTokenPair(gomock.Any(), "old-refresh-token").
		Return(&models.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/refresh-token", "")
	c.Request().Header.Set("Authorization", "Bearer old-refresh-token")

	err := handler.RefreshToken(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshToken_ConsumedToken(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		RefreshTokenPair(gomock.Any(), "used-token").
		Return(nil, apperrors.ErrInvalidRefreshToken)

	c, rec := newJSONContext(http.MethodPost, "/refresh-token", "")
	c.Request().Header.Set("Authorization", "Bearer used-token")

	err := handler.RefreshToken(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaffLogin_ApprovalGate(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		StaffLogin(gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.ApprovalError{Status: models.StaffPending})

	c, rec := newJSONContext(http.MethodPost, "/staff-login", `{"email":"nurse@example.com","password":"secret-pass"}`)

	err := handler.StaffLogin(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "pending approval")
}

func TestStaffLogin_InvalidCredentials(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		StaffLogin(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials)

	c, rec := newJSONContext(http.MethodPost, "/staff-login", `{"email":"nurse@example.com","password":"wrong"}`)

	err := handler.StaffLogin(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ForgotPassword(gomock.Any(), "ghost@example.com").
		Return(apperrors.ErrUserNotFound)

	c, rec := newJSONContext(http.MethodPost, "/forgot-password", `{"email":"ghost@example.com"}`)

	err := handler.ForgotPassword(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
