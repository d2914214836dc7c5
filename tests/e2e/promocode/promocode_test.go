//go:build e2e

package promocode_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL      = "/api/auth/login"
	promoCodesURL = "/api/promo-codes"
	previewURL    = "/api/promo-codes/preview"
)

type promoCodeSuite struct {
	e2e.SharedSuite

	adminToken string
}

func TestPromoCodeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(promoCodeSuite))
}

func (s *promoCodeSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestStaff(s.T(), s.DB, "revenue@stayhub.test", "manager", "front_office", 4)
	s.adminToken = s.login("revenue@stayhub.test", "password123")
}

func (s *promoCodeSuite) login(email, password string) string {
	body := reqdto.LoginRequest{Email: email, Password: password}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
	require.Equal(s.T(), http.StatusOK, w.Code, "login failed")

	var loginRes resdto.LoginResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &loginRes))
	return loginRes.Token
}

func (s *promoCodeSuite) createPromoRequest() reqdto.CreatePromoCodeRequest {
	now := time.Now()
	return reqdto.CreatePromoCodeRequest{
		Code:          "WINTER20",
		DiscountType:  "percentage",
		DiscountValue: 20,
		ValidFrom:     now.AddDate(0, 0, -1),
		ValidUntil:    now.AddDate(0, 0, 30),
		ValidFromTime: "00:00",
		ValidToTime:   "23:59",
		Status:        "active",
	}
}

func (s *promoCodeSuite) TestLifecycle() {
	s.Run("create, fetch and correct a code", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, promoCodesURL, s.createPromoRequest(), s.adminToken)
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		var created resdto.PromoCodeResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &created))
		require.Equal(s.T(), "WINTER20", created.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, promoCodesURL+"/WINTER20", nil, s.adminToken)
		require.Equal(s.T(), http.StatusOK, w.Code)

		usedCount := int32(12)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, promoCodesURL+"/WINTER20/usage",
			reqdto.CorrectUsageRequest{UsedCount: &usedCount}, s.adminToken)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var corrected resdto.PromoCodeResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &corrected))
		require.Equal(s.T(), int32(12), corrected.UsedCount)
	})

	s.Run("duplicate code is a conflict", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, promoCodesURL, s.createPromoRequest(), s.adminToken)
		require.Equal(s.T(), http.StatusCreated, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, promoCodesURL, s.createPromoRequest(), s.adminToken)
		require.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("management endpoints refuse anonymous callers", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, promoCodesURL, s.createPromoRequest(), "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *promoCodeSuite) TestPreview() {
	s.Run("guests can preview without a session", func() {
		limit := int32(100)
		dbtest.CreateTestPromoCode(s.T(), s.DB, "SUMMER10", "percentage", 10, &limit)

		body := reqdto.PreviewPromoCodeRequest{Code: "SUMMER10", AmountCents: 50000}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, previewURL, body, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var res resdto.PreviewResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &res))
		require.True(s.T(), res.Valid)
		require.NotNil(s.T(), res.DiscountCents)
		require.Equal(s.T(), int64(5000), *res.DiscountCents)

		var usedCount int32
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT used_count FROM promo_codes WHERE code = 'SUMMER10'").Scan(&usedCount)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int32(0), usedCount, "preview must not redeem")
	})

	s.Run("unknown code previews as not found", func() {
		body := reqdto.PreviewPromoCodeRequest{Code: "NOPE10", AmountCents: 50000}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, previewURL, body, "")
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}
