package api

import (
	"errors"
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoCodeHandler struct {
	promoCommands commands.PromoCodeCommands
	promoQueries  queries.PromoCodeQueries
}

func NewPromoCodeHandler(promoCommands commands.PromoCodeCommands, promoQueries queries.PromoCodeQueries) *PromoCodeHandler {
	return &PromoCodeHandler{
		promoCommands: promoCommands,
		promoQueries:  promoQueries,
	}
}

// @Summary Create promo code
// @Description Create a new promo code
// @Tags promo-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromoCodeRequest true "Promo code request"
// @Success 201 {object} resdto.PromoCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /promo-codes [post]
func (h *PromoCodeHandler) Create(c *gin.Context) {
	var req reqdto.CreatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.promoCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicatePromoCode):
			httperr.AbortWithError(c, http.StatusConflict, err, "Promo code already exists", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPromoCodeView(view))
}

// @Summary Update promo code
// @Description Replace the configuration of an existing promo code
// @Tags promo-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Promo code"
// @Param request body reqdto.UpdatePromoCodeRequest true "Promo code request"
// @Success 200 {object} resdto.PromoCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /promo-codes/{code} [put]
func (h *PromoCodeHandler) Update(c *gin.Context) {
	var req reqdto.UpdatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.promoCommands.Update(c.Request.Context(), c.Param("code"), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPromoCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoCodeView(view))
}

// @Summary Correct usage counter
// @Description Administratively set the used count of a promo code
// @Tags promo-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Promo code"
// @Param request body reqdto.CorrectUsageRequest true "Correction request"
// @Success 200 {object} resdto.PromoCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /promo-codes/{code}/usage [patch]
func (h *PromoCodeHandler) CorrectUsage(c *gin.Context) {
	var req reqdto.CorrectUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.promoCommands.Correct(c.Request.Context(), c.Param("code"), *req.UsedCount)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPromoCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoCodeView(view))
}

// @Summary List promo codes
// @Description List promo codes, newest first
// @Tags promo-codes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PromoCodeResponse
// @Router /promo-codes [get]
func (h *PromoCodeHandler) List(c *gin.Context) {
	views, err := h.promoQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.PromoCodeResponse, len(views))
	for i := range views {
		response[i] = resdto.FromPromoCodeView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get promo code
// @Description Get a promo code by its code
// @Tags promo-codes
// @Produce json
// @Security BearerAuth
// @Param code path string true "Promo code"
// @Success 200 {object} resdto.PromoCodeResponse
// @Failure 404 {object} map[string]string
// @Router /promo-codes/{code} [get]
func (h *PromoCodeHandler) Get(c *gin.Context) {
	view, err := h.promoQueries.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPromoCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoCodeView(view))
}

// @Summary Preview promo code
// @Description Validate a promo code and quote the discount without redeeming it
// @Tags promo-codes
// @Accept json
// @Produce json
// @Param request body reqdto.PreviewPromoCodeRequest true "Preview request"
// @Success 200 {object} resdto.PreviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promo-codes/preview [post]
func (h *PromoCodeHandler) Preview(c *gin.Context) {
	var req reqdto.PreviewPromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.promoQueries.Preview(c.Request.Context(), req.Code, req.ServiceType, req.AmountCents)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPromoCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid preview request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPreviewResult(result))
}
