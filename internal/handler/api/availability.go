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
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availCommands commands.AvailabilityCommands
	availQueries  queries.AvailabilityQueries
}

func NewAvailabilityHandler(availCommands commands.AvailabilityCommands, availQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availCommands: availCommands,
		availQueries:  availQueries,
	}
}

// @Summary Get monthly availability
// @Description Get the availability ledger rows for one service and month
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param serviceType path string true "Service type"
// @Param serviceId path string true "Service ID"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {array} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability/{serviceType}/{serviceId} [get]
func (h *AvailabilityHandler) GetByMonth(c *gin.Context) {
	serviceType, serviceID, ok := h.pathParams(c)
	if !ok {
		return
	}

	month := c.Query("month")
	if month == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, "month query parameter is required", nil)
		return
	}

	views, err := h.availQueries.GetByMonth(c.Request.Context(), serviceType, serviceID, month)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service type or month format", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.AvailabilityResponse, len(views))
	for i := range views {
		response[i] = resdto.FromAvailabilityView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update availability
// @Description Set the remaining available units for one date
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param serviceType path string true "Service type"
// @Param serviceId path string true "Service ID"
// @Param request body reqdto.UpdateAvailabilityRequest true "Update request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /availability/{serviceType}/{serviceId} [put]
func (h *AvailabilityHandler) Update(c *gin.Context) {
	serviceType, serviceID, ok := h.pathParams(c)
	if !ok {
		return
	}

	var req reqdto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	date, err := reqdto.ParseDate(req.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.availCommands.Update(c.Request.Context(), commands.UpdateAvailabilityParams{
		ServiceType: serviceType,
		ServiceID:   serviceID,
		Date:        date,
		Available:   req.Available,
	})
	if err != nil {
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Bulk update availability
// @Description Set the same available count for every date in an inclusive range, succeeding or failing per date
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param serviceType path string true "Service type"
// @Param serviceId path string true "Service ID"
// @Param request body reqdto.BulkUpdateAvailabilityRequest true "Bulk update request"
// @Success 200 {array} resdto.DateOutcomeResponse
// @Failure 400 {object} map[string]string
// @Router /availability/{serviceType}/{serviceId}/bulk [put]
func (h *AvailabilityHandler) BulkUpdate(c *gin.Context) {
	serviceType, serviceID, ok := h.pathParams(c)
	if !ok {
		return
	}

	var req reqdto.BulkUpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	from, err := reqdto.ParseDate(req.From)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}
	to, err := reqdto.ParseDate(req.To)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	outcomes, err := h.availCommands.BulkUpdate(c.Request.Context(), commands.BulkUpdateParams{
		ServiceType: serviceType,
		ServiceID:   serviceID,
		From:        from,
		To:          to,
		Available:   req.Available,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]resdto.DateOutcomeResponse, len(outcomes))
	for i, o := range outcomes {
		response[i] = resdto.FromDateOutcome(o)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Block a date
// @Description Zero out availability for one date regardless of existing bookings
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param serviceType path string true "Service type"
// @Param serviceId path string true "Service ID"
// @Param request body reqdto.BlockAvailabilityRequest true "Block request"
// @Success 200 {object} resdto.BlockResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/{serviceType}/{serviceId}/block [post]
func (h *AvailabilityHandler) Block(c *gin.Context) {
	serviceType, serviceID, ok := h.pathParams(c)
	if !ok {
		return
	}

	var req reqdto.BlockAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	date, err := reqdto.ParseDate(req.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.availCommands.Block(c.Request.Context(), serviceType, serviceID, date)
	if err != nil {
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBlockResult(result))
}

func (h *AvailabilityHandler) pathParams(c *gin.Context) (string, uuid.UUID, bool) {
	serviceType := c.Param("serviceType")

	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID format", nil)
		return "", uuid.Nil, false
	}
	return serviceType, serviceID, true
}

func (h *AvailabilityHandler) writeUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, errs.ErrAvailabilityRange):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Available count out of range", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
