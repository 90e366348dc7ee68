package jobs

import (
	"net/http"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobHandler struct {
	service *JobService
}

func NewJobHandler(service *JobService) *JobHandler {
	return &JobHandler{service: service}
}

func actingUser(c echo.Context) (primitive.ObjectID, bool) {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *JobHandler) Post(c echo.Context) error {
	companyID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	var req PostJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	job, err := h.service.Post(c.Request().Context(), companyID, req)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Job posted successfully",
		"jobId":   job.ID.Hex(),
	})
}

func (h *JobHandler) ListActive(c echo.Context) error {
	jobList, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": "Failed to fetch jobs"})
	}
	return c.JSON(http.StatusOK, jobList)
}

func (h *JobHandler) ListForCompany(c echo.Context) error {
	companyID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	jobList, err := h.service.ListForCompany(c.Request().Context(), companyID)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": "Failed to fetch jobs"})
	}
	return c.JSON(http.StatusOK, jobList)
}

func (h *JobHandler) Close(c echo.Context) error {
	companyID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	jobID, err := primitive.ObjectIDFromHex(c.Param("jobId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}
	if err := h.service.Close(c.Request().Context(), jobID, companyID); err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Job closed successfully"})
}
