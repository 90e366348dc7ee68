package jobapplication

import (
	"net/http"

	"github.com/Temoho9984/CareerConnect-Backend/internal/application"
	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobApplicationHandler struct {
	service *JobApplicationService
}

func NewJobApplicationHandler(service *JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{service: service}
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

func (h *JobApplicationHandler) Apply(c echo.Context) error {
	studentID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	jobID, err := primitive.ObjectIDFromHex(req.JobID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}

	app, err := h.service.Apply(c.Request().Context(), studentID, jobID, req.CoverLetter)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message":       "Job application submitted successfully!",
		"applicationId": app.ID.Hex(),
	})
}

func (h *JobApplicationHandler) ListForStudent(c echo.Context) error {
	studentID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	apps, err := h.service.ListForStudent(c.Request().Context(), studentID)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": "Failed to fetch job applications"})
	}
	if apps == nil {
		apps = []*JobApplicationWithDetails{}
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *JobApplicationHandler) ListForJob(c echo.Context) error {
	companyID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	jobID, err := primitive.ObjectIDFromHex(c.Param("jobId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}
	apps, err := h.service.ListForJob(c.Request().Context(), jobID, companyID)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": err.Error()})
	}
	if apps == nil {
		apps = []*JobApplication{}
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *JobApplicationHandler) SetStatus(c echo.Context) error {
	companyID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	applicationID, err := primitive.ObjectIDFromHex(c.Param("applicationId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid application id"})
	}
	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	err = h.service.SetStatus(c.Request().Context(), applicationID, application.Status(req.Status), companyID)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Application status updated successfully"})
}

func (h *JobApplicationHandler) Withdraw(c echo.Context) error {
	studentID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	applicationID, err := primitive.ObjectIDFromHex(c.Param("applicationId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid application id"})
	}

	if err := h.service.Withdraw(c.Request().Context(), applicationID, studentID); err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Application withdrawn successfully"})
}
