package application

import (
	"net/http"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationHandler struct {
	service *ApplicationService
}

func NewApplicationHandler(service *ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
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

func (h *ApplicationHandler) Submit(c echo.Context) error {
	studentID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	courseID, err := primitive.ObjectIDFromHex(req.CourseID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid course id"})
	}
	institutionID, err := primitive.ObjectIDFromHex(req.InstitutionID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid institution id"})
	}

	app, err := h.service.Submit(c.Request().Context(), studentID, courseID, institutionID)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message":       "Application submitted successfully",
		"applicationId": app.ID.Hex(),
	})
}

func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	institutionID, ok := actingUser(c)
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

	err = h.service.SetStatus(c.Request().Context(), applicationID, Status(req.Status), institutionID)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Application status updated successfully"})
}

func (h *ApplicationHandler) ListForInstitution(c echo.Context) error {
	institutionID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	apps, err := h.service.ListForInstitution(c.Request().Context(), institutionID)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": "Failed to fetch applications"})
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListForStudent(c echo.Context) error {
	studentID, ok := actingUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	apps, err := h.service.ListForStudent(c.Request().Context(), studentID)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": "Failed to fetch applications"})
	}
	return c.JSON(http.StatusOK, apps)
}
