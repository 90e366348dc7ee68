package course

import (
	"net/http"

	"github.com/Temoho9984/CareerConnect-Backend/internal/common"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseHandler struct {
	service *CourseService
}

func NewCourseHandler(service *CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

func (h *CourseHandler) ListAll(c echo.Context) error {
	courses, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch courses"})
	}
	if courses == nil {
		courses = []*CourseWithDetails{}
	}
	return c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) ListByInstitution(c echo.Context) error {
	institutionID, err := primitive.ObjectIDFromHex(c.Param("institutionId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid institution id"})
	}
	courses, err := h.service.ListByInstitution(c.Request().Context(), institutionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch courses"})
	}
	if courses == nil {
		courses = []*Course{}
	}
	return c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) Get(c echo.Context) error {
	courseID, err := primitive.ObjectIDFromHex(c.Param("courseId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid course id"})
	}
	found, err := h.service.Get(c.Request().Context(), courseID)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, found)
}
