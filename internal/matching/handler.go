package matching

import (
	"net/http"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MatchHandler struct {
	service *MatchService
}

func NewMatchHandler(service *MatchService) *MatchHandler {
	return &MatchHandler{service: service}
}

// Applicants returns the ranked, qualified applicant list for one of the
// requesting company's jobs.
func (h *MatchHandler) Applicants(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	companyID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}
	jobID, err := primitive.ObjectIDFromHex(c.Param("jobId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
	}

	applicants, err := h.service.QualifiedApplicantsForJob(c.Request().Context(), jobID, companyID)
	if err != nil {
		return c.JSON(common.HTTPStatus(common.CodeOf(err)), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, applicants)
}
