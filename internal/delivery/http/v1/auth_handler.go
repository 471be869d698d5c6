package v1

import (
	"net/http"

	"jobready-backend/internal/delivery/http/response"
	"jobready-backend/internal/domain"
	"jobready-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC   domain.AuthUsecase
	healthUC usecase.HealthUsecase
}

func NewAuthHandler(api *gin.RouterGroup, authUC domain.AuthUsecase, healthUC usecase.HealthUsecase) {
	handler := &AuthHandler{authUC: authUC, healthUC: healthUC}

	api.GET("/auth/user", handler.Me)
	api.GET("/health", handler.Health)
}

// Me godoc
// @Summary      Current user
// @Description  Returns the authenticated user, or the placeholder user for anonymous requests.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.ErrorBody
// @Router       /auth/user [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *AuthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, h.healthUC.Check(c.Request.Context()))
}
