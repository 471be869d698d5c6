package v1

import (
	"net/http"

	"jobready-backend/internal/delivery/http/response"
	"jobready-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(api *gin.RouterGroup, cvUC domain.CVUsecase, aiLimit gin.HandlerFunc) {
	handler := &CVHandler{cvUC: cvUC}

	cv := api.Group("/cv")
	{
		cv.POST("/generate", aiLimit, handler.Generate)
		cv.GET("/item/:id", handler.Get)
		cv.POST("/item/:id/regenerate", aiLimit, handler.Regenerate)
		cv.GET("/:userId", handler.ListByUser)
	}
}

// Generate godoc
// @Summary      Generate a CV
// @Description  Validate the CV form, store it and attach a generated HTML document.
// @Tags         cv
// @Accept       json
// @Produce      json
// @Param        cv   body      domain.CVInput  true  "CV form"
// @Success      200  {object}  domain.CV
// @Failure      400  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /cv/generate [post]
func (h *CVHandler) Generate(c *gin.Context) {
	var input domain.CVInput
	if !bindJSON(c, &input, false) {
		return
	}

	cv, err := h.cvUC.GenerateCV(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, cv)
}

// Regenerate godoc
// @Summary      Regenerate a CV document
// @Tags         cv
// @Produce      json
// @Param        id   path      int  true  "CV id"
// @Success      200  {object}  domain.CV
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /cv/item/{id}/regenerate [post]
func (h *CVHandler) Regenerate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cv, err := h.cvUC.RegenerateCV(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, cv)
}

// Get godoc
// @Summary      Get a CV
// @Tags         cv
// @Produce      json
// @Param        id   path      int  true  "CV id"
// @Success      200  {object}  domain.CV
// @Failure      404  {object}  response.ErrorBody
// @Router       /cv/item/{id} [get]
func (h *CVHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cv, err := h.cvUC.GetCV(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, cv)
}

// ListByUser godoc
// @Summary      List a user's CVs
// @Tags         cv
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   domain.CV
// @Router       /cv/{userId} [get]
func (h *CVHandler) ListByUser(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	cvs, err := h.cvUC.ListUserCVs(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, cvs)
}
