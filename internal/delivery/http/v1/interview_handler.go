package v1

import (
	"net/http"

	"jobready-backend/internal/delivery/http/response"
	"jobready-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(api *gin.RouterGroup, interviewUC domain.InterviewUsecase, aiLimit gin.HandlerFunc) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interview := api.Group("/interview")
	{
		interview.POST("/start", aiLimit, handler.Start)
		interview.GET("/user/:userId", handler.ListByUser)
		interview.GET("/:sessionId", handler.Get)
		interview.POST("/:sessionId/answer", aiLimit, handler.Answer)
	}
}

// Start godoc
// @Summary      Start a mock interview
// @Tags         interview
// @Accept       json
// @Produce      json
// @Param        body  body      domain.StartInterviewInput  true  "Job title and optional user id"
// @Success      200   {object}  domain.InterviewSession
// @Failure      400   {object}  response.ErrorBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /interview/start [post]
func (h *InterviewHandler) Start(c *gin.Context) {
	var input domain.StartInterviewInput
	if !bindJSON(c, &input, false) {
		return
	}

	session, err := h.interviewUC.StartInterview(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, session)
}

// Answer godoc
// @Summary      Answer an interview question
// @Tags         interview
// @Accept       json
// @Produce      json
// @Param        sessionId  path      int                  true  "Session id"
// @Param        body       body      domain.AnswerInput   true  "Answer"
// @Success      200        {object}  domain.AnswerResult
// @Failure      400        {object}  response.ErrorBody
// @Failure      404        {object}  response.ErrorBody
// @Failure      409        {object}  response.ErrorBody
// @Failure      500        {object}  response.ErrorBody
// @Router       /interview/{sessionId}/answer [post]
func (h *InterviewHandler) Answer(c *gin.Context) {
	id, ok := pathID(c, "sessionId")
	if !ok {
		return
	}
	var input domain.AnswerInput
	if !bindJSON(c, &input, false) {
		return
	}

	result, err := h.interviewUC.SubmitAnswer(c.Request.Context(), id, &input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Get godoc
// @Summary      Get an interview session
// @Tags         interview
// @Produce      json
// @Param        sessionId  path      int  true  "Session id"
// @Success      200        {object}  domain.InterviewSession
// @Failure      404        {object}  response.ErrorBody
// @Router       /interview/{sessionId} [get]
func (h *InterviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	session, err := h.interviewUC.GetInterview(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, session)
}

// ListByUser godoc
// @Summary      List a user's interview sessions
// @Tags         interview
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   domain.InterviewSession
// @Router       /interview/user/{userId} [get]
func (h *InterviewHandler) ListByUser(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	sessions, err := h.interviewUC.ListUserInterviews(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, sessions)
}
