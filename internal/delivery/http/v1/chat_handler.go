package v1

import (
	"net/http"

	"jobready-backend/internal/delivery/http/response"
	"jobready-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

func NewChatHandler(api *gin.RouterGroup, chatUC domain.ChatUsecase, aiLimit gin.HandlerFunc) {
	handler := &ChatHandler{chatUC: chatUC}

	chat := api.Group("/chat")
	{
		chat.POST("/start", handler.Start)
		chat.GET("/user/:userId", handler.ListByUser)
		chat.GET("/:sessionId", handler.Get)
		chat.POST("/:sessionId/message", aiLimit, handler.Message)
	}
}

// Start godoc
// @Summary      Start a career chat
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      domain.StartChatInput  false  "Optional user id"
// @Success      200   {object}  domain.ChatSession
// @Router       /chat/start [post]
func (h *ChatHandler) Start(c *gin.Context) {
	var input domain.StartChatInput
	if !bindJSON(c, &input, true) {
		return
	}

	session, err := h.chatUC.StartChat(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, session)
}

// Message godoc
// @Summary      Send a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        sessionId  path      int                      true  "Session id"
// @Param        body       body      domain.ChatMessageInput  true  "Message"
// @Success      200        {object}  domain.ChatReply
// @Failure      400        {object}  response.ErrorBody
// @Failure      404        {object}  response.ErrorBody
// @Failure      500        {object}  response.ErrorBody
// @Router       /chat/{sessionId}/message [post]
func (h *ChatHandler) Message(c *gin.Context) {
	id, ok := pathID(c, "sessionId")
	if !ok {
		return
	}
	var input domain.ChatMessageInput
	if !bindJSON(c, &input, false) {
		return
	}

	reply, err := h.chatUC.SendMessage(c.Request.Context(), id, &input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, reply)
}

// Get godoc
// @Summary      Get a chat session
// @Tags         chat
// @Produce      json
// @Param        sessionId  path      int  true  "Session id"
// @Success      200        {object}  domain.ChatSession
// @Failure      404        {object}  response.ErrorBody
// @Router       /chat/{sessionId} [get]
func (h *ChatHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	session, err := h.chatUC.GetChat(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, session)
}

// ListByUser godoc
// @Summary      List a user's chat sessions
// @Tags         chat
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   domain.ChatSession
// @Router       /chat/user/{userId} [get]
func (h *ChatHandler) ListByUser(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	sessions, err := h.chatUC.ListUserChats(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, sessions)
}
