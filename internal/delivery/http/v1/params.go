package v1

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"jobready-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}

func pathUserID(c *gin.Context) (string, bool) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		_ = c.Error(apperror.BadRequest("User id is required"))
		return "", false
	}
	return userID, true
}

// bindJSON decodes the body into dst. An empty body is accepted when
// optional is set.
func bindJSON(c *gin.Context, dst interface{}, optional bool) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	_ = c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
	return false
}
