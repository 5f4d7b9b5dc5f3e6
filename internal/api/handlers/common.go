package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jardam/internal/api/middleware"
	"github.com/yoockh/jardam/internal/services"
	"github.com/yoockh/jardam/internal/utils"
)

type APIError struct {
	Success bool       `json:"success"`
	Error   string     `json:"error"`
	Code    utils.Code `json:"code"`
}

type CreatedResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

type OKResponse struct {
	Success bool `json:"success"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, APIError{
		Success: false,
		Error:   utils.ClientMessage(err),
		Code:    utils.CodeOf(err),
	})
}

func requireUserID(c *gin.Context) (uint, bool) {
	if id, ok := middleware.UserID(c); ok {
		return id, true
	}
	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "Unauthorized", nil))
	return 0, false
}

func actorFrom(c *gin.Context) services.Actor {
	a := services.Actor{IsAdmin: middleware.IsAdmin(c)}
	if id, ok := middleware.UserID(c); ok {
		a.UserID = &id
	}
	return a
}

func parseID(c *gin.Context, op string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid id", err))
		return 0, false
	}
	return uint(id), true
}
