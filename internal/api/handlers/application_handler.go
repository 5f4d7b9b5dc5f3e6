package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jardam/internal/services"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError("ApplicationHandler.Create", err))
		return
	}

	id, err := h.svc.Create(c.Request.Context(), actorFrom(c), req.toModel())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CreatedResponse{Success: true, ID: id})
}

func (h *ApplicationHandler) Public(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ApplicationHandler) Mine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	const op = "ApplicationHandler.Update"

	id, ok := parseID(c, op)
	if !ok {
		return
	}
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(op, err))
		return
	}

	if err := h.svc.Update(c.Request.Context(), actorFrom(c), id, req.toModel()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{Success: true})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "ApplicationHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{Success: true})
}
