package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jardam/internal/services"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Search(c *gin.Context) {
	rows, err := h.svc.Search(c.Request.Context(), profileFilterFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "ProfileHandler.Get")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Mine(c *gin.Context) {
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

func (h *ProfileHandler) Create(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError("ProfileHandler.Create", err))
		return
	}

	p := req.toModel()
	if err := h.svc.Create(c.Request.Context(), actorFrom(c), p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CreatedResponse{Success: true, ID: p.ID})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	const op = "ProfileHandler.Update"

	id, ok := parseID(c, op)
	if !ok {
		return
	}
	var req ProfileRequest
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

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "ProfileHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{Success: true})
}
