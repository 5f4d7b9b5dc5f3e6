package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jardam/internal/services"
)

type VacancyHandler struct {
	svc services.VacancyService
}

func NewVacancyHandler(svc services.VacancyService) *VacancyHandler {
	return &VacancyHandler{svc: svc}
}

func (h *VacancyHandler) Search(c *gin.Context) {
	rows, err := h.svc.Search(c.Request.Context(), vacancyFilterFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *VacancyHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "VacancyHandler.Get")
	if !ok {
		return
	}

	v, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VacancyHandler) Mine(c *gin.Context) {
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

func (h *VacancyHandler) Create(c *gin.Context) {
	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError("VacancyHandler.Create", err))
		return
	}

	v := req.toModel()
	if err := h.svc.Create(c.Request.Context(), actorFrom(c), v); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CreatedResponse{Success: true, ID: v.ID})
}

func (h *VacancyHandler) Update(c *gin.Context) {
	const op = "VacancyHandler.Update"

	id, ok := parseID(c, op)
	if !ok {
		return
	}
	var req VacancyRequest
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

func (h *VacancyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "VacancyHandler.Delete")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{Success: true})
}
