package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jardam/internal/services"
	"github.com/yoockh/jardam/internal/utils"
)

type AdminHandler struct {
	apps   services.ApplicationService
	export services.ExportService
}

func NewAdminHandler(apps services.ApplicationService, export services.ExportService) *AdminHandler {
	return &AdminHandler{apps: apps, export: export}
}

func (h *AdminHandler) Applications(c *gin.Context) {
	rows, err := h.apps.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Application answers an unknown id with an empty object, which is what the
// admin console expects.
func (h *AdminHandler) Application(c *gin.Context) {
	id, ok := parseID(c, "AdminHandler.Application")
	if !ok {
		return
	}

	a, err := h.apps.Get(c.Request.Context(), id)
	if err != nil {
		if utils.IsCode(err, utils.CodeNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AdminHandler) Export(c *gin.Context) {
	out, err := h.export.ApplicationsCSV(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+services.ExportFileName+`"`)
	c.Data(http.StatusOK, services.ExportContentType, out)
}
