package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/service"
)

// ExportHandler 后台导出处理器
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCatalog 导出XLSX报表，仅管理员可操作
// GET /api/v1/admin/export
func (h *ExportHandler) ExportCatalog(c *gin.Context) {
	data, err := h.exportService.ExportCatalog(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	filename := fmt.Sprintf("catalog-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
