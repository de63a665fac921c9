package v1

import (
	"fmt"
	"net/http"

	"go-culturematch-backend/internal/delivery/http/response"
	"go-culturematch-backend/internal/domain"
	"go-culturematch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUC domain.ReportUsecase
}

func NewReportHandler(r *gin.RouterGroup, reportUC domain.ReportUsecase) {
	handler := &ReportHandler{reportUC: reportUC}

	reports := r.Group("/reports")
	{
		reports.POST("/matches/export", handler.ExportMatches)
		reports.GET("/matches/columns", handler.ExportColumns)
	}
}

// ExportMatches godoc
// @Summary      Export match results
// @Description  Export persisted match results as xlsx or csv (Recruiter only)
// @Tags         reports
// @Accept       json
// @Produce      application/octet-stream
// @Param        request  body  domain.MatchExportRequest  true  "Export request"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /reports/matches/export [post]
func (h *ReportHandler) ExportMatches(c *gin.Context) {
	var req domain.MatchExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	data, filename, err := h.reportUC.ExportMatches(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if req.Format == "csv" {
		contentType = "text/csv"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// ExportColumns godoc
// @Summary      List exportable report columns
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /reports/matches/columns [get]
func (h *ReportHandler) ExportColumns(c *gin.Context) {
	response.Success(c, http.StatusOK, "Exportable columns", domain.MatchExportColumns)
}
