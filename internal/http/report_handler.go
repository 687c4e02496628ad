package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/export"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/http/middleware"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
)

func (h *Handler) testingGrid(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	year, ok := yearQuery(c)
	if !ok {
		return
	}

	groups, err := h.gridService.TestingGrid(c.Request.Context(), principal, year)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(groups))
}

func (h *Handler) dashboard(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	year, ok := yearQuery(c)
	if !ok {
		return
	}

	summary, err := h.complianceService.Dashboard(c.Request.Context(), principal, year)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(summary))
}

func (h *Handler) officeCompliance(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	year, ok := yearQuery(c)
	if !ok {
		return
	}
	quarter, ok := optionalIntQuery(c, "quarter")
	if !ok {
		return
	}

	rows, err := h.complianceService.OfficeCompliance(c.Request.Context(), principal, year, quarter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(rows))
}

func (h *Handler) exportVehiclesCSV(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}
	if !principal.HasCapability(model.CapReportsExport) {
		c.JSON(http.StatusForbidden, errorResponse("not authorized"))
		return
	}

	filter := repository.VehicleListFilter{}
	if office := strings.TrimSpace(c.Query("office")); office != "" {
		filter.OfficeName = &office
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("vehicles-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.VehiclesCSV(vehicles)))
}

func (h *Handler) exportComplianceWorkbook(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}
	if !principal.HasCapability(model.CapReportsExport) {
		c.JSON(http.StatusForbidden, errorResponse("not authorized"))
		return
	}

	year, ok := yearQuery(c)
	if !ok {
		return
	}
	quarter, ok := optionalIntQuery(c, "quarter")
	if !ok {
		return
	}

	rows, err := h.complianceService.OfficeCompliance(c.Request.Context(), principal, year, quarter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	buf, err := export.ComplianceWorkbook(rows, year)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("office-compliance-%d.xlsx", year)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *Handler) exportWordReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}
	if !principal.HasCapability(model.CapReportsExport) {
		c.JSON(http.StatusForbidden, errorResponse("not authorized"))
		return
	}

	var req struct {
		HTML     string `json:"html" binding:"required"`
		Filename string `json:"filename"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	buf, err := export.WordDocument(req.HTML)
	if err != nil {
		if errors.Is(err, export.ErrNoTables) {
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		h.handleError(c, err)
		return
	}

	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		filename = fmt.Sprintf("report-%s.docx", time.Now().Format("2006-01-02"))
	} else if !strings.HasSuffix(filename, ".docx") {
		filename += ".docx"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", buf.Bytes())
}

// yearQuery reads the year parameter, defaulting to the current year.
func yearQuery(c *gin.Context) (int, bool) {
	value, ok := optionalIntQuery(c, "year")
	if !ok {
		return 0, false
	}
	if value == nil {
		return time.Now().Year(), true
	}
	return *value, true
}
