package controllerImp

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"bintrack/pkg/bin/service"
	"bintrack/pkg/export"
	"bintrack/pkg/metrics"
	"bintrack/pkg/report/controller"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type reportCtrl struct{ bins service.BinService }

func NewReportController(bins service.BinService) controller.ReportController {
	return &reportCtrl{bins: bins}
}

func (h *reportCtrl) Dashboard(c echo.Context) error {
	rows, err := h.bins.StockSummary(time.Now().UTC())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "dashboard.html", echo.Map{"Rows": rows})
}

func (h *reportCtrl) SeasonBinsTipped(c echo.Context) error {
	rows, err := h.bins.SeasonSummary(time.Now().UTC())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "season_bins_tipped.html", echo.Map{"Rows": rows})
}

func (h *reportCtrl) ExportCSVAll(c echo.Context) error {
	return h.exportCSV(c, service.ExportAll)
}

func (h *reportCtrl) ExportCSVOnStock(c echo.Context) error {
	return h.exportCSV(c, service.ExportOnStock)
}

func (h *reportCtrl) ExportCSVTipped(c echo.Context) error {
	return h.exportCSV(c, service.ExportTipped)
}

func (h *reportCtrl) ExportCSVSeason(c echo.Context) error {
	return h.exportCSV(c, service.ExportSeason)
}

func (h *reportCtrl) exportCSV(c echo.Context, scope service.ExportScope) error {
	bins, err := h.bins.ExportBins(scope, time.Now().UTC())
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, bins); err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues("csv", string(scope)).Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="bins_`+string(scope)+`.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *reportCtrl) ExportXLSX(c echo.Context) error {
	bins, err := h.bins.ExportBins(service.ExportAll, time.Now().UTC())
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, bins); err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues("xlsx", string(service.ExportAll)).Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="bins.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
