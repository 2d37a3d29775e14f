package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	Dashboard(c echo.Context) error
	SeasonBinsTipped(c echo.Context) error
	ExportCSVAll(c echo.Context) error
	ExportCSVOnStock(c echo.Context) error
	ExportCSVTipped(c echo.Context) error
	ExportCSVSeason(c echo.Context) error
	ExportXLSX(c echo.Context) error
}
