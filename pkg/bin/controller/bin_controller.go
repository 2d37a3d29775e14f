package controller

import "github.com/labstack/echo/v4"

type BinController interface {
	AddBinsForm(c echo.Context) error
	AddBins(c echo.Context) error
	MarkTippedForm(c echo.Context) error
	MarkTipped(c echo.Context) error
	AdminPanel(c echo.Context) error
	EditBinForm(c echo.Context) error
	EditBin(c echo.Context) error
	DeleteBin(c echo.Context) error
	ReprintLabel(c echo.Context) error
	BarcodeImage(c echo.Context) error
}
