package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"bintrack/entities"
	"bintrack/pkg/auth"
	"bintrack/pkg/barcode"
	"bintrack/pkg/bin/controller"
	"bintrack/pkg/bin/service"
	"bintrack/pkg/metrics"
	optionsvc "bintrack/pkg/option/service"
)

type binCtrl struct {
	bins    service.BinService
	options optionsvc.OptionService
}

func NewBinController(bins service.BinService, options optionsvc.OptionService) controller.BinController {
	return &binCtrl{bins: bins, options: options}
}

func (h *binCtrl) AddBinsForm(c echo.Context) error {
	dropdowns, err := h.options.GroupedValues()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "add_bins.html", echo.Map{"Dropdowns": dropdowns})
}

func (h *binCtrl) AddBins(c echo.Context) error {
	numBins, err := strconv.Atoi(c.FormValue("num_bins"))
	if err != nil {
		auth.Flash(c, "Number of bins must be a whole number.")
		return c.Redirect(http.StatusSeeOther, "/add_bins")
	}
	weight, err := strconv.ParseFloat(c.FormValue("total_weight"), 64)
	if err != nil {
		auth.Flash(c, "Total weight must be a number.")
		return c.Redirect(http.StatusSeeOther, "/add_bins")
	}
	date, err := time.Parse("2006-01-02", c.FormValue("date"))
	if err != nil {
		auth.Flash(c, "Date must be YYYY-MM-DD.")
		return c.Redirect(http.StatusSeeOther, "/add_bins")
	}

	bins, err := h.bins.CreateRun(service.RunInput{
		NumBins:     numBins,
		RunNumber:   c.FormValue("run_number"),
		PUC:         c.FormValue("puc"),
		FarmName:    c.FormValue("farm_name"),
		Commodity:   c.FormValue("commodity"),
		Variety:     c.FormValue("variety"),
		BinClass:    c.FormValue("bin_class"),
		Size:        c.FormValue("size"),
		TotalWeight: weight,
		Date:        date,
	})
	if err != nil {
		auth.Flash(c, err.Error())
		return c.Redirect(http.StatusSeeOther, "/add_bins")
	}
	return c.Render(http.StatusOK, "print_labels.html", echo.Map{"Bins": bins})
}

func (h *binCtrl) MarkTippedForm(c echo.Context) error {
	bins, err := h.bins.ListBins()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "mark_tipped.html", echo.Map{"Bins": bins})
}

func (h *binCtrl) MarkTipped(c echo.Context) error {
	binID := strings.TrimSpace(c.FormValue("bin_id"))
	tipped, err := h.bins.MarkTipped(binID)
	if err != nil {
		return err
	}
	if tipped {
		auth.Flash(c, "Bin "+binID+" tipped.")
	} else {
		auth.Flash(c, "Bin "+binID+" not found or already tipped.")
	}
	return c.Redirect(http.StatusSeeOther, "/mark_tipped")
}

func (h *binCtrl) AdminPanel(c echo.Context) error {
	bins, err := h.bins.ListBinsNewestFirst()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "admin.html", echo.Map{"Bins": bins})
}

func (h *binCtrl) EditBinForm(c echo.Context) error {
	b, err := h.bins.GetBin(c.Param("bin_id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		auth.Flash(c, "Bin not found.")
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "edit_bin.html", echo.Map{"Bin": b})
}

func (h *binCtrl) EditBin(c echo.Context) error {
	binID := c.Param("bin_id")

	weight, err := strconv.ParseFloat(c.FormValue("total_weight"), 64)
	if err != nil {
		auth.Flash(c, "Total weight must be a number.")
		return c.Redirect(http.StatusSeeOther, "/edit_bin/"+binID)
	}
	date, err := time.Parse("2006-01-02", c.FormValue("date"))
	if err != nil {
		auth.Flash(c, "Date must be YYYY-MM-DD.")
		return c.Redirect(http.StatusSeeOther, "/edit_bin/"+binID)
	}

	err = h.bins.EditBin(binID, service.EditInput{
		RunNumber:   c.FormValue("run_number"),
		PUC:         c.FormValue("puc"),
		FarmName:    c.FormValue("farm_name"),
		Commodity:   c.FormValue("commodity"),
		Variety:     c.FormValue("variety"),
		BinClass:    c.FormValue("bin_class"),
		Size:        c.FormValue("size"),
		TotalWeight: weight,
		Date:        date,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		auth.Flash(c, "Bin not found.")
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *binCtrl) DeleteBin(c echo.Context) error {
	if err := h.bins.DeleteBin(c.Param("bin_id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *binCtrl) ReprintLabel(c echo.Context) error {
	b, err := h.bins.GetBin(c.Param("bin_id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		auth.Flash(c, "Bin not found.")
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "print_labels.html", echo.Map{"Bins": []entities.Bin{*b}})
}

func (h *binCtrl) BarcodeImage(c echo.Context) error {
	binID := c.Param("bin_id")
	png, err := barcode.PNG(binID, barcode.Width, barcode.Height)
	if err != nil {
		log.Warn().Str("bin", binID).Err(err).Msg("barcode render failed")
		return echo.NewHTTPError(http.StatusBadRequest, "cannot encode barcode")
	}
	metrics.BarcodesRenderedTotal.Inc()
	return c.Blob(http.StatusOK, "image/png", png)
}
