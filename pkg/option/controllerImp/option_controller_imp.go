package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bintrack/entities"
	"bintrack/pkg/auth"
	"bintrack/pkg/option/controller"
	"bintrack/pkg/option/service"
)

type optionCtrl struct{ options service.OptionService }

func NewOptionController(options service.OptionService) controller.OptionController {
	return &optionCtrl{options: options}
}

func (h *optionCtrl) ManageForm(c echo.Context) error {
	grouped, err := h.options.GroupedOptions()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "manage_options.html", echo.Map{
		"Fields":  entities.DropdownFields,
		"Options": grouped,
	})
}

func (h *optionCtrl) Create(c echo.Context) error {
	_, err := h.options.AddOption(c.FormValue("field"), c.FormValue("value"))
	if err != nil {
		auth.Flash(c, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, "/manage_options")
}

func (h *optionCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		auth.Flash(c, "Invalid option id.")
		return c.Redirect(http.StatusSeeOther, "/manage_options")
	}
	if err := h.options.DeleteOption(uint(id)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/manage_options")
}
