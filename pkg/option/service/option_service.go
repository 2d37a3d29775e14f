package service

import "bintrack/entities"

type OptionService interface {
	// AddOption stores a new value for one of the known dropdown
	// fields. Reports whether the value was new.
	AddOption(field, value string) (bool, error)
	// GroupedOptions returns every stored option keyed by field name.
	GroupedOptions() (map[string][]entities.DropdownOption, error)
	// GroupedValues is GroupedOptions reduced to the bare values, for
	// populating form selects.
	GroupedValues() (map[string][]string, error)
	DeleteOption(id uint) error
}
