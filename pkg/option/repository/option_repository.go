package repository

import "bintrack/entities"

type OptionRepository interface {
	// Add inserts the (field, value) pair unless it already exists.
	// Reports whether a row was created.
	Add(field, value string) (bool, error)
	All() ([]entities.DropdownOption, error)
	Delete(id uint) error
}
