package repository

import "bintrack/entities"

type BinRepository interface {
	// CreateAll inserts a whole run in one transaction; a failure
	// inserts nothing.
	CreateAll(bins []entities.Bin) error
	FindByID(id string) (*entities.Bin, error)
	All() ([]entities.Bin, error)            // creation order
	AllNewestFirst() ([]entities.Bin, error) // admin listing
	Untipped() ([]entities.Bin, error)
	Tipped() ([]entities.Bin, error)
	IDsByPrefix(prefix string) ([]string, error)
	// Update overwrites the named columns of one bin.
	Update(id string, fields map[string]any) error
	Delete(id string) error
	// MarkTipped flips an untipped bin to tipped and copies the total
	// weight in one conditional UPDATE. Reports whether a row changed.
	MarkTipped(id string) (bool, error)
}
