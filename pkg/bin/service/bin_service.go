package service

import (
	"time"

	"bintrack/entities"
	"bintrack/pkg/report"
)

// RunInput is one add-bins submission: a shared classification for a
// contiguous block of new bins.
type RunInput struct {
	NumBins     int
	RunNumber   string
	PUC         string
	FarmName    string
	Commodity   string
	Variety     string
	BinClass    string
	Size        string
	TotalWeight float64
	Date        time.Time
}

// EditInput overwrites the classification fields of one bin. The id
// and the tip state are never touched.
type EditInput struct {
	RunNumber   string
	PUC         string
	FarmName    string
	Commodity   string
	Variety     string
	BinClass    string
	Size        string
	TotalWeight float64
	Date        time.Time
}

// ExportScope selects which bins an export covers.
type ExportScope string

const (
	ExportAll     ExportScope = "all"
	ExportOnStock ExportScope = "on_stock"
	ExportTipped  ExportScope = "tipped"
	ExportSeason  ExportScope = "season"
)

type BinService interface {
	// CreateRun allocates sequential ids for the farm and stores one
	// bin per id, all in a single transaction. Returns the created
	// bins in id order.
	CreateRun(in RunInput) ([]entities.Bin, error)
	GetBin(id string) (*entities.Bin, error)
	ListBins() ([]entities.Bin, error)            // creation order
	ListBinsNewestFirst() ([]entities.Bin, error) // admin listing
	// MarkTipped transitions a bin to tipped, freezing its total
	// weight as the tipped weight. Reports whether the bin changed;
	// tipping an already-tipped or unknown bin is a no-op.
	MarkTipped(id string) (bool, error)
	EditBin(id string, in EditInput) error
	DeleteBin(id string) error
	StockSummary(now time.Time) ([]report.StockRow, error)
	// SeasonSummary covers tipped bins created before now minus the
	// configured season threshold.
	SeasonSummary(now time.Time) ([]report.SeasonRow, error)
	ExportBins(scope ExportScope, now time.Time) ([]entities.Bin, error)
}
