// Package report builds the stock and season summaries shown on the
// dashboard pages: bins grouped by their classification tuple with
// per-group counts, ages and tipped weights.
package report

import (
	"time"

	"bintrack/entities"
)

// Key is the composite grouping tuple. Two bins land in the same group
// exactly when all six fields match.
type Key struct {
	RunNumber string
	PUC       string
	Commodity string
	Variety   string
	BinClass  string
	FarmName  string
}

func keyOf(b entities.Bin) Key {
	return Key{
		RunNumber: b.RunNumber,
		PUC:       b.PUC,
		Commodity: b.Commodity,
		Variety:   b.Variety,
		BinClass:  b.BinClass,
		FarmName:  b.FarmName,
	}
}

// Group is one distinct key with the bins that matched it.
type Group struct {
	Key  Key
	Bins []entities.Bin
}

type StockRow struct {
	RunNumber    string `json:"run_number"`
	PUC          string `json:"puc"`
	Commodity    string `json:"commodity"`
	Variety      string `json:"variety"`
	BinClass     string `json:"bin_class"`
	FarmName     string `json:"farm_name"`
	BinsOnStock  int    `json:"bins_on_stock"`
	OldestBinAge int    `json:"oldest_bin_age"` // days, 0 when no bin in the group has a date
}

type SeasonRow struct {
	RunNumber    string  `json:"run_number"`
	PUC          string  `json:"puc"`
	Commodity    string  `json:"commodity"`
	Variety      string  `json:"variety"`
	BinClass     string  `json:"bin_class"`
	FarmName     string  `json:"farm_name"`
	BinsTipped   int     `json:"bins_tipped"`
	TippedWeight float64 `json:"tipped_weight"`
}

// OnStock keeps bins that have not been tipped.
func OnStock(b entities.Bin) bool { return !b.IsTipped }

// TippedBefore keeps tipped bins created before cutoff.
func TippedBefore(cutoff time.Time) func(entities.Bin) bool {
	return func(b entities.Bin) bool { return b.IsTipped && b.DateCreated.Before(cutoff) }
}

// Filter returns the bins that satisfy keep, preserving order.
func Filter(bins []entities.Bin, keep func(entities.Bin) bool) []entities.Bin {
	out := make([]entities.Bin, 0, len(bins))
	for _, b := range bins {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// GroupBins filters bins through keep and groups the remainder by Key.
// Groups come back in first-occurrence order, not sorted.
func GroupBins(bins []entities.Bin, keep func(entities.Bin) bool) []Group {
	idx := map[Key]int{}
	var groups []Group
	for _, b := range bins {
		if keep != nil && !keep(b) {
			continue
		}
		k := keyOf(b)
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Bins = append(groups[i].Bins, b)
	}
	return groups
}

// StockRows summarizes groups for the stock view: bin count plus the
// oldest age in days relative to today, taken over bins that carry a
// date. A group with no dated bins reports age 0.
func StockRows(groups []Group, today time.Time) []StockRow {
	rows := make([]StockRow, 0, len(groups))
	for _, g := range groups {
		oldest := 0
		dated := false
		for _, b := range g.Bins {
			if b.Date == nil {
				continue
			}
			age := ageDays(today, *b.Date)
			if !dated || age > oldest {
				oldest = age
			}
			dated = true
		}
		rows = append(rows, StockRow{
			RunNumber:    g.Key.RunNumber,
			PUC:          g.Key.PUC,
			Commodity:    g.Key.Commodity,
			Variety:      g.Key.Variety,
			BinClass:     g.Key.BinClass,
			FarmName:     g.Key.FarmName,
			BinsOnStock:  len(g.Bins),
			OldestBinAge: oldest,
		})
	}
	return rows
}

// SeasonRows summarizes groups for the season-tipped view: bin count
// plus the sum of tipped weights.
func SeasonRows(groups []Group) []SeasonRow {
	rows := make([]SeasonRow, 0, len(groups))
	for _, g := range groups {
		total := 0.0
		for _, b := range g.Bins {
			total += b.TippedWeight
		}
		rows = append(rows, SeasonRow{
			RunNumber:    g.Key.RunNumber,
			PUC:          g.Key.PUC,
			Commodity:    g.Key.Commodity,
			Variety:      g.Key.Variety,
			BinClass:     g.Key.BinClass,
			FarmName:     g.Key.FarmName,
			BinsTipped:   len(g.Bins),
			TippedWeight: total,
		})
	}
	return rows
}

// ageDays is date-only arithmetic: both instants collapse to their
// calendar date before subtracting.
func ageDays(today, d time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(b).Hours() / 24)
}
