// Package export writes bin listings as CSV or XLSX attachments with a
// fixed column order shared by every export route.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"bintrack/entities"
)

// Header is the fixed export column order.
var Header = []string{
	"ID", "Run Number", "PUC", "Farm Name", "Commodity", "Variety",
	"Class", "Size", "Total Weight", "Tipped", "Tipped Weight", "Date",
}

// Row flattens one bin into the fixed column order. Dates render as
// 2006-01-02 or empty; the tipped flag renders Yes/No.
func Row(b entities.Bin) []string {
	return []string{
		b.ID, b.RunNumber, b.PUC, b.FarmName, b.Commodity, b.Variety,
		b.BinClass, b.Size,
		strconv.FormatFloat(b.TotalWeight, 'f', -1, 64),
		yesNo(b.IsTipped),
		strconv.FormatFloat(b.TippedWeight, 'f', -1, 64),
		dateCell(b),
	}
}

// WriteCSV writes the header plus one row per bin.
func WriteCSV(w io.Writer, bins []entities.Bin) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, b := range bins {
		if err := cw.Write(Row(b)); err != nil {
			return fmt.Errorf("write bin %s: %w", b.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX builds a one-sheet workbook with the same columns as the
// CSV export; weights stay numeric cells.
func WriteXLSX(w io.Writer, bins []entities.Bin) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	hdr := make([]any, len(Header))
	for i, h := range Header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, b := range bins {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			b.ID, b.RunNumber, b.PUC, b.FarmName, b.Commodity, b.Variety,
			b.BinClass, b.Size, b.TotalWeight, yesNo(b.IsTipped),
			b.TippedWeight, dateCell(b),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write bin %s: %w", b.ID, err)
		}
	}
	return f.Write(w)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func dateCell(b entities.Bin) string {
	if b.Date == nil {
		return ""
	}
	return b.Date.Format("2006-01-02")
}
