package entities

import "time"

// Bin is one physical produce bin. The ID is allocated once from the
// farm-name prefix plus a zero-padded sequence and never changes.
type Bin struct {
	ID           string     `gorm:"primaryKey;size:32" json:"id"`
	RunNumber    string     `gorm:"size:50" json:"run_number"`
	PUC          string     `gorm:"size:100" json:"puc"`
	FarmName     string     `gorm:"size:100" json:"farm_name"`
	Commodity    string     `gorm:"size:100" json:"commodity"`
	Variety      string     `gorm:"size:100" json:"variety"`
	BinClass     string     `gorm:"size:100" json:"bin_class"`
	Size         string     `gorm:"size:100" json:"size"`
	TotalWeight  float64    `json:"total_weight"`
	Date         *time.Time `json:"date"` // harvest/intake date, date-only, may be absent
	DateCreated  time.Time  `gorm:"index" json:"date_created"`
	IsTipped     bool       `gorm:"index" json:"is_tipped"`
	TippedWeight float64    `json:"tipped_weight"` // 0 until tipped, then a copy of TotalWeight
}

func (Bin) TableName() string { return "bin" }
