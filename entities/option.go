package entities

// DropdownOption is a reusable value for one of the bin classification
// fields. Uniqueness is on the (Field, Value) pair, not the id; options
// have no relationship to existing Bin rows.
type DropdownOption struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Field string `gorm:"size:50;uniqueIndex:uniq_dropdown_field_value" json:"field"`
	Value string `gorm:"size:100;uniqueIndex:uniq_dropdown_field_value" json:"value"`
}

func (DropdownOption) TableName() string { return "dropdown_option" }

// DropdownFields are the bin fields that take their values from
// DropdownOption rows, in form display order.
var DropdownFields = []string{
	"run_number", "puc", "farm_name", "commodity", "variety", "bin_class", "size",
}

func IsDropdownField(field string) bool {
	for _, f := range DropdownFields {
		if f == field {
			return true
		}
	}
	return false
}
