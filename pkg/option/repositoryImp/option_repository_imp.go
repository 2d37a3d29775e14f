package repositoryImp

import (
	"gorm.io/gorm"

	"bintrack/entities"
	"bintrack/pkg/option/repository"
)

type optionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OptionRepository { return &optionRepo{db} }

func (r *optionRepo) Add(field, value string) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.DropdownOption{}).
			Where("field = ? AND value = ?", field, value).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		if err := tx.Create(&entities.DropdownOption{Field: field, Value: value}).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

func (r *optionRepo) All() ([]entities.DropdownOption, error) {
	var out []entities.DropdownOption
	return out, r.db.Order("field asc, id asc").Find(&out).Error
}

func (r *optionRepo) Delete(id uint) error {
	return r.db.Delete(&entities.DropdownOption{}, id).Error
}
