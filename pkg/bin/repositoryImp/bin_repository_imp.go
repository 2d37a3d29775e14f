package repositoryImp

import (
	"gorm.io/gorm"

	"bintrack/entities"
	"bintrack/pkg/bin/repository"
)

type binRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BinRepository { return &binRepo{db} }

func (r *binRepo) CreateAll(bins []entities.Bin) error {
	if len(bins) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&bins).Error
	})
}

func (r *binRepo) FindByID(id string) (*entities.Bin, error) {
	var b entities.Bin
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *binRepo) All() ([]entities.Bin, error) {
	var out []entities.Bin
	return out, r.db.Order("date_created asc, id asc").Find(&out).Error
}

func (r *binRepo) AllNewestFirst() ([]entities.Bin, error) {
	var out []entities.Bin
	return out, r.db.Order("date_created desc, id desc").Find(&out).Error
}

func (r *binRepo) Untipped() ([]entities.Bin, error) {
	var out []entities.Bin
	return out, r.db.Where("is_tipped = ?", false).
		Order("date_created asc, id asc").Find(&out).Error
}

func (r *binRepo) Tipped() ([]entities.Bin, error) {
	var out []entities.Bin
	return out, r.db.Where("is_tipped = ?", true).
		Order("date_created asc, id asc").Find(&out).Error
}

func (r *binRepo) IDsByPrefix(prefix string) ([]string, error) {
	var ids []string
	err := r.db.Model(&entities.Bin{}).
		Where("id LIKE ?", prefix+"%").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *binRepo) Update(id string, fields map[string]any) error {
	return r.db.Model(&entities.Bin{}).Where("id = ?", id).Updates(fields).Error
}

func (r *binRepo) Delete(id string) error {
	return r.db.Delete(&entities.Bin{}, "id = ?", id).Error
}

// MarkTipped only matches a row that is still untipped, so repeating
// the call (or passing an unknown id) changes nothing.
func (r *binRepo) MarkTipped(id string) (bool, error) {
	res := r.db.Model(&entities.Bin{}).
		Where("id = ? AND is_tipped = ?", id, false).
		Updates(map[string]any{
			"is_tipped":     true,
			"tipped_weight": gorm.Expr("total_weight"),
		})
	return res.RowsAffected > 0, res.Error
}
