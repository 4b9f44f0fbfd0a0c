package implementation

import (
	"context"
	"errors"

	"affiliate-hub-be/internal/model"
	"affiliate-hub-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) contract.SettingRepository {
	return &SettingRepositoryImpl{db: db}
}

func (r *SettingRepositoryImpl) Get(ctx context.Context) (*model.ProgramSetting, error) {
	var m model.ProgramSetting
	if err := r.db.WithContext(ctx).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SettingRepositoryImpl) Save(ctx context.Context, setting *model.ProgramSetting) error {
	if setting.Id == 0 {
		setting.Id = 1
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(setting).Error
}
