package contract

import (
	"context"

	"affiliate-hub-be/internal/model"
)

type SettingRepository interface {
	Get(ctx context.Context) (*model.ProgramSetting, error)
	Save(ctx context.Context, setting *model.ProgramSetting) error
}
