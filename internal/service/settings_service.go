// FILE: internal/service/settings_service.go
package service

import (
	"context"
	"time"

	"affiliate-hub-be/internal/config"
	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/model"
	"affiliate-hub-be/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

const settingsCacheKey = "program_settings"

// ISettingsService serves the program knobs. Reads go through a short cache
// because every recorded order needs the commission rate; writes flush it.
type ISettingsService interface {
	Get(ctx context.Context) (*dto.ProgramSettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateProgramSettingsRequest) (*dto.ProgramSettingsResponse, error)
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
	defaults   config.AffiliateConfig
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory, defaults config.AffiliateConfig) ISettingsService {
	return &settingsService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
		defaults:   defaults,
	}
}

func (s *settingsService) Get(ctx context.Context) (*dto.ProgramSettingsResponse, error) {
	if cached, found := s.cache.Get(settingsCacheKey); found {
		return cached.(*dto.ProgramSettingsResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting, err := uow.SettingRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.ProgramSettingsResponse{
		CommissionRate:  s.defaults.CommissionRate,
		MinimumWithdraw: s.defaults.MinimumWithdraw,
	}
	if setting != nil {
		res.CommissionRate = setting.CommissionRate
		res.MinimumWithdraw = setting.MinimumWithdraw
	}

	s.cache.Set(settingsCacheKey, res, gocache.DefaultExpiration)
	return res, nil
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateProgramSettingsRequest) (*dto.ProgramSettingsResponse, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	setting := &model.ProgramSetting{
		Id:              1,
		CommissionRate:  current.CommissionRate,
		MinimumWithdraw: current.MinimumWithdraw,
		UpdatedAt:       time.Now(),
	}
	if req.CommissionRate != nil {
		setting.CommissionRate = *req.CommissionRate
	}
	if req.MinimumWithdraw != nil {
		setting.MinimumWithdraw = *req.MinimumWithdraw
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SettingRepository().Save(ctx, setting); err != nil {
		return nil, err
	}

	s.cache.Delete(settingsCacheKey)

	return &dto.ProgramSettingsResponse{
		CommissionRate:  setting.CommissionRate,
		MinimumWithdraw: setting.MinimumWithdraw,
	}, nil
}
