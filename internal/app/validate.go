package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	router, err := s.loadAndBuild(ctx, req.ConfigPath)
	if err != nil {
		return ValidateResult{}, err
	}
	settings := router.Settings()
	log.Ctx(ctx).Debug().Str("config", req.ConfigPath).Msg("route config validated")
	return ValidateResult{
		Tabs:         len(settings.Order),
		InitialRoute: settings.Order[settings.InitialRouteIndex],
	}, nil
}
