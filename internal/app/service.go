package app

import (
	"tabnav/internal/adapters"
	"tabnav/internal/ports"
)

type Service struct {
	Configs ports.RouteConfigLoader
	States  ports.StateStore
}

func NewService() Service {
	return Service{
		Configs: adapters.NewRouteConfigFileAdapter(),
		States:  adapters.NewStateFileAdapter(),
	}
}
