//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"fforecasting/server/internal/conf"
	"fforecasting/server/internal/data"
	"fforecasting/server/internal/server"
	"fforecasting/server/internal/service"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
)

// wireApp init kratos application.
func wireApp(*conf.Server, *conf.Data, log.Logger, *tracesdk.TracerProvider) (*kratos.App, func(), error) {
	panic(wire.Build(
		data.ProviderSet,
		service.NewAuthService,
		service.NewInviteService,
		service.NewRegistrationService,
		service.NewRPCService,
		server.NewHTTPServer,
		newApp,
	))
}
