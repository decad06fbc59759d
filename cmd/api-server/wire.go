//go:build wireinject
// +build wireinject

package main

import (
	"NatureNet/config"
	"NatureNet/dao"
	"NatureNet/handler"
	"NatureNet/pkg/database"
	"NatureNet/pkg/server"
	"NatureNet/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		config.ProvideUploadConfig,
		server.NewGinEngine,

		wire.Struct(new(handler.Account), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Media), "*"),
		wire.Struct(new(handler.Context), "*"),
		wire.Struct(new(handler.Feedback), "*"),
		wire.Struct(new(handler.Site), "*"),
		wire.Struct(new(handler.Upload), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil
}
