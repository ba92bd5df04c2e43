//go:build wireinject
// +build wireinject

package di

import (
	"io"

	"figures/infrastructure/config"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideCollector,
	ProvideFigureService,
	ProvideRunner,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config, out io.Writer) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
