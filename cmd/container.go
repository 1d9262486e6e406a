package cmd

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/relcheck/application"
	"github.com/rios0rios0/relcheck/config"
	"github.com/rios0rios0/relcheck/domain"
	providerPkg "github.com/rios0rios0/relcheck/infrastructure/provider"
	ghProv "github.com/rios0rios0/relcheck/infrastructure/provider/github"
)

// injectCheckService wires the service graph through a DIG container:
// config -> provider registry -> fetcher -> service.
func injectCheckService(cfg *config.Config) (*application.CheckService, error) {
	container := dig.New()

	constructors := []any{
		func() *config.Config { return cfg },
		buildProviderRegistry,
		newFetcher,
		application.NewCheckService,
	}
	for _, c := range constructors {
		if err := container.Provide(c); err != nil {
			return nil, err
		}
	}

	var svc *application.CheckService
	if err := container.Invoke(func(s *application.CheckService) {
		svc = s
	}); err != nil {
		return nil, err
	}

	return svc, nil
}

func buildProviderRegistry() *providerPkg.Registry {
	reg := providerPkg.NewRegistry()
	reg.Register("github", ghProv.New)
	return reg
}

func newFetcher(cfg *config.Config, reg *providerPkg.Registry) (domain.Fetcher, error) {
	return reg.Get("github", cfg.Timeout())
}
