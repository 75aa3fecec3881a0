package router

import (
	"github.com/logitrack-io/logitrack/internal/application"
	"github.com/logitrack-io/logitrack/internal/container"
	handlers "github.com/logitrack-io/logitrack/internal/interface/http"
	"github.com/logitrack-io/logitrack/internal/router/modules"
)

func buildAccountModule() *modules.AccountModule {
	svc := application.NewAccountService(
		container.GetUserRepo(),
		container.GetJWT(),
		container.GetRedis(),
		container.GetLogger(),
	)
	h := handlers.NewAccountHandler(
		svc,
		container.GetLogger(),
		container.GetConfig().CookieDomain,
		container.GetConfig().CookieSecure,
	)
	return modules.NewAccountModule(h, container.GetJWT())
}

func buildShipmentModule() *modules.ShipmentModule {
	svc := application.NewShipmentService(
		container.GetShipmentRepo(),
		container.GetLogger(),
		container.GetES(),
		container.GetConfig().ESShipmentsIndex,
	)
	h := handlers.NewShipmentHandler(svc, container.GetLogger())
	return modules.NewShipmentModule(h, container.GetJWT())
}

// InitModules wires all feature modules into the registry. Called once
// during startup after the container singletons are set.
func InitModules(r *Registry) {
	r.Add(buildAccountModule())
	r.Add(buildShipmentModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
