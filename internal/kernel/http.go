package kernel

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/controllers"
	"github.com/shashiranjanraj/storefront/app/routes"
	"github.com/shashiranjanraj/storefront/pkg/graphql"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/reqid"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// Router mounts the middleware stack, /metrics, /graphql and the /api routes.
func (k *Kernel) Router() (*router.Router, error) {
	r := router.New()

	// outermost first: metrics, recovery, request id, logger, CORS
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORSFromConfig())

	r.Get("/metrics", "metrics", metrics.Handler())

	schema, err := graphql.NewSchema(k.Catalog, k.Orders)
	if err != nil {
		return nil, err
	}
	r.Post("/graphql", "graphql", graphql.Handler(schema))

	routes.RegisterAPI(r, routes.Controllers{
		Catalog: controllers.NewCatalogController(k.Catalog),
		Auth:    controllers.NewAuthController(k.Auth),
		Cart:    controllers.NewCartController(k.Cart, k.Catalog),
		Orders:  controllers.NewOrderController(k.Orders, k.Auth),
	}, k.Auth)

	return r, nil
}

// HTTPHandler returns the full API handler.
func (k *Kernel) HTTPHandler() (http.Handler, error) {
	r, err := k.Router()
	if err != nil {
		return nil, err
	}
	return r.Handler(), nil
}
