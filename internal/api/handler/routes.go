package handler

import (
	"net/http"

	"github.com/myprintpt/catalog-api/internal/api/handler/router"
	"github.com/myprintpt/catalog-api/internal/usecases/authenticating"
	"github.com/myprintpt/catalog-api/internal/usecases/catalog"
	"github.com/myprintpt/catalog-api/internal/usecases/pricing"
	"github.com/myprintpt/catalog-api/internal/usecases/product"
	"github.com/myprintpt/catalog-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/forgot-password",
			Method:  http.MethodPost,
			Handler: ForgotPassword(service),
		},
		{
			Path:        "/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Configuration expõe o registo único de configuração e as suas três
// coleções. As coleções seguem a forma da aplicação web: PUT com id no
// corpo e DELETE com id em query string.
func Configuration(service pricing.PricingService) []router.Route {
	return []router.Route{
		{
			Path:        "/configuracao",
			Method:      http.MethodGet,
			Handler:     GetConfiguracao(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/configuracao",
			Method:      http.MethodPut,
			Handler:     UpdateMargemPadrao(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/configuracao/margens",
			Method:      http.MethodGet,
			Handler:     ListMargens(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/configuracao/margens",
			Method:      http.MethodPost,
			Handler:     CreateMargem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/configuracao/margens",
			Method:      http.MethodPut,
			Handler:     UpdateMargem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/configuracao/margens",
			Method:      http.MethodDelete,
			Handler:     DeleteMargem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/configuracao/minimos",
			Method:      http.MethodGet,
			Handler:     ListMinimos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/configuracao/minimos",
			Method:      http.MethodPost,
			Handler:     CreateMinimo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/configuracao/minimos",
			Method:      http.MethodPut,
			Handler:     UpdateMinimo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/configuracao/minimos",
			Method:      http.MethodDelete,
			Handler:     DeleteMinimo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/configuracao/tempos",
			Method:      http.MethodGet,
			Handler:     ListTempos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/configuracao/tempos",
			Method:      http.MethodPost,
			Handler:     CreateTempo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/configuracao/tempos",
			Method:      http.MethodPut,
			Handler:     UpdateTempo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/configuracao/tempos",
			Method:      http.MethodDelete,
			Handler:     DeleteTempo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Units(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/unidades",
			Method:      http.MethodGet,
			Handler:     ListUnidades(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/unidades",
			Method:      http.MethodPost,
			Handler:     CreateUnidade(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/unidades",
			Method:      http.MethodPut,
			Handler:     UpdateUnidade(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/unidades",
			Method:      http.MethodDelete,
			Handler:     DeleteUnidade(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Categories(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/categorias",
			Method:      http.MethodGet,
			Handler:     ListCategorias(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/categorias",
			Method:      http.MethodPost,
			Handler:     CreateCategoria(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/categorias",
			Method:      http.MethodPut,
			Handler:     UpdateCategoria(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/categorias",
			Method:      http.MethodDelete,
			Handler:     DeleteCategoria(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Products(service product.ProductService) []router.Route {
	return []router.Route{
		{
			Path:        "/produtos",
			Method:      http.MethodGet,
			Handler:     ListProdutos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/produtos",
			Method:      http.MethodPost,
			Handler:     CreateProduto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/produtos/:id",
			Method:      http.MethodGet,
			Handler:     GetProduto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/produtos/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/produtos/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduto(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Extras(service product.ProductService) []router.Route {
	return []router.Route{
		{
			Path:        "/extras",
			Method:      http.MethodGet,
			Handler:     ListExtras(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/extras",
			Method:      http.MethodPost,
			Handler:     CreateExtra(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/extras/:id",
			Method:      http.MethodGet,
			Handler:     GetExtra(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/extras/:id",
			Method:      http.MethodPut,
			Handler:     UpdateExtra(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/extras/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteExtra(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
