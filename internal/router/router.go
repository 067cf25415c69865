package router

import (
	"time"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/config"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/handler"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Admin         *handler.AdminHandler
	Asistencias   *handler.AsistenciasHandler
	Employees     *handler.EmployeesHandler
	Liquidaciones *handler.LiquidacionesHandler
	Flota         *handler.FlotaHandler
	KilosLitros   *handler.KilosLitrosHandler
	Compras       *handler.ComprasHandler
	Contactos     *handler.ContactosHandler
	Reparto       *handler.RepartoHandler
}

// Setup wires the middleware chain and the full route table.
func Setup(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.RateLimiter(300, time.Minute))

	r.GET("/", h.Health.Home)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.Health)
		api.POST("/register", h.Auth.Register)
		api.POST("/login", middleware.LoginRateLimiter(), h.Auth.Login)

		auth := api.Group("")
		auth.Use(middleware.JWTAuth(cfg.JWTSecret))
		{
			auth.GET("/me", h.Auth.Me)

			admin := auth.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.POST("/seed", h.Admin.Seed)
			}

			hubs := auth.Group("/hubs/:hub")
			{
				hubs.GET("/asistencias", h.Asistencias.Month)
				hubs.PUT("/asistencias/comments", h.Asistencias.SaveComments)
				hubs.PUT("/asistencias/:employee_id/day", h.Asistencias.SetDay)
				hubs.PUT("/asistencias/:employee_id/extra-hours", h.Asistencias.SetExtraHours)

				hubs.POST("/employees", h.Employees.Create)
				hubs.DELETE("/employees/:employee_id", h.Employees.Delete)

				hubs.GET("/liquidaciones/routes", h.Liquidaciones.Routes)
				hubs.POST("/liquidaciones/routes", h.Liquidaciones.CreateRoute)
				hubs.GET("/liquidaciones", h.Liquidaciones.Month)
				hubs.PUT("/liquidaciones", h.Liquidaciones.SaveMonth)
				hubs.PUT("/liquidaciones/comment", h.Liquidaciones.SetComment)

				hubs.GET("/flota", h.Flota.List)
				hubs.POST("/flota", h.Flota.Add)
				hubs.DELETE("/flota/:vehiculo_id", h.Flota.Delete)
				hubs.GET("/flota/:vehiculo_id/incidencias", h.Flota.ListIncidencias)
				hubs.POST("/flota/:vehiculo_id/incidencias", h.Flota.AddIncidencia)
				hubs.PUT("/flota/:vehiculo_id/incidencias/:inc_id", h.Flota.UpdateIncidencia)
				hubs.DELETE("/flota/:vehiculo_id/incidencias/:inc_id", h.Flota.DeleteIncidencia)

				hubs.GET("/kiloslitros", h.KilosLitros.List)
				hubs.POST("/kiloslitros", h.KilosLitros.Add)
				hubs.PUT("/kiloslitros/:item_id", h.KilosLitros.Update)
				hubs.DELETE("/kiloslitros/:item_id", h.KilosLitros.Delete)

				hubs.GET("/compras", h.Compras.List)
				hubs.POST("/compras", h.Compras.Add)
				hubs.PUT("/compras/:item_id", h.Compras.Update)
				hubs.DELETE("/compras/:item_id", h.Compras.Delete)

				hubs.GET("/contactos", h.Contactos.List)
				hubs.POST("/contactos", h.Contactos.Add)
				hubs.PUT("/contactos/:contacto_id", h.Contactos.Update)
				hubs.DELETE("/contactos/:contacto_id", h.Contactos.Delete)

				hubs.GET("/reparto/clientes", h.Reparto.ListClientes)
				hubs.POST("/reparto/clientes", h.Reparto.AddCliente)
				hubs.PUT("/reparto/clientes/:cliente_id", h.Reparto.UpdateCliente)
				hubs.DELETE("/reparto/clientes/:cliente_id", h.Reparto.DeleteCliente)
				hubs.GET("/reparto/motos", h.Reparto.ListMotos)
			}
		}
	}

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
