package routes

import (
	"log/slog"
	"net/http"

	"pos-backend/configs"
	"pos-backend/controllers"
	"pos-backend/middlewares"
	"pos-backend/repository"
	"pos-backend/services"
	"pos-backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers and mounts every
// endpoint under cfg.APIPrefix. hub receives order events and serves the feed.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub, log *slog.Logger) error {
	// money goes out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	r.Use(middlewares.RequestLogger(log.With("component", "http")))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.Identify(cfg.JWTSecret))

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	// Services
	verifier, err := services.NewFixedAccountVerifier(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return err
	}
	authSvc := services.NewAuthService(verifier, cfg.JWTSecret, cfg.JWTTTL, log)
	var events services.OrderEvents
	if hub != nil {
		events = hub
	}
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, events, cfg.TaxRatePercent, log)
	salesSvc := services.NewSalesService(orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, salesSvc)
	menuCtrl := controllers.NewMenuController(services.NewMenuService(menuRepo, log))
	employeeCtrl := controllers.NewEmployeeController(services.NewEmployeeService(employeeRepo, log))
	inventoryCtrl := controllers.NewInventoryController(services.NewInventoryService(inventoryRepo, log))

	api := r.Group(cfg.APIPrefix)

	api.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			dbStatus = "unreachable"
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "status": "OK", "database": dbStatus})
	})

	a := api.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/check", authCtrl.Check)
		a.POST("/logout", authCtrl.Logout)
	}

	// static segments before /:id
	o := api.Group("/orders")
	{
		o.POST("", orderCtrl.Create)
		o.GET("", orderCtrl.List)
		o.GET("/stats", orderCtrl.Stats)
		o.GET("/export", orderCtrl.Export)
		if hub != nil {
			o.GET("/ws", hub.HandleWebSocket)
		}
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id/status", orderCtrl.UpdateStatus)
	}

	m := api.Group("/menu")
	{
		m.GET("", menuCtrl.List)
		m.POST("", menuCtrl.Create)
		m.POST("/import", menuCtrl.Import)
		m.GET("/:id", menuCtrl.Get)
		m.PUT("/:id", menuCtrl.Update)
		m.DELETE("/:id", menuCtrl.Delete)
	}

	e := api.Group("/employees")
	{
		e.GET("", employeeCtrl.List)
		e.POST("", employeeCtrl.Create)
		e.GET("/:id", employeeCtrl.Get)
		e.PUT("/:id", employeeCtrl.Update)
		e.DELETE("/:id", employeeCtrl.Delete)
	}

	inv := api.Group("/inventory")
	{
		inv.GET("", inventoryCtrl.List)
		inv.POST("", inventoryCtrl.Create)
		inv.GET("/expired", inventoryCtrl.Expired)
		inv.GET("/:id", inventoryCtrl.Get)
		inv.PUT("/:id", inventoryCtrl.Update)
		inv.DELETE("/:id", inventoryCtrl.Delete)
	}

	return nil
}
