package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/NovusX-Dev/RepairBeam/internal/handlers"
  "github.com/NovusX-Dev/RepairBeam/internal/middleware"
)

type RouterConfig struct {
  AuthHandler      *handlers.AuthHandler
  AuthMiddleware   *middleware.AuthMiddleware
  UserHandler      *handlers.UserHandler
  ClientHandler    *handlers.ClientHandler
  TicketHandler    *handlers.TicketHandler
  InventoryHandler *handlers.InventoryHandler
  ListsHandler     *handlers.ListsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  // ===============
  // || Public    ||
  // ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/register", cfg.AuthHandler.Register)
  router.POST("/login", cfg.AuthHandler.Login)

  api := router.Group("/api")
  {
    // Brand/model catalogs are readable without a session so device pickers
    // work on intake forms.
    api.GET("/lists/:category", cfg.ListsHandler.GetBrandList)
    api.GET("/lists/:category/models/:brand", cfg.ListsHandler.GetModelList)
    api.POST("/lists/:category/validate-brand", cfg.ListsHandler.ValidateBrand)
  }

  // ===============
  // || Protected ||
  // ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/logout", cfg.AuthHandler.Logout)
  // User
  protected.GET("/user", cfg.UserHandler.GetMe)
  protected.PATCH("/user/shop-name", cfg.UserHandler.UpdateShopName)
  // Lists (mutating endpoints trigger provider spend)
  protected.POST("/api/lists/initialize", cfg.ListsHandler.Initialize)
  protected.POST("/api/lists/:category/update", cfg.ListsHandler.UpdateBrandList)
  protected.POST("/api/lists/:category/generate-models", cfg.ListsHandler.GenerateModels)
  // Clients
  protected.POST("/api/clients", cfg.ClientHandler.Create)
  protected.GET("/api/clients", cfg.ClientHandler.List)
  protected.GET("/api/clients/:id", cfg.ClientHandler.Get)
  protected.PATCH("/api/clients/:id", cfg.ClientHandler.Update)
  protected.DELETE("/api/clients/:id", cfg.ClientHandler.Delete)
  // Tickets
  protected.POST("/api/tickets", cfg.TicketHandler.Create)
  protected.GET("/api/tickets", cfg.TicketHandler.List)
  protected.GET("/api/tickets/:id", cfg.TicketHandler.Get)
  protected.PATCH("/api/tickets/:id", cfg.TicketHandler.Update)
  protected.POST("/api/tickets/:id/move", cfg.TicketHandler.Move)
  protected.DELETE("/api/tickets/:id", cfg.TicketHandler.Delete)
  // Inventory
  protected.POST("/api/inventory", cfg.InventoryHandler.Create)
  protected.GET("/api/inventory", cfg.InventoryHandler.List)
  protected.GET("/api/inventory/:id", cfg.InventoryHandler.Get)
  protected.PATCH("/api/inventory/:id", cfg.InventoryHandler.Update)
  protected.POST("/api/inventory/:id/adjust", cfg.InventoryHandler.AdjustQuantity)
  protected.DELETE("/api/inventory/:id", cfg.InventoryHandler.Delete)

  return router
}
