package main

import (
  "context"
  "fmt"
  "os"
  "time"

  "github.com/NovusX-Dev/RepairBeam/internal/clients/redis"
  "github.com/NovusX-Dev/RepairBeam/internal/db"
  "github.com/NovusX-Dev/RepairBeam/internal/handlers"
  "github.com/NovusX-Dev/RepairBeam/internal/logger"
  "github.com/NovusX-Dev/RepairBeam/internal/middleware"
  "github.com/NovusX-Dev/RepairBeam/internal/repos"
  "github.com/NovusX-Dev/RepairBeam/internal/server"
  "github.com/NovusX-Dev/RepairBeam/internal/services"
  "github.com/NovusX-Dev/RepairBeam/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
  port := utils.GetEnv("PORT", "8080", log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  clientRepo := repos.NewClientRepo(thePG, log)
  ticketRepo := repos.NewRepairTicketRepo(thePG, log)
  inventoryRepo := repos.NewInventoryItemRepo(thePG, log)
  listRepo := repos.NewAutoGeneratedListRepo(thePG, log)
  aiCallLogRepo := repos.NewAICallLogRepo(thePG, log)

  // Clients
  log.Info("Setting up external clients from main...")
  openaiClient, err := services.NewOpenAIClient(log)
  if err != nil {
    log.Error("Could not init OpenAIClient", "error", err)
    os.Exit(1)
  }
  progressBus, err := redis.NewProgressBus(log)
  if err != nil {
    log.Warn("Could not init ProgressBus, list generation progress events disabled", "error", err)
    progressBus = nil
  }

  // Services
  log.Info("Setting up Services from main...")
  authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
  userService := services.NewUserService(thePG, log, userRepo)
  clientService := services.NewClientService(thePG, log, clientRepo)
  ticketService := services.NewTicketService(thePG, log, ticketRepo, clientRepo)
  inventoryService := services.NewInventoryService(thePG, log, inventoryRepo)
  listgenService := services.NewListGenerationService(thePG, log, listRepo, aiCallLogRepo, openaiClient, progressBus)

  // Background refresh sweep (off unless LIST_REFRESH_ENABLED is set)
  scheduler := services.NewListRefreshScheduler(log, listgenService)
  scheduler.Start(context.Background())

  // Handlers
  log.Info("Setting up Handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(userService)
  clientHandler := handlers.NewClientHandler(clientService)
  ticketHandler := handlers.NewTicketHandler(ticketService)
  inventoryHandler := handlers.NewInventoryHandler(inventoryService)
  listsHandler := handlers.NewListsHandler(listgenService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:      authHandler,
    AuthMiddleware:   authMiddleware,
    UserHandler:      userHandler,
    ClientHandler:    clientHandler,
    TicketHandler:    ticketHandler,
    InventoryHandler: inventoryHandler,
    ListsHandler:     listsHandler,
  })

  log.Info("Starting server", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server exited", "error", err)
    os.Exit(1)
  }
}
