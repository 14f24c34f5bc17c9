package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pos-backend/internal/handler"
	"go-pos-backend/internal/middleware"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	db.AutoMigrate(
		&model.Employee{},
		&model.Customer{},
		&model.Item{},
		&model.Coupon{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.Rental{},
		&model.AuditLog{},
	)

	// 3. Seed default admin employee
	seedAdminEmployee(repository.NewEmployeeRepo(db))

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	itemRepo := repository.NewItemRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	couponRepo := repository.NewCouponRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	rentalRepo := repository.NewRentalRepo(db)
	auditRepo := repository.NewAuditLogRepo(db)

	engine := service.NewEngineService(db, itemRepo, customerRepo, couponRepo,
		employeeRepo, txRepo, rentalRepo, auditRepo, wsHub, taxRateFromEnv())
	invService := service.NewInventoryService(itemRepo, db, wsHub)
	txQueryService := service.NewTransactionQueryService(txRepo)
	rentalService := service.NewRentalService(rentalRepo, customerRepo)
	authService := service.NewAuthService(employeeRepo, auditRepo)
	employeeService := service.NewEmployeeService(employeeRepo, auditRepo)
	couponService := service.NewCouponService(couponRepo)
	dashService := service.NewDashboardService(txRepo)

	txHandler := handler.NewTransactionHandler(engine, txQueryService)
	invHandler := handler.NewInventoryHandler(invService)
	rentalHandler := handler.NewRentalHandler(rentalService)
	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	couponHandler := handler.NewCouponHandler(couponService)
	dashHandler := handler.NewDashboardHandler(dashService)
	auditHandler := handler.NewAuditLogHandler(auditRepo)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(employeeRepo))

	protected.Post("/auth/logout", authHandler.Logout)

	// Dashboard Routes
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/sales-movement", dashHandler.GetSalesMovement)

	// Item Routes
	protected.Get("/items", invHandler.GetItems)
	protected.Get("/items/:id", invHandler.GetItem)
	protected.Get("/items/:id/availability", invHandler.CheckAvailability)
	protected.Post("/items", middleware.RequireAdmin(), invHandler.CreateItem)
	protected.Put("/items/:id", middleware.RequireAdmin(), invHandler.UpdateItem)

	// Transaction Routes (the engine)
	protected.Get("/transactions", txHandler.GetTransactions)
	protected.Get("/transactions/outstanding-rentals", rentalHandler.GetOutstandingRentals)
	protected.Get("/transactions/:id", txHandler.GetTransaction)
	protected.Post("/transactions/sale", txHandler.CreateSale)
	protected.Post("/transactions/rental", txHandler.CreateRental)
	protected.Post("/transactions/return", txHandler.ProcessReturn)

	// Rental Routes
	protected.Get("/rentals", rentalHandler.GetCustomerRentals)
	protected.Get("/rentals/overdue", rentalHandler.GetOverdueRentals)

	// Coupon Routes (Admin only)
	protected.Get("/coupons", middleware.RequireAdmin(), couponHandler.GetCoupons)
	protected.Post("/coupons", middleware.RequireAdmin(), couponHandler.CreateCoupon)

	// Employee Management Routes (Admin only)
	protected.Get("/employees", middleware.RequireAdmin(), employeeHandler.GetEmployees)
	protected.Get("/employees/:id", middleware.RequireAdmin(), employeeHandler.GetEmployee)
	protected.Post("/employees", middleware.RequireAdmin(), employeeHandler.CreateEmployee)
	protected.Put("/employees/:id", middleware.RequireAdmin(), employeeHandler.UpdateEmployee)
	protected.Delete("/employees/:id", middleware.RequireAdmin(), employeeHandler.DeactivateEmployee)

	// Audit Log Routes (Admin only)
	protected.Get("/audit-logs", middleware.RequireAdmin(), auditHandler.GetAuditLogs)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// taxRateFromEnv reads TAX_RATE (e.g. "0.06"); the engine falls back to its
// default when unset.
func taxRateFromEnv() decimal.Decimal {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		return decimal.Zero
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() {
		log.Printf("Warning: invalid TAX_RATE %q, using default", raw)
		return decimal.Zero
	}
	return rate
}

// seedAdminEmployee creates the default admin account if it doesn't exist
func seedAdminEmployee(employeeRepo repository.EmployeeRepository) {
	if _, err := employeeRepo.FindByUsername("admin"); err == nil {
		return
	}

	admin := &model.Employee{
		Username:  "admin",
		FirstName: "Store",
		LastName:  "Administrator",
		Position:  model.PositionAdmin,
		IsActive:  true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := employeeRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin employee: %v", err)
	} else {
		log.Println("✅ Admin employee created: admin / admin123")
	}
}
