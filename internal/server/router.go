// Package server wires services, handlers and middleware into the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"farmledger/internal/handlers"
	"farmledger/internal/metrics"
	"farmledger/internal/middleware"
	"farmledger/internal/services"

	_ "farmledger/internal/docs" // Import swagger docs
)

// Options toggles the optional surfaces of the router.
type Options struct {
	Metrics bool
	Swagger bool
	Logging bool
}

// Services is the service graph behind the API. Build it once with
// NewServices and share it with background jobs.
type Services struct {
	Rooms           services.RoomServicer
	BreedingMethods services.BreedingMethodServicer
	BreedingStock   services.BreedingStockServicer
	Offspring       services.OffspringServicer
	AnimalStatus    services.AnimalStatusServicer
	Sales           services.SaleServicer
	FeedStocks      services.FeedStockServicer
	Feeding         services.FeedingServicer
	Health          services.HealthServicer
	Vaccines        services.VaccineServicer
	Vaccinations    services.VaccinationServicer
	Weights         services.WeightServicer
	BreedingRecords services.BreedingRecordServicer
	Ledger          services.LedgerServicer
	Reports         services.ReportServicer
	Audit           services.AuditServicer
}

// NewServices builds every service on db.
func NewServices(db *gorm.DB) *Services {
	aggregates := services.NewAggregateRecalculator()
	costs := services.NewCostCalculator()
	feedStocks := services.NewFeedStockService(db)

	return &Services{
		Rooms:           services.NewRoomService(db),
		BreedingMethods: services.NewBreedingMethodService(db),
		BreedingStock:   services.NewBreedingStockService(db, aggregates, costs),
		Offspring:       services.NewOffspringService(db, aggregates, costs),
		AnimalStatus:    services.NewAnimalStatusService(db),
		Sales:           services.NewSaleService(db, costs),
		FeedStocks:      feedStocks,
		Feeding:         services.NewFeedingService(db, feedStocks),
		Health:          services.NewHealthService(db),
		Vaccines:        services.NewVaccineService(db),
		Vaccinations:    services.NewVaccinationService(db),
		Weights:         services.NewWeightService(db),
		BreedingRecords: services.NewBreedingRecordService(db),
		Ledger:          services.NewLedgerService(db),
		Reports:         services.NewReportService(db, feedStocks),
		Audit:           services.NewAuditService(db),
	}
}

// NewRouter builds the gin engine serving the API under /api/v1.
func NewRouter(svc *Services, opts Options) *gin.Engine {
	audit := svc.Audit

	roomHandler := handlers.NewRoomHandler(svc.Rooms, audit)
	methodHandler := handlers.NewBreedingMethodHandler(svc.BreedingMethods, audit)
	stockHandler := handlers.NewBreedingStockHandler(svc.BreedingStock, audit)
	offspringHandler := handlers.NewOffspringHandler(svc.Offspring, audit)
	statusHandler := handlers.NewAnimalStatusHandler(svc.AnimalStatus, audit)
	saleHandler := handlers.NewSaleHandler(svc.Sales, audit)
	feedStockHandler := handlers.NewFeedStockHandler(svc.FeedStocks, audit)
	feedingHandler := handlers.NewFeedingHandler(svc.Feeding, audit)
	healthHandler := handlers.NewHealthHandler(svc.Health, audit)
	vaccineHandler := handlers.NewVaccineHandler(svc.Vaccines, audit)
	vaccinationHandler := handlers.NewVaccinationHandler(svc.Vaccinations, audit)
	weightHandler := handlers.NewWeightHandler(svc.Weights, audit)
	breedingRecordHandler := handlers.NewBreedingRecordHandler(svc.BreedingRecords, audit)
	ledgerHandler := handlers.NewLedgerHandler(svc.Ledger, audit)
	reportHandler := handlers.NewReportHandler(svc.Reports)

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.Logging {
		router.Use(middleware.RequestLogging())
	}
	if opts.Metrics {
		router.Use(middleware.Metrics())
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	rooms := v1.Group("/rooms")
	rooms.POST("", roomHandler.CreateRoom)
	rooms.GET("", roomHandler.GetRooms)
	rooms.GET("/:id", roomHandler.GetRoomByID)
	rooms.PUT("/:id", roomHandler.UpdateRoom)
	rooms.DELETE("/:id", roomHandler.DeleteRoom)

	methods := v1.Group("/breeding-methods")
	methods.POST("", methodHandler.CreateBreedingMethod)
	methods.GET("", methodHandler.GetBreedingMethods)
	methods.GET("/:id", methodHandler.GetBreedingMethodByID)
	methods.PUT("/:id", methodHandler.UpdateBreedingMethod)
	methods.DELETE("/:id", methodHandler.DeleteBreedingMethod)

	stock := v1.Group("/breeding-stock")
	stock.POST("", stockHandler.CreateBreedingStock)
	stock.GET("", stockHandler.GetBreedingStock)
	stock.GET("/:id", stockHandler.GetBreedingStockByID)
	stock.PUT("/:id", stockHandler.UpdateBreedingStock)
	stock.DELETE("/:id", stockHandler.DeleteBreedingStock)

	offspring := v1.Group("/offspring")
	offspring.POST("", offspringHandler.CreateOffspring)
	offspring.GET("", offspringHandler.GetOffspring)
	offspring.GET("/:id", offspringHandler.GetOffspringByID)
	offspring.PUT("/:id", offspringHandler.UpdateOffspring)
	offspring.DELETE("/:id", offspringHandler.DeleteOffspring)
	offspring.POST("/:id/promote", stockHandler.PromoteOffspring)

	animals := v1.Group("/animals/:kind/:id")
	animals.POST("/inactive", statusHandler.MarkInactive)
	animals.POST("/reactivate", statusHandler.Reactivate)
	v1.GET("/inactive-animals", statusHandler.GetInactiveAnimals)

	sales := v1.Group("/sales")
	sales.POST("", saleHandler.SellAnimal)
	sales.GET("", saleHandler.GetSales)
	sales.GET("/:id", saleHandler.GetSaleByID)

	feeds := v1.Group("/feed-stocks")
	feeds.POST("", feedStockHandler.CreateFeedStock)
	feeds.GET("", feedStockHandler.GetFeedStocks)
	feeds.GET("/low", feedStockHandler.GetLowStock)
	feeds.GET("/:id", feedStockHandler.GetFeedStockByID)
	feeds.PUT("/:id", feedStockHandler.UpdateFeedStock)
	feeds.POST("/:id/restock", feedStockHandler.Restock)
	feeds.DELETE("/:id", feedStockHandler.DeleteFeedStock)

	feeding := v1.Group("/feeding-records")
	feeding.POST("", feedingHandler.CreateFeedingRecord)
	feeding.GET("", feedingHandler.GetFeedingRecords)
	feeding.GET("/:id", feedingHandler.GetFeedingRecordByID)
	feeding.DELETE("/:id", feedingHandler.DeleteFeedingRecord)

	health := v1.Group("/health-records")
	health.POST("", healthHandler.CreateHealthRecord)
	health.GET("", healthHandler.GetHealthRecords)
	health.GET("/:id", healthHandler.GetHealthRecordByID)
	health.PUT("/:id", healthHandler.UpdateHealthRecord)
	health.DELETE("/:id", healthHandler.DeleteHealthRecord)

	vaccines := v1.Group("/vaccines")
	vaccines.POST("", vaccineHandler.CreateVaccine)
	vaccines.GET("", vaccineHandler.GetVaccines)
	vaccines.GET("/:id", vaccineHandler.GetVaccineByID)
	vaccines.PUT("/:id", vaccineHandler.UpdateVaccine)
	vaccines.DELETE("/:id", vaccineHandler.DeleteVaccine)

	vaccinations := v1.Group("/vaccinations")
	vaccinations.POST("", vaccinationHandler.AssignVaccination)
	vaccinations.GET("", vaccinationHandler.GetVaccinations)
	vaccinations.POST("/mark-overdue", vaccinationHandler.MarkOverdue)
	vaccinations.GET("/:id", vaccinationHandler.GetVaccinationByID)
	vaccinations.PUT("/:id", vaccinationHandler.UpdateVaccination)
	vaccinations.DELETE("/:id", vaccinationHandler.DeleteVaccination)

	weights := v1.Group("/weight-records")
	weights.POST("", weightHandler.CreateWeightRecord)
	weights.GET("", weightHandler.GetWeightRecords)
	weights.GET("/:id", weightHandler.GetWeightRecordByID)
	weights.PUT("/:id", weightHandler.UpdateWeightRecord)
	weights.DELETE("/:id", weightHandler.DeleteWeightRecord)

	breeding := v1.Group("/breeding-records")
	breeding.POST("", breedingRecordHandler.CreateBreedingRecord)
	breeding.GET("", breedingRecordHandler.GetBreedingRecords)
	breeding.GET("/:id", breedingRecordHandler.GetBreedingRecordByID)
	breeding.PUT("/:id", breedingRecordHandler.UpdateBreedingRecord)
	breeding.DELETE("/:id", breedingRecordHandler.DeleteBreedingRecord)

	incomes := v1.Group("/incomes")
	incomes.POST("", ledgerHandler.CreateIncome)
	incomes.GET("", ledgerHandler.GetIncomes)
	incomes.GET("/:id", ledgerHandler.GetIncomeByID)
	incomes.PUT("/:id", ledgerHandler.UpdateIncome)
	incomes.DELETE("/:id", ledgerHandler.DeleteIncome)

	expenses := v1.Group("/expenses")
	expenses.POST("", ledgerHandler.CreateExpense)
	expenses.GET("", ledgerHandler.GetExpenses)
	expenses.GET("/:id", ledgerHandler.GetExpenseByID)
	expenses.PUT("/:id", ledgerHandler.UpdateExpense)
	expenses.DELETE("/:id", ledgerHandler.DeleteExpense)

	reports := v1.Group("/reports")
	reports.GET("/dashboard", reportHandler.GetDashboard)
	reports.GET("/finance", reportHandler.GetFinanceReport)
	reports.GET("/feeding-costs", reportHandler.GetFeedingCostReport)
	reports.GET("/births", reportHandler.GetBirthsReport)

	return router
}
