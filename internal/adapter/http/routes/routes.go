package routes

import (
	"log"
	"strconv"

	_ "solarvizyon/docs" // swag-generated API docs
	"solarvizyon/internal/adapter/http/handlers"
	repository2 "solarvizyon/internal/adapter/persistence/repository"
	"solarvizyon/internal/infrastructure/database"
	"solarvizyon/internal/infrastructure/irradiance"
	"solarvizyon/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	leadUseCase := usecase.NewLeadUseCase(leadRepo)

	pvgis := irradiance.NewPVGISClient()
	analysisUseCase, err := usecase.NewAnalysisUseCase(usecase.DefaultEngineConfig(), pvgis)
	if err != nil {
		log.Fatalf("Failed to build analysis engine: %v", err)
	}

	analysisHandler := handlers.NewAnalysisHandler(analysisUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	catalogHandler := handlers.NewCatalogHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSolarRoutes(v1, analysisHandler, leadHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
