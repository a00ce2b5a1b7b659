package routes

import (
	"log"
	"os"
	"strconv"

	_ "invoicer/docs" // This will be auto-generated
	"invoicer/internal/adapter/http/handlers"
	"invoicer/internal/adapter/persistence/repository"
	"invoicer/internal/infrastructure/database"
	"invoicer/internal/infrastructure/notifications"
	"invoicer/internal/infrastructure/payments"
	"invoicer/internal/infrastructure/scheduling"
	"invoicer/internal/usecase"
	"invoicer/internal/usecase/interfaces"

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

	ledger := repository.NewReminderDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	policyStore := repository.NewPolicyDynamoRepository(ddb)

	channel, err := notifications.NewEmailChannel()
	if err != nil {
		log.Fatalf("Email channel not configured: %v", err)
	}

	var verifier interfaces.IPaymentVerifier
	mpVerifier, err := payments.NewMercadoPagoVerifier(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago verifier not configured: %v", err)
	} else {
		verifier = mpVerifier
	}

	schedulerUseCase := usecase.NewReminderSchedulerUseCase(ledger, invoiceRepo, policyStore, channel)
	policyUseCase := usecase.NewPolicyUseCase(policyStore)
	orchestratorUseCase := usecase.NewOrchestratorUseCase(schedulerUseCase, invoiceRepo, verifier)

	reminderHandler := handlers.NewReminderHandler(schedulerUseCase)
	policyHandler := handlers.NewPolicyHandler(policyUseCase)
	eventHandler := handlers.NewEventHandler(orchestratorUseCase)

	cronRunner := scheduling.NewCronRunner(schedulerUseCase)
	if err := cronRunner.Start(); err != nil {
		log.Fatalf("Failed to start cron runner: %v", err)
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReminderRoutes(v1, reminderHandler, policyHandler, eventHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
