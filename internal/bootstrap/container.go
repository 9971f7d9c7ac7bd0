package bootstrap

import (
	"log"

	"lucidgpt-be/internal/config"
	"lucidgpt-be/internal/controller"
	"lucidgpt-be/internal/pkg/auth"
	"lucidgpt-be/internal/pkg/logger"
	"lucidgpt-be/internal/pkg/serverutils"
	"lucidgpt-be/internal/repository/unitofwork"
	"lucidgpt-be/internal/service"
	"lucidgpt-be/pkg/assistcache"
	"lucidgpt-be/pkg/llm/factory"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	AssistController      controller.IAssistController
	CustomerController    controller.ICustomerController
	AppointmentController controller.IAppointmentController
	EmployeeController    controller.IEmployeeController
	UserController        controller.IUserController

	// Middleware guarding authenticated routes
	AuthRequired fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 2. Assistant Infrastructure
	answerCache := assistcache.New(cfg.Cache.TTL, assistcache.WithCapacity(cfg.Cache.Capacity))

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OpenAIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3. Services
	authService := service.NewAuthService(uowFactory, tokens, sysLogger)
	assistService := service.NewAssistService(answerCache, llmProvider, sysLogger)
	customerService := service.NewCustomerService(uowFactory)
	appointmentService := service.NewAppointmentService(uowFactory)
	employeeService := service.NewEmployeeService(uowFactory)

	authRequired := serverutils.NewBearerMiddleware(tokens, authService)

	// 4. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		AssistController:      controller.NewAssistController(assistService, sysLogger),
		CustomerController:    controller.NewCustomerController(customerService),
		AppointmentController: controller.NewAppointmentController(appointmentService),
		EmployeeController:    controller.NewEmployeeController(employeeService),
		UserController:        controller.NewUserController(),

		AuthRequired: authRequired,
		Logger:       sysLogger,
	}
}
