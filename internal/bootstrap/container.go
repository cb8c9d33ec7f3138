package bootstrap

import (
	"ai-health-be/internal/config"
	"ai-health-be/internal/controller"
	"ai-health-be/internal/pkg/logger"
	"ai-health-be/internal/repository/unitofwork"
	"ai-health-be/internal/service"
	"ai-health-be/pkg/diagnosis"
	"ai-health-be/pkg/gemini"
	"ai-health-be/pkg/mlmodel"
	"ai-health-be/pkg/symptoms"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	DiagnosisController controller.IDiagnosisController
	DoctorController    controller.IDoctorController
	SymptomController   controller.ISymptomController
	ChatController      controller.IChatController
	HistoryController   controller.IHistoryController
	AuthController      controller.IAuthController
	UserController      controller.IUserController

	// Background services, run by main.
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus for best-effort history persistence.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(cfg.Keys.HistoryTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.HistoryTopic, uowFactory, sysLogger)

	// Inference stack.
	geminiClient := gemini.NewClient(cfg.Keys.Gemini, cfg.Ai.Model, sysLogger)
	mlRunner := mlmodel.NewRunner(cfg.Ai.PythonBinary, cfg.Ai.MLScriptPath, sysLogger)

	mappingCatalog := service.NewMappingCatalog(uowFactory, sysLogger)
	languageResolver := service.NewLanguageResolver(uowFactory, sysLogger)
	extractor := symptoms.NewExtractor(geminiClient, mappingCatalog, sysLogger)
	predictor := diagnosis.NewPredictor(geminiClient, mappingCatalog, sysLogger)

	// Services.
	doctorService := service.NewDoctorService(uowFactory, geminiClient, sysLogger)
	diagnosisService := service.NewDiagnosisService(
		extractor,
		predictor,
		mlRunner,
		geminiClient,
		doctorService,
		publisherService,
		languageResolver,
		sysLogger,
	)
	symptomService := service.NewSymptomService(extractor, geminiClient, geminiClient, publisherService, languageResolver, sysLogger)
	chatService := service.NewChatService(uowFactory, geminiClient, publisherService, languageResolver, sysLogger)
	historyService := service.NewHistoryService(uowFactory)
	authService := service.NewAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)

	return &Container{
		DiagnosisController: controller.NewDiagnosisController(diagnosisService),
		DoctorController:    controller.NewDoctorController(doctorService),
		SymptomController:   controller.NewSymptomController(symptomService),
		ChatController:      controller.NewChatController(chatService),
		HistoryController:   controller.NewHistoryController(historyService),
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
