package bootstrap

import (
	"context"
	"log"

	"legal-research-be/internal/config"
	"legal-research-be/internal/controller"
	"legal-research-be/internal/pkg/logger"
	"legal-research-be/internal/repository/contract"
	"legal-research-be/internal/repository/implementation"
	"legal-research-be/internal/repository/memory"
	"legal-research-be/internal/repository/redisstore"
	"legal-research-be/internal/repository/unitofwork"
	"legal-research-be/internal/service"
	"legal-research-be/pkg/events"
	pkgNats "legal-research-be/pkg/nats"
	"legal-research-be/pkg/research/pipeline"
	"legal-research-be/pkg/research/search"
	"legal-research-be/pkg/research/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController
	CaseController controller.ICaseController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, uowFactory)

	// NATS is optional; when unreachable the in-process bus still carries
	// the audit trail.
	var eventPublisher events.Publisher = publisherService
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = events.NewMultiPublisher(publisherService, natsPub)
	}

	// 3. Pending-choice session storage
	var sessionRepo contract.SessionRepository
	if cfg.Research.SessionStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisstore.NewSessionRepository(rdb, cfg.Research.PendingTTL, sysLogger)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepositoryWithTTL(cfg.Research.PendingTTL)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// 4. Disambiguation domain components
	sessionManager := session.NewManager(sessionRepo, sysLogger, eventPublisher).
		WithMaxAttempts(cfg.Research.MaxFollowupAttempts)
	searcher := search.NewLexicalSearcher(sysLogger, implementation.NewCaseRepository(db))
	turnPipeline := pipeline.NewPipeline(sysLogger, sessionManager, searcher, pipeline.StaticComposer{})

	// 5. Services
	chatService := service.NewChatService(uowFactory, turnPipeline, sessionManager, sysLogger)
	caseService := service.NewCaseService(uowFactory)

	// 6. Controllers
	return &Container{
		ChatController: controller.NewChatController(chatService),
		CaseController: controller.NewCaseController(caseService),

		ConsumerService: consumerService,
	}
}
