package wire

import (
	"RomXD/internal/api"
	"RomXD/internal/api/config"
	"RomXD/internal/api/handler"
	"RomXD/internal/job"
	"RomXD/internal/pkg/archive"
	"RomXD/internal/pkg/cron"
	"RomXD/internal/pkg/es"
	"RomXD/internal/pkg/igdb"
	"RomXD/internal/pkg/kafka"
	"RomXD/internal/pkg/live"
	"RomXD/internal/repository"
	"RomXD/internal/service"

	"github.com/gin-gonic/gin"
	driver "go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	KafkaManager *kafka.ConsumerManager
	Producer     *kafka.Producer
	CronMgr      *cron.Manager
	LiveRegistry *live.Registry
}

func BuildApplication(db *driver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	gameRepo := repository.NewGameRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)
	metricRepo := repository.NewMetricRepo(db)

	gameESRepo := es.NewGameRepo(es.Client)
	archiveClient := archive.NewClient()
	igdbClient := igdb.NewClient()

	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}

	gameService := service.NewGameService(gameRepo, gameESRepo, producer)
	commentService := service.NewCommentService(commentRepo, gameRepo, producer)
	archiveService := service.NewArchiveService(archiveClient, settingsRepo)
	igdbService := service.NewIGDBService(igdbClient)
	authService := service.NewAuthService()
	settingsService := service.NewSettingsService(settingsRepo)
	sitemapService := service.NewSitemapService(gameRepo, settingsRepo)
	metricService := service.NewMetricService(metricRepo)

	liveRegistry := live.NewRegistry(gameRepo, commentRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:     handler.NewAuthHandler(authService),
		GameHandler:     handler.NewGameHandler(gameService),
		CommentHandler:  handler.NewCommentHandler(commentService),
		ArchiveHandler:  handler.NewArchiveHandler(archiveService),
		IGDBHandler:     handler.NewIGDBHandler(igdbService),
		SettingsHandler: handler.NewSettingsHandler(settingsService),
		DownloadHandler: handler.NewDownloadHandler(),
		SeoHandler:      handler.NewSeoHandler(sitemapService),
		MetricHandler:   handler.NewMetricHandler(metricService),
		LiveHandler:     handler.NewLiveHandler(liveRegistry, gameService, commentService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, metricRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(job.NewSitemapJob(sitemapService))

	return &ApplicationContainer{
		Router:       router,
		KafkaManager: kafkaMgr,
		Producer:     producer,
		CronMgr:      cronMgr,
		LiveRegistry: liveRegistry,
	}, nil
}
