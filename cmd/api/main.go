package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/openai"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square/squareclient"
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository"
	"github.com/vfg2006/ai-marketer-api/internal/api"
	"github.com/vfg2006/ai-marketer-api/internal/config"
	"github.com/vfg2006/ai-marketer-api/internal/scheduler"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/account"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/analyzing"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/authenticating"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/ingesting"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/posting"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/suggesting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	businessRepo := repository.NewBusinessRepository(pgConn)
	salesRepo := repository.NewSalesRecordRepository(pgConn)
	batchRepo := repository.NewUploadBatchRepository(pgConn)
	suggestionRepo := repository.NewSuggestionRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	promotionRepo := repository.NewPromotionRepository(pgConn)
	postRepo := repository.NewPostRepository(pgConn)
	socialRepo := repository.NewSocialAccountRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, businessRepo, cfg)

	squareClient := squareclient.NewClient(cfg)
	squareIntegrator := square.New(cfg, squareClient)

	openaiClient := openaiclient.NewClient(cfg)
	openaiIntegrator := openai.New(cfg, openaiClient)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	ingestor := ingesting.NewService(businessRepo, salesRepo, batchRepo, squareIntegrator, cfg)
	analyzer := analyzing.NewService(businessRepo, salesRepo, cfg)
	suggester := suggesting.NewService(
		businessRepo,
		suggestionRepo,
		promotionRepo,
		categoryRepo,
		analyzer,
		openaiIntegrator,
		cfg,
	)

	// O agendador de publicações e o usecase dependem um do outro; o
	// publisher é injetado depois da construção.
	publishScheduler := scheduler.NewPublishScheduler()
	poster := posting.NewService(postRepo, socialRepo, metaIntegrator, publishScheduler)
	publishScheduler.SetPublisher(poster)
	publishScheduler.Start(ctx)

	businessManager := account.NewService(businessRepo, postRepo, poster)

	// Publica imediatamente posts agendados cujo horário passou enquanto
	// o serviço estava fora do ar.
	if err := poster.RecoverMissedPosts(); err != nil {
		logrus.WithError(err).Error("Erro ao recuperar publicações perdidas")
	}

	squareSyncService := scheduler.NewSquareSyncService(businessRepo, ingestor, cfg)
	if err := squareSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização com a Square")
	} else {
		logrus.Info("Agendador de sincronização com a Square iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		businessManager,
		ingestor,
		analyzer,
		suggester,
		poster,
		squareSyncService,
		publishScheduler,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
