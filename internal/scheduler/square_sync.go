package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository"
	"github.com/vfg2006/ai-marketer-api/internal/config"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/ingesting"
)

// SquareSyncConfig representa a configuração do agendador de sincronização com a Square
type SquareSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// SquareSyncService gerencia o agendamento e execução da sincronização diária com a Square
type SquareSyncService struct {
	scheduler           *gocron.Scheduler
	config              SquareSyncConfig
	appConfig           *config.Config
	businessRepo        repository.BusinessRepository
	ingestor            ingesting.Ingestor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSquareSyncService cria uma nova instância do serviço de sincronização com a Square
func NewSquareSyncService(
	businessRepo repository.BusinessRepository,
	ingestor ingesting.Ingestor,
	appConfig *config.Config,
) *SquareSyncService {
	syncConfig := SquareSyncConfig{
		CronSchedule:        appConfig.SquareSync.CronSchedule,
		RequestDelaySeconds: appConfig.SquareSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.SquareSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.SquareSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização com a Square carregada")

	return &SquareSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		businessRepo: businessRepo,
		ingestor:     ingestor,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *SquareSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização com a Square desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização com a Square")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllBusinesses(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização com a Square: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização com a Square")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllBusinesses sincroniza todos os negócios conectados à Square
func (s *SquareSyncService) syncAllBusinesses(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização com a Square já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização com a Square para todos os negócios conectados")

	businesses, err := s.businessRepo.ListSquareConnected()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar negócios conectados à Square")
		return
	}

	if len(businesses) == 0 {
		logrus.Info("Nenhum negócio conectado à Square")
		return
	}

	s.processBusinesses(ctx, businesses)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"businesses": len(businesses),
	}).Info("Sincronização com a Square concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processBusinesses sincroniza os negócios com um número limitado de workers
func (s *SquareSyncService) processBusinesses(ctx context.Context, businesses []*domain.Business) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, business := range businesses {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(b *domain.Business) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"business_id":   b.ID,
				"business_name": b.Name,
			}).Info("Sincronizando negócio com a Square")

			result, err := s.ingestor.SyncSquare(ctx, b.ID)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"business_id": b.ID,
					"error":       err.Error(),
				}).Error("Erro ao sincronizar negócio com a Square")
				return
			}

			logrus.WithFields(logrus.Fields{
				"business_id": b.ID,
				"orders":      result.Orders,
				"created":     result.RecordsCreated,
				"updated":     result.RecordsUpdated,
			}).Info("Negócio sincronizado com a Square")

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(business)
	}

	wg.Wait()
}

// TriggerManualSync inicia manualmente uma sincronização com a Square
func (s *SquareSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização com a Square já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual com a Square")
	go s.syncAllBusinesses(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SquareSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
