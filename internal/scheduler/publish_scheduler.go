package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/pkg/utils"
)

// Publisher é o pedaço do usecase de publicações que o agendador
// precisa conhecer. Definido aqui para quebrar a dependência circular
// entre o agendador e o usecase.
type Publisher interface {
	PublishPost(postID, businessID string) error
	RecoverMissedPosts() error
}

// PublishScheduler agenda publicações únicas. Cada job recebe uma tag
// própria; a tag fica gravada na linha do post e permite o
// cancelamento quando o post é removido antes do horário.
type PublishScheduler struct {
	scheduler *gocron.Scheduler
	publisher Publisher
}

func NewPublishScheduler() *PublishScheduler {
	return &PublishScheduler{
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// SetPublisher injeta o usecase depois da construção; o usecase também
// depende do agendador.
func (s *PublishScheduler) SetPublisher(publisher Publisher) {
	s.publisher = publisher
}

func (s *PublishScheduler) Start(ctx context.Context) {
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de publicações")
		s.scheduler.Stop()
	}()
}

func (s *PublishScheduler) SchedulePublish(postID, businessID string, at time.Time) (string, error) {
	if s.publisher == nil {
		return "", errors.New("agendador sem publisher configurado")
	}

	jobID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	_, err = s.scheduler.Every(1).Day().StartAt(at).LimitRunsTo(1).Tag(jobID).Do(func() {
		logrus.WithFields(logrus.Fields{
			"post_id": postID,
			"job_id":  jobID,
		}).Info("Executando publicação agendada")

		if err := s.publisher.PublishPost(postID, businessID); err != nil {
			logrus.WithField("post_id", postID).WithError(err).Error("Erro na publicação agendada")
		}
	})
	if err != nil {
		return "", fmt.Errorf("erro ao agendar job de publicação: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"post_id": postID,
		"job_id":  jobID,
		"at":      at.Format(time.RFC3339),
	}).Info("Publicação agendada")

	return jobID, nil
}

func (s *PublishScheduler) CancelPublish(jobID string) error {
	if err := s.scheduler.RemoveByTag(jobID); err != nil {
		return fmt.Errorf("erro ao cancelar job %s: %w", jobID, err)
	}
	return nil
}

// TriggerRecovery publica imediatamente os posts agendados cujo horário
// já passou, como na partida do serviço.
func (s *PublishScheduler) TriggerRecovery() {
	if s.publisher == nil {
		logrus.Warn("Agendador sem publisher configurado, recuperação ignorada")
		return
	}

	go func() {
		logrus.Info("Recuperação manual de publicações perdidas iniciada")
		if err := s.publisher.RecoverMissedPosts(); err != nil {
			logrus.WithError(err).Error("Erro na recuperação de publicações perdidas")
		}
	}()
}

// GetStatus retorna o status do agendador de publicações
func (s *PublishScheduler) GetStatus() map[string]any {
	return map[string]any{
		"is_running":   s.scheduler.IsRunning(),
		"pending_jobs": s.scheduler.Len(),
	}
}
