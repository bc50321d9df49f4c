package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/internal/scheduler"
	"github.com/vfg2006/ai-marketer-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSquare  = "square"
	CronJobTypePublish = "publish"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SquareSyncService *scheduler.SquareSyncService
	PublishScheduler  *scheduler.PublishScheduler
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSquare:
			if services.SquareSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do Square não disponível", nil)
				return
			}
			services.SquareSyncService.TriggerManualSync()

		case CronJobTypePublish:
			if services.PublishScheduler == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de publicações não disponível", nil)
				return
			}
			services.PublishScheduler.TriggerRecovery()

		case CronJobTypeAll:
			if services.SquareSyncService != nil {
				services.SquareSyncService.TriggerManualSync()
			}
			if services.PublishScheduler != nil {
				services.PublishScheduler.TriggerRecovery()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: square, publish, all", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"square":  services.SquareSyncService.GetStatus(),
			"publish": services.PublishScheduler.GetStatus(),
		}

		writeJSON(w, http.StatusOK, status)
	}
}
