package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/myprintpt/catalog-api/internal/scheduler"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCatalogAudit = "catalog-audit"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CatalogAuditService *scheduler.CatalogAuditService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado")
			return
		}

		switch cronType {
		case CronJobTypeCatalogAudit, CronJobTypeAll:
			if services.CatalogAuditService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de auditoria do catálogo não disponível")
				return
			}
			services.CatalogAuditService.TriggerManualAudit()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: catalog-audit, all")
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"catalog-audit": services.CatalogAuditService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
