package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/myprintpt/catalog-api/infrastructure/repository"
	"github.com/myprintpt/catalog-api/internal/config"
)

// CatalogAuditConfig representa a configuração do agendador de auditoria do catálogo
type CatalogAuditConfig struct {
	CronSchedule string
	AuditEnabled bool
}

// CatalogAuditService percorre periodicamente o catálogo à procura de
// inconsistências: produtos e extras ativos cuja categoria ou unidade já
// foi desativada. Não corrige nada, apenas regista o que encontrar para
// a equipa rever.
type CatalogAuditService struct {
	scheduler            *gocron.Scheduler
	config               CatalogAuditConfig
	produtoRepo          repository.ProdutoRepository
	extraRepo            repository.ExtraRepository
	auditRunning         bool
	auditMutex           sync.Mutex
	lastAuditStartedAt   time.Time
	lastAuditCompletedAt time.Time
	lastFindings         int
}

// NewCatalogAuditService cria uma nova instância do serviço de auditoria do catálogo
func NewCatalogAuditService(
	produtoRepo repository.ProdutoRepository,
	extraRepo repository.ExtraRepository,
	appConfig *config.Config,
) *CatalogAuditService {
	auditConfig := CatalogAuditConfig{
		CronSchedule: appConfig.CatalogAudit.CronSchedule,
		AuditEnabled: appConfig.CatalogAudit.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": auditConfig.CronSchedule,
		"audit_enabled": auditConfig.AuditEnabled,
	}).Info("Configuração do agendador de auditoria do catálogo carregada")

	return &CatalogAuditService{
		scheduler:    scheduler,
		config:       auditConfig,
		produtoRepo:  produtoRepo,
		extraRepo:    extraRepo,
		auditRunning: false,
	}
}

// Start inicia o agendador
func (s *CatalogAuditService) Start(ctx context.Context) error {
	if !s.config.AuditEnabled {
		logrus.Info("Auditoria do catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de auditoria do catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAudit()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria do catálogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de auditoria do catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// runAudit executa uma passagem de auditoria sobre produtos e extras
func (s *CatalogAuditService) runAudit() {
	s.auditMutex.Lock()
	if s.auditRunning {
		s.auditMutex.Unlock()
		logrus.Info("Auditoria do catálogo já em andamento, ignorando")
		return
	}
	s.auditRunning = true
	s.auditMutex.Unlock()

	startTime := time.Now()
	s.lastAuditStartedAt = startTime

	defer func() {
		s.auditMutex.Lock()
		s.auditRunning = false
		s.auditMutex.Unlock()
	}()

	logrus.Info("Iniciando auditoria do catálogo")

	produtos, err := s.produtoRepo.CountComReferenciaInativa()
	if err != nil {
		logrus.WithError(err).Error("Erro ao auditar produtos com referências inativas")
		return
	}

	extras, err := s.extraRepo.CountComReferenciaInativa()
	if err != nil {
		logrus.WithError(err).Error("Erro ao auditar extras com referências inativas")
		return
	}

	s.lastFindings = produtos + extras

	if s.lastFindings > 0 {
		logrus.WithFields(logrus.Fields{
			"produtos": produtos,
			"extras":   extras,
		}).Warn("Registos ativos com categoria ou unidade desativada encontrados")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"findings": s.lastFindings,
	}).Info("Auditoria do catálogo concluída")

	s.lastAuditCompletedAt = time.Now()
}

// TriggerManualAudit inicia manualmente uma auditoria do catálogo
func (s *CatalogAuditService) TriggerManualAudit() {
	s.auditMutex.Lock()
	if s.auditRunning {
		s.auditMutex.Unlock()
		logrus.Info("Auditoria do catálogo já em andamento, ignorando solicitação manual")
		return
	}
	s.auditMutex.Unlock()

	logrus.Info("Iniciando auditoria manual do catálogo")
	go s.runAudit()
}

// GetStatus retorna o status atual do agendador
func (s *CatalogAuditService) GetStatus() map[string]any {
	return map[string]any{
		"audit_enabled":           s.config.AuditEnabled,
		"audit_cron":              s.config.CronSchedule,
		"audit_running":           s.auditRunning,
		"last_audit_started_at":   s.lastAuditStartedAt,
		"last_audit_completed_at": s.lastAuditCompletedAt,
		"last_findings":           s.lastFindings,
	}
}
