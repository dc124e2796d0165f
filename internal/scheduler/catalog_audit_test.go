package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/myprintpt/catalog-api/infrastructure/repository/mocks"
	"github.com/myprintpt/catalog-api/internal/config"
)

func auditConfig(enabled bool) *config.Config {
	return &config.Config{
		CatalogAudit: config.CatalogAudit{
			CronSchedule: "0 5 * * *",
			Enabled:      enabled,
		},
	}
}

func TestRunAudit(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(produtoRepo *mocks.MockProdutoRepository, extraRepo *mocks.MockExtraRepository)
		validate func(t *testing.T, service *CatalogAuditService)
	}{
		{
			name: "soma os registos com referências inativas",
			setup: func(produtoRepo *mocks.MockProdutoRepository, extraRepo *mocks.MockExtraRepository) {
				produtoRepo.EXPECT().CountComReferenciaInativa().Return(2, nil)
				extraRepo.EXPECT().CountComReferenciaInativa().Return(1, nil)
			},
			validate: func(t *testing.T, service *CatalogAuditService) {
				status := service.GetStatus()
				assert.Equal(t, 3, status["last_findings"])
				assert.Equal(t, false, status["audit_running"])
			},
		},
		{
			name: "catálogo limpo regista zero achados",
			setup: func(produtoRepo *mocks.MockProdutoRepository, extraRepo *mocks.MockExtraRepository) {
				produtoRepo.EXPECT().CountComReferenciaInativa().Return(0, nil)
				extraRepo.EXPECT().CountComReferenciaInativa().Return(0, nil)
			},
			validate: func(t *testing.T, service *CatalogAuditService) {
				status := service.GetStatus()
				assert.Equal(t, 0, status["last_findings"])
			},
		},
		{
			name: "erro ao contar produtos interrompe a passagem",
			setup: func(produtoRepo *mocks.MockProdutoRepository, extraRepo *mocks.MockExtraRepository) {
				produtoRepo.EXPECT().CountComReferenciaInativa().
					Return(0, errors.New("connection refused"))
			},
			validate: func(t *testing.T, service *CatalogAuditService) {
				status := service.GetStatus()
				assert.Equal(t, 0, status["last_findings"])
				assert.Equal(t, false, status["audit_running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			produtoRepo := mocks.NewMockProdutoRepository(ctrl)
			extraRepo := mocks.NewMockExtraRepository(ctrl)
			tt.setup(produtoRepo, extraRepo)

			service := NewCatalogAuditService(produtoRepo, extraRepo, auditConfig(true))
			service.runAudit()
			tt.validate(t, service)
		})
	}
}

func TestRunAuditIgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	produtoRepo := mocks.NewMockProdutoRepository(ctrl)
	extraRepo := mocks.NewMockExtraRepository(ctrl)

	service := NewCatalogAuditService(produtoRepo, extraRepo, auditConfig(true))

	// com o lock marcado como em execução, a passagem sai sem tocar nos
	// repositórios
	service.auditRunning = true
	service.runAudit()
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	produtoRepo := mocks.NewMockProdutoRepository(ctrl)
	extraRepo := mocks.NewMockExtraRepository(ctrl)

	service := NewCatalogAuditService(produtoRepo, extraRepo, auditConfig(false))
	status := service.GetStatus()

	assert.Equal(t, false, status["audit_enabled"])
	assert.Equal(t, "0 5 * * *", status["audit_cron"])
	assert.Equal(t, false, status["audit_running"])
}
