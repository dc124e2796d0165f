package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/myprintpt/catalog-api/infrastructure/repository"
	"github.com/myprintpt/catalog-api/infrastructure/repository/mocks"
	"github.com/myprintpt/catalog-api/internal/domain"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
)

func TestGetConfiguracao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configRepo := mocks.NewMockConfiguracaoRepository(ctrl)
	service := NewService(configRepo)

	t.Run("devolve a configuração carregada", func(t *testing.T) {
		expected := &domain.Configuracao{ID: 1, MargemPadrao: domain.MargemPadraoInicial}
		configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(expected, nil)

		config, err := service.GetConfiguracao(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, expected, config)
	})

	t.Run("erro de banco devolve ErrOperacaoBD", func(t *testing.T) {
		configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(nil, errors.New("connection refused"))

		config, err := service.GetConfiguracao(context.Background())

		assert.Nil(t, config)
		assert.ErrorIs(t, err, ErrOperacaoBD)
	})
}

func TestSetMargemPadrao(t *testing.T) {
	tests := []struct {
		name     string
		margem   domain.Numero
		setup    func(configRepo *mocks.MockConfiguracaoRepository)
		validate func(t *testing.T, config *domain.Configuracao, err error)
	}{
		{
			name:   "atualiza a margem padrão",
			margem: domain.NumeroDe(120),
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(&domain.Configuracao{ID: 1, MargemPadrao: 100}, nil)
				configRepo.EXPECT().SetMargemPadrao(1, 120.0).Return(nil)
			},
			validate: func(t *testing.T, config *domain.Configuracao, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 120.0, config.MargemPadrao)
			},
		},
		{
			name:   "margem ausente é rejeitada",
			margem: domain.Numero{},
			setup:  func(configRepo *mocks.MockConfiguracaoRepository) {},
			validate: func(t *testing.T, config *domain.Configuracao, err error) {
				assert.Nil(t, config)
				assert.ErrorIs(t, err, ErrDadosObrigatorios)
			},
		},
		{
			name:   "margem negativa é rejeitada",
			margem: domain.NumeroDe(-5),
			setup:  func(configRepo *mocks.MockConfiguracaoRepository) {},
			validate: func(t *testing.T, config *domain.Configuracao, err error) {
				assert.Nil(t, config)
				assert.ErrorIs(t, err, ErrValorInvalido)
			},
		},
		{
			name:   "margem zero é aceite",
			margem: domain.NumeroDe(0),
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(&domain.Configuracao{ID: 1, MargemPadrao: 100}, nil)
				configRepo.EXPECT().SetMargemPadrao(1, 0.0).Return(nil)
			},
			validate: func(t *testing.T, config *domain.Configuracao, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, config.MargemPadrao)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			configRepo := mocks.NewMockConfiguracaoRepository(ctrl)
			tt.setup(configRepo)

			service := NewService(configRepo)
			config, err := service.SetMargemPadrao(context.Background(), tt.margem)
			tt.validate(t, config, err)
		})
	}
}

func TestCreateMargem(t *testing.T) {
	configuracao := &domain.Configuracao{ID: 1, MargemPadrao: 100}

	tests := []struct {
		name     string
		req      *NovaMargemRequest
		setup    func(configRepo *mocks.MockConfiguracaoRepository)
		validate func(t *testing.T, margem *domain.MargemCategoria, err error)
	}{
		{
			name: "cria a margem da categoria",
			req:  &NovaMargemRequest{Categoria: "Têxteis", Margem: domain.NumeroDe(150)},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(configuracao, nil)
				configRepo.EXPECT().GetMargemByCategoria(1, "Têxteis").Return(nil, nil)
				configRepo.EXPECT().CreateMargem(gomock.Any()).DoAndReturn(
					func(m *domain.MargemCategoria) (*domain.MargemCategoria, error) {
						assert.Equal(t, 1, m.ConfiguracaoID)
						assert.Equal(t, "Têxteis", m.Categoria)
						assert.Equal(t, 150.0, m.Margem)
						m.ID = 7
						return m, nil
					})
			},
			validate: func(t *testing.T, margem *domain.MargemCategoria, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 7, margem.ID)
			},
		},
		{
			name: "categoria duplicada devolve conflito",
			req:  &NovaMargemRequest{Categoria: "Têxteis", Margem: domain.NumeroDe(150)},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(configuracao, nil)
				configRepo.EXPECT().GetMargemByCategoria(1, "Têxteis").
					Return(&domain.MargemCategoria{ID: 2, Categoria: "Têxteis"}, nil)
			},
			validate: func(t *testing.T, margem *domain.MargemCategoria, err error) {
				assert.Nil(t, margem)
				assert.ErrorIs(t, err, ErrConflito)

				var pricingErr *PricingError
				assert.ErrorAs(t, err, &pricingErr)
				assert.Equal(t, apiErrors.ErrConflict, pricingErr.Code)
			},
		},
		{
			name: "corrida apanhada pela constraint única devolve conflito",
			req:  &NovaMargemRequest{Categoria: "Brindes", Margem: domain.NumeroDe(90)},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(configuracao, nil)
				configRepo.EXPECT().GetMargemByCategoria(1, "Brindes").Return(nil, nil)
				configRepo.EXPECT().CreateMargem(gomock.Any()).Return(nil, repository.ErrDuplicado)
			},
			validate: func(t *testing.T, margem *domain.MargemCategoria, err error) {
				assert.Nil(t, margem)
				assert.ErrorIs(t, err, ErrConflito)
			},
		},
		{
			name:  "categoria vazia é rejeitada",
			req:   &NovaMargemRequest{Categoria: "   ", Margem: domain.NumeroDe(150)},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {},
			validate: func(t *testing.T, margem *domain.MargemCategoria, err error) {
				assert.Nil(t, margem)
				assert.ErrorIs(t, err, ErrDadosObrigatorios)
			},
		},
		{
			name:  "margem negativa é rejeitada",
			req:   &NovaMargemRequest{Categoria: "Têxteis", Margem: domain.NumeroDe(-1)},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {},
			validate: func(t *testing.T, margem *domain.MargemCategoria, err error) {
				assert.Nil(t, margem)
				assert.ErrorIs(t, err, ErrValorInvalido)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			configRepo := mocks.NewMockConfiguracaoRepository(ctrl)
			tt.setup(configRepo)

			service := NewService(configRepo)
			margem, err := service.CreateMargem(context.Background(), tt.req)
			tt.validate(t, margem, err)
		})
	}
}

func TestUpdateMargem(t *testing.T) {
	tests := []struct {
		name     string
		req      *AtualizaMargemRequest
		setup    func(configRepo *mocks.MockConfiguracaoRepository)
		validate func(t *testing.T, margem *domain.MargemCategoria, err error)
	}{
		{
			name: "atualiza categoria e valor",
			req:  &AtualizaMargemRequest{ID: 3, Categoria: "Têxteis", Margem: domain.NumeroDe(160)},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetMargemByID(3).
					Return(&domain.MargemCategoria{ID: 3, ConfiguracaoID: 1, Categoria: "Texteis", Margem: 150}, nil)
				configRepo.EXPECT().UpdateMargem(gomock.Any()).DoAndReturn(
					func(m *domain.MargemCategoria) error {
						assert.Equal(t, "Têxteis", m.Categoria)
						assert.Equal(t, 160.0, m.Margem)
						return nil
					})
			},
			validate: func(t *testing.T, margem *domain.MargemCategoria, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 160.0, margem.Margem)
			},
		},
		{
			name: "margem inexistente devolve não encontrado",
			req:  &AtualizaMargemRequest{ID: 99, Categoria: "Têxteis", Margem: domain.NumeroDe(160)},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetMargemByID(99).Return(nil, nil)
			},
			validate: func(t *testing.T, margem *domain.MargemCategoria, err error) {
				assert.Nil(t, margem)
				assert.ErrorIs(t, err, ErrNaoEncontrado)
			},
		},
		{
			name:  "ID ausente é rejeitado",
			req:   &AtualizaMargemRequest{Categoria: "Têxteis", Margem: domain.NumeroDe(160)},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {},
			validate: func(t *testing.T, margem *domain.MargemCategoria, err error) {
				assert.Nil(t, margem)
				assert.ErrorIs(t, err, ErrDadosObrigatorios)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			configRepo := mocks.NewMockConfiguracaoRepository(ctrl)
			tt.setup(configRepo)

			service := NewService(configRepo)
			margem, err := service.UpdateMargem(context.Background(), tt.req)
			tt.validate(t, margem, err)
		})
	}
}

func TestDeleteMargem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configRepo := mocks.NewMockConfiguracaoRepository(ctrl)
	service := NewService(configRepo)

	t.Run("remove a margem sem verificação de referências", func(t *testing.T) {
		configRepo.EXPECT().DeleteMargem(3).Return(nil)

		assert.NoError(t, service.DeleteMargem(3))
	})

	t.Run("ID ausente é rejeitado", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteMargem(0), ErrDadosObrigatorios)
	})
}

func TestCreateMinimo(t *testing.T) {
	configuracao := &domain.Configuracao{ID: 1, MargemPadrao: 100}

	tests := []struct {
		name     string
		req      *NovoMinimoRequest
		setup    func(configRepo *mocks.MockConfiguracaoRepository)
		validate func(t *testing.T, minimo *domain.MinimoFaturacao, err error)
	}{
		{
			name: "cria o mínimo de faturação",
			req:  &NovoMinimoRequest{Tipo: "m2", ValorMinimo: domain.NumeroDe(15)},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(configuracao, nil)
				configRepo.EXPECT().GetMinimoByTipo(1, "m2").Return(nil, nil)
				configRepo.EXPECT().CreateMinimo(gomock.Any()).DoAndReturn(
					func(m *domain.MinimoFaturacao) (*domain.MinimoFaturacao, error) {
						m.ID = 4
						return m, nil
					})
			},
			validate: func(t *testing.T, minimo *domain.MinimoFaturacao, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 4, minimo.ID)
				assert.Equal(t, 15.0, minimo.ValorMinimo)
			},
		},
		{
			name: "tipo duplicado devolve conflito",
			req:  &NovoMinimoRequest{Tipo: "m2", ValorMinimo: domain.NumeroDe(15)},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(configuracao, nil)
				configRepo.EXPECT().GetMinimoByTipo(1, "m2").
					Return(&domain.MinimoFaturacao{ID: 2, Tipo: "m2"}, nil)
			},
			validate: func(t *testing.T, minimo *domain.MinimoFaturacao, err error) {
				assert.Nil(t, minimo)
				assert.ErrorIs(t, err, ErrConflito)
			},
		},
		{
			name:  "valor ausente é rejeitado",
			req:   &NovoMinimoRequest{Tipo: "m2"},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {},
			validate: func(t *testing.T, minimo *domain.MinimoFaturacao, err error) {
				assert.Nil(t, minimo)
				assert.ErrorIs(t, err, ErrDadosObrigatorios)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			configRepo := mocks.NewMockConfiguracaoRepository(ctrl)
			tt.setup(configRepo)

			service := NewService(configRepo)
			minimo, err := service.CreateMinimo(context.Background(), tt.req)
			tt.validate(t, minimo, err)
		})
	}
}

func TestCreateTempo(t *testing.T) {
	configuracao := &domain.Configuracao{ID: 1, MargemPadrao: 100}

	tests := []struct {
		name     string
		req      *NovoTempoRequest
		setup    func(configRepo *mocks.MockConfiguracaoRepository)
		validate func(t *testing.T, tempo *domain.TempoPadrao, err error)
	}{
		{
			name: "cria o tempo padrão",
			req: &NovoTempoRequest{
				Operacao:          "Acabamento manual",
				TempoMedioMinutos: domain.NumeroDe(15),
				ValorHora:         domain.NumeroDe(18),
			},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(configuracao, nil)
				configRepo.EXPECT().GetTempoByOperacao(1, "Acabamento manual").Return(nil, nil)
				configRepo.EXPECT().CreateTempo(gomock.Any()).DoAndReturn(
					func(tp *domain.TempoPadrao) (*domain.TempoPadrao, error) {
						tp.ID = 9
						return tp, nil
					})
			},
			validate: func(t *testing.T, tempo *domain.TempoPadrao, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 9, tempo.ID)
				assert.Equal(t, 18.0, tempo.ValorHora)
			},
		},
		{
			name: "operação duplicada devolve conflito",
			req: &NovoTempoRequest{
				Operacao:          "Acabamento manual",
				TempoMedioMinutos: domain.NumeroDe(15),
				ValorHora:         domain.NumeroDe(18),
			},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {
				configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(configuracao, nil)
				configRepo.EXPECT().GetTempoByOperacao(1, "Acabamento manual").
					Return(&domain.TempoPadrao{ID: 1, Operacao: "Acabamento manual"}, nil)
			},
			validate: func(t *testing.T, tempo *domain.TempoPadrao, err error) {
				assert.Nil(t, tempo)
				assert.ErrorIs(t, err, ErrConflito)
			},
		},
		{
			name: "valor hora ausente é rejeitado",
			req: &NovoTempoRequest{
				Operacao:          "Acabamento manual",
				TempoMedioMinutos: domain.NumeroDe(15),
			},
			setup: func(configRepo *mocks.MockConfiguracaoRepository) {},
			validate: func(t *testing.T, tempo *domain.TempoPadrao, err error) {
				assert.Nil(t, tempo)
				assert.ErrorIs(t, err, ErrDadosObrigatorios)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			configRepo := mocks.NewMockConfiguracaoRepository(ctrl)
			tt.setup(configRepo)

			service := NewService(configRepo)
			tempo, err := service.CreateTempo(context.Background(), tt.req)
			tt.validate(t, tempo, err)
		})
	}
}
