package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/myprintpt/catalog-api/infrastructure/repository"
	"github.com/myprintpt/catalog-api/infrastructure/repository/mocks"
	"github.com/myprintpt/catalog-api/internal/domain"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
)

func TestCreateUnidade(t *testing.T) {
	tests := []struct {
		name     string
		req      *NovaUnidadeRequest
		setup    func(unidadeRepo *mocks.MockUnidadeRepository)
		validate func(t *testing.T, unidade *domain.Unidade, err error)
	}{
		{
			name: "cria a unidade ativa",
			req:  &NovaUnidadeRequest{Nome: "Metro quadrado", Abreviatura: stringPtr("m²")},
			setup: func(unidadeRepo *mocks.MockUnidadeRepository) {
				unidadeRepo.EXPECT().GetByNome("Metro quadrado").Return(nil, nil)
				unidadeRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
					func(u *domain.Unidade) (*domain.Unidade, error) {
						assert.Equal(t, domain.StatusAtivo, u.Status)
						u.ID = 5
						return u, nil
					})
			},
			validate: func(t *testing.T, unidade *domain.Unidade, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 5, unidade.ID)
				assert.Equal(t, "Metro quadrado", unidade.Nome)
			},
		},
		{
			name: "nome é aparado antes de gravar",
			req:  &NovaUnidadeRequest{Nome: "  Hora  "},
			setup: func(unidadeRepo *mocks.MockUnidadeRepository) {
				unidadeRepo.EXPECT().GetByNome("Hora").Return(nil, nil)
				unidadeRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
					func(u *domain.Unidade) (*domain.Unidade, error) {
						assert.Equal(t, "Hora", u.Nome)
						return u, nil
					})
			},
			validate: func(t *testing.T, unidade *domain.Unidade, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "nome duplicado devolve conflito",
			req:  &NovaUnidadeRequest{Nome: "Hora"},
			setup: func(unidadeRepo *mocks.MockUnidadeRepository) {
				unidadeRepo.EXPECT().GetByNome("Hora").
					Return(&domain.Unidade{ID: 2, Nome: "Hora"}, nil)
			},
			validate: func(t *testing.T, unidade *domain.Unidade, err error) {
				assert.Nil(t, unidade)
				assert.ErrorIs(t, err, ErrConflito)

				var catalogErr *CatalogError
				assert.ErrorAs(t, err, &catalogErr)
				assert.Equal(t, apiErrors.ErrConflict, catalogErr.Code)
			},
		},
		{
			name: "corrida apanhada pela constraint única devolve conflito",
			req:  &NovaUnidadeRequest{Nome: "Hora"},
			setup: func(unidadeRepo *mocks.MockUnidadeRepository) {
				unidadeRepo.EXPECT().GetByNome("Hora").Return(nil, nil)
				unidadeRepo.EXPECT().Create(gomock.Any()).Return(nil, repository.ErrDuplicado)
			},
			validate: func(t *testing.T, unidade *domain.Unidade, err error) {
				assert.Nil(t, unidade)
				assert.ErrorIs(t, err, ErrConflito)
			},
		},
		{
			name:  "nome vazio é rejeitado",
			req:   &NovaUnidadeRequest{Nome: "   "},
			setup: func(unidadeRepo *mocks.MockUnidadeRepository) {},
			validate: func(t *testing.T, unidade *domain.Unidade, err error) {
				assert.Nil(t, unidade)
				assert.ErrorIs(t, err, ErrDadosObrigatorios)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			unidadeRepo := mocks.NewMockUnidadeRepository(ctrl)
			categoriaRepo := mocks.NewMockCategoriaRepository(ctrl)
			tt.setup(unidadeRepo)

			service := NewService(unidadeRepo, categoriaRepo)
			unidade, err := service.CreateUnidade(tt.req)
			tt.validate(t, unidade, err)
		})
	}
}

func TestDeleteUnidade(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		setup    func(unidadeRepo *mocks.MockUnidadeRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name: "remove fisicamente quando nada a referencia",
			id:   3,
			setup: func(unidadeRepo *mocks.MockUnidadeRepository) {
				unidadeRepo.EXPECT().GetByID(3).Return(&domain.Unidade{ID: 3, Nome: "Hora"}, nil)
				unidadeRepo.EXPECT().CountReferencias(3).Return(0, nil)
				unidadeRepo.EXPECT().Delete(3).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "bloqueia a remoção quando há produtos ou extras a usar",
			id:   3,
			setup: func(unidadeRepo *mocks.MockUnidadeRepository) {
				unidadeRepo.EXPECT().GetByID(3).Return(&domain.Unidade{ID: 3, Nome: "Hora"}, nil)
				unidadeRepo.EXPECT().CountReferencias(3).Return(4, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmUso)

				var catalogErr *CatalogError
				assert.ErrorAs(t, err, &catalogErr)
				assert.Equal(t, apiErrors.ErrReferentialIntegrity, catalogErr.Code)
				assert.Contains(t, catalogErr.Details, "4 produto(s) ou extra(s)")
			},
		},
		{
			name: "unidade inexistente devolve não encontrado",
			id:   99,
			setup: func(unidadeRepo *mocks.MockUnidadeRepository) {
				unidadeRepo.EXPECT().GetByID(99).Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNaoEncontrado)
			},
		},
		{
			name:  "ID ausente é rejeitado",
			id:    0,
			setup: func(unidadeRepo *mocks.MockUnidadeRepository) {},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDadosObrigatorios)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			unidadeRepo := mocks.NewMockUnidadeRepository(ctrl)
			categoriaRepo := mocks.NewMockCategoriaRepository(ctrl)
			tt.setup(unidadeRepo)

			service := NewService(unidadeRepo, categoriaRepo)
			tt.validate(t, service.DeleteUnidade(tt.id))
		})
	}
}

func TestCreateCategoria(t *testing.T) {
	tests := []struct {
		name     string
		req      *NovaCategoriaRequest
		setup    func(categoriaRepo *mocks.MockCategoriaRepository)
		validate func(t *testing.T, categoria *domain.Categoria, err error)
	}{
		{
			name: "cria a categoria com slug e ordem atribuídos",
			req:  &NovaCategoriaRequest{Nome: "Grande Formato", Tipo: domain.TipoCategoriaProduto},
			setup: func(categoriaRepo *mocks.MockCategoriaRepository) {
				categoriaRepo.EXPECT().GetByNome("Grande Formato").Return(nil, nil)
				categoriaRepo.EXPECT().NextOrdem(domain.TipoCategoriaProduto).Return(3, nil)
				categoriaRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
					func(c *domain.Categoria) (*domain.Categoria, error) {
						assert.Equal(t, "grande-formato", c.Slug)
						assert.Equal(t, 3, c.Ordem)
						assert.Equal(t, domain.StatusAtivo, c.Status)
						c.ID = 6
						return c, nil
					})
			},
			validate: func(t *testing.T, categoria *domain.Categoria, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 6, categoria.ID)
			},
		},
		{
			name: "slug remove acentos do nome",
			req:  &NovaCategoriaRequest{Nome: "Têxteis", Tipo: domain.TipoCategoriaProduto},
			setup: func(categoriaRepo *mocks.MockCategoriaRepository) {
				categoriaRepo.EXPECT().GetByNome("Têxteis").Return(nil, nil)
				categoriaRepo.EXPECT().NextOrdem(domain.TipoCategoriaProduto).Return(1, nil)
				categoriaRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
					func(c *domain.Categoria) (*domain.Categoria, error) {
						assert.Equal(t, "texteis", c.Slug)
						return c, nil
					})
			},
			validate: func(t *testing.T, categoria *domain.Categoria, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "tipo omitido assume geral",
			req:  &NovaCategoriaRequest{Nome: "Serviços gráficos"},
			setup: func(categoriaRepo *mocks.MockCategoriaRepository) {
				categoriaRepo.EXPECT().GetByNome("Serviços gráficos").Return(nil, nil)
				categoriaRepo.EXPECT().NextOrdem(domain.TipoCategoriaGeral).Return(1, nil)
				categoriaRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
					func(c *domain.Categoria) (*domain.Categoria, error) {
						assert.Equal(t, domain.TipoCategoriaGeral, c.Tipo)
						return c, nil
					})
			},
			validate: func(t *testing.T, categoria *domain.Categoria, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "tipo desconhecido é rejeitado",
			req:   &NovaCategoriaRequest{Nome: "Papelaria", Tipo: "promocional"},
			setup: func(categoriaRepo *mocks.MockCategoriaRepository) {},
			validate: func(t *testing.T, categoria *domain.Categoria, err error) {
				assert.Nil(t, categoria)
				assert.ErrorIs(t, err, ErrTipoInvalido)
			},
		},
		{
			name: "nome duplicado devolve conflito",
			req:  &NovaCategoriaRequest{Nome: "Papelaria", Tipo: domain.TipoCategoriaProduto},
			setup: func(categoriaRepo *mocks.MockCategoriaRepository) {
				categoriaRepo.EXPECT().GetByNome("Papelaria").
					Return(&domain.Categoria{ID: 1, Nome: "Papelaria"}, nil)
			},
			validate: func(t *testing.T, categoria *domain.Categoria, err error) {
				assert.Nil(t, categoria)
				assert.ErrorIs(t, err, ErrConflito)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			unidadeRepo := mocks.NewMockUnidadeRepository(ctrl)
			categoriaRepo := mocks.NewMockCategoriaRepository(ctrl)
			tt.setup(categoriaRepo)

			service := NewService(unidadeRepo, categoriaRepo)
			categoria, err := service.CreateCategoria(tt.req)
			tt.validate(t, categoria, err)
		})
	}
}

func TestUpdateCategoria(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.AtualizaCategoriaRequest
		setup    func(categoriaRepo *mocks.MockCategoriaRepository)
		validate func(t *testing.T, categoria *domain.Categoria, err error)
	}{
		{
			name: "renomear recalcula o slug",
			req:  &domain.AtualizaCategoriaRequest{ID: 2, Nome: stringPtr("Serviços Gráficos")},
			setup: func(categoriaRepo *mocks.MockCategoriaRepository) {
				categoriaRepo.EXPECT().GetByID(2).Return(&domain.Categoria{
					ID:   2,
					Nome: "Serviços",
					Slug: "servicos",
					Tipo: domain.TipoCategoriaGeral,
				}, nil)
				categoriaRepo.EXPECT().Update(gomock.Any()).DoAndReturn(
					func(c *domain.Categoria) error {
						assert.Equal(t, "servicos-graficos", c.Slug)
						return nil
					})
			},
			validate: func(t *testing.T, categoria *domain.Categoria, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Serviços Gráficos", categoria.Nome)
			},
		},
		{
			name: "desativar mantém os restantes campos",
			req: &domain.AtualizaCategoriaRequest{
				ID:     2,
				Status: statusPtr(domain.StatusInativo),
			},
			setup: func(categoriaRepo *mocks.MockCategoriaRepository) {
				categoriaRepo.EXPECT().GetByID(2).Return(&domain.Categoria{
					ID:     2,
					Nome:   "Brindes",
					Slug:   "brindes",
					Tipo:   domain.TipoCategoriaProduto,
					Status: domain.StatusAtivo,
				}, nil)
				categoriaRepo.EXPECT().Update(gomock.Any()).DoAndReturn(
					func(c *domain.Categoria) error {
						assert.Equal(t, domain.StatusInativo, c.Status)
						assert.Equal(t, "Brindes", c.Nome)
						return nil
					})
			},
			validate: func(t *testing.T, categoria *domain.Categoria, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "categoria inexistente devolve não encontrado",
			req:  &domain.AtualizaCategoriaRequest{ID: 99, Nome: stringPtr("Nova")},
			setup: func(categoriaRepo *mocks.MockCategoriaRepository) {
				categoriaRepo.EXPECT().GetByID(99).Return(nil, nil)
			},
			validate: func(t *testing.T, categoria *domain.Categoria, err error) {
				assert.Nil(t, categoria)
				assert.ErrorIs(t, err, ErrNaoEncontrado)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			unidadeRepo := mocks.NewMockUnidadeRepository(ctrl)
			categoriaRepo := mocks.NewMockCategoriaRepository(ctrl)
			tt.setup(categoriaRepo)

			service := NewService(unidadeRepo, categoriaRepo)
			categoria, err := service.UpdateCategoria(tt.req)
			tt.validate(t, categoria, err)
		})
	}
}

func TestDeleteCategoria(t *testing.T) {
	t.Run("bloqueia a remoção quando há produtos ou extras a usar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		unidadeRepo := mocks.NewMockUnidadeRepository(ctrl)
		categoriaRepo := mocks.NewMockCategoriaRepository(ctrl)
		categoriaRepo.EXPECT().GetByID(1).Return(&domain.Categoria{ID: 1, Nome: "Papelaria"}, nil)
		categoriaRepo.EXPECT().CountReferencias(1).Return(2, nil)

		service := NewService(unidadeRepo, categoriaRepo)
		err := service.DeleteCategoria(1)

		assert.ErrorIs(t, err, ErrEmUso)

		var catalogErr *CatalogError
		assert.ErrorAs(t, err, &catalogErr)
		assert.Equal(t, apiErrors.ErrReferentialIntegrity, catalogErr.Code)
	})

	t.Run("remove fisicamente quando nada a referencia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		unidadeRepo := mocks.NewMockUnidadeRepository(ctrl)
		categoriaRepo := mocks.NewMockCategoriaRepository(ctrl)
		categoriaRepo.EXPECT().GetByID(1).Return(&domain.Categoria{ID: 1, Nome: "Papelaria"}, nil)
		categoriaRepo.EXPECT().CountReferencias(1).Return(0, nil)
		categoriaRepo.EXPECT().Delete(1).Return(nil)

		service := NewService(unidadeRepo, categoriaRepo)
		assert.NoError(t, service.DeleteCategoria(1))
	})
}

func stringPtr(s string) *string {
	return &s
}

func statusPtr(s domain.Status) *domain.Status {
	return &s
}
