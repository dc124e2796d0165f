package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/myprintpt/catalog-api/infrastructure/repository"
	"github.com/myprintpt/catalog-api/internal/domain"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
	"github.com/myprintpt/catalog-api/pkg/utils"
)

// NovaUnidadeRequest é o payload de criação de uma unidade
type NovaUnidadeRequest struct {
	Nome        string  `json:"nome"`
	Abreviatura *string `json:"abreviatura"`
}

// NovaCategoriaRequest é o payload de criação de uma categoria
type NovaCategoriaRequest struct {
	Nome string               `json:"nome"`
	Tipo domain.TipoCategoria `json:"tipo"`
}

type CatalogService interface {
	ListUnidades(apenasAtivas bool) ([]*domain.Unidade, error)
	CreateUnidade(req *NovaUnidadeRequest) (*domain.Unidade, error)
	UpdateUnidade(req *domain.AtualizaUnidadeRequest) (*domain.Unidade, error)
	DeleteUnidade(id int) error

	ListCategorias(apenasAtivas bool) ([]*domain.Categoria, error)
	CreateCategoria(req *NovaCategoriaRequest) (*domain.Categoria, error)
	UpdateCategoria(req *domain.AtualizaCategoriaRequest) (*domain.Categoria, error)
	DeleteCategoria(id int) error
}

type Service struct {
	unidadeRepo   repository.UnidadeRepository
	categoriaRepo repository.CategoriaRepository
}

func NewService(
	unidadeRepo repository.UnidadeRepository,
	categoriaRepo repository.CategoriaRepository,
) CatalogService {
	return &Service{
		unidadeRepo:   unidadeRepo,
		categoriaRepo: categoriaRepo,
	}
}

func (s *Service) ListUnidades(apenasAtivas bool) ([]*domain.Unidade, error) {
	unidades, err := s.unidadeRepo.List(apenasAtivas)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar unidades")
		return nil, ErrOperacaoBD
	}
	return unidades, nil
}

func (s *Service) CreateUnidade(req *NovaUnidadeRequest) (*domain.Unidade, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, ErrDadosObrigatorios
	}

	// o nome só precisa de ser único entre unidades ativas
	existente, err := s.unidadeRepo.GetByNome(nome)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar unidade existente")
		return nil, ErrOperacaoBD
	}
	if existente != nil {
		return nil, NewCatalogError(ErrConflito, apiErrors.ErrConflict, "já existe uma unidade com o nome "+nome)
	}

	unidade := &domain.Unidade{
		Nome:        nome,
		Abreviatura: req.Abreviatura,
		Status:      domain.StatusAtivo,
	}

	unidade, err = s.unidadeRepo.Create(unidade)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewCatalogError(ErrConflito, apiErrors.ErrConflict, "já existe uma unidade com o nome "+nome)
		}
		logrus.WithError(err).Error("Erro ao criar unidade")
		return nil, ErrOperacaoBD
	}

	return unidade, nil
}

func (s *Service) UpdateUnidade(req *domain.AtualizaUnidadeRequest) (*domain.Unidade, error) {
	if req.ID == 0 {
		return nil, ErrDadosObrigatorios
	}

	unidade, err := s.unidadeRepo.GetByID(req.ID)
	if err != nil {
		return nil, ErrOperacaoBD
	}
	if unidade == nil {
		return nil, ErrNaoEncontrado
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, ErrDadosObrigatorios
		}
		unidade.Nome = nome
	}

	if req.Abreviatura != nil {
		unidade.Abreviatura = req.Abreviatura
	}

	if req.Status != nil {
		if !req.Status.Valido() {
			return nil, ErrDadosObrigatorios
		}
		unidade.Status = *req.Status
	}

	if err := s.unidadeRepo.Update(unidade); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewCatalogError(ErrConflito, apiErrors.ErrConflict, "já existe uma unidade com o nome "+unidade.Nome)
		}
		logrus.WithError(err).Error("Erro ao atualizar unidade")
		return nil, ErrOperacaoBD
	}

	return unidade, nil
}

// DeleteUnidade remove fisicamente uma unidade, desde que nenhum produto
// ou extra a referencie
func (s *Service) DeleteUnidade(id int) error {
	if id == 0 {
		return ErrDadosObrigatorios
	}

	unidade, err := s.unidadeRepo.GetByID(id)
	if err != nil {
		return ErrOperacaoBD
	}
	if unidade == nil {
		return ErrNaoEncontrado
	}

	referencias, err := s.unidadeRepo.CountReferencias(id)
	if err != nil {
		logrus.WithError(err).Error("Erro ao contar referências da unidade")
		return ErrOperacaoBD
	}
	if referencias > 0 {
		return NewCatalogError(
			ErrEmUso,
			apiErrors.ErrReferentialIntegrity,
			fmt.Sprintf("a unidade %s é usada por %d produto(s) ou extra(s)", unidade.Nome, referencias),
		)
	}

	if err := s.unidadeRepo.Delete(id); err != nil {
		logrus.WithError(err).Error("Erro ao remover unidade")
		return ErrOperacaoBD
	}

	return nil
}

func (s *Service) ListCategorias(apenasAtivas bool) ([]*domain.Categoria, error) {
	categorias, err := s.categoriaRepo.List(apenasAtivas)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar categorias")
		return nil, ErrOperacaoBD
	}
	return categorias, nil
}

func (s *Service) CreateCategoria(req *NovaCategoriaRequest) (*domain.Categoria, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, ErrDadosObrigatorios
	}

	tipo := req.Tipo
	if tipo == "" {
		tipo = domain.TipoCategoriaGeral
	}
	if !tipo.Valido() {
		return nil, ErrTipoInvalido
	}

	existente, err := s.categoriaRepo.GetByNome(nome)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar categoria existente")
		return nil, ErrOperacaoBD
	}
	if existente != nil {
		return nil, NewCatalogError(ErrConflito, apiErrors.ErrConflict, "já existe uma categoria com o nome "+nome)
	}

	ordem, err := s.categoriaRepo.NextOrdem(tipo)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular ordem da categoria")
		return nil, ErrOperacaoBD
	}

	categoria := &domain.Categoria{
		Nome:   nome,
		Slug:   utils.Slugify(nome),
		Tipo:   tipo,
		Ordem:  ordem,
		Status: domain.StatusAtivo,
	}

	categoria, err = s.categoriaRepo.Create(categoria)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewCatalogError(ErrConflito, apiErrors.ErrConflict, "já existe uma categoria com o nome "+nome)
		}
		logrus.WithError(err).Error("Erro ao criar categoria")
		return nil, ErrOperacaoBD
	}

	return categoria, nil
}

func (s *Service) UpdateCategoria(req *domain.AtualizaCategoriaRequest) (*domain.Categoria, error) {
	if req.ID == 0 {
		return nil, ErrDadosObrigatorios
	}

	categoria, err := s.categoriaRepo.GetByID(req.ID)
	if err != nil {
		return nil, ErrOperacaoBD
	}
	if categoria == nil {
		return nil, ErrNaoEncontrado
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, ErrDadosObrigatorios
		}
		categoria.Nome = nome
		categoria.Slug = utils.Slugify(nome)
	}

	if req.Tipo != nil {
		if !req.Tipo.Valido() {
			return nil, ErrTipoInvalido
		}
		categoria.Tipo = *req.Tipo
	}

	if req.Ordem != nil {
		categoria.Ordem = *req.Ordem
	}

	if req.Status != nil {
		if !req.Status.Valido() {
			return nil, ErrDadosObrigatorios
		}
		categoria.Status = *req.Status
	}

	if err := s.categoriaRepo.Update(categoria); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewCatalogError(ErrConflito, apiErrors.ErrConflict, "já existe uma categoria com o nome "+categoria.Nome)
		}
		logrus.WithError(err).Error("Erro ao atualizar categoria")
		return nil, ErrOperacaoBD
	}

	return categoria, nil
}

// DeleteCategoria remove fisicamente uma categoria, desde que nenhum
// produto ou extra a referencie
func (s *Service) DeleteCategoria(id int) error {
	if id == 0 {
		return ErrDadosObrigatorios
	}

	categoria, err := s.categoriaRepo.GetByID(id)
	if err != nil {
		return ErrOperacaoBD
	}
	if categoria == nil {
		return ErrNaoEncontrado
	}

	referencias, err := s.categoriaRepo.CountReferencias(id)
	if err != nil {
		logrus.WithError(err).Error("Erro ao contar referências da categoria")
		return ErrOperacaoBD
	}
	if referencias > 0 {
		return NewCatalogError(
			ErrEmUso,
			apiErrors.ErrReferentialIntegrity,
			fmt.Sprintf("a categoria %s é usada por %d produto(s) ou extra(s)", categoria.Nome, referencias),
		)
	}

	if err := s.categoriaRepo.Delete(id); err != nil {
		logrus.WithError(err).Error("Erro ao remover categoria")
		return ErrOperacaoBD
	}

	return nil
}
