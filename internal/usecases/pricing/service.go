package pricing

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/myprintpt/catalog-api/infrastructure/repository"
	"github.com/myprintpt/catalog-api/internal/domain"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
)

// NovaMargemRequest é o payload de criação de uma margem de categoria
type NovaMargemRequest struct {
	Categoria string        `json:"categoria"`
	Margem    domain.Numero `json:"margem"`
}

// AtualizaMargemRequest é o payload de atualização de uma margem
type AtualizaMargemRequest struct {
	ID        int           `json:"id"`
	Categoria string        `json:"categoria"`
	Margem    domain.Numero `json:"margem"`
}

// NovoMinimoRequest é o payload de criação de um mínimo de faturação
type NovoMinimoRequest struct {
	Tipo        string        `json:"tipo"`
	ValorMinimo domain.Numero `json:"valor_minimo"`
}

// AtualizaMinimoRequest é o payload de atualização de um mínimo
type AtualizaMinimoRequest struct {
	ID          int           `json:"id"`
	Tipo        string        `json:"tipo"`
	ValorMinimo domain.Numero `json:"valor_minimo"`
}

// NovoTempoRequest é o payload de criação de um tempo padrão
type NovoTempoRequest struct {
	Operacao          string        `json:"operacao"`
	TempoMedioMinutos domain.Numero `json:"tempo_medio_minutos"`
	ValorHora         domain.Numero `json:"valor_hora"`
}

// AtualizaTempoRequest é o payload de atualização de um tempo padrão
type AtualizaTempoRequest struct {
	ID                int           `json:"id"`
	Operacao          string        `json:"operacao"`
	TempoMedioMinutos domain.Numero `json:"tempo_medio_minutos"`
	ValorHora         domain.Numero `json:"valor_hora"`
}

type PricingService interface {
	GetConfiguracao(ctx context.Context) (*domain.Configuracao, error)
	SetMargemPadrao(ctx context.Context, margem domain.Numero) (*domain.Configuracao, error)

	CreateMargem(ctx context.Context, req *NovaMargemRequest) (*domain.MargemCategoria, error)
	UpdateMargem(ctx context.Context, req *AtualizaMargemRequest) (*domain.MargemCategoria, error)
	DeleteMargem(id int) error

	CreateMinimo(ctx context.Context, req *NovoMinimoRequest) (*domain.MinimoFaturacao, error)
	UpdateMinimo(ctx context.Context, req *AtualizaMinimoRequest) (*domain.MinimoFaturacao, error)
	DeleteMinimo(id int) error

	CreateTempo(ctx context.Context, req *NovoTempoRequest) (*domain.TempoPadrao, error)
	UpdateTempo(ctx context.Context, req *AtualizaTempoRequest) (*domain.TempoPadrao, error)
	DeleteTempo(id int) error
}

type Service struct {
	configRepo repository.ConfiguracaoRepository
}

func NewService(configRepo repository.ConfiguracaoRepository) PricingService {
	return &Service{
		configRepo: configRepo,
	}
}

// GetConfiguracao devolve a configuração global, criando-a com a margem
// padrão inicial (100) no primeiro acesso
func (s *Service) GetConfiguracao(ctx context.Context) (*domain.Configuracao, error) {
	config, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar configuração")
		return nil, ErrOperacaoBD
	}
	return config, nil
}

// SetMargemPadrao atualiza a margem padrão global
func (s *Service) SetMargemPadrao(ctx context.Context, margem domain.Numero) (*domain.Configuracao, error) {
	if !margem.Valido {
		return nil, ErrDadosObrigatorios
	}
	if margem.Valor < 0 {
		return nil, ErrValorInvalido
	}

	config, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar configuração")
		return nil, ErrOperacaoBD
	}

	if err := s.configRepo.SetMargemPadrao(config.ID, margem.Valor); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar margem padrão")
		return nil, ErrOperacaoBD
	}

	config.MargemPadrao = margem.Valor
	return config, nil
}

func (s *Service) CreateMargem(ctx context.Context, req *NovaMargemRequest) (*domain.MargemCategoria, error) {
	categoria := strings.TrimSpace(req.Categoria)
	if categoria == "" || !req.Margem.Valido {
		return nil, ErrDadosObrigatorios
	}
	if req.Margem.Valor < 0 {
		return nil, ErrValorInvalido
	}

	config, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, ErrOperacaoBD
	}

	existente, err := s.configRepo.GetMargemByCategoria(config.ID, categoria)
	if err != nil {
		return nil, ErrOperacaoBD
	}
	if existente != nil {
		return nil, NewPricingError(ErrConflito, apiErrors.ErrConflict, "já existe uma margem para a categoria "+categoria)
	}

	margem := &domain.MargemCategoria{
		ConfiguracaoID: config.ID,
		Categoria:      categoria,
		Margem:         req.Margem.Valor,
	}

	margem, err = s.configRepo.CreateMargem(margem)
	if err != nil {
		// a constraint única apanha a corrida entre o check e o insert
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewPricingError(ErrConflito, apiErrors.ErrConflict, "já existe uma margem para a categoria "+categoria)
		}
		logrus.WithError(err).Error("Erro ao criar margem de categoria")
		return nil, ErrOperacaoBD
	}

	return margem, nil
}

func (s *Service) UpdateMargem(ctx context.Context, req *AtualizaMargemRequest) (*domain.MargemCategoria, error) {
	if req.ID == 0 {
		return nil, ErrDadosObrigatorios
	}

	categoria := strings.TrimSpace(req.Categoria)
	if categoria == "" || !req.Margem.Valido {
		return nil, ErrDadosObrigatorios
	}
	if req.Margem.Valor < 0 {
		return nil, ErrValorInvalido
	}

	margem, err := s.configRepo.GetMargemByID(req.ID)
	if err != nil {
		return nil, ErrOperacaoBD
	}
	if margem == nil {
		return nil, ErrNaoEncontrado
	}

	margem.Categoria = categoria
	margem.Margem = req.Margem.Valor

	if err := s.configRepo.UpdateMargem(margem); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewPricingError(ErrConflito, apiErrors.ErrConflict, "já existe uma margem para a categoria "+categoria)
		}
		logrus.WithError(err).Error("Erro ao atualizar margem de categoria")
		return nil, ErrOperacaoBD
	}

	return margem, nil
}

func (s *Service) DeleteMargem(id int) error {
	if id == 0 {
		return ErrDadosObrigatorios
	}

	// remoção incondicional: margens são informativas, nada as referencia
	if err := s.configRepo.DeleteMargem(id); err != nil {
		logrus.WithError(err).Error("Erro ao remover margem de categoria")
		return ErrOperacaoBD
	}
	return nil
}

func (s *Service) CreateMinimo(ctx context.Context, req *NovoMinimoRequest) (*domain.MinimoFaturacao, error) {
	tipo := strings.TrimSpace(req.Tipo)
	if tipo == "" || !req.ValorMinimo.Valido {
		return nil, ErrDadosObrigatorios
	}
	if req.ValorMinimo.Valor < 0 {
		return nil, ErrValorInvalido
	}

	config, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, ErrOperacaoBD
	}

	existente, err := s.configRepo.GetMinimoByTipo(config.ID, tipo)
	if err != nil {
		return nil, ErrOperacaoBD
	}
	if existente != nil {
		return nil, NewPricingError(ErrConflito, apiErrors.ErrConflict, "já existe um mínimo para o tipo "+tipo)
	}

	minimo := &domain.MinimoFaturacao{
		ConfiguracaoID: config.ID,
		Tipo:           tipo,
		ValorMinimo:    req.ValorMinimo.Valor,
	}

	minimo, err = s.configRepo.CreateMinimo(minimo)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewPricingError(ErrConflito, apiErrors.ErrConflict, "já existe um mínimo para o tipo "+tipo)
		}
		logrus.WithError(err).Error("Erro ao criar mínimo de faturação")
		return nil, ErrOperacaoBD
	}

	return minimo, nil
}

func (s *Service) UpdateMinimo(ctx context.Context, req *AtualizaMinimoRequest) (*domain.MinimoFaturacao, error) {
	if req.ID == 0 {
		return nil, ErrDadosObrigatorios
	}

	tipo := strings.TrimSpace(req.Tipo)
	if tipo == "" || !req.ValorMinimo.Valido {
		return nil, ErrDadosObrigatorios
	}
	if req.ValorMinimo.Valor < 0 {
		return nil, ErrValorInvalido
	}

	minimo, err := s.configRepo.GetMinimoByID(req.ID)
	if err != nil {
		return nil, ErrOperacaoBD
	}
	if minimo == nil {
		return nil, ErrNaoEncontrado
	}

	minimo.Tipo = tipo
	minimo.ValorMinimo = req.ValorMinimo.Valor

	if err := s.configRepo.UpdateMinimo(minimo); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewPricingError(ErrConflito, apiErrors.ErrConflict, "já existe um mínimo para o tipo "+tipo)
		}
		logrus.WithError(err).Error("Erro ao atualizar mínimo de faturação")
		return nil, ErrOperacaoBD
	}

	return minimo, nil
}

func (s *Service) DeleteMinimo(id int) error {
	if id == 0 {
		return ErrDadosObrigatorios
	}

	if err := s.configRepo.DeleteMinimo(id); err != nil {
		logrus.WithError(err).Error("Erro ao remover mínimo de faturação")
		return ErrOperacaoBD
	}
	return nil
}

func (s *Service) CreateTempo(ctx context.Context, req *NovoTempoRequest) (*domain.TempoPadrao, error) {
	operacao := strings.TrimSpace(req.Operacao)
	if operacao == "" || !req.TempoMedioMinutos.Valido || !req.ValorHora.Valido {
		return nil, ErrDadosObrigatorios
	}
	if req.TempoMedioMinutos.Valor < 0 || req.ValorHora.Valor < 0 {
		return nil, ErrValorInvalido
	}

	config, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, ErrOperacaoBD
	}

	existente, err := s.configRepo.GetTempoByOperacao(config.ID, operacao)
	if err != nil {
		return nil, ErrOperacaoBD
	}
	if existente != nil {
		return nil, NewPricingError(ErrConflito, apiErrors.ErrConflict, "já existe um tempo para a operação "+operacao)
	}

	tempo := &domain.TempoPadrao{
		ConfiguracaoID:    config.ID,
		Operacao:          operacao,
		TempoMedioMinutos: req.TempoMedioMinutos.Valor,
		ValorHora:         req.ValorHora.Valor,
	}

	tempo, err = s.configRepo.CreateTempo(tempo)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewPricingError(ErrConflito, apiErrors.ErrConflict, "já existe um tempo para a operação "+operacao)
		}
		logrus.WithError(err).Error("Erro ao criar tempo padrão")
		return nil, ErrOperacaoBD
	}

	return tempo, nil
}

func (s *Service) UpdateTempo(ctx context.Context, req *AtualizaTempoRequest) (*domain.TempoPadrao, error) {
	if req.ID == 0 {
		return nil, ErrDadosObrigatorios
	}

	operacao := strings.TrimSpace(req.Operacao)
	if operacao == "" || !req.TempoMedioMinutos.Valido || !req.ValorHora.Valido {
		return nil, ErrDadosObrigatorios
	}
	if req.TempoMedioMinutos.Valor < 0 || req.ValorHora.Valor < 0 {
		return nil, ErrValorInvalido
	}

	tempo, err := s.configRepo.GetTempoByID(req.ID)
	if err != nil {
		return nil, ErrOperacaoBD
	}
	if tempo == nil {
		return nil, ErrNaoEncontrado
	}

	tempo.Operacao = operacao
	tempo.TempoMedioMinutos = req.TempoMedioMinutos.Valor
	tempo.ValorHora = req.ValorHora.Valor

	if err := s.configRepo.UpdateTempo(tempo); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewPricingError(ErrConflito, apiErrors.ErrConflict, "já existe um tempo para a operação "+operacao)
		}
		logrus.WithError(err).Error("Erro ao atualizar tempo padrão")
		return nil, ErrOperacaoBD
	}

	return tempo, nil
}

func (s *Service) DeleteTempo(id int) error {
	if id == 0 {
		return ErrDadosObrigatorios
	}

	if err := s.configRepo.DeleteTempo(id); err != nil {
		logrus.WithError(err).Error("Erro ao remover tempo padrão")
		return ErrOperacaoBD
	}
	return nil
}
