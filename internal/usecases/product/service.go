package product

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/myprintpt/catalog-api/infrastructure/repository"
	"github.com/myprintpt/catalog-api/internal/domain"
	"github.com/myprintpt/catalog-api/internal/usecases/pricing"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
	"github.com/myprintpt/catalog-api/pkg/utils"
)

type ProductService interface {
	ListProdutos(apenasAtivos bool) ([]*domain.Produto, error)
	GetProduto(id int) (*domain.Produto, error)
	CreateProduto(ctx context.Context, req *domain.NovoProdutoRequest) (*domain.Produto, error)
	UpdateProduto(req *domain.AtualizaProdutoRequest) (*domain.Produto, error)
	DeleteProduto(id int) error

	ListExtras(apenasAtivos bool) ([]*domain.Extra, error)
	GetExtra(id int) (*domain.Extra, error)
	CreateExtra(ctx context.Context, req *domain.NovoExtraRequest) (*domain.Extra, error)
	UpdateExtra(req *domain.AtualizaExtraRequest) (*domain.Extra, error)
	DeleteExtra(id int) error
}

type Service struct {
	produtoRepo   repository.ProdutoRepository
	extraRepo     repository.ExtraRepository
	categoriaRepo repository.CategoriaRepository
	unidadeRepo   repository.UnidadeRepository
	configRepo    repository.ConfiguracaoRepository
}

func NewService(
	produtoRepo repository.ProdutoRepository,
	extraRepo repository.ExtraRepository,
	categoriaRepo repository.CategoriaRepository,
	unidadeRepo repository.UnidadeRepository,
	configRepo repository.ConfiguracaoRepository,
) ProductService {
	return &Service{
		produtoRepo:   produtoRepo,
		extraRepo:     extraRepo,
		categoriaRepo: categoriaRepo,
		unidadeRepo:   unidadeRepo,
		configRepo:    configRepo,
	}
}

func (s *Service) ListProdutos(apenasAtivos bool) ([]*domain.Produto, error) {
	produtos, err := s.produtoRepo.List(apenasAtivos)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar produtos")
		return nil, ErrOperacaoBD
	}
	return produtos, nil
}

func (s *Service) GetProduto(id int) (*domain.Produto, error) {
	produto, err := s.produtoRepo.GetByID(id)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produto")
		return nil, ErrOperacaoBD
	}
	if produto == nil {
		return nil, ErrNaoEncontrado
	}
	return produto, nil
}

func (s *Service) CreateProduto(ctx context.Context, req *domain.NovoProdutoRequest) (*domain.Produto, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" || req.CategoriaID == 0 || req.UnidadeID == 0 || !req.CustoBase.Valido {
		return nil, ErrDadosObrigatorios
	}
	if req.CustoBase.Valor < 0 {
		return nil, ErrValorInvalido
	}
	if req.Margem.Valido && req.Margem.Valor < 0 {
		return nil, ErrValorInvalido
	}

	if err := s.validaReferencias(req.CategoriaID, req.UnidadeID); err != nil {
		return nil, err
	}

	referencia := strings.TrimSpace(req.Referencia)
	if referencia == "" {
		gerada, err := utils.GenerateReferencia("P")
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar referência de produto")
			return nil, ErrOperacaoBD
		}
		referencia = gerada
	}

	margem := req.Margem.Valor
	if !req.Margem.Valido {
		resolvida, err := s.margemResolvida(ctx, req.CategoriaID)
		if err != nil {
			return nil, err
		}
		margem = resolvida
	}

	produto := &domain.Produto{
		Referencia:  referencia,
		Nome:        nome,
		Descricao:   req.Descricao,
		CategoriaID: req.CategoriaID,
		UnidadeID:   req.UnidadeID,
		CustoBase:   req.CustoBase.Valor,
		Margem:      margem,
		LarguraMM:   req.LarguraMM.Ptr(),
		AlturaMM:    req.AlturaMM.Ptr(),
		Gramagem:    req.Gramagem.Ptr(),
		TipoPapel:   req.TipoPapel,
		Cores:       req.Cores,
		Acabamento:  req.Acabamento,
		Paginas:     paginasDe(req.Paginas),
		Orientacao:  req.Orientacao,
		Status:      domain.StatusAtivo,
	}

	produto, err := s.produtoRepo.Create(produto)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewProductError(ErrConflito, apiErrors.ErrConflict, "já existe um produto com a referência "+referencia)
		}
		logrus.WithError(err).Error("Erro ao criar produto")
		return nil, ErrOperacaoBD
	}

	return produto, nil
}

func (s *Service) UpdateProduto(req *domain.AtualizaProdutoRequest) (*domain.Produto, error) {
	if req.ID == 0 {
		return nil, ErrDadosObrigatorios
	}

	produto, err := s.produtoRepo.GetByID(req.ID)
	if err != nil {
		return nil, ErrOperacaoBD
	}
	if produto == nil {
		return nil, ErrNaoEncontrado
	}

	if req.Referencia != nil {
		referencia := strings.TrimSpace(*req.Referencia)
		if referencia == "" {
			return nil, ErrDadosObrigatorios
		}
		produto.Referencia = referencia
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, ErrDadosObrigatorios
		}
		produto.Nome = nome
	}

	if req.Descricao != nil {
		produto.Descricao = req.Descricao
	}

	if req.CategoriaID != nil {
		produto.CategoriaID = *req.CategoriaID
	}
	if req.UnidadeID != nil {
		produto.UnidadeID = *req.UnidadeID
	}
	if req.CategoriaID != nil || req.UnidadeID != nil {
		if err := s.validaReferencias(produto.CategoriaID, produto.UnidadeID); err != nil {
			return nil, err
		}
	}

	if req.CustoBase.Valido {
		if req.CustoBase.Valor < 0 {
			return nil, ErrValorInvalido
		}
		produto.CustoBase = req.CustoBase.Valor
	}

	if req.Margem.Valido {
		if req.Margem.Valor < 0 {
			return nil, ErrValorInvalido
		}
		produto.Margem = req.Margem.Valor
	}

	if req.LarguraMM.Valido {
		produto.LarguraMM = req.LarguraMM.Ptr()
	}
	if req.AlturaMM.Valido {
		produto.AlturaMM = req.AlturaMM.Ptr()
	}
	if req.Gramagem.Valido {
		produto.Gramagem = req.Gramagem.Ptr()
	}
	if req.TipoPapel != nil {
		produto.TipoPapel = req.TipoPapel
	}
	if req.Cores != nil {
		produto.Cores = req.Cores
	}
	if req.Acabamento != nil {
		produto.Acabamento = req.Acabamento
	}
	if req.Paginas.Valido {
		produto.Paginas = paginasDe(req.Paginas)
	}
	if req.Orientacao != nil {
		produto.Orientacao = req.Orientacao
	}

	if err := s.produtoRepo.Update(produto); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewProductError(ErrConflito, apiErrors.ErrConflict, "já existe um produto com a referência "+produto.Referencia)
		}
		logrus.WithError(err).Error("Erro ao atualizar produto")
		return nil, ErrOperacaoBD
	}

	return produto, nil
}

// DeleteProduto faz a remoção lógica: o produto passa a inativo e sai das
// listagens, mas o registo e o histórico ficam na base.
func (s *Service) DeleteProduto(id int) error {
	if id == 0 {
		return ErrDadosObrigatorios
	}

	produto, err := s.produtoRepo.GetByID(id)
	if err != nil {
		return ErrOperacaoBD
	}
	if produto == nil {
		return ErrNaoEncontrado
	}

	if err := s.produtoRepo.SetStatus(id, domain.StatusInativo); err != nil {
		logrus.WithError(err).Error("Erro ao desativar produto")
		return ErrOperacaoBD
	}

	return nil
}

func (s *Service) ListExtras(apenasAtivos bool) ([]*domain.Extra, error) {
	extras, err := s.extraRepo.List(apenasAtivos)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar extras")
		return nil, ErrOperacaoBD
	}
	return extras, nil
}

func (s *Service) GetExtra(id int) (*domain.Extra, error) {
	extra, err := s.extraRepo.GetByID(id)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar extra")
		return nil, ErrOperacaoBD
	}
	if extra == nil {
		return nil, ErrNaoEncontrado
	}
	return extra, nil
}

func (s *Service) CreateExtra(ctx context.Context, req *domain.NovoExtraRequest) (*domain.Extra, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" || req.CategoriaID == 0 || req.UnidadeID == 0 || !req.CustoBase.Valido {
		return nil, ErrDadosObrigatorios
	}
	if req.CustoBase.Valor < 0 {
		return nil, ErrValorInvalido
	}
	if req.Margem.Valido && req.Margem.Valor < 0 {
		return nil, ErrValorInvalido
	}

	if err := s.validaReferencias(req.CategoriaID, req.UnidadeID); err != nil {
		return nil, err
	}

	margem := req.Margem.Valor
	if !req.Margem.Valido {
		resolvida, err := s.margemResolvida(ctx, req.CategoriaID)
		if err != nil {
			return nil, err
		}
		margem = resolvida
	}

	extra := &domain.Extra{
		Nome:             nome,
		Descricao:        req.Descricao,
		CategoriaID:      req.CategoriaID,
		UnidadeID:        req.UnidadeID,
		CustoBase:        req.CustoBase.Valor,
		Margem:           margem,
		TipoAplicacao:    req.TipoAplicacao,
		UnidadeFaturacao: req.UnidadeFaturacao,
		Status:           domain.StatusAtivo,
	}

	extra, err := s.extraRepo.Create(extra)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewProductError(ErrConflito, apiErrors.ErrConflict, "já existe um extra com o nome "+nome)
		}
		logrus.WithError(err).Error("Erro ao criar extra")
		return nil, ErrOperacaoBD
	}

	return extra, nil
}

func (s *Service) UpdateExtra(req *domain.AtualizaExtraRequest) (*domain.Extra, error) {
	if req.ID == 0 {
		return nil, ErrDadosObrigatorios
	}

	extra, err := s.extraRepo.GetByID(req.ID)
	if err != nil {
		return nil, ErrOperacaoBD
	}
	if extra == nil {
		return nil, ErrNaoEncontrado
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, ErrDadosObrigatorios
		}
		extra.Nome = nome
	}

	if req.Descricao != nil {
		extra.Descricao = req.Descricao
	}

	if req.CategoriaID != nil {
		extra.CategoriaID = *req.CategoriaID
	}
	if req.UnidadeID != nil {
		extra.UnidadeID = *req.UnidadeID
	}
	if req.CategoriaID != nil || req.UnidadeID != nil {
		if err := s.validaReferencias(extra.CategoriaID, extra.UnidadeID); err != nil {
			return nil, err
		}
	}

	if req.CustoBase.Valido {
		if req.CustoBase.Valor < 0 {
			return nil, ErrValorInvalido
		}
		extra.CustoBase = req.CustoBase.Valor
	}

	if req.Margem.Valido {
		if req.Margem.Valor < 0 {
			return nil, ErrValorInvalido
		}
		extra.Margem = req.Margem.Valor
	}

	if req.TipoAplicacao != nil {
		extra.TipoAplicacao = req.TipoAplicacao
	}
	if req.UnidadeFaturacao != nil {
		extra.UnidadeFaturacao = req.UnidadeFaturacao
	}

	if err := s.extraRepo.Update(extra); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, NewProductError(ErrConflito, apiErrors.ErrConflict, "já existe um extra com o nome "+extra.Nome)
		}
		logrus.WithError(err).Error("Erro ao atualizar extra")
		return nil, ErrOperacaoBD
	}

	return extra, nil
}

// DeleteExtra faz a remoção lógica do extra
func (s *Service) DeleteExtra(id int) error {
	if id == 0 {
		return ErrDadosObrigatorios
	}

	extra, err := s.extraRepo.GetByID(id)
	if err != nil {
		return ErrOperacaoBD
	}
	if extra == nil {
		return ErrNaoEncontrado
	}

	if err := s.extraRepo.SetStatus(id, domain.StatusInativo); err != nil {
		logrus.WithError(err).Error("Erro ao desativar extra")
		return ErrOperacaoBD
	}

	return nil
}

// validaReferencias garante que categoria e unidade existem antes de
// gravar. Referências desativadas continuam válidas para registos já
// existentes, por isso a verificação é só de existência.
func (s *Service) validaReferencias(categoriaID, unidadeID int) error {
	categoria, err := s.categoriaRepo.GetByID(categoriaID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar categoria")
		return ErrOperacaoBD
	}
	if categoria == nil {
		return NewProductError(ErrReferenciaInvalida, apiErrors.ErrInvalidRequest, "categoria inexistente")
	}

	unidade, err := s.unidadeRepo.GetByID(unidadeID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar unidade")
		return ErrOperacaoBD
	}
	if unidade == nil {
		return NewProductError(ErrReferenciaInvalida, apiErrors.ErrInvalidRequest, "unidade inexistente")
	}

	return nil
}

// margemResolvida determina a margem inicial de um registo novo quando o
// pedido não traz margem explícita: margem da categoria se configurada,
// senão a margem padrão.
func (s *Service) margemResolvida(ctx context.Context, categoriaID int) (float64, error) {
	configuracao, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar configuração")
		return 0, ErrOperacaoBD
	}

	categorias, err := s.categoriaRepo.List(false)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar categorias")
		return 0, ErrOperacaoBD
	}

	return pricing.ResolveMargem(categoriaID, categorias, configuracao, configuracao.MargemPadrao), nil
}

func paginasDe(n domain.Numero) *int {
	if !n.Valido {
		return nil
	}
	paginas := int(n.Valor)
	return &paginas
}
