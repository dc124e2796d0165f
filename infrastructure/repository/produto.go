package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/myprintpt/catalog-api/infrastructure/database/postgres"
	"github.com/myprintpt/catalog-api/internal/domain"
)

const produtosTable = "produtos"

var produtoColumns = []string{
	"id", "referencia", "nome", "descricao", "categoria_id", "unidade_id",
	"custo_base", "margem", "largura_mm", "altura_mm", "gramagem",
	"tipo_papel", "cores", "acabamento", "paginas", "orientacao",
	"status", "created_at", "updated_at",
}

type ProdutoRepository interface {
	Create(p *domain.Produto) (*domain.Produto, error)
	Update(p *domain.Produto) error
	GetByID(id int) (*domain.Produto, error)
	List(apenasAtivos bool) ([]*domain.Produto, error)
	SetStatus(id int, status domain.Status) error
	CountComReferenciaInativa() (int, error)
}

type produtoRepository struct {
	conn *postgres.Connection
}

func NewProdutoRepository(conn *postgres.Connection) ProdutoRepository {
	return &produtoRepository{
		conn: conn,
	}
}

func (r *produtoRepository) Create(p *domain.Produto) (*domain.Produto, error) {
	queryBuilder := squirrel.
		Insert(produtosTable).
		Columns(
			"referencia", "nome", "descricao", "categoria_id", "unidade_id",
			"custo_base", "margem", "largura_mm", "altura_mm", "gramagem",
			"tipo_papel", "cores", "acabamento", "paginas", "orientacao", "status",
		).
		Values(
			p.Referencia, p.Nome, p.Descricao, p.CategoriaID, p.UnidadeID,
			p.CustoBase, p.Margem, p.LarguraMM, p.AlturaMM, p.Gramagem,
			p.TipoPapel, p.Cores, p.Acabamento, p.Paginas, p.Orientacao, p.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	produtoSQL, produtoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(produtoSQL, produtoArgs...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicado
		}
		return nil, err
	}

	return p, nil
}

func (r *produtoRepository) Update(p *domain.Produto) error {
	queryBuilder := squirrel.
		Update(produtosTable).
		Set("referencia", p.Referencia).
		Set("nome", p.Nome).
		Set("descricao", p.Descricao).
		Set("categoria_id", p.CategoriaID).
		Set("unidade_id", p.UnidadeID).
		Set("custo_base", p.CustoBase).
		Set("margem", p.Margem).
		Set("largura_mm", p.LarguraMM).
		Set("altura_mm", p.AlturaMM).
		Set("gramagem", p.Gramagem).
		Set("tipo_papel", p.TipoPapel).
		Set("cores", p.Cores).
		Set("acabamento", p.Acabamento).
		Set("paginas", p.Paginas).
		Set("orientacao", p.Orientacao).
		Set("status", p.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		PlaceholderFormat(squirrel.Dollar)

	produtoSQL, produtoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(produtoSQL, produtoArgs...)
	if err != nil && IsUniqueViolation(err) {
		return ErrDuplicado
	}
	return err
}

func (r *produtoRepository) GetByID(id int) (*domain.Produto, error) {
	queryBuilder := squirrel.
		Select(produtoColumns...).
		From(produtosTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	produtoSQL, produtoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanProduto(r.conn.QueryRow(produtoSQL, produtoArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *produtoRepository) List(apenasAtivos bool) ([]*domain.Produto, error) {
	queryBuilder := squirrel.
		Select(produtoColumns...).
		From(produtosTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	if apenasAtivos {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": domain.StatusAtivo})
	}

	produtosSQL, produtosArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(produtosSQL, produtosArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	produtos := make([]*domain.Produto, 0)
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, err
		}
		produtos = append(produtos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return produtos, nil
}

// SetStatus implementa a remoção lógica: o registo nunca é apagado
func (r *produtoRepository) SetStatus(id int, status domain.Status) error {
	queryBuilder := squirrel.
		Update(produtosTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	produtoSQL, produtoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(produtoSQL, produtoArgs...)
	return err
}

// CountComReferenciaInativa conta produtos ativos cuja categoria ou
// unidade já foi desativada. Usado pela auditoria agendada do catálogo.
func (r *produtoRepository) CountComReferenciaInativa() (int, error) {
	var total int
	err := r.conn.QueryRow(`
		SELECT COUNT(*)
		FROM produtos p
		JOIN categorias c ON c.id = p.categoria_id
		JOIN unidades u ON u.id = p.unidade_id
		WHERE p.status = $1 AND (c.status = $2 OR u.status = $2)`,
		domain.StatusAtivo, domain.StatusInativo,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduto(row rowScanner) (*domain.Produto, error) {
	var p domain.Produto
	err := row.Scan(
		&p.ID, &p.Referencia, &p.Nome, &p.Descricao, &p.CategoriaID, &p.UnidadeID,
		&p.CustoBase, &p.Margem, &p.LarguraMM, &p.AlturaMM, &p.Gramagem,
		&p.TipoPapel, &p.Cores, &p.Acabamento, &p.Paginas, &p.Orientacao,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
