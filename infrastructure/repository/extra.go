package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/myprintpt/catalog-api/infrastructure/database/postgres"
	"github.com/myprintpt/catalog-api/internal/domain"
)

const extrasTable = "extras"

var extraColumns = []string{
	"id", "nome", "descricao", "categoria_id", "unidade_id", "custo_base",
	"margem", "tipo_aplicacao", "unidade_faturacao", "status",
	"created_at", "updated_at",
}

type ExtraRepository interface {
	Create(e *domain.Extra) (*domain.Extra, error)
	Update(e *domain.Extra) error
	GetByID(id int) (*domain.Extra, error)
	List(apenasAtivos bool) ([]*domain.Extra, error)
	SetStatus(id int, status domain.Status) error
	CountComReferenciaInativa() (int, error)
}

type extraRepository struct {
	conn *postgres.Connection
}

func NewExtraRepository(conn *postgres.Connection) ExtraRepository {
	return &extraRepository{
		conn: conn,
	}
}

func (r *extraRepository) Create(e *domain.Extra) (*domain.Extra, error) {
	queryBuilder := squirrel.
		Insert(extrasTable).
		Columns(
			"nome", "descricao", "categoria_id", "unidade_id", "custo_base",
			"margem", "tipo_aplicacao", "unidade_faturacao", "status",
		).
		Values(
			e.Nome, e.Descricao, e.CategoriaID, e.UnidadeID, e.CustoBase,
			e.Margem, e.TipoAplicacao, e.UnidadeFaturacao, e.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	extraSQL, extraArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(extraSQL, extraArgs...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (r *extraRepository) Update(e *domain.Extra) error {
	queryBuilder := squirrel.
		Update(extrasTable).
		Set("nome", e.Nome).
		Set("descricao", e.Descricao).
		Set("categoria_id", e.CategoriaID).
		Set("unidade_id", e.UnidadeID).
		Set("custo_base", e.CustoBase).
		Set("margem", e.Margem).
		Set("tipo_aplicacao", e.TipoAplicacao).
		Set("unidade_faturacao", e.UnidadeFaturacao).
		Set("status", e.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID}).
		PlaceholderFormat(squirrel.Dollar)

	extraSQL, extraArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(extraSQL, extraArgs...)
	return err
}

func (r *extraRepository) GetByID(id int) (*domain.Extra, error) {
	queryBuilder := squirrel.
		Select(extraColumns...).
		From(extrasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	extraSQL, extraArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	e, err := scanExtra(r.conn.QueryRow(extraSQL, extraArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *extraRepository) List(apenasAtivos bool) ([]*domain.Extra, error) {
	queryBuilder := squirrel.
		Select(extraColumns...).
		From(extrasTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	if apenasAtivos {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": domain.StatusAtivo})
	}

	extrasSQL, extrasArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(extrasSQL, extrasArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extras := make([]*domain.Extra, 0)
	for rows.Next() {
		e, err := scanExtra(rows)
		if err != nil {
			return nil, err
		}
		extras = append(extras, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return extras, nil
}

// SetStatus implementa a remoção lógica: o registo nunca é apagado
func (r *extraRepository) SetStatus(id int, status domain.Status) error {
	queryBuilder := squirrel.
		Update(extrasTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	extraSQL, extraArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(extraSQL, extraArgs...)
	return err
}

// CountComReferenciaInativa conta extras ativos cuja categoria ou
// unidade já foi desativada. Usado pela auditoria agendada do catálogo.
func (r *extraRepository) CountComReferenciaInativa() (int, error) {
	var total int
	err := r.conn.QueryRow(`
		SELECT COUNT(*)
		FROM extras e
		JOIN categorias c ON c.id = e.categoria_id
		JOIN unidades u ON u.id = e.unidade_id
		WHERE e.status = $1 AND (c.status = $2 OR u.status = $2)`,
		domain.StatusAtivo, domain.StatusInativo,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func scanExtra(row rowScanner) (*domain.Extra, error) {
	var e domain.Extra
	err := row.Scan(
		&e.ID, &e.Nome, &e.Descricao, &e.CategoriaID, &e.UnidadeID, &e.CustoBase,
		&e.Margem, &e.TipoAplicacao, &e.UnidadeFaturacao, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
