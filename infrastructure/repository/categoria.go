package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/myprintpt/catalog-api/infrastructure/database/postgres"
	"github.com/myprintpt/catalog-api/internal/domain"
)

const categoriasTable = "categorias"

type CategoriaRepository interface {
	Create(c *domain.Categoria) (*domain.Categoria, error)
	Update(c *domain.Categoria) error
	GetByID(id int) (*domain.Categoria, error)
	GetByNome(nome string) (*domain.Categoria, error)
	List(apenasAtivas bool) ([]*domain.Categoria, error)
	Delete(id int) error
	CountReferencias(id int) (int, error)
	NextOrdem(tipo domain.TipoCategoria) (int, error)
}

type categoriaRepository struct {
	conn *postgres.Connection
}

func NewCategoriaRepository(conn *postgres.Connection) CategoriaRepository {
	return &categoriaRepository{
		conn: conn,
	}
}

func (r *categoriaRepository) Create(c *domain.Categoria) (*domain.Categoria, error) {
	queryBuilder := squirrel.
		Insert(categoriasTable).
		Columns("nome", "slug", "tipo", "ordem", "status").
		Values(c.Nome, c.Slug, c.Tipo, c.Ordem, c.Status).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	categoriaSQL, categoriaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(categoriaSQL, categoriaArgs...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicado
		}
		return nil, err
	}

	return c, nil
}

func (r *categoriaRepository) Update(c *domain.Categoria) error {
	queryBuilder := squirrel.
		Update(categoriasTable).
		Set("nome", c.Nome).
		Set("slug", c.Slug).
		Set("tipo", c.Tipo).
		Set("ordem", c.Ordem).
		Set("status", c.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		PlaceholderFormat(squirrel.Dollar)

	categoriaSQL, categoriaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(categoriaSQL, categoriaArgs...)
	if err != nil && IsUniqueViolation(err) {
		return ErrDuplicado
	}
	return err
}

func (r *categoriaRepository) GetByID(id int) (*domain.Categoria, error) {
	var c domain.Categoria
	err := r.conn.QueryRow(
		"SELECT id, nome, slug, tipo, ordem, status, created_at, updated_at FROM categorias WHERE id = $1", id,
	).Scan(&c.ID, &c.Nome, &c.Slug, &c.Tipo, &c.Ordem, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) GetByNome(nome string) (*domain.Categoria, error) {
	var c domain.Categoria
	err := r.conn.QueryRow(
		"SELECT id, nome, slug, tipo, ordem, status, created_at, updated_at FROM categorias WHERE nome = $1", nome,
	).Scan(&c.ID, &c.Nome, &c.Slug, &c.Tipo, &c.Ordem, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) List(apenasAtivas bool) ([]*domain.Categoria, error) {
	queryBuilder := squirrel.
		Select("id", "nome", "slug", "tipo", "ordem", "status", "created_at", "updated_at").
		From(categoriasTable).
		OrderBy("tipo ASC", "ordem ASC").
		PlaceholderFormat(squirrel.Dollar)

	if apenasAtivas {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": domain.StatusAtivo})
	}

	categoriasSQL, categoriasArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(categoriasSQL, categoriasArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categorias := make([]*domain.Categoria, 0)
	for rows.Next() {
		var c domain.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.Slug, &c.Tipo, &c.Ordem, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categorias = append(categorias, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categorias, nil
}

func (r *categoriaRepository) Delete(id int) error {
	queryBuilder := squirrel.
		Delete(categoriasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	categoriaSQL, categoriaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(categoriaSQL, categoriaArgs...)
	return err
}

// CountReferencias conta produtos e extras que referenciam a categoria
func (r *categoriaRepository) CountReferencias(id int) (int, error) {
	var total int
	err := r.conn.QueryRow(
		"SELECT (SELECT COUNT(*) FROM produtos WHERE categoria_id = $1) + (SELECT COUNT(*) FROM extras WHERE categoria_id = $1)",
		id,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// NextOrdem devolve a próxima ordem de apresentação dentro do tipo
func (r *categoriaRepository) NextOrdem(tipo domain.TipoCategoria) (int, error) {
	var next int
	err := r.conn.QueryRow(
		"SELECT COALESCE(MAX(ordem), 0) + 1 FROM categorias WHERE tipo = $1", tipo,
	).Scan(&next)
	if err != nil {
		return 0, err
	}
	return next, nil
}
