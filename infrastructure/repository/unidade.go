package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/myprintpt/catalog-api/infrastructure/database/postgres"
	"github.com/myprintpt/catalog-api/internal/domain"
)

const unidadesTable = "unidades"

type UnidadeRepository interface {
	Create(u *domain.Unidade) (*domain.Unidade, error)
	Update(u *domain.Unidade) error
	GetByID(id int) (*domain.Unidade, error)
	GetByNome(nome string) (*domain.Unidade, error)
	List(apenasAtivas bool) ([]*domain.Unidade, error)
	Delete(id int) error
	CountReferencias(id int) (int, error)
}

type unidadeRepository struct {
	conn *postgres.Connection
}

func NewUnidadeRepository(conn *postgres.Connection) UnidadeRepository {
	return &unidadeRepository{
		conn: conn,
	}
}

func (r *unidadeRepository) Create(u *domain.Unidade) (*domain.Unidade, error) {
	queryBuilder := squirrel.
		Insert(unidadesTable).
		Columns("nome", "abreviatura", "status").
		Values(u.Nome, u.Abreviatura, u.Status).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	unidadeSQL, unidadeArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(unidadeSQL, unidadeArgs...).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicado
		}
		return nil, err
	}

	return u, nil
}

func (r *unidadeRepository) Update(u *domain.Unidade) error {
	queryBuilder := squirrel.
		Update(unidadesTable).
		Set("nome", u.Nome).
		Set("abreviatura", u.Abreviatura).
		Set("status", u.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": u.ID}).
		PlaceholderFormat(squirrel.Dollar)

	unidadeSQL, unidadeArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(unidadeSQL, unidadeArgs...)
	if err != nil && IsUniqueViolation(err) {
		return ErrDuplicado
	}
	return err
}

func (r *unidadeRepository) GetByID(id int) (*domain.Unidade, error) {
	var u domain.Unidade
	err := r.conn.QueryRow(
		"SELECT id, nome, abreviatura, status, created_at, updated_at FROM unidades WHERE id = $1", id,
	).Scan(&u.ID, &u.Nome, &u.Abreviatura, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *unidadeRepository) GetByNome(nome string) (*domain.Unidade, error) {
	var u domain.Unidade
	err := r.conn.QueryRow(
		"SELECT id, nome, abreviatura, status, created_at, updated_at FROM unidades WHERE nome = $1 AND status = $2",
		nome, domain.StatusAtivo,
	).Scan(&u.ID, &u.Nome, &u.Abreviatura, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *unidadeRepository) List(apenasAtivas bool) ([]*domain.Unidade, error) {
	queryBuilder := squirrel.
		Select("id", "nome", "abreviatura", "status", "created_at", "updated_at").
		From(unidadesTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	if apenasAtivas {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": domain.StatusAtivo})
	}

	unidadesSQL, unidadesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(unidadesSQL, unidadesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unidades := make([]*domain.Unidade, 0)
	for rows.Next() {
		var u domain.Unidade
		if err := rows.Scan(&u.ID, &u.Nome, &u.Abreviatura, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		unidades = append(unidades, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return unidades, nil
}

func (r *unidadeRepository) Delete(id int) error {
	queryBuilder := squirrel.
		Delete(unidadesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	unidadeSQL, unidadeArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(unidadeSQL, unidadeArgs...)
	return err
}

// CountReferencias conta produtos e extras que referenciam a unidade,
// independentemente do status — registos inativos preservam histórico e
// continuam a bloquear a remoção física.
func (r *unidadeRepository) CountReferencias(id int) (int, error) {
	var total int
	err := r.conn.QueryRow(
		"SELECT (SELECT COUNT(*) FROM produtos WHERE unidade_id = $1) + (SELECT COUNT(*) FROM extras WHERE unidade_id = $1)",
		id,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
