package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/myprintpt/catalog-api/infrastructure/database/postgres"
	"github.com/myprintpt/catalog-api/internal/domain"
)

const (
	configuracoesTable = "configuracoes"
	margensTable       = "margens_categoria"
	minimosTable       = "minimos_faturacao"
	temposTable        = "tempos_padrao"
)

type ConfiguracaoRepository interface {
	GetOrCreate(ctx context.Context) (*domain.Configuracao, error)
	SetMargemPadrao(configuracaoID int, margem float64) error

	ListMargens(configuracaoID int) ([]*domain.MargemCategoria, error)
	GetMargemByID(id int) (*domain.MargemCategoria, error)
	GetMargemByCategoria(configuracaoID int, categoria string) (*domain.MargemCategoria, error)
	CreateMargem(m *domain.MargemCategoria) (*domain.MargemCategoria, error)
	UpdateMargem(m *domain.MargemCategoria) error
	DeleteMargem(id int) error

	ListMinimos(configuracaoID int) ([]*domain.MinimoFaturacao, error)
	GetMinimoByID(id int) (*domain.MinimoFaturacao, error)
	GetMinimoByTipo(configuracaoID int, tipo string) (*domain.MinimoFaturacao, error)
	CreateMinimo(m *domain.MinimoFaturacao) (*domain.MinimoFaturacao, error)
	UpdateMinimo(m *domain.MinimoFaturacao) error
	DeleteMinimo(id int) error

	ListTempos(configuracaoID int) ([]*domain.TempoPadrao, error)
	GetTempoByID(id int) (*domain.TempoPadrao, error)
	GetTempoByOperacao(configuracaoID int, operacao string) (*domain.TempoPadrao, error)
	CreateTempo(t *domain.TempoPadrao) (*domain.TempoPadrao, error)
	UpdateTempo(t *domain.TempoPadrao) error
	DeleteTempo(id int) error
}

type configuracaoRepository struct {
	conn *postgres.Connection
}

func NewConfiguracaoRepository(conn *postgres.Connection) ConfiguracaoRepository {
	return &configuracaoRepository{
		conn: conn,
	}
}

// GetOrCreate devolve o registo único de configuração, criando-o com a
// margem padrão inicial se ainda não existir. O find-or-create corre
// dentro de uma transação para que duas requisições concorrentes não
// criem duas linhas.
func (r *configuracaoRepository) GetOrCreate(ctx context.Context) (*domain.Configuracao, error) {
	var config domain.Configuracao

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRow(
			"SELECT id, margem_padrao, created_at, updated_at FROM configuracoes ORDER BY id LIMIT 1 FOR UPDATE",
		).Scan(&config.ID, &config.MargemPadrao, &config.CreatedAt, &config.UpdatedAt)
		if err == nil {
			return nil
		}
		if err != sql.ErrNoRows {
			return err
		}

		return tx.QueryRow(
			"INSERT INTO configuracoes (margem_padrao) VALUES ($1) RETURNING id, margem_padrao, created_at, updated_at",
			domain.MargemPadraoInicial,
		).Scan(&config.ID, &config.MargemPadrao, &config.CreatedAt, &config.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}

	if config.Margens, err = r.ListMargens(config.ID); err != nil {
		return nil, err
	}
	if config.Minimos, err = r.ListMinimos(config.ID); err != nil {
		return nil, err
	}
	if config.Tempos, err = r.ListTempos(config.ID); err != nil {
		return nil, err
	}

	return &config, nil
}

func (r *configuracaoRepository) SetMargemPadrao(configuracaoID int, margem float64) error {
	queryBuilder := squirrel.
		Update(configuracoesTable).
		Set("margem_padrao", margem).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": configuracaoID}).
		PlaceholderFormat(squirrel.Dollar)

	configSQL, configArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(configSQL, configArgs...)
	return err
}

func (r *configuracaoRepository) ListMargens(configuracaoID int) ([]*domain.MargemCategoria, error) {
	queryBuilder := squirrel.
		Select("id", "configuracao_id", "categoria", "margem").
		From(margensTable).
		Where(squirrel.Eq{"configuracao_id": configuracaoID}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	margensSQL, margensArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(margensSQL, margensArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	margens := make([]*domain.MargemCategoria, 0)
	for rows.Next() {
		var m domain.MargemCategoria
		if err := rows.Scan(&m.ID, &m.ConfiguracaoID, &m.Categoria, &m.Margem); err != nil {
			return nil, err
		}
		margens = append(margens, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return margens, nil
}

func (r *configuracaoRepository) GetMargemByID(id int) (*domain.MargemCategoria, error) {
	var m domain.MargemCategoria
	err := r.conn.QueryRow(
		"SELECT id, configuracao_id, categoria, margem FROM margens_categoria WHERE id = $1", id,
	).Scan(&m.ID, &m.ConfiguracaoID, &m.Categoria, &m.Margem)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *configuracaoRepository) GetMargemByCategoria(configuracaoID int, categoria string) (*domain.MargemCategoria, error) {
	var m domain.MargemCategoria
	err := r.conn.QueryRow(
		"SELECT id, configuracao_id, categoria, margem FROM margens_categoria WHERE configuracao_id = $1 AND categoria = $2",
		configuracaoID, categoria,
	).Scan(&m.ID, &m.ConfiguracaoID, &m.Categoria, &m.Margem)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *configuracaoRepository) CreateMargem(m *domain.MargemCategoria) (*domain.MargemCategoria, error) {
	queryBuilder := squirrel.
		Insert(margensTable).
		Columns("configuracao_id", "categoria", "margem").
		Values(m.ConfiguracaoID, m.Categoria, m.Margem).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	margemSQL, margemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(margemSQL, margemArgs...).Scan(&m.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicado
		}
		return nil, err
	}

	return m, nil
}

func (r *configuracaoRepository) UpdateMargem(m *domain.MargemCategoria) error {
	queryBuilder := squirrel.
		Update(margensTable).
		Set("categoria", m.Categoria).
		Set("margem", m.Margem).
		Where(squirrel.Eq{"id": m.ID}).
		PlaceholderFormat(squirrel.Dollar)

	margemSQL, margemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(margemSQL, margemArgs...)
	if err != nil && IsUniqueViolation(err) {
		return ErrDuplicado
	}
	return err
}

func (r *configuracaoRepository) DeleteMargem(id int) error {
	return r.deleteByID(margensTable, id)
}

func (r *configuracaoRepository) ListMinimos(configuracaoID int) ([]*domain.MinimoFaturacao, error) {
	queryBuilder := squirrel.
		Select("id", "configuracao_id", "tipo", "valor_minimo").
		From(minimosTable).
		Where(squirrel.Eq{"configuracao_id": configuracaoID}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	minimosSQL, minimosArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(minimosSQL, minimosArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	minimos := make([]*domain.MinimoFaturacao, 0)
	for rows.Next() {
		var m domain.MinimoFaturacao
		if err := rows.Scan(&m.ID, &m.ConfiguracaoID, &m.Tipo, &m.ValorMinimo); err != nil {
			return nil, err
		}
		minimos = append(minimos, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return minimos, nil
}

func (r *configuracaoRepository) GetMinimoByID(id int) (*domain.MinimoFaturacao, error) {
	var m domain.MinimoFaturacao
	err := r.conn.QueryRow(
		"SELECT id, configuracao_id, tipo, valor_minimo FROM minimos_faturacao WHERE id = $1", id,
	).Scan(&m.ID, &m.ConfiguracaoID, &m.Tipo, &m.ValorMinimo)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *configuracaoRepository) GetMinimoByTipo(configuracaoID int, tipo string) (*domain.MinimoFaturacao, error) {
	var m domain.MinimoFaturacao
	err := r.conn.QueryRow(
		"SELECT id, configuracao_id, tipo, valor_minimo FROM minimos_faturacao WHERE configuracao_id = $1 AND tipo = $2",
		configuracaoID, tipo,
	).Scan(&m.ID, &m.ConfiguracaoID, &m.Tipo, &m.ValorMinimo)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *configuracaoRepository) CreateMinimo(m *domain.MinimoFaturacao) (*domain.MinimoFaturacao, error) {
	queryBuilder := squirrel.
		Insert(minimosTable).
		Columns("configuracao_id", "tipo", "valor_minimo").
		Values(m.ConfiguracaoID, m.Tipo, m.ValorMinimo).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	minimoSQL, minimoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(minimoSQL, minimoArgs...).Scan(&m.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicado
		}
		return nil, err
	}

	return m, nil
}

func (r *configuracaoRepository) UpdateMinimo(m *domain.MinimoFaturacao) error {
	queryBuilder := squirrel.
		Update(minimosTable).
		Set("tipo", m.Tipo).
		Set("valor_minimo", m.ValorMinimo).
		Where(squirrel.Eq{"id": m.ID}).
		PlaceholderFormat(squirrel.Dollar)

	minimoSQL, minimoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(minimoSQL, minimoArgs...)
	if err != nil && IsUniqueViolation(err) {
		return ErrDuplicado
	}
	return err
}

func (r *configuracaoRepository) DeleteMinimo(id int) error {
	return r.deleteByID(minimosTable, id)
}

func (r *configuracaoRepository) ListTempos(configuracaoID int) ([]*domain.TempoPadrao, error) {
	queryBuilder := squirrel.
		Select("id", "configuracao_id", "operacao", "tempo_medio_minutos", "valor_hora").
		From(temposTable).
		Where(squirrel.Eq{"configuracao_id": configuracaoID}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	temposSQL, temposArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(temposSQL, temposArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tempos := make([]*domain.TempoPadrao, 0)
	for rows.Next() {
		var t domain.TempoPadrao
		if err := rows.Scan(&t.ID, &t.ConfiguracaoID, &t.Operacao, &t.TempoMedioMinutos, &t.ValorHora); err != nil {
			return nil, err
		}
		tempos = append(tempos, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tempos, nil
}

func (r *configuracaoRepository) GetTempoByID(id int) (*domain.TempoPadrao, error) {
	var t domain.TempoPadrao
	err := r.conn.QueryRow(
		"SELECT id, configuracao_id, operacao, tempo_medio_minutos, valor_hora FROM tempos_padrao WHERE id = $1", id,
	).Scan(&t.ID, &t.ConfiguracaoID, &t.Operacao, &t.TempoMedioMinutos, &t.ValorHora)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *configuracaoRepository) GetTempoByOperacao(configuracaoID int, operacao string) (*domain.TempoPadrao, error) {
	var t domain.TempoPadrao
	err := r.conn.QueryRow(
		"SELECT id, configuracao_id, operacao, tempo_medio_minutos, valor_hora FROM tempos_padrao WHERE configuracao_id = $1 AND operacao = $2",
		configuracaoID, operacao,
	).Scan(&t.ID, &t.ConfiguracaoID, &t.Operacao, &t.TempoMedioMinutos, &t.ValorHora)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *configuracaoRepository) CreateTempo(t *domain.TempoPadrao) (*domain.TempoPadrao, error) {
	queryBuilder := squirrel.
		Insert(temposTable).
		Columns("configuracao_id", "operacao", "tempo_medio_minutos", "valor_hora").
		Values(t.ConfiguracaoID, t.Operacao, t.TempoMedioMinutos, t.ValorHora).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	tempoSQL, tempoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(tempoSQL, tempoArgs...).Scan(&t.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicado
		}
		return nil, err
	}

	return t, nil
}

func (r *configuracaoRepository) UpdateTempo(t *domain.TempoPadrao) error {
	queryBuilder := squirrel.
		Update(temposTable).
		Set("operacao", t.Operacao).
		Set("tempo_medio_minutos", t.TempoMedioMinutos).
		Set("valor_hora", t.ValorHora).
		Where(squirrel.Eq{"id": t.ID}).
		PlaceholderFormat(squirrel.Dollar)

	tempoSQL, tempoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(tempoSQL, tempoArgs...)
	if err != nil && IsUniqueViolation(err) {
		return ErrDuplicado
	}
	return err
}

func (r *configuracaoRepository) DeleteTempo(id int) error {
	return r.deleteByID(temposTable, id)
}

func (r *configuracaoRepository) deleteByID(table string, id int) error {
	queryBuilder := squirrel.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	deleteSQL, deleteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(deleteSQL, deleteArgs...)
	return err
}
