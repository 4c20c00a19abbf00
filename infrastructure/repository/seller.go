package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-commission-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

const (
	sellersTable   = "sellers s"
	sellersColumns = "s.id, s.name, s.email, s.commission_rate, s.created_at, s.updated_at, s.deleted_at"

	uniqueViolationCode = "23505"
)

// ErrDuplicateEmail é retornado quando a constraint de e-mail único é violada
var ErrDuplicateEmail = errors.New("e-mail já cadastrado")

type SellerRepository interface {
	// ListActive lista todos os vendedores não removidos, ordenados por ID
	ListActive(ctx context.Context) ([]*domain.Seller, error)
	// FindByID retorna nil quando o vendedor não existe ou foi removido
	FindByID(ctx context.Context, id int64) (*domain.Seller, error)
	ListPaginated(ctx context.Context, page, perPage int) ([]*domain.Seller, int64, error)
	Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

type sellerRepository struct {
	conn postgres.Queryer
}

func NewSellerRepository(conn postgres.Queryer) SellerRepository {
	return &sellerRepository{
		conn: conn,
	}
}

// activeSellers aplica o filtro obrigatório de soft delete
func activeSellers(columns string) squirrel.SelectBuilder {
	return squirrel.
		Select(columns).
		From(sellersTable).
		Where(squirrel.Eq{"s.deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar)
}

func listActiveSellersQuery() (string, []interface{}, error) {
	return activeSellers(sellersColumns).OrderBy("s.id ASC").ToSql()
}

func findSellerQuery(id int64) (string, []interface{}, error) {
	return activeSellers(sellersColumns).Where(squirrel.Eq{"s.id": id}).ToSql()
}

func (r *sellerRepository) ListActive(ctx context.Context) ([]*domain.Seller, error) {
	query, args, err := listActiveSellersQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.querySellers(ctx, query, args...)
}

func (r *sellerRepository) FindByID(ctx context.Context, id int64) (*domain.Seller, error) {
	query, args, err := findSellerQuery(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	seller, err := scanSeller(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar vendedor %d", id)
	}

	return seller, nil
}

func (r *sellerRepository) ListPaginated(ctx context.Context, page, perPage int) ([]*domain.Seller, int64, error) {
	var total int64

	countSQL, countArgs, err := activeSellers("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao construir a query de contagem")
	}

	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "erro ao contar vendedores")
	}

	query, args, err := activeSellers(sellersColumns).
		OrderBy("s.id DESC").
		Limit(uint64(perPage)).
		Offset(offset(page, perPage)).
		ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao construir a query")
	}

	sellers, err := r.querySellers(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return sellers, total, nil
}

func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error) {
	query, args, err := squirrel.
		Insert("sellers").
		Columns("name", "email", "commission_rate").
		Values(seller.Name, seller.Email, seller.CommissionRate).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&seller.ID, &seller.CreatedAt, &seller.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateEmail
		}
		return nil, errors.Wrap(err, "erro ao inserir vendedor")
	}

	return seller, nil
}

// EmailExists considera também vendedores removidos, pois a constraint de unicidade é da tabela toda
func (r *sellerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(sellersTable).
		Where(squirrel.Eq{"s.email": email}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	var exists int
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, errors.Wrap(err, "erro ao verificar e-mail do vendedor")
	}

	return true, nil
}

func (r *sellerRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	now := time.Now()

	query, args, err := squirrel.
		Update("sellers").
		Set("deleted_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "erro ao remover vendedor %d", id)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "erro ao obter número de linhas afetadas")
	}

	return rowsAffected > 0, nil
}

func (r *sellerRepository) querySellers(ctx context.Context, query string, args ...interface{}) ([]*domain.Seller, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	sellers := make([]*domain.Seller, 0)
	for rows.Next() {
		seller, err := scanSeller(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear vendedor")
		}
		sellers = append(sellers, seller)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sellers, nil
}

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSeller(row scanner) (*domain.Seller, error) {
	seller := &domain.Seller{}

	if err := row.Scan(
		&seller.ID,
		&seller.Name,
		&seller.Email,
		&seller.CommissionRate,
		&seller.CreatedAt,
		&seller.UpdatedAt,
		&seller.DeletedAt,
	); err != nil {
		return nil, err
	}

	return seller, nil
}

func offset(page, perPage int) uint64 {
	if page < 1 {
		page = 1
	}
	return uint64((page - 1) * perPage)
}
