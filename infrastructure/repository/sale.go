package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-commission-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

const (
	salesTable          = "sales sa"
	salesColumns        = "sa.id, sa.seller_id, sa.amount, sa.sale_date, sa.created_at, sa.updated_at"
	salesWithSellerCols = salesColumns + ", s.name, s.email, s.commission_rate"
)

type SaleRepository interface {
	// ListBySellerAndDate filtra pelo dia exato do calendário (sale_date = data)
	ListBySellerAndDate(ctx context.Context, sellerID int64, date time.Time) ([]*domain.Sale, error)
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	ListPaginated(ctx context.Context, page, perPage int) ([]*domain.Sale, int64, error)
	ListBySeller(ctx context.Context, sellerID int64, page, perPage int) ([]*domain.Sale, int64, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func salesBySellerAndDateQuery(sellerID int64, date time.Time) (string, []interface{}, error) {
	return squirrel.
		Select(salesColumns).
		From(salesTable).
		Where(squirrel.Eq{"sa.seller_id": sellerID, "sa.sale_date": date.Format(time.DateOnly)}).
		OrderBy("sa.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func salesWithSeller() squirrel.SelectBuilder {
	return squirrel.
		Select(salesWithSellerCols).
		From(salesTable).
		Join("sellers s ON s.id = sa.seller_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *saleRepository) ListBySellerAndDate(ctx context.Context, sellerID int64, date time.Time) ([]*domain.Sale, error) {
	query, args, err := salesBySellerAndDateQuery(sellerID, date)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar vendas do vendedor %d em %s", sellerID, date.Format(time.DateOnly))
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{}
		if err := rows.Scan(
			&sale.ID,
			&sale.SellerID,
			&sale.Amount,
			&sale.SaleDate,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query, args, err := squirrel.
		Insert("sales").
		Columns("seller_id", "amount", "sale_date").
		Values(sale.SellerID, sale.Amount, sale.SaleDate.Format(time.DateOnly)).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir venda")
	}

	return sale, nil
}

func (r *saleRepository) ListPaginated(ctx context.Context, page, perPage int) ([]*domain.Sale, int64, error) {
	return r.listWithSeller(ctx, nil, "sa.id DESC", page, perPage)
}

func (r *saleRepository) ListBySeller(ctx context.Context, sellerID int64, page, perPage int) ([]*domain.Sale, int64, error) {
	return r.listWithSeller(ctx, squirrel.Eq{"sa.seller_id": sellerID}, "sa.sale_date DESC", page, perPage)
}

func (r *saleRepository) listWithSeller(ctx context.Context, where squirrel.Sqlizer, orderBy string, page, perPage int) ([]*domain.Sale, int64, error) {
	countBuilder := squirrel.Select("COUNT(*)").From(salesTable).PlaceholderFormat(squirrel.Dollar)
	listBuilder := salesWithSeller().OrderBy(orderBy, "sa.id DESC").Limit(uint64(perPage)).Offset(offset(page, perPage))
	if where != nil {
		countBuilder = countBuilder.Where(where)
		listBuilder = listBuilder.Where(where)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao construir a query de contagem")
	}

	var total int64
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, 0, errors.Wrap(err, "erro ao contar vendas")
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao listar vendas")
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{Seller: &domain.Seller{}}
		if err := rows.Scan(
			&sale.ID,
			&sale.SellerID,
			&sale.Amount,
			&sale.SaleDate,
			&sale.CreatedAt,
			&sale.UpdatedAt,
			&sale.Seller.Name,
			&sale.Seller.Email,
			&sale.Seller.CommissionRate,
		); err != nil {
			return nil, 0, errors.Wrap(err, "erro ao escanear venda")
		}
		sale.Seller.ID = sale.SellerID
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, total, nil
}
