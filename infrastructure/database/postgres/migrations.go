package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// migrations são idempotentes e executadas em ordem na inicialização
var migrations = []struct {
	name string
	sql  string
}{
	{
		name: "create_users_table",
		sql: `CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "create_sellers_table",
		sql: `CREATE TABLE IF NOT EXISTS sellers (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			commission_rate NUMERIC(5, 2) NOT NULL DEFAULT 8.5,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ NULL
		)`,
	},
	{
		name: "create_sales_table",
		sql: `CREATE TABLE IF NOT EXISTS sales (
			id BIGSERIAL PRIMARY KEY,
			seller_id BIGINT NOT NULL REFERENCES sellers (id) ON DELETE CASCADE,
			amount NUMERIC(10, 2) NOT NULL CHECK (amount > 0),
			sale_date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		// Índice simples para queries por data
		name: "add_sales_sale_date_index",
		sql:  `CREATE INDEX IF NOT EXISTS sales_sale_date_index ON sales (sale_date)`,
	},
	{
		// Índice composto usado pelo relatório diário (vendedor + data)
		name: "add_sales_seller_date_index",
		sql:  `CREATE INDEX IF NOT EXISTS sales_seller_date_index ON sales (seller_id, sale_date)`,
	},
}

// Migrate cria as tabelas e índices necessários em uma única transação
func Migrate(ctx context.Context, conn *Connection) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return applyMigrations(ctx, tx)
	})
}

func applyMigrations(ctx context.Context, conn Queryer) error {
	for _, m := range migrations {
		if _, err := conn.ExecContext(ctx, m.sql); err != nil {
			return errors.Wrapf(err, "erro ao executar migração %s", m.name)
		}
		logrus.WithField("migration", m.name).Debug("Migração aplicada")
	}

	return nil
}
