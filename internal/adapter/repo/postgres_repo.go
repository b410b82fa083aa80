package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/coffee-miniapp/internal/domain"
)

// PostgresOrderRepo — архив заказов, принятых стороной хоста.
type PostgresOrderRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresOrderRepo(pool *pgxpool.Pool) *PostgresOrderRepo {
	return &PostgresOrderRepo{Pool: pool}
}

// Upsert идемпотентен: повторная доставка того же сообщения перезапишет строку.
func (r *PostgresOrderRepo) Upsert(ctx context.Context, id string, raw []byte) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO orders(order_id, payload) VALUES($1, $2)
        ON CONFLICT (order_id) DO UPDATE SET payload = EXCLUDED.payload`, id, raw)
	if err != nil {
		return fmt.Errorf("upsert order %s: %w", id, err)
	}
	return nil
}

// LoadAll читает архив целиком для прогрева кэша.
func (r *PostgresOrderRepo) LoadAll(ctx context.Context) (map[string]domain.OrderPayload, error) {
	rows, err := r.Pool.Query(ctx, `SELECT order_id, payload FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.OrderPayload)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		var o domain.OrderPayload
		if err := json.Unmarshal(raw, &o); err != nil {
			// skip corrupted row
			continue
		}
		out[id] = o
	}
	return out, rows.Err()
}

var _ domain.OrderRepository = (*PostgresOrderRepo)(nil)

// PostgresCatalogRepo хранит версии документа каталога; читается последняя.
type PostgresCatalogRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresCatalogRepo(pool *pgxpool.Pool) *PostgresCatalogRepo {
	return &PostgresCatalogRepo{Pool: pool}
}

func (r *PostgresCatalogRepo) SaveDocument(ctx context.Context, raw []byte) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `INSERT INTO catalog_documents(payload) VALUES($1) RETURNING id`, raw).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save catalog document: %w", err)
	}
	return id, nil
}

func (r *PostgresCatalogRepo) LatestDocument(ctx context.Context) ([]byte, error) {
	var raw []byte
	err := r.Pool.QueryRow(ctx, `SELECT payload FROM catalog_documents ORDER BY id DESC LIMIT 1`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("каталог ещё не загружен в базу")
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog document: %w", err)
	}
	return raw, nil
}

var _ domain.CatalogRepository = (*PostgresCatalogRepo)(nil)

// EnsureSchema — создать необходимые таблицы, если отсутствуют.
// payload хранится как text: jsonb переупорядочил бы ключи каталога.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS orders (
  order_id text PRIMARY KEY,
  payload jsonb NOT NULL,
  received_at timestamptz NOT NULL DEFAULT now()
);`); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS catalog_documents (
  id bigserial PRIMARY KEY,
  payload text NOT NULL,
  created_at timestamptz NOT NULL DEFAULT now()
);`)
	return err
}
