package rider

import (
	"context"
	"errors"
	"fmt"

	"foodhub/internal/entities"
	"foodhub/internal/service/rider"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Rider, error) {
	query := `SELECT id, name, phone, status, transport_type, created_at, updated_at
		FROM riders
		WHERE id = $1`

	var riderModel RiderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Phone,
			&riderModel.Status,
			&riderModel.TransportType,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}

		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

// UpdateStatusIf переводит курьера from -> to. false без ошибки: статус уже не from
// или курьера нет.
func (r *Repository) UpdateStatusIf(ctx context.Context, id int64, from, to entities.RiderStatusType) (bool, error) {
	query, args, err := qb.
		Update("riders").
		Set("status", to.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": from.String()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected rider repository updatestatus error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected rider repository updatestatus error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) ListAvailableIDs(ctx context.Context) ([]int64, error) {
	query := `
	SELECT id
	FROM riders
	WHERE status = $1
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query, entities.RiderAvailable.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository listavailable error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected rider repository listavailable error: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository listavailable error: %w", err)
	}

	return ids, nil
}
