package notification

import (
	"context"
	"fmt"

	"foodhub/internal/entities"
	"foodhub/internal/repository"
	"foodhub/internal/service/order"

	sq "github.com/Masterminds/squirrel"
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

// CreateBatch вставляет все уведомления одним запросом.
func (r *Repository) CreateBatch(ctx context.Context, drafts []entities.NotificationDraft) (int64, error) {
	if len(drafts) == 0 {
		return 0, nil
	}

	builder := qb.
		Insert("notifications").
		Columns("recipient_id", "recipient_kind", "order_id", "category", "message")
	for _, d := range drafts {
		builder = builder.Values(d.RecipientID, d.RecipientKind.String(), d.OrderID, string(d.Category), d.Message)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository createbatch error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, order.ErrOrderNotFound
		}
		return 0, fmt.Errorf("unexpected notification repository createbatch error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) List(ctx context.Context, filter entities.NotificationFilter) ([]entities.Notification, error) {
	builder := qb.
		Select("id", "recipient_id", "recipient_kind", "order_id", "category", "message", "created_at").
		From("notifications").
		Where(sq.Eq{
			"recipient_kind": filter.RecipientKind.String(),
			"recipient_id":   filter.RecipientID,
		}).
		OrderBy("id DESC")

	if filter.OrderID != nil {
		builder = builder.Where(sq.Eq{"order_id": *filter.OrderID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]NotificationDB, 0, filter.Limit)
	for rows.Next() {
		var m NotificationDB
		err := rows.Scan(
			&m.ID,
			&m.RecipientID,
			&m.RecipientKind,
			&m.OrderID,
			&m.Category,
			&m.Message,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(models), nil
}
