package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodhub/internal/entities"
	"foodhub/internal/repository"
	"foodhub/internal/service/order"
	"foodhub/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returningColumns = `id, payment_id, customer_id, restaurant_id, rider_id, total_amount,
	status, created_at, updated_at, delivered_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, placement entities.OrderPlacement) (*entities.Order, error) {
	query := `INSERT INTO orders (payment_id, customer_id, restaurant_id, total_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + returningColumns

	orderModel, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		placement.PaymentID,
		placement.CustomerID,
		placement.RestaurantID,
		placement.TotalAmount,
		entities.OrderPendingRestaurantAcceptance.String(),
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("order for payment %q: %w", placement.PaymentID, guard.ErrConstraintViolation)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + returningColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByPaymentID(ctx context.Context, paymentID string) (*entities.Order, error) {
	query := `SELECT ` + returningColumns + `
		FROM orders
		WHERE payment_id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbypaymentid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// UpdateStatus меняет статус, только если он все еще равен from.
// Ноль затронутых строк означает, что заказ изменили параллельно: ErrConflict.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.OrderStatusType) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = $3,
			updated_at = NOW(),
			delivered_at = CASE WHEN $3::text = 'delivered' THEN NOW() ELSE delivered_at END
		WHERE id = $1 AND status = $2
		RETURNING ` + returningColumns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id, from.String(), to.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) ||
			repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, fmt.Errorf("%w: order %d is no longer %s", order.ErrConflict, id, from)
		}
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// AssignRider одним условным UPDATE закрепляет курьера и переводит заказ в out_for_delivery.
func (r *Repository) AssignRider(ctx context.Context, orderID, riderID int64) (*entities.Order, error) {
	query := `UPDATE orders
		SET rider_id = $2,
			status = $3,
			updated_at = NOW()
		WHERE id = $1 AND status = $4 AND rider_id IS NULL
		RETURNING ` + returningColumns

	orderModel, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderID,
		riderID,
		entities.OrderOutForDelivery.String(),
		entities.OrderReadyForPickup.String(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) ||
			repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, fmt.Errorf("%w: order %d is not ready for pickup", order.ErrConflict, orderID)
		}
		return nil, fmt.Errorf("unexpected order repository assignrider error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// ListReadyForPickup заказы, ждущие курьера с момента раньше readyBefore, старые первыми.
func (r *Repository) ListReadyForPickup(ctx context.Context, readyBefore time.Time, limit uint64) ([]entities.Order, error) {
	builder := qb.
		Select(returningColumns).
		From("orders").
		Where(sq.Eq{"status": entities.OrderReadyForPickup.String()}).
		Where(sq.Lt{"updated_at": readyBefore}).
		OrderBy("updated_at ASC", "id ASC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listready error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listready error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository listready error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository listready error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.PaymentID,
		&orderModel.CustomerID,
		&orderModel.RestaurantID,
		&orderModel.RiderID,
		&orderModel.TotalAmount,
		&orderModel.Status,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
		&orderModel.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
