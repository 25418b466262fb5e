package delivery

import (
	"context"
	"errors"
	"fmt"

	"foodhub/internal/entities"
	"foodhub/internal/repository"
	"foodhub/internal/service/order"
	"foodhub/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returningColumns = `order_id, restaurant_id, drop_off_lat, drop_off_lng, drop_off_address,
	status, delivery_fee, started_at, expected_by, ended_at, created_at`

var errEmptyModify = errors.New("delivery modify has nothing to update")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, d entities.Delivery) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (order_id, restaurant_id, drop_off_lat, drop_off_lng, drop_off_address, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + returningColumns

	deliveryDB, err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		d.OrderID,
		d.RestaurantID,
		d.DropOff.Lat,
		d.DropOff.Lng,
		d.DropOffAddress,
		d.Status.String(),
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("delivery for order %d: %w", d.OrderID, guard.ErrConstraintViolation)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) (*entities.Delivery, error) {
	query := `SELECT ` + returningColumns + `
		FROM deliveries
		WHERE order_id = $1`

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyorderid error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) GetRoute(ctx context.Context, orderID int64) (*entities.DeliveryRoute, error) {
	query := `
		SELECT d.order_id, r.lat, r.lng, d.drop_off_lat, d.drop_off_lng
		FROM deliveries d
		JOIN restaurants r ON r.id = d.restaurant_id
		WHERE d.order_id = $1`

	var routeDB RouteDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&routeDB.OrderID,
		&routeDB.RestaurantLat,
		&routeDB.RestaurantLng,
		&routeDB.DropOffLat,
		&routeDB.DropOffLng,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getroute error: %w", err)
	}

	return ToRouteDomain(&routeDB), nil
}

// Update частично обновляет доставку. С FromStatus обновление условное:
// если статус уже другой, возвращается ErrConflict.
func (r *Repository) Update(ctx context.Context, modify entities.DeliveryModify) (*entities.Delivery, error) {
	modifyDB := FromDomainModify(&modify)
	if modifyDB.OrderID == nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: order id is required")
	}

	builder := qb.
		Update("deliveries")

	// опционные поля
	fields := 0
	if modifyDB.Status != nil {
		builder = builder.Set("status", modifyDB.Status)
		fields++
	}
	if modifyDB.Fee != nil {
		builder = builder.Set("delivery_fee", modifyDB.Fee)
		fields++
	}
	if modifyDB.StartedAt != nil {
		builder = builder.Set("started_at", modifyDB.StartedAt)
		fields++
	}
	if modifyDB.ExpectedBy != nil {
		builder = builder.Set("expected_by", modifyDB.ExpectedBy)
		fields++
	}
	if modifyDB.EndedAt != nil {
		builder = builder.Set("ended_at", modifyDB.EndedAt)
		fields++
	}
	if fields == 0 {
		return nil, errEmptyModify
	}

	builder = builder.Where(sq.Eq{"order_id": *modifyDB.OrderID})
	if modifyDB.FromStatus != nil {
		builder = builder.Where(sq.Eq{"status": *modifyDB.FromStatus})
	}
	builder = builder.Suffix("RETURNING " + returningColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if modifyDB.FromStatus != nil {
				return nil, fmt.Errorf("%w: delivery %d is no longer %s", order.ErrConflict, *modifyDB.OrderID, *modifyDB.FromStatus)
			}
			return nil, order.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var deliveryDB DeliveryDB
	err := row.Scan(
		&deliveryDB.OrderID,
		&deliveryDB.RestaurantID,
		&deliveryDB.DropOffLat,
		&deliveryDB.DropOffLng,
		&deliveryDB.DropOffAddress,
		&deliveryDB.Status,
		&deliveryDB.Fee,
		&deliveryDB.StartedAt,
		&deliveryDB.ExpectedBy,
		&deliveryDB.EndedAt,
		&deliveryDB.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryDB, nil
}
