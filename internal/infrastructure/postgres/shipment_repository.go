package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logitrack-io/logitrack/internal/domain/entity"
	"github.com/logitrack-io/logitrack/internal/domain/repository"
)

type ShipmentRepository struct {
	pool *pgxpool.Pool
}

func NewShipmentRepository(pool *pgxpool.Pool) *ShipmentRepository {
	return &ShipmentRepository{pool: pool}
}

const shipmentColumns = `id, tracking_id, origin, destination, status, weight, dimensions, description, user_id, created_at, updated_at`

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	s := &entity.Shipment{}
	err := row.Scan(&s.ID, &s.TrackingID, &s.Origin, &s.Destination, &s.Status,
		&s.Weight, &s.Dimensions, &s.Description, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts the shipment. Global tracking-id uniqueness is enforced
// by the shipments_tracking_id_key constraint, so concurrent creators of
// the same tracking id cannot both succeed.
func (r *ShipmentRepository) Create(ctx context.Context, s *entity.Shipment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO shipments (tracking_id, origin, destination, status, weight, dimensions, description, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, s.TrackingID, s.Origin, s.Destination, s.Status, s.Weight, s.Dimensions, s.Description, s.OwnerID)

	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateTrackingID
		}
		return err
	}
	return nil
}

func (r *ShipmentRepository) GetByOwner(ctx context.Context, ownerID, id string) (*entity.Shipment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)

	s, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *ShipmentRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Shipment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE user_id = $1
		ORDER BY created_at DESC, seq ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Shipment, 0)
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ShipmentRepository) Update(ctx context.Context, s *entity.Shipment) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE shipments
		SET tracking_id = $1, origin = $2, destination = $3, status = $4,
		    weight = $5, dimensions = $6, description = $7, updated_at = now()
		WHERE id = $8 AND user_id = $9
	`, s.TrackingID, s.Origin, s.Destination, s.Status, s.Weight, s.Dimensions, s.Description, s.ID, s.OwnerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateTrackingID
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	// Read back server-assigned updated_at.
	row := r.pool.QueryRow(ctx, `SELECT updated_at FROM shipments WHERE id = $1`, s.ID)
	return row.Scan(&s.UpdatedAt)
}

func (r *ShipmentRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM shipments WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ShipmentRepository = (*ShipmentRepository)(nil)
