package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/internal/infra/storage"
	"github.com/nbclib/NBC-ReservationService/pkg/dbmetrics"
	"github.com/nbclib/NBC-ReservationService/pkg/psqlbuilder"
)

const bookingColumns = "id, visit_date, slot_id, slot_name, slot_display, slot_description, " +
	"contact_name, contact_email, contact_phone, visit_purpose, created_at"

// Repository is the PostgreSQL booking store. The one-booking-per-(date, slot)
// invariant is enforced by the unique index on (visit_date, slot_id); Create
// turns the conflict into storage.ErrSlotTaken.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking. The insert is a single atomic statement: when the
// (visit_date, slot_id) key is already held, no row is written and
// storage.ErrSlotTaken is returned, so racing inserts resolve to exactly one
// winner.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"visit_date",
			"slot_id",
			"slot_name",
			"slot_display",
			"slot_description",
			"contact_name",
			"contact_email",
			"contact_phone",
			"visit_purpose",
		).
		Values(
			b.ID,
			domain.DateKey(b.VisitDate),
			b.SlotID,
			b.SlotName,
			b.SlotDisplay,
			b.SlotDescription,
			b.Contact.Name,
			b.Contact.Email,
			b.Contact.Phone,
			string(b.Contact.Purpose),
		).
		Suffix("ON CONFLICT (visit_date, slot_id) DO NOTHING RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrSlotTaken
	}
	if isSlotConflict(err) {
		return nil, storage.ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

const (
	pqUniqueViolation      = pq.ErrorCode("23505")
	pqSerializationFailure = pq.ErrorCode("40001")
)

// isSlotConflict reports whether err means the (visit_date, slot_id) key is
// already held. Under serializable isolation the losing insert can fail with
// a serialization error instead of returning zero rows, and a concurrent
// commit can surface the unique index as a plain violation. Both are the
// same outcome: somebody else holds the slot.
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation || pqErr.Code == pqSerializationFailure
}

// GetByID fetches a booking by its identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", storage.ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByDateAndSlot fetches the booking holding the (date, slot) key.
func (r *Repository) GetByDateAndSlot(ctx context.Context, date time.Time, slotID int) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"visit_date": domain.DateKey(date), "slot_id": slotID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndSlot - build select query: %v", storage.ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByDateAndSlot")
}

// ListByDate returns every booking on the date, ordered by slot id.
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"visit_date": domain.DateKey(date)}).
		OrderBy("slot_id ASC")

	// Inside a transaction the listing feeds a check-and-set, so lock the rows.
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountByDate returns the number of bookings on the date.
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"visit_date": domain.DateKey(date)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", storage.ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDate - scan count: %v", storage.ErrScanRow, err)
	}
	return count, nil
}

// Delete removes a booking, freeing its (date, slot) key.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", storage.ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", storage.ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", storage.ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return storage.ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner, op string) (*domain.Booking, error) {
	var (
		b         domain.Booking
		visitDate time.Time
		purpose   string
		createdAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&visitDate,
		&b.SlotID,
		&b.SlotName,
		&b.SlotDisplay,
		&b.SlotDescription,
		&b.Contact.Name,
		&b.Contact.Email,
		&b.Contact.Phone,
		&purpose,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", storage.ErrScanRow, op, err)
	}

	b.VisitDate = domain.TruncateToDate(visitDate)
	b.Contact.Purpose = domain.VisitPurpose(purpose)
	b.CreatedAt = createdAt.Time
	return &b, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var (
			b         domain.Booking
			visitDate time.Time
			purpose   string
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&b.ID,
			&visitDate,
			&b.SlotID,
			&b.SlotName,
			&b.SlotDisplay,
			&b.SlotDescription,
			&b.Contact.Name,
			&b.Contact.Email,
			&b.Contact.Phone,
			&purpose,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", storage.ErrScanRow, err)
		}

		b.VisitDate = domain.TruncateToDate(visitDate)
		b.Contact.Purpose = domain.VisitPurpose(purpose)
		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", storage.ErrScanRow, err)
	}
	return bookings, nil
}
