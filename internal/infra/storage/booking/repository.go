package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	"github.com/m04kA/GEV-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GEV-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/GEV-BookingService/pkg/types"
)

// foreignKeyViolation код ошибки PostgreSQL при нарушении внешнего ключа
const foreignKeyViolation = "23503"

var bookingColumns = []string{
	"id",
	"slot_id",
	"user_name",
	"email",
	"phone",
	"simple_chars",
	"double_chars",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// Проверка вместимости слота здесь не выполняется: её делает вызывающая сторона
// в той же транзакции после GetByIDForUpdate слота
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"slot_id",
			"user_name",
			"email",
			"phone",
			"simple_chars",
			"double_chars",
		).
		Values(
			booking.ID,
			booking.SlotID,
			booking.UserName,
			booking.Email,
			booking.Phone,
			booking.SimpleChars,
			booking.DoubleChars,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if isForeignKeyViolation(err) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// В транзакции блокируем строку, чтобы бронирование не изменилось до commit
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// ListByEmail получает бронирования клиента по email (без учета регистра), сначала новые
func (r *Repository) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Expr("LOWER(email) = LOWER(?)", email)).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEmail - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// ListAll получает бронирования вместе с данными их слотов (таблица резерваций)
// Сортировка по дате и времени начала слота, затем по времени создания бронирования
// Слоты в результате не содержат список бронирований
func (r *Repository) ListAll(ctx context.Context, filter domain.SlotFilter) ([]*domain.BookingWithSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.slot_id",
		"b.user_name",
		"b.email",
		"b.phone",
		"b.simple_chars",
		"b.double_chars",
		"b.created_at",
		"b.updated_at",
		"s.date",
		"s.start_minute",
		"s.end_minute",
		"s.capacity_simple",
		"s.capacity_double",
	).
		From("bookings b").
		Join("slots s ON s.id = b.slot_id")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.date": domain.NormalizeDate(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"s.date": domain.NormalizeDate(*filter.To)})
	}

	query, args, err := selectBuilder.
		OrderBy("s.date ASC", "s.start_minute ASC", "b.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingWithSlot, 0)
	for rows.Next() {
		var (
			booking                  domain.Booking
			slot                     domain.Slot
			simpleChars, doubleChars sql.NullInt64
			createdAt, updatedAt     sql.NullTime
			startMinute, endMinute   int
		)

		err := rows.Scan(
			&booking.ID,
			&booking.SlotID,
			&booking.UserName,
			&booking.Email,
			&booking.Phone,
			&simpleChars,
			&doubleChars,
			&createdAt,
			&updatedAt,
			&slot.Date,
			&startMinute,
			&endMinute,
			&slot.CapacitySimple,
			&slot.CapacityDouble,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %w", ErrScanRow, err)
		}

		booking.SimpleChars = int(simpleChars.Int64)
		booking.DoubleChars = int(doubleChars.Int64)
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		slot.ID = booking.SlotID
		slot.Date = domain.NormalizeDate(slot.Date)
		slot.Start = types.TimeOfDay(startMinute)
		slot.End = types.TimeOfDay(endMinute)

		result = append(result, &domain.BookingWithSlot{Booking: &booking, Slot: &slot})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет слот, контактные данные и количество чаров бронирования
// Перенос в другой слот выполняется сменой slot_id
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("slot_id", booking.SlotID).
		Set("user_name", booking.UserName).
		Set("email", booking.Email).
		Set("phone", booking.Phone).
		Set("simple_chars", booking.SimpleChars).
		Set("double_chars", booking.DoubleChars).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if isForeignKeyViolation(err) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// Delete удаляет бронирование (отмена администратором)
// Освободившиеся чары сразу становятся доступны в слоте
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку бронирования
// Отсутствующие количества чаров (NULL) нормализуются в 0
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var simpleChars, doubleChars sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.SlotID,
		&booking.UserName,
		&booking.Email,
		&booking.Phone,
		&simpleChars,
		&doubleChars,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.SimpleChars = int(simpleChars.Int64)
	booking.DoubleChars = int(doubleChars.Int64)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
