package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	"github.com/m04kA/GEV-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GEV-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/GEV-BookingService/pkg/types"
)

// slotWithBookingsColumns колонки выборки слота вместе с бронированиями (LEFT JOIN)
var slotWithBookingsColumns = []string{
	"s.id",
	"s.date",
	"s.start_minute",
	"s.end_minute",
	"s.capacity_simple",
	"s.capacity_double",
	"s.created_at",
	"s.updated_at",
	"b.id",
	"b.user_name",
	"b.email",
	"b.phone",
	"b.simple_chars",
	"b.double_chars",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот
// ID генерируется вызывающей стороной, если не задан
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}
	slot.Date = domain.NormalizeDate(slot.Date)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"id",
			"date",
			"start_minute",
			"end_minute",
			"capacity_simple",
			"capacity_double",
		).
		Values(
			slot.ID,
			slot.Date,
			slot.Start.Minutes(),
			slot.End.Minutes(),
			slot.CapacitySimple,
			slot.CapacityDouble,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time
	if slot.Bookings == nil {
		slot.Bookings = []*domain.Booking{}
	}

	return slot, nil
}

// GetByID получает слот вместе с его бронированиями одним запросом
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает слот с бронированиями и блокирует строку слота до конца транзакции
// Вне транзакции работает как GetByID
// Используется при проверке вместимости перед записью бронирования (защита от гонки check-then-act)
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id uuid.UUID, lock bool) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectWithBookings().
		Where(squirrel.Eq{"s.id": id}).
		OrderBy("b.created_at ASC")

	// FOR UPDATE нельзя применить к nullable-стороне LEFT JOIN, поэтому блокируем только slots
	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF s")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots, err := scanSlotsWithBookings(rows)
	if err != nil {
		return nil, err
	}

	if len(slots) == 0 {
		return nil, ErrSlotNotFound
	}

	return slots[0], nil
}

// List получает слоты с бронированиями, отсортированные по дате и времени начала
// Поддерживает фильтрацию по периоду (обе границы включительно, nil - без ограничения)
//
// Примеры использования:
//
// 1. Все слоты:
//	filter := domain.SlotFilter{}
//
// 2. Слоты начиная с сегодняшнего дня (календарь, дашборд):
//	today := domain.NormalizeDate(time.Now())
//	filter := domain.SlotFilter{From: &today}
//
// 3. Слоты за неделю:
//	filter := domain.SlotFilter{From: &monday, To: &sunday}
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectWithBookings()

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.date": domain.NormalizeDate(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"s.date": domain.NormalizeDate(*filter.To)})
	}

	query, args, err := selectBuilder.
		OrderBy("s.date ASC", "s.start_minute ASC", "s.id ASC", "b.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlotsWithBookings(rows)
}

// Update обновляет дату, время и вместимость слота
// Бронирования слота не изменяются
func (r *Repository) Update(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slot.Date = domain.NormalizeDate(slot.Date)

	query, args, err := psqlbuilder.Update("slots").
		Set("date", slot.Date).
		Set("start_minute", slot.Start.Minutes()).
		Set("end_minute", slot.End.Minutes()).
		Set("capacity_simple", slot.CapacitySimple).
		Set("capacity_double", slot.CapacityDouble).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slot.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// Delete удаляет слот вместе со всеми его бронированиями
// Бронирования удаляются явно (FK с ON DELETE CASCADE страхует то же самое на уровне БД),
// поэтому вызывать следует внутри транзакции
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	bookingsQuery, bookingsArgs, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"slot_id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - build delete bookings query: %v", ErrBuildQuery, err)
	}

	bookingsResult, err := executor.ExecContext(ctx, bookingsQuery, bookingsArgs...)
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - execute delete bookings: %w", ErrExecQuery, err)
	}

	deletedBookings, err := bookingsResult.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - get deleted bookings: %w", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return 0, ErrSlotNotFound
	}

	return deletedBookings, nil
}

func (r *Repository) selectWithBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(slotWithBookingsColumns...).
		From("slots s").
		LeftJoin("bookings b ON b.slot_id = s.id")
}

// scanSlotsWithBookings собирает слоты из строк LEFT JOIN
// Строки одного слота идут подряд благодаря сортировке по s.id внутри даты и времени
// Отсутствующие количества чаров (NULL) нормализуются в 0
func scanSlotsWithBookings(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)
	var current *domain.Slot

	for rows.Next() {
		var (
			slot                         domain.Slot
			startMinute, endMinute       int
			slotCreatedAt, slotUpdatedAt sql.NullTime

			bookingID                          uuid.NullUUID
			userName, email, phone             sql.NullString
			simpleChars, doubleChars           sql.NullInt64
			bookingCreatedAt, bookingUpdatedAt sql.NullTime
		)

		err := rows.Scan(
			&slot.ID,
			&slot.Date,
			&startMinute,
			&endMinute,
			&slot.CapacitySimple,
			&slot.CapacityDouble,
			&slotCreatedAt,
			&slotUpdatedAt,
			&bookingID,
			&userName,
			&email,
			&phone,
			&simpleChars,
			&doubleChars,
			&bookingCreatedAt,
			&bookingUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlotsWithBookings - scan row: %w", ErrScanRow, err)
		}

		if current == nil || current.ID != slot.ID {
			slot.Date = domain.NormalizeDate(slot.Date)
			slot.Start = types.TimeOfDay(startMinute)
			slot.End = types.TimeOfDay(endMinute)
			slot.CreatedAt = slotCreatedAt.Time
			slot.UpdatedAt = slotUpdatedAt.Time
			slot.Bookings = []*domain.Booking{}

			current = &slot
			slots = append(slots, current)
		}

		if !bookingID.Valid {
			continue
		}

		current.Bookings = append(current.Bookings, &domain.Booking{
			ID:          bookingID.UUID,
			SlotID:      current.ID,
			UserName:    userName.String,
			Email:       email.String,
			Phone:       phone.String,
			SimpleChars: int(simpleChars.Int64),
			DoubleChars: int(doubleChars.Int64),
			CreatedAt:   bookingCreatedAt.Time,
			UpdatedAt:   bookingUpdatedAt.Time,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlotsWithBookings - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}
