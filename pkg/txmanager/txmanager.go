package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/GEV-BookingService/pkg/dbmetrics"
)

// maxAttempts число попыток транзакции при конфликте сериализации или deadlock
const maxAttempts = 3

// Коды SQLSTATE, после которых транзакцию можно повторить целиком
const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

var (
	// ErrBeginTx ошибка открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx ошибка фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функцию в транзакции, передавая её через контекст
// Репозитории получают транзакцию через dbmetrics.GetExecutor
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (READ COMMITTED)
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE
// Используется для операций "проверить вместимость - записать бронирование"
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// IsSerializationFailure сообщает, что PostgreSQL прервал транзакцию из-за конфликта
// сериализации или deadlock, и её можно выполнить заново
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == serializationFailure || pqErr.Code == deadlockDetected
}

// run выполняет fn в новой транзакции и повторяет её при IsSerializationFailure
// Снимок SERIALIZABLE берется до ожидания FOR UPDATE, поэтому конкурентная запись
// прерывает одну из транзакций с 40001, и повтор читает уже зафиксированные бронирования
func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	// Вложенный вызов переиспользует уже открытую транзакцию, повтор решает внешний вызов
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = m.attempt(ctx, opts, fn)
		if err == nil || !IsSerializationFailure(err) || ctx.Err() != nil {
			return err
		}
	}

	return err
}

func (m *TransactionManager) attempt(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	return nil
}
