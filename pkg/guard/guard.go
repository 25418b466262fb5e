// Package guard реализует идемпотентное создание сущности с уникальным ключом:
// "проверить, иначе вставить, при гонке перечитать".
//
// Уникальность обеспечивает ограничение хранилища. Вставка, проигравшая гонку,
// должна вернуть ошибку, оборачивающую ErrConstraintViolation. Тогда EnsureOnce
// перечитывает запись и возвращает победителя вместо ошибки.
package guard

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrConstraintViolation сигнализирует, что вставка нарушила уникальное ограничение.
	ErrConstraintViolation = errors.New("unique constraint violation")

	// ErrInconsistent запись не найдена даже после нарушения уникальности.
	ErrInconsistent = errors.New("record missing after unique constraint violation")
)

// ProbeFunc ищет существующую запись. found=false без ошибки означает "записи нет".
type ProbeFunc[T any] func(ctx context.Context) (value T, found bool, err error)

// InsertFunc создает запись.
type InsertFunc[T any] func(ctx context.Context) (T, error)

// EnsureOnce возвращает существующую запись или создает новую.
// created=true только у того вызова, чья вставка действительно прошла.
func EnsureOnce[T any](ctx context.Context, probe ProbeFunc[T], insert InsertFunc[T]) (value T, created bool, err error) {
	var zero T

	existing, found, err := probe(ctx)
	if err != nil {
		return zero, false, fmt.Errorf("probe: %w", err)
	}
	if found {
		return existing, false, nil
	}

	inserted, err := insert(ctx)
	if err == nil {
		return inserted, true, nil
	}
	if !errors.Is(err, ErrConstraintViolation) {
		return zero, false, fmt.Errorf("insert: %w", err)
	}

	winner, found, err := probe(ctx)
	if err != nil {
		return zero, false, fmt.Errorf("probe after conflict: %w", err)
	}
	if !found {
		return zero, false, ErrInconsistent
	}
	return winner, false, nil
}
