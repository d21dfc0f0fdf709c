package barber

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

// Repository репозиторий барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория барберов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByUnit получает барберов филиала, упорядоченных по имени.
// Фильтрация по активности делается в агенде (выбранный барбер показывается всегда).
func (r *Repository) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"unit_id",
		"name",
		"calendar_color",
		"is_active",
		"lunch_break_enabled",
		"lunch_break_start::text",
		"lunch_break_end::text",
	).
		From("barbers").
		Where(squirrel.Eq{"unit_id": unitID}).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUnit - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUnit - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)

	for rows.Next() {
		var (
			b                    domain.Barber
			color                sql.NullString
			lunchEnabled         sql.NullBool
			lunchStart, lunchEnd sql.NullString
		)

		err := rows.Scan(
			&b.ID,
			&b.UnitID,
			&b.Name,
			&color,
			&b.IsActive,
			&lunchEnabled,
			&lunchStart,
			&lunchEnd,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUnit - scan row: %v", ErrScanRow, err)
		}

		if color.Valid && color.String != "" {
			c := color.String
			b.CalendarColor = &c
		}

		// Обед сохраняем, даже если выключен: решение принимает агенда
		if lunchEnabled.Valid || lunchStart.Valid || lunchEnd.Valid {
			b.LunchBreak = &domain.LunchBreak{
				Enabled: lunchEnabled.Bool,
				Start:   lunchStart.String,
				End:     lunchEnd.String,
			}
		}

		barbers = append(barbers, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUnit - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}
