package businesshours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

// Repository репозиторий рабочих часов и праздников филиала
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRules получает все правила рабочего времени филиала.
// Правила по конкретной дате идут первыми, дубликаты разрешает агенда (первое правило выигрывает).
func (r *Repository) GetRules(ctx context.Context, unitID uuid.UUID) ([]domain.BusinessHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"unit_id",
		"day_of_week",
		"specific_date",
		"opening_time::text",
		"closing_time::text",
		"is_open",
	).
		From("business_hours").
		Where(squirrel.Eq{"unit_id": unitID}).
		OrderBy("specific_date NULLS LAST", "day_of_week ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.BusinessHour, 0)

	for rows.Next() {
		var (
			rule                     domain.BusinessHour
			dayOfWeek                int
			specificDate             sql.NullTime
			openingTime, closingTime sql.NullString
		)

		err := rows.Scan(
			&rule.ID,
			&rule.UnitID,
			&dayOfWeek,
			&specificDate,
			&openingTime,
			&closingTime,
			&rule.IsOpen,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRules - scan row: %v", ErrScanRow, err)
		}

		// 0 = воскресенье, как в time.Weekday
		rule.DayOfWeek = time.Weekday(dayOfWeek)
		if specificDate.Valid {
			d := specificDate.Time
			rule.SpecificDate = &d
		}
		rule.OpeningTime = openingTime.String
		rule.ClosingTime = closingTime.String

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetHolidays получает праздники филиала в диапазоне дат [from, to] включительно.
// Даты передаются строкой YYYY-MM-DD, чтобы не зависеть от таймзоны соединения.
func (r *Repository) GetHolidays(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"unit_id",
		"date",
		"name",
	).
		From("holidays").
		Where(squirrel.Eq{"unit_id": unitID}).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]domain.Holiday, 0)

	for rows.Next() {
		var (
			h    domain.Holiday
			name sql.NullString
		)

		if err := rows.Scan(&h.ID, &h.UnitID, &h.Date, &name); err != nil {
			return nil, fmt.Errorf("%w: GetHolidays - scan row: %v", ErrScanRow, err)
		}
		h.Name = name.String

		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}
