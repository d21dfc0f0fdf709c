package appointment

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

// Repository репозиторий для чтения записей агенды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUnitWithFilter получает записи филиала за период [From, To).
// Порядок: по времени начала, затем по времени создания.
// Сетка агенды сохраняет этот порядок внутри ячейки.
func (r *Repository) GetByUnitWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"unit_id",
		"barber_id",
		"client_name",
		"service_name",
		"start_time",
		"end_time",
		"status",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Eq{"unit_id": filter.UnitID}).
		Where(squirrel.GtOrEq{"start_time": filter.From}).
		Where(squirrel.Lt{"start_time": filter.To})

	// Фильтр по барберу (опционально)
	if filter.BarberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}

	// Отмененные записи в агенде не показываются
	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	query, args, err := selectBuilder.
		OrderBy("start_time ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUnitWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUnitWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var (
			apt       domain.Appointment
			barberID  uuid.NullUUID
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&apt.ID,
			&apt.UnitID,
			&barberID,
			&apt.ClientName,
			&apt.ServiceName,
			&apt.StartTime,
			&apt.EndTime,
			&apt.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUnitWithFilter - scan row: %v", ErrScanRow, err)
		}

		if barberID.Valid {
			id := barberID.UUID
			apt.BarberID = &id
		}
		apt.CreatedAt = createdAt.Time

		appointments = append(appointments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUnitWithFilter - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
