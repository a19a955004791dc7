package bathhouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	"github.com/mkorchagin/bathhouse-booking/pkg/dbmetrics"
	"github.com/mkorchagin/bathhouse-booking/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с банями.
// Записи создаются и деактивируются админкой, ядру доступно только чтение.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бань
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает баню по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Bathhouse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "is_active").
		From("bathhouses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Bathhouse
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.Name,
		&b.Capacity,
		&b.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBathhouseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan bathhouse: %v", ErrScanRow, err)
	}

	return &b, nil
}

// ListActive получает список активных бань.
// Только активные бани предлагаются для новых бронирований.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Bathhouse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "capacity", "is_active").
		From("bathhouses").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bathhouses := make([]*domain.Bathhouse, 0)
	for rows.Next() {
		var b domain.Bathhouse
		if err := rows.Scan(&b.ID, &b.Name, &b.Capacity, &b.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		bathhouses = append(bathhouses, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return bathhouses, nil
}
