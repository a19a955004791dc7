package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "client_id", "bathhouse_id", "start_datetime", "end_datetime",
		"status", "price_total", "prepayment_amount", "comment", "created_at",
	})
	for _, b := range bookings {
		rows.AddRow(b.ID, b.ClientID, b.BathhouseID, b.StartDatetime, b.EndDatetime,
			string(b.Status), b.PriceTotal, b.PrepaymentAmount, b.Comment, b.CreatedAt)
	}
	return rows
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(int64(1), int64(2), sqlmock.AnyArg(), sqlmock.AnyArg(),
			string(domain.StatusPending), nil, nil, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), createdAt))

	created, err := repo.Create(context.Background(), &domain.Booking{
		ClientID:      1,
		BathhouseID:   2,
		StartDatetime: time.Date(2025, 10, 15, 5, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC),
		Status:        domain.StatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		expected := &domain.Booking{
			ID:            7,
			ClientID:      1,
			BathhouseID:   2,
			StartDatetime: time.Date(2025, 10, 15, 5, 0, 0, 0, time.UTC),
			EndDatetime:   time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC),
			Status:        domain.StatusPending,
			CreatedAt:     time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC),
		}

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, client_id, bathhouse_id, start_datetime, end_datetime, status, price_total, prepayment_amount, comment, created_at FROM bookings WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(bookingRows(expected))

		got, err := repo.GetByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, expected.ID, got.ID)
		assert.Equal(t, expected.Status, got.Status)
		assert.True(t, got.StartDatetime.Equal(expected.StartDatetime))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
			WithArgs(int64(404)).
			WillReturnRows(bookingRows())

		_, err := repo.GetByID(context.Background(), 404)

		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountActiveByClient(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE client_id = $1 AND status IN ($2,$3,$4)")).
		WithArgs(int64(1), "pending", "payment_reported", "approved").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveByClient(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApprovedOverlapping(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2025, 10, 15, 5, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC)

	overlapping := &domain.Booking{
		ID:            8,
		ClientID:      3,
		BathhouseID:   2,
		StartDatetime: time.Date(2025, 10, 15, 6, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC),
		Status:        domain.StatusApproved,
		CreatedAt:     time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE bathhouse_id = $1 AND status = $2 AND start_datetime < $3 AND end_datetime > $4 AND id <> $5 ORDER BY start_datetime ASC")).
		WithArgs(int64(2), string(domain.StatusApproved), end, start, int64(7)).
		WillReturnRows(bookingRows(overlapping))

	got, err := repo.ListApprovedOverlapping(context.Background(), 2, start, end, 7)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(8), got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1 WHERE id = $2")).
			WithArgs(string(domain.StatusApproved), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), 7, domain.StatusApproved)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1 WHERE id = $2")).
			WithArgs(string(domain.StatusCancelled), int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 404, domain.StatusCancelled)

		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateStatusAndComment(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1, comment = $2 WHERE id = $3")).
		WithArgs(string(domain.StatusRejected), "Отклонено: оплата не подтверждена", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatusAndComment(context.Background(), 7, domain.StatusRejected, "Отклонено: оплата не подтверждена")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
