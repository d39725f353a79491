package reservations

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lightbnb/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

var listColumns = []string{
	"id", "guest_id", "property_id", "start_date", "end_date",
	"id", "owner_id", "title", "description", "thumbnail_photo_url", "cover_photo_url", "cost_per_night",
	"street", "city", "province", "post_code", "country",
	"parking_spaces", "number_of_bathrooms", "number_of_bedrooms",
	"average_rating",
}

const listQuery = `(?s)^\s*SELECT\s+reservations\.id,.*FROM\s+reservations\s+JOIN\s+properties\s+ON\s+reservations\.property_id\s*=\s*properties\.id\s+JOIN\s+property_reviews\s+ON\s+property_reviews\.property_id\s*=\s*properties\.id\s+WHERE\s+reservations\.guest_id\s*=\s*\$1\s+GROUP\s+BY\s+reservations\.id,\s*properties\.id\s+ORDER\s+BY\s+reservations\.start_date\s+ASC,\s*reservations\.id\s+ASC\s+LIMIT\s+\$2$`

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addListRow(rows *sqlmock.Rows, id, propertyID int64, start time.Time, rating float64) *sqlmock.Rows {
	return rows.AddRow(
		id, int64(1), propertyID, start, start.AddDate(0, 0, 5),
		propertyID, int64(2), "title", "desc", "https://t", "https://c", int64(9000),
		"street", "Vancouver", "BC", "V5K", "Canada", 1, 2, 3,
		rating,
	)
}

func TestListForGuest_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(listColumns)
	rows = addListRow(rows, 10, 4, day(2026, 3, 1), 4.2)
	rows = addListRow(rows, 11, 6, day(2026, 5, 12), 3.0)

	mock.ExpectQuery(listQuery).WithArgs(int64(1), 2).WillReturnRows(rows)

	got, err := repo.ListForGuest(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(10), got[0].ID)
	assert.Equal(t, day(2026, 3, 1), got[0].StartDate)
	assert.Equal(t, day(2026, 3, 6), got[0].EndDate)
	assert.Equal(t, int64(4), got[0].Property.ID)
	assert.Equal(t, models.Cents(9000), got[0].Property.CostPerNight)
	assert.InDelta(t, 4.2, got[0].AverageRating, 1e-9)
	assert.True(t, got[0].StartDate.Before(got[1].StartDate))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListForGuest_DefaultLimit(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WithArgs(int64(5), DefaultLimit).WillReturnRows(sqlmock.NewRows(listColumns))

	got, err := repo.ListForGuest(context.Background(), 5, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListForGuest_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WillReturnError(errors.New("db down"))

	_, err := repo.ListForGuest(context.Background(), 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select reservations: db down")
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	start, end := day(2026, 7, 1), day(2026, 7, 4)
	q := `(?s)^INSERT\s+INTO\s+reservations\s*\(guest_id,\s*property_id,\s*start_date,\s*end_date\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,`

	mock.ExpectQuery(q).
		WithArgs(int64(1), int64(2), start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "guest_id", "property_id", "start_date", "end_date"}).
			AddRow(int64(30), int64(1), int64(2), start, end))

	got, err := repo.Create(context.Background(), models.NewReservation{GuestID: 1, PropertyID: 2, StartDate: start, EndDate: end})
	require.NoError(t, err)
	assert.Equal(t, &models.Reservation{ID: 30, GuestID: 1, PropertyID: 2, StartDate: start, EndDate: end}, got)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+reservations`).WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), models.NewReservation{GuestID: 1, PropertyID: 2, StartDate: day(2026, 1, 1), EndDate: day(2026, 1, 2)})
	require.EqualError(t, err, "db error: boom")
}
