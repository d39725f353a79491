package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lightbnb/internal/common"
	"github.com/dmitrijs2005/lightbnb/internal/models"
	"github.com/google/go-cmp/cmp"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+users\s*\(name,\s*email,\s*password\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*name,\s*email,\s*password\s*$`
	byEmail     = `(?s)^SELECT\s+id,\s*name,\s*email,\s*password\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
	byID        = `(?s)^SELECT\s+id,\s*name,\s*email,\s*password\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
)

var userColumns = []string{"id", "name", "email", "password"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(userColumns).AddRow(int64(42), "A", "a@x.com", "p")
	mock.ExpectQuery(insertQuery).
		WithArgs("A", "a@x.com", "p").
		WillReturnRows(rows)

	in := models.NewUser{Name: "A", Email: "a@x.com", Password: "p"}
	got, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	want := &models.User{ID: 42, Name: "A", Email: "a@x.com", Password: "p"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected user (-want +got):\n%s", diff)
	}
	if in != (models.NewUser{Name: "A", Email: "a@x.com", Password: "p"}) {
		t.Fatalf("input must not be modified: %+v", in)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("A", "a@x.com", "p").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), models.NewUser{Name: "A", Email: "a@x.com", Password: "p"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(userColumns).AddRow(int64(1), "Devin Sanders", "tristanjacobs@gmail.com", "$2a$10$hash")
	mock.ExpectQuery(byEmail).
		WithArgs("tristanjacobs@gmail.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "tristanjacobs@gmail.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != 1 || got.Email != "tristanjacobs@gmail.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byEmail).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByEmail_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byEmail).
		WithArgs("a@x.com").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("db failure must not look like not found")
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(userColumns).AddRow(int64(7), "B", "b@x.com", "h")
	mock.ExpectQuery(byID).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if diff := cmp.Diff(&models.User{ID: 7, Name: "B", Email: "b@x.com", Password: "h"}, got); diff != "" {
		t.Fatalf("unexpected user (-want +got):\n%s", diff)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byID).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
