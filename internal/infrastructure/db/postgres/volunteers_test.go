package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
)

func TestVolunteersRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(insertVolunteerSQL)).
		WithArgs("Voluntario 1", "(54) 99999-9991", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

	v := &domain.Volunteer{Name: "Voluntario 1", Phone: "(54) 99999-9991"}
	require.NoError(t, NewVolunteersRepo(db).Create(context.Background(), v))
	assert.Equal(t, int64(1), v.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVolunteersRepoUpdateReportsMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(updateVolunteerSQL)).
		WithArgs(int64(1), "Voluntario Um", "(54) 98888-0001", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(updateVolunteerSQL)).
		WithArgs(int64(99), "Voluntario Um", "(54) 98888-0001", nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewVolunteersRepo(db)

	ok, err := repo.Update(context.Background(), &domain.Volunteer{ID: 1, Name: "Voluntario Um", Phone: "(54) 98888-0001"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Update(context.Background(), &domain.Volunteer{ID: 99, Name: "Voluntario Um", Phone: "(54) 98888-0001"})
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVolunteersRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getVolunteerSQL)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "created_at"}))

	_, err = NewVolunteersRepo(db).GetByID(context.Background(), 99)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeNotFound, appErr.Code)
	assert.Equal(t, "Voluntário não encontrado", appErr.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVolunteersRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	email := "v2@ifrs.edu.br"
	mock.ExpectQuery(regexp.QuoteMeta(listVolunteersSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "created_at"}).
			AddRow(1, "Voluntario 1", "(54) 99999-9991", nil, time.Now()).
			AddRow(2, "Voluntario 2", "(54) 99999-9992", email, time.Now()))

	out, err := NewVolunteersRepo(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Nil(t, out[0].Email)
	require.NotNil(t, out[1].Email)
	assert.Equal(t, email, *out[1].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVolunteersRepoExistingIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(existingVolunteerIDsSQL)).
		WithArgs(pq.Array([]int64{1, 2, 99})).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	out, err := NewVolunteersRepo(db).ExistingIDs(context.Background(), []int64{1, 2, 99})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, out)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVolunteersRepoExistingIDsEmptyInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	out, err := NewVolunteersRepo(db).ExistingIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, out)
	require.NoError(t, mock.ExpectationsWereMet())
}
