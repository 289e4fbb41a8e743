package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosense/croprec-server/internal/model"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &Connection{DB: db}, mock
}

func userColumns() []string {
	return []string{"id", "name", "email", "password", "created_at"}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	id := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, created_at FROM users WHERE email = $1`)).
		WithArgs("user@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(id, "User", "user@example.com", "pass", createdAt))

	user, err := repo.GetByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "User", user.Name)
	assert.Equal(t, "user@example.com", user.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, created_at FROM users WHERE email = $1`)).
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByCredentials(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, created_at FROM users WHERE email = $1 AND password = $2`)).
		WithArgs("user@example.com", "pass").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(id, "User", "user@example.com", "pass", time.Now()))

	user, err := repo.GetByCredentials(context.Background(), "user@example.com", "pass")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByCredentials_NoMatch(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, created_at FROM users WHERE email = $1 AND password = $2`)).
		WithArgs("user@example.com", "wrong").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByCredentials(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	user := model.User{
		ID:        uuid.New(),
		Name:      "User",
		Email:     "user@example.com",
		Password:  "pass",
		CreatedAt: time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (id, name, email, password, created_at)`)).
		WithArgs(user.ID, user.Name, user.Email, user.Password, user.CreatedAt).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(user.ID, user.Name, user.Email, user.Password, user.CreatedAt))

	saved, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.Email, saved.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Error(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	user := model.User{ID: uuid.New(), Email: "user@example.com"}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (id, name, email, password, created_at)`)).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	_, err := repo.Create(context.Background(), user)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
