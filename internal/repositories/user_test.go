package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, NewUserWriteRepository(db).Migrate(context.Background()))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserRepositories_Postgres(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	require.NoError(t, writeRepo.Save(ctx, "admin", "hash-1", models.RoleAdmin))

	t.Run("found", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "admin", user.Username)
		assert.Equal(t, "hash-1", user.PasswordHash)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("save updates existing user", func(t *testing.T) {
		require.NoError(t, writeRepo.Save(ctx, "admin", "hash-2", models.RoleUser))

		user, err := readRepo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "hash-2", user.PasswordHash)
		assert.Equal(t, models.RoleUser, user.Role)
	})

	t.Run("not found", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByUsername_Mock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserReadRepository(sqlx.NewDb(db, "sqlmock"))
	query := regexp.QuoteMeta("SELECT user_id, username, password_hash, role, created_at, updated_at")

	t.Run("no rows", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password_hash", "role", "created_at", "updated_at"}))

		user, err := repo.GetByUsername(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("admin").
			WillReturnError(errors.New("connection reset"))

		user, err := repo.GetByUsername(context.Background(), "admin")
		assert.EqualError(t, err, "connection reset")
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_Mock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserWriteRepository(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("user", "hash", models.RoleUser).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), "user", "hash", models.RoleUser))
	assert.NoError(t, mock.ExpectationsWereMet())
}
