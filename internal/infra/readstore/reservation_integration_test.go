//go:build integration

package readstore_test

import (
	"context"
	"testing"
	"time"

	"stagepass/internal/infra/db"
	"stagepass/internal/infra/readstore"
	"stagepass/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "test"
	pgDatabase = "stagepass_test"
)

// startPostgres boots a disposable Postgres on tmpfs and returns the config
// to reach it. Durability is off, the data dies with the container.
func startPostgres(t *testing.T) config.DBConfig {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       pgDatabase,
			"PGDATA":            "/var/lib/postgresql/data",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "synchronous_commit=off",
			"-c", "full_page_writes=off",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if termErr := container.Terminate(context.Background()); termErr != nil {
			t.Logf("failed to terminate postgres container: %v", termErr)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   pgDatabase,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

func migrateWithRetry(t *testing.T, cfg config.DBConfig) {
	t.Helper()
	var err error
	for range 10 {
		if err = db.Migrate(cfg); err == nil {
			return
		}
		time.Sleep(500 * time.Millisecond)
	}
	require.NoError(t, err)
}

func insertUser(t *testing.T, pool *pgxpool.Pool, name string, phone *string, email string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, name, phone) VALUES ($1, $2, $3, $4, $5)`,
		id, email, email, name, phone,
	)
	require.NoError(t, err)
	return id
}

func insertSchedule(t *testing.T, pool *pgxpool.Pool, managerID uuid.UUID, title string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO schedules (id, manager_id, title, date, capacity, is_published)
		 VALUES ($1, $2, $3, $4, $5, TRUE)`,
		id, managerID, title, time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC), 50,
	)
	require.NoError(t, err)
	return id
}

func insertReservation(t *testing.T, pool *pgxpool.Pool, userID, scheduleID uuid.UUID, createdAt time.Time, entered bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO reservations (
			id, user_id, schedule_id, performer_name,
			payment_status, reservation_status, payment_method,
			qr_code, is_entered, created_at
		) VALUES ($1, $2, $3, '밴드A', 'COMPLETED', $4, 'CARD', $5, $6, $7)`,
		id, userID, scheduleID, statusFor(entered), uuid.NewString(), entered, createdAt,
	)
	require.NoError(t, err)
	return id
}

func statusFor(entered bool) string {
	if entered {
		return "USED"
	}
	return "CONFIRMED"
}

func TestReservationReadStoreListBySchedule(t *testing.T) {
	cfg := startPostgres(t)
	migrateWithRetry(t, cfg)

	pool, cleanup, err := db.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	store := readstore.NewReservationReadStore(pool)
	ctx := context.Background()

	phone1 := "010-1234-5678"
	phone2 := "010-9876-5432"
	manager := insertUser(t, pool, "매니저", nil, "mgr@example.com")
	haneul := insertUser(t, pool, "김하늘", &phone1, "haneul@example.com")
	seojun := insertUser(t, pool, "박서준", &phone2, "seojun@example.com")
	jiwoo := insertUser(t, pool, "이지우", nil, "jiwoo@example.com")

	scheduleID := insertSchedule(t, pool, manager, "가을 공연")
	otherScheduleID := insertSchedule(t, pool, manager, "겨울 공연")

	base := time.Now().UTC().Add(-time.Hour)
	enteredRes := insertReservation(t, pool, haneul, scheduleID, base, true)
	earlierRes := insertReservation(t, pool, jiwoo, scheduleID, base.Add(time.Minute), false)
	laterRes := insertReservation(t, pool, seojun, scheduleID, base.Add(2*time.Minute), false)
	insertReservation(t, pool, manager, otherScheduleID, base, false)

	t.Run("waiting reservations come first, oldest first, other schedules excluded", func(t *testing.T) {
		views, err := store.ListBySchedule(ctx, scheduleID, "")
		require.NoError(t, err)

		require.Len(t, views, 3)
		assert.Equal(t, earlierRes, views[0].ID)
		assert.Equal(t, laterRes, views[1].ID)
		assert.Equal(t, enteredRes, views[2].ID)
		assert.False(t, views[0].IsEntered)
		assert.False(t, views[1].IsEntered)
		assert.True(t, views[2].IsEntered)
	})

	t.Run("search matches reserver name", func(t *testing.T) {
		views, err := store.ListBySchedule(ctx, scheduleID, "하늘")
		require.NoError(t, err)

		require.Len(t, views, 1)
		assert.Equal(t, enteredRes, views[0].ID)
	})

	t.Run("search matches phone fragment", func(t *testing.T) {
		views, err := store.ListBySchedule(ctx, scheduleID, "9876")
		require.NoError(t, err)

		require.Len(t, views, 1)
		assert.Equal(t, laterRes, views[0].ID)
	})

	t.Run("search matches email", func(t *testing.T) {
		views, err := store.ListBySchedule(ctx, scheduleID, "jiwoo@")
		require.NoError(t, err)

		require.Len(t, views, 1)
		assert.Equal(t, earlierRes, views[0].ID)
	})

	t.Run("no match returns an empty list", func(t *testing.T) {
		views, err := store.ListBySchedule(ctx, scheduleID, "다른사람")
		require.NoError(t, err)

		assert.Empty(t, views)
	})
}
