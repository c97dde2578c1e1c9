// internal/jobs/postgres_test.go
package jobs

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge/internal/common/database"
	"gameforge/internal/models"
)

func newTestPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresStore(&database.PostgresClient{DB: db}), mock
}

func TestPostgresStoreCreate(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectExec("INSERT INTO generation_jobs").
		WithArgs("job-1", "pending", "a quiz", "tester", nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	job := models.Job{
		ID:        "job-1",
		State:     models.JobStatePending,
		Prompt:    "a quiz",
		Requester: "tester",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Create(context.Background(), job))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGet(t *testing.T) {
	store, mock := newTestPostgresStore(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "state", "prompt", "requester", "artifact", "job_error", "created_at", "updated_at"}).
		AddRow("job-1", "ready", "a quiz", "tester",
			[]byte(`{"title": "Quiz", "description": "d", "code": "c", "gameType": "quiz", "degraded": true}`),
			nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM generation_jobs WHERE id").
		WithArgs("job-1").
		WillReturnRows(rows)

	job, err := store.Get(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobStateReady, job.State)
	require.NotNil(t, job.Artifact)
	assert.Equal(t, "Quiz", job.Artifact.Title)
	assert.True(t, job.Artifact.Degraded)
	assert.Nil(t, job.Error)
}

func TestPostgresStoreGetFailedJob(t *testing.T) {
	store, mock := newTestPostgresStore(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "state", "prompt", "requester", "artifact", "job_error", "created_at", "updated_at"}).
		AddRow("job-2", "failed", "a quiz", "",
			nil, []byte(`{"kind": "JOB_STORE_FAILED", "message": "disk full"}`), now, now)

	mock.ExpectQuery("SELECT (.+) FROM generation_jobs WHERE id").
		WithArgs("job-2").
		WillReturnRows(rows)

	job, err := store.Get(context.Background(), "job-2")
	require.NoError(t, err)
	assert.Equal(t, models.JobStateFailed, job.State)
	assert.Nil(t, job.Artifact)
	require.NotNil(t, job.Error)
	assert.Equal(t, "JOB_STORE_FAILED", job.Error.Kind)
}

func TestPostgresStoreGetUnknownReturnsNotFound(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectQuery("SELECT (.+) FROM generation_jobs WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestPostgresStoreUpdate(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectExec("UPDATE generation_jobs").
		WithArgs("job-1", "ready", sqlmock.AnyArg(), nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	job := models.Job{
		ID:       "job-1",
		State:    models.JobStateReady,
		Artifact: &models.Artifact{Title: "Quiz", Type: models.GameTypeQuiz},
	}
	require.NoError(t, store.Update(context.Background(), job))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreUpdateUnknownReturnsNotFound(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectExec("UPDATE generation_jobs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(context.Background(), models.Job{ID: "missing", State: models.JobStateReady})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestPostgresStoreEnsureSchema(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS generation_jobs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
