// internal/jobs/postgres.go
package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"gameforge/internal/common/database"
	"gameforge/internal/models"
)

// PostgresStore persists jobs in PostgreSQL for deployments that need
// durable job history. Artifact and error payloads are stored as JSONB.
type PostgresStore struct {
	client *database.PostgresClient
}

// NewPostgresStore creates a store over an existing PostgreSQL connection.
func NewPostgresStore(client *database.PostgresClient) *PostgresStore {
	return &PostgresStore{client: client}
}

const createJobsTable = `
CREATE TABLE IF NOT EXISTS generation_jobs (
	id         UUID PRIMARY KEY,
	state      TEXT NOT NULL,
	prompt     TEXT NOT NULL,
	requester  TEXT NOT NULL DEFAULT '',
	artifact   JSONB,
	job_error  JSONB,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// EnsureSchema creates the jobs table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.client.Exec(ctx, createJobsTable); err != nil {
		return fmt.Errorf("create jobs table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, job models.Job) error {
	artifact, jobErr, err := marshalPayloads(job)
	if err != nil {
		return err
	}

	_, err = s.client.Exec(ctx,
		`INSERT INTO generation_jobs (id, state, prompt, requester, artifact, job_error, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		job.ID, string(job.State), job.Prompt, job.Requester, artifact, jobErr, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (models.Job, error) {
	row := s.client.QueryRow(ctx,
		`SELECT id, state, prompt, requester, artifact, job_error, created_at, updated_at
		 FROM generation_jobs WHERE id = $1`, id)

	var job models.Job
	var state string
	var artifact, jobErr []byte

	err := row.Scan(&job.ID, &state, &job.Prompt, &job.Requester, &artifact, &jobErr, &job.CreatedAt, &job.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, ErrJobNotFound
	}
	if err != nil {
		return models.Job{}, fmt.Errorf("select job: %w", err)
	}

	job.State = models.JobState(state)
	if len(artifact) > 0 {
		job.Artifact = &models.Artifact{}
		if err := json.Unmarshal(artifact, job.Artifact); err != nil {
			return models.Job{}, fmt.Errorf("unmarshal artifact: %w", err)
		}
	}
	if len(jobErr) > 0 {
		job.Error = &models.JobError{}
		if err := json.Unmarshal(jobErr, job.Error); err != nil {
			return models.Job{}, fmt.Errorf("unmarshal job error: %w", err)
		}
	}
	return job, nil
}

func (s *PostgresStore) Update(ctx context.Context, job models.Job) error {
	artifact, jobErr, err := marshalPayloads(job)
	if err != nil {
		return err
	}

	result, err := s.client.Exec(ctx,
		`UPDATE generation_jobs
		 SET state = $2, artifact = $3, job_error = $4, updated_at = $5
		 WHERE id = $1`,
		job.ID, string(job.State), artifact, jobErr, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update job rows: %w", err)
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.client.Close()
}

// marshalPayloads renders the optional payloads as driver arguments. Absent
// payloads come back as untyped nil so they land as SQL NULL; a typed-nil
// []byte would be encoded as an empty bytea instead.
func marshalPayloads(job models.Job) (artifact, jobErr interface{}, err error) {
	if job.Artifact != nil {
		data, err := json.Marshal(job.Artifact)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal artifact: %w", err)
		}
		artifact = data
	}
	if job.Error != nil {
		data, err := json.Marshal(job.Error)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal job error: %w", err)
		}
		jobErr = data
	}
	return artifact, jobErr, nil
}
