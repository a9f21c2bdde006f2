package canvasrepo

import (
	"canvasserver/internal/models"
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *repository) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	repo := NewRepository(sqlxDB)
	return sqlxDB, mock, repo
}

const upsertQuery = `INSERT INTO canvases (canvas_id, project_id, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (canvas_id) DO UPDATE SET
			project_id = EXCLUDED.project_id,
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at`

const selectQuery = `SELECT
			c.canvas_id AS canvas_id,
			c.project_id AS project_id,
			c.data AS data,
			c.updated_at AS updated_at
			FROM canvases c
			WHERE c.canvas_id = $1`

func TestUpsert_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	projectID := "proj1"
	payload := models.EmptyScene()
	payload.Elements = append(payload.Elements, models.Element{"id": "e1", "type": "rectangle"})

	canvas := &models.Canvas{
		CanvasID:  "c1",
		ProjectID: &projectID,
		Data:      payload,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WithArgs(canvas.CanvasID, projectID, data, canvas.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(context.Background(), canvas)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_NilProjectAndData(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	canvas := &models.Canvas{
		CanvasID:  "c2",
		UpdatedAt: time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WithArgs(canvas.CanvasID, nil, nil, canvas.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), canvas)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_ExecError(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	canvas := &models.Canvas{
		CanvasID:  "c3",
		Data:      models.EmptyScene(),
		UpdatedAt: time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WillReturnError(errors.New("db failure"))

	err := repo.Upsert(context.Background(), canvas)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Upsert")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCanvasByID_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	updatedAt := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"canvas_id", "project_id", "data", "updated_at"}).
			AddRow("c1", "proj1", []byte(`{"elements":[{"id":"e1"}],"appState":{"zoom":1},"files":{}}`), updatedAt))

	canvas, err := repo.CanvasByID(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "c1", canvas.CanvasID)
	require.NotNil(t, canvas.ProjectID)
	assert.Equal(t, "proj1", *canvas.ProjectID)
	require.NotNil(t, canvas.Data)
	assert.Len(t, canvas.Data.Elements, 1)
	assert.Equal(t, updatedAt, canvas.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCanvasByID_NullProjectAndData(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("c2").
		WillReturnRows(sqlmock.NewRows([]string{"canvas_id", "project_id", "data", "updated_at"}).
			AddRow("c2", nil, nil, time.Now().UTC()))

	canvas, err := repo.CanvasByID(context.Background(), "c2")
	require.NoError(t, err)

	assert.Nil(t, canvas.ProjectID)
	assert.Nil(t, canvas.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCanvasByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"canvas_id", "project_id", "data", "updated_at"}))

	canvas, err := repo.CanvasByID(context.Background(), "missing")
	assert.Nil(t, canvas)
	assert.ErrorIs(t, err, models.ErrCanvasNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCanvasByID_QueryError(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("c1").
		WillReturnError(errors.New("db failure"))

	canvas, err := repo.CanvasByID(context.Background(), "c1")
	assert.Nil(t, canvas)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CanvasByID")
	assert.NoError(t, mock.ExpectationsWereMet())
}
