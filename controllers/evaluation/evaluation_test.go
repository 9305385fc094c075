package evaluationController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	evaluationController "trainhub/controllers/evaluation"
	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	evaluationRoutes "trainhub/routers/evaluationRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	tokens := middleware.NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue(1)
	require.NoError(t, err)

	app := fiber.New()
	evaluationRoutes.SetupEvaluationRoutes(app, evaluationController.New(db), tokens)
	return app, db, token
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func seedPair(t *testing.T, db *gorm.DB) (models.Participant, models.Module) {
	t.Helper()

	participant := models.Participant{Name: "Citra"}
	require.NoError(t, db.Create(&participant).Error)

	module := models.Module{
		Title:       "Go Basics",
		Description: "Introduction",
		ClassModule: "Batch 1",
		Date:        time.Now(),
	}
	require.NoError(t, db.Create(&module).Error)
	return participant, module
}

func TestCreateAndGet(t *testing.T) {
	app, db, token := newTestApp(t)
	participant, module := seedPair(t, db)

	resp, env := doJSON(t, app, "POST", "/api/evaluation/create", token, fiber.Map{
		"rank":           1,
		"participant_id": participant.ID,
		"module_id":      module.ID,
		"class":          "Batch 1",
		"points":         95,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Evaluation
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	// Detail eager loads the linked participant and module
	resp, env = doJSON(t, app, "GET", fmt.Sprintf("/api/evaluation/get/%d", created.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var detail models.Evaluation
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, 95, detail.Points)
	require.NotNil(t, detail.Participant)
	assert.Equal(t, "Citra", detail.Participant.Name)
	require.NotNil(t, detail.Module)
	assert.Equal(t, "Go Basics", detail.Module.Title)
}

func TestCreateRequiresReferences(t *testing.T) {
	app, _, token := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/evaluation/create", token, fiber.Map{
		"rank":   1,
		"points": 95,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListSearchByClass(t *testing.T) {
	app, db, token := newTestApp(t)
	participant, module := seedPair(t, db)

	pid, mid := participant.ID, module.ID
	require.NoError(t, db.Create(&models.Evaluation{ParticipantID: &pid, ModuleID: &mid, Class: "Batch 1", Points: 90}).Error)
	require.NoError(t, db.Create(&models.Evaluation{ParticipantID: &pid, ModuleID: &mid, Class: "Batch 2", Points: 80}).Error)

	resp, env := doJSON(t, app, "GET", "/api/evaluation/?search=Batch%201", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list struct {
		Total int64               `json:"total"`
		Items []models.Evaluation `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 90, list.Items[0].Points)
	require.NotNil(t, list.Items[0].Participant)
	assert.Equal(t, "Citra", list.Items[0].Participant.Name)
}

func TestUpdatePartial(t *testing.T) {
	app, db, token := newTestApp(t)
	participant, module := seedPair(t, db)

	pid, mid := participant.ID, module.ID
	evaluation := models.Evaluation{Rank: 2, ParticipantID: &pid, ModuleID: &mid, Class: "Batch 1", Points: 80}
	require.NoError(t, db.Create(&evaluation).Error)

	resp, env := doJSON(t, app, "PUT", fmt.Sprintf("/api/evaluation/update/%d", evaluation.ID), token, fiber.Map{
		"points": 88,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Evaluation
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 88, updated.Points)
	assert.Equal(t, 2, updated.Rank)
	assert.Equal(t, "Batch 1", updated.Class)
}

func TestDeleteNotFound(t *testing.T) {
	app, _, token := newTestApp(t)

	resp, _ := doJSON(t, app, "DELETE", "/api/evaluation/delete/999", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
