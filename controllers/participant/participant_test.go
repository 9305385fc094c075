package participantController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	participantController "trainhub/controllers/participant"
	"trainhub/database"
	"trainhub/middleware"
	"trainhub/models"
	participantRoutes "trainhub/routers/participantRoutes"

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
	participantRoutes.SetupParticipantRoutes(app, participantController.New(db), tokens)
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

func TestCreateAndGet(t *testing.T) {
	app, _, token := newTestApp(t)

	resp, env := doJSON(t, app, "POST", "/api/participant/create", token, fiber.Map{
		"name":  "Citra",
		"email": "citra@x.com",
		"phone": "081234567890",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Participant
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	resp, env = doJSON(t, app, "GET", fmt.Sprintf("/api/participant/get/%d", created.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fetched models.Participant
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Citra", fetched.Name)
	assert.Equal(t, "081234567890", fetched.Phone)
}

func TestListSearchAndPagination(t *testing.T) {
	app, db, token := newTestApp(t)

	require.NoError(t, db.Create(&models.Participant{Name: "Citra Dewi"}).Error)
	require.NoError(t, db.Create(&models.Participant{Name: "Citra Ayu"}).Error)
	require.NoError(t, db.Create(&models.Participant{Name: "Dian Sari"}).Error)

	resp, env := doJSON(t, app, "GET", "/api/participant/?search=Citra&page=1&limit=1", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list struct {
		Total      int64                `json:"total"`
		TotalPages int64                `json:"totalPages"`
		Items      []models.Participant `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, int64(2), list.TotalPages)
	assert.Len(t, list.Items, 1)
}

func TestUpdatePartial(t *testing.T) {
	app, db, token := newTestApp(t)

	participant := models.Participant{Name: "Citra", Email: "citra@x.com", Phone: "0812"}
	require.NoError(t, db.Create(&participant).Error)

	resp, env := doJSON(t, app, "PUT", fmt.Sprintf("/api/participant/update/%d", participant.ID), token, fiber.Map{
		"phone": "0856",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Participant
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Citra", updated.Name)
	assert.Equal(t, "citra@x.com", updated.Email)
	assert.Equal(t, "0856", updated.Phone)
}

func TestDeleteNotFound(t *testing.T) {
	app, _, token := newTestApp(t)

	resp, _ := doJSON(t, app, "DELETE", "/api/participant/delete/999", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteThenGet(t *testing.T) {
	app, db, token := newTestApp(t)

	participant := models.Participant{Name: "Citra"}
	require.NoError(t, db.Create(&participant).Error)

	resp, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/api/participant/delete/%d", participant.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", fmt.Sprintf("/api/participant/get/%d", participant.ID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
