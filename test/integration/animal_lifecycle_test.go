package integration

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"pawrescue-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalLifecycle(t *testing.T) {
	app, db := setupApp(t)

	stamp := time.Now().UnixNano()
	vet := seedUser(t, db, fmt.Sprintf("lcvet%d", stamp), "vet")
	admin := seedUser(t, db, fmt.Sprintf("lcadmin%d", stamp), "admin")
	adopter := seedUser(t, db, fmt.Sprintf("lcuser%d", stamp), "user")

	var animalId uuid.UUID
	defer func() {
		if animalId != uuid.Nil {
			db.Unscoped().Where("animal_id = ?", animalId).Delete(&model.AdoptionRequest{})
			db.Unscoped().Where("animal_id = ?", animalId).Delete(&model.RescueReport{})
			db.Unscoped().Where("animal_id = ?", animalId).Delete(&model.TreatmentRecord{})
			db.Unscoped().Where("animal_id = ?", animalId).Delete(&model.ProgressNote{})
			db.Unscoped().Delete(&model.Animal{}, animalId)
		}
		db.Unscoped().Delete(&model.User{}, vet.Id)
		db.Unscoped().Delete(&model.User{}, admin.Id)
		db.Unscoped().Delete(&model.User{}, adopter.Id)
	}()

	vetToken := loginAs(t, app, vet.Username, "secret12345")
	adminToken := loginAs(t, app, admin.Username, "secret12345")
	adopterToken := loginAs(t, app, adopter.Username, "secret12345")

	t.Run("invalid payload reports every bad field", func(t *testing.T) {
		code, body := doRequest(t, app, "POST", "/api/animals", vetToken, map[string]interface{}{
			"name":        "Luna",
			"species":     "cat",
			"breed":       "Siamese",
			"age":         -1,
			"photo_url":   "https://example.com/luna.jpg",
			"description": "too short",
			"location":    "West Shelter",
		})
		require.Equal(t, 400, code)

		var result struct {
			Error struct {
				Fields map[string]string `json:"fields"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(body, &result))
		assert.Contains(t, result.Error.Fields, "age")
		assert.Contains(t, result.Error.Fields, "description")
	})

	t.Run("vet creates animal with intake default status", func(t *testing.T) {
		code, body := doRequest(t, app, "POST", "/api/animals", vetToken, map[string]interface{}{
			"name":        "Luna",
			"species":     "cat",
			"breed":       "Siamese",
			"age":         "2",
			"photo_url":   "https://example.com/luna.jpg",
			"description": "Found near the harbour, very calm",
			"location":    "West Shelter",
		})
		require.Equal(t, 201, code, string(body))

		var result struct {
			Data struct {
				Id     uuid.UUID `json:"id"`
				Status string    `json:"status"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &result))
		assert.Equal(t, "available", result.Data.Status)
		animalId = result.Data.Id
		require.NotEqual(t, uuid.Nil, animalId)
	})

	t.Run("vet moves the animal through treatment", func(t *testing.T) {
		code, _ := doRequest(t, app, "PUT", "/api/animals/"+animalId.String()+"/status",
			vetToken, map[string]string{"status": "treatment"})
		require.Equal(t, 200, code)

		var animal model.Animal
		require.NoError(t, db.First(&animal, animalId).Error)
		assert.Equal(t, "treatment", animal.Status)
	})

	t.Run("regular user cannot change status", func(t *testing.T) {
		code, _ := doRequest(t, app, "PUT", "/api/animals/"+animalId.String()+"/status",
			adopterToken, map[string]string{"status": "adopted"})
		assert.Equal(t, 403, code)
	})

	t.Run("repeating the current status conflicts", func(t *testing.T) {
		code, _ := doRequest(t, app, "PUT", "/api/animals/"+animalId.String()+"/status",
			vetToken, map[string]string{"status": "treatment"})
		assert.Equal(t, 409, code)
	})

	t.Run("vet cannot revert an adopted animal", func(t *testing.T) {
		code, _ := doRequest(t, app, "PUT", "/api/animals/"+animalId.String()+"/status",
			adminToken, map[string]string{"status": "adopted"})
		require.Equal(t, 200, code)

		code, _ = doRequest(t, app, "PUT", "/api/animals/"+animalId.String()+"/status",
			vetToken, map[string]string{"status": "available"})
		assert.Equal(t, 403, code)

		code, _ = doRequest(t, app, "PUT", "/api/animals/"+animalId.String()+"/status",
			adminToken, map[string]string{"status": "adoptable"})
		assert.Equal(t, 200, code)
	})

	t.Run("delete cascades related records", func(t *testing.T) {
		code, _ := doRequest(t, app, "POST", "/api/adoptions", adopterToken, map[string]interface{}{
			"animal_id": animalId,
			"message":   "Luna would fit right in with our family.",
		})
		require.Equal(t, 201, code)

		code, _ = doRequest(t, app, "POST", "/api/animals/"+animalId.String()+"/progress",
			vetToken, map[string]string{"note": "Eating well, gaining weight steadily", "status": "recovering"})
		require.Equal(t, 201, code)

		code, _ = doRequest(t, app, "DELETE", "/api/animals/"+animalId.String(), vetToken, nil)
		assert.Equal(t, 403, code, "vet must not be able to delete")

		code, _ = doRequest(t, app, "DELETE", "/api/animals/"+animalId.String(), adminToken, nil)
		require.Equal(t, 200, code)

		var count int64
		db.Model(&model.Animal{}).Where("id = ?", animalId).Count(&count)
		assert.Zero(t, count, "animal should be gone")

		db.Model(&model.AdoptionRequest{}).Where("animal_id = ?", animalId).Count(&count)
		assert.Zero(t, count, "adoption requests should cascade")

		db.Model(&model.ProgressNote{}).Where("animal_id = ?", animalId).Count(&count)
		assert.Zero(t, count, "progress notes should cascade")

		code, _ = doRequest(t, app, "GET", "/api/animals/"+animalId.String(), "", nil)
		assert.Equal(t, 404, code)
	})
}
