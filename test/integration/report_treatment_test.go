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

func TestRescueReportFlow(t *testing.T) {
	app, db := setupApp(t)

	stamp := time.Now().UnixNano()
	reporter := seedUser(t, db, fmt.Sprintf("rep%d", stamp), "user")
	vet := seedUser(t, db, fmt.Sprintf("repvet%d", stamp), "vet")
	animal := seedAnimal(t, db, "Biscuit", "recovering")

	defer func() {
		db.Unscoped().Where("animal_id = ?", animal.Id).Delete(&model.RescueReport{})
		db.Unscoped().Delete(&model.Animal{}, animal.Id)
		db.Unscoped().Delete(&model.User{}, reporter.Id)
		db.Unscoped().Delete(&model.User{}, vet.Id)
	}()

	reporterToken := loginAs(t, app, reporter.Username, "secret12345")
	vetToken := loginAs(t, app, vet.Username, "secret12345")

	var reportId uuid.UUID

	t.Run("user submits a report for an existing animal", func(t *testing.T) {
		code, body := doRequest(t, app, "POST", "/api/reports", reporterToken, map[string]interface{}{
			"animal_id": animal.Id,
			"notes":     "Seen limping near the riverbank footpath",
			"location":  "Riverside Park, east gate",
		})
		require.Equal(t, 201, code, string(body))

		var result struct {
			Data struct {
				Id     uuid.UUID `json:"id"`
				Status string    `json:"status"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &result))
		assert.Equal(t, "new", result.Data.Status)
		reportId = result.Data.Id
	})

	t.Run("report for a missing animal is not found", func(t *testing.T) {
		code, _ := doRequest(t, app, "POST", "/api/reports", reporterToken, map[string]interface{}{
			"animal_id": uuid.New(),
			"notes":     "Seen limping near the riverbank footpath",
			"location":  "Riverside Park, east gate",
		})
		assert.Equal(t, 404, code)
	})

	t.Run("reporter cannot advance the report", func(t *testing.T) {
		code, _ := doRequest(t, app, "PUT", "/api/reports/"+reportId.String()+"/status",
			reporterToken, map[string]string{"status": "processing"})
		assert.Equal(t, 403, code)
	})

	t.Run("vet completes the report skipping processing", func(t *testing.T) {
		code, _ := doRequest(t, app, "PUT", "/api/reports/"+reportId.String()+"/status",
			vetToken, map[string]string{"status": "completed"})
		require.Equal(t, 200, code)

		var report model.RescueReport
		require.NoError(t, db.First(&report, reportId).Error)
		assert.Equal(t, "completed", report.Status)
	})

	t.Run("completed report cannot move backward", func(t *testing.T) {
		code, _ := doRequest(t, app, "PUT", "/api/reports/"+reportId.String()+"/status",
			vetToken, map[string]string{"status": "processing"})
		assert.Equal(t, 409, code)
	})
}

func TestTreatmentRecords(t *testing.T) {
	app, db := setupApp(t)

	stamp := time.Now().UnixNano()
	vet := seedUser(t, db, fmt.Sprintf("trvet%d", stamp), "vet")
	admin := seedUser(t, db, fmt.Sprintf("tradmin%d", stamp), "admin")
	animal := seedAnimal(t, db, "Pepper", "treatment")

	defer func() {
		db.Unscoped().Where("animal_id = ?", animal.Id).Delete(&model.TreatmentRecord{})
		db.Unscoped().Delete(&model.Animal{}, animal.Id)
		db.Unscoped().Delete(&model.User{}, vet.Id)
		db.Unscoped().Delete(&model.User{}, admin.Id)
	}()

	vetToken := loginAs(t, app, vet.Username, "secret12345")
	adminToken := loginAs(t, app, admin.Username, "secret12345")

	var recordId uuid.UUID

	t.Run("vet records a treatment with name snapshot", func(t *testing.T) {
		code, body := doRequest(t, app, "POST", "/api/treatments", vetToken, map[string]interface{}{
			"animal_id": animal.Id,
			"diagnosis": "Mild respiratory infection, stable vitals",
			"treatment": "Administered rabies vaccination, no adverse reaction",
		})
		require.Equal(t, 201, code, string(body))

		var record model.TreatmentRecord
		require.NoError(t, db.Where("animal_id = ?", animal.Id).First(&record).Error)
		assert.Equal(t, vet.Name, record.VetName)
		recordId = record.Id
	})

	t.Run("anyone can read the treatment history", func(t *testing.T) {
		code, body := doRequest(t, app, "GET", "/api/animals/"+animal.Id.String()+"/treatments", "", nil)
		require.Equal(t, 200, code)

		var result struct {
			Data []struct {
				Id      uuid.UUID `json:"id"`
				VetName string    `json:"vet_name"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &result))
		require.Len(t, result.Data, 1)
		assert.Equal(t, vet.Name, result.Data[0].VetName)
	})

	t.Run("vet cannot delete a record", func(t *testing.T) {
		code, _ := doRequest(t, app, "DELETE", "/api/treatments/"+recordId.String(), vetToken, nil)
		assert.Equal(t, 403, code)
	})

	t.Run("admin deletes the record", func(t *testing.T) {
		code, _ := doRequest(t, app, "DELETE", "/api/treatments/"+recordId.String(), adminToken, nil)
		require.Equal(t, 200, code)

		var count int64
		db.Model(&model.TreatmentRecord{}).Where("id = ?", recordId).Count(&count)
		assert.Zero(t, count)
	})
}
