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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username, role string) model.User {
	t.Helper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret12345"), bcrypt.DefaultCost)
	user := model.User{
		Id:           uuid.New(),
		Name:         "Test " + username,
		Email:        fmt.Sprintf("%s-%d@example.com", username, time.Now().UnixNano()),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedAnimal(t *testing.T, db *gorm.DB, name, status string) model.Animal {
	t.Helper()

	animal := model.Animal{
		Id:          uuid.New(),
		Name:        name,
		Species:     "dog",
		Breed:       "German Shepherd",
		Age:         4,
		PhotoURL:    "https://example.com/photo.jpg",
		Description: "Friendly and house trained",
		Status:      status,
		Location:    "North Shelter",
	}
	require.NoError(t, db.Create(&animal).Error)
	return animal
}

func TestAdoptionFlow(t *testing.T) {
	app, db := setupApp(t)

	stamp := time.Now().UnixNano()
	vet := seedUser(t, db, fmt.Sprintf("vet%d", stamp), "vet")
	alice := seedUser(t, db, fmt.Sprintf("alice%d", stamp), "user")
	bob := seedUser(t, db, fmt.Sprintf("bob%d", stamp), "user")
	rex := seedAnimal(t, db, "Rex", "adoptable")

	defer func() {
		db.Unscoped().Where("animal_id = ?", rex.Id).Delete(&model.AdoptionRequest{})
		db.Unscoped().Delete(&model.Animal{}, rex.Id)
		db.Unscoped().Delete(&model.User{}, vet.Id)
		db.Unscoped().Delete(&model.User{}, alice.Id)
		db.Unscoped().Delete(&model.User{}, bob.Id)
	}()

	vetToken := loginAs(t, app, vet.Username, "secret12345")
	aliceToken := loginAs(t, app, alice.Username, "secret12345")
	bobToken := loginAs(t, app, bob.Username, "secret12345")

	submit := func(token string) (int, []byte) {
		return doRequest(t, app, "POST", "/api/adoptions", token, map[string]interface{}{
			"animal_id": rex.Id,
			"message":   "We have a big yard and plenty of time for him.",
		})
	}

	var aliceRequestId, bobRequestId uuid.UUID

	t.Run("both users submit pending requests", func(t *testing.T) {
		code, _ := submit(aliceToken)
		assert.Equal(t, 201, code)
		code, _ = submit(bobToken)
		assert.Equal(t, 201, code)

		var rows []model.AdoptionRequest
		require.NoError(t, db.Where("animal_id = ?", rex.Id).Find(&rows).Error)
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, "pending", row.Status)
			if row.UserId == alice.Id {
				aliceRequestId = row.Id
			}
			if row.UserId == bob.Id {
				bobRequestId = row.Id
			}
		}
		require.NotEqual(t, uuid.Nil, aliceRequestId)
		require.NotEqual(t, uuid.Nil, bobRequestId)
	})

	t.Run("duplicate pending request is rejected", func(t *testing.T) {
		code, body := submit(aliceToken)
		assert.Equal(t, 409, code, string(body))
	})

	t.Run("requester sees own request with animal name", func(t *testing.T) {
		code, body := doRequest(t, app, "GET", "/api/user/adoptions", aliceToken, nil)
		require.Equal(t, 200, code)

		var result struct {
			Data []struct {
				Id         uuid.UUID `json:"id"`
				AnimalName string    `json:"animal_name"`
				Status     string    `json:"status"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &result))
		require.NotEmpty(t, result.Data)

		found := false
		for _, row := range result.Data {
			if row.Id == aliceRequestId {
				found = true
				assert.Equal(t, "Rex", row.AnimalName)
				assert.Equal(t, "pending", row.Status)
			}
		}
		assert.True(t, found)
	})

	t.Run("regular user cannot decide", func(t *testing.T) {
		code, _ := doRequest(t, app, "PUT", "/api/adoptions/"+aliceRequestId.String()+"/status",
			bobToken, map[string]string{"status": "approved"})
		assert.Equal(t, 403, code)
	})

	t.Run("approval adopts the animal and rejects siblings", func(t *testing.T) {
		code, body := doRequest(t, app, "PUT", "/api/adoptions/"+aliceRequestId.String()+"/status",
			vetToken, map[string]string{"status": "approved"})
		require.Equal(t, 200, code, string(body))

		var approved model.AdoptionRequest
		require.NoError(t, db.First(&approved, aliceRequestId).Error)
		assert.Equal(t, "approved", approved.Status)
		assert.NotNil(t, approved.DecidedAt)

		var sibling model.AdoptionRequest
		require.NoError(t, db.First(&sibling, bobRequestId).Error)
		assert.Equal(t, "rejected", sibling.Status)

		var animal model.Animal
		require.NoError(t, db.First(&animal, rex.Id).Error)
		assert.Equal(t, "adopted", animal.Status)
	})

	t.Run("decided request cannot change again", func(t *testing.T) {
		code, _ := doRequest(t, app, "PUT", "/api/adoptions/"+aliceRequestId.String()+"/status",
			vetToken, map[string]string{"status": "rejected"})
		assert.Equal(t, 409, code)
	})

	t.Run("adopted animal no longer accepts requests", func(t *testing.T) {
		code, _ := submit(bobToken)
		assert.Equal(t, 409, code)
	})
}
