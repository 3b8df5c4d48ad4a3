package integration

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"pawrescue-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	app, db := setupApp(t)

	username := fmt.Sprintf("newuser%d", time.Now().UnixNano())
	email := username + "@example.com"

	defer db.Unscoped().Where("username = ?", username).Delete(&model.User{})

	t.Run("register creates an active user account", func(t *testing.T) {
		code, body := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
			"name":     "New User",
			"email":    email,
			"username": username,
			"password": "secret12345",
		})
		require.Equal(t, 201, code, string(body))

		var user model.User
		require.NoError(t, db.Where("username = ?", username).First(&user).Error)
		assert.Equal(t, "user", user.Role)
		assert.NotEqual(t, "secret12345", user.PasswordHash)
	})

	t.Run("duplicate email is a validation error", func(t *testing.T) {
		code, body := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
			"name":     "Other User",
			"email":    email,
			"username": username + "x",
			"password": "secret12345",
		})
		assert.Equal(t, 400, code)

		var result struct {
			Error struct {
				Fields map[string]string `json:"fields"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(body, &result))
		assert.Contains(t, result.Error.Fields, "email")
	})

	t.Run("login with wrong password is unauthorized", func(t *testing.T) {
		code, _ := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
			"username": username,
			"password": "wrong-password",
		})
		assert.Equal(t, 401, code)
	})

	t.Run("login returns a usable token", func(t *testing.T) {
		token := loginAs(t, app, username, "secret12345")

		code, body := doRequest(t, app, "GET", "/api/user/profile", token, nil)
		require.Equal(t, 200, code)

		var result struct {
			Data struct {
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &result))
		assert.Equal(t, username, result.Data.Username)
		assert.Equal(t, "user", result.Data.Role)
	})
}

func TestAnonymousAccess(t *testing.T) {
	app, db := setupApp(t)

	stamp := time.Now().UnixNano()
	user := seedUser(t, db, fmt.Sprintf("reader%d", stamp), "user")
	animal := seedAnimal(t, db, "Mochi", "available")

	defer func() {
		db.Unscoped().Delete(&model.Animal{}, animal.Id)
		db.Unscoped().Delete(&model.User{}, user.Id)
	}()

	t.Run("anonymous can browse animals", func(t *testing.T) {
		code, _ := doRequest(t, app, "GET", "/api/animals", "", nil)
		assert.Equal(t, 200, code)

		code, _ = doRequest(t, app, "GET", "/api/animals/"+animal.Id.String(), "", nil)
		assert.Equal(t, 200, code)
	})

	t.Run("anonymous write is told to authenticate", func(t *testing.T) {
		code, body := doRequest(t, app, "POST", "/api/adoptions", "", map[string]interface{}{
			"animal_id": animal.Id,
			"message":   "I would like to adopt this animal.",
		})
		require.Equal(t, 401, code)

		var result struct {
			Error struct {
				AuthRequired bool `json:"auth_required"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(body, &result))
		assert.True(t, result.Error.AuthRequired)
	})

	t.Run("authenticated user without privilege is forbidden", func(t *testing.T) {
		token := loginAs(t, app, user.Username, "secret12345")

		code, _ := doRequest(t, app, "POST", "/api/animals", token, map[string]interface{}{
			"name":        "Biscuit",
			"species":     "rabbit",
			"breed":       "Holland Lop",
			"age":         1,
			"photo_url":   "https://example.com/biscuit.jpg",
			"description": "Rescued from a roadside box",
			"location":    "East Shelter",
		})
		assert.Equal(t, 403, code)
	})
}
