package integration

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"pawrescue-be/internal/bootstrap"
	"pawrescue-be/internal/config"
	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/pkg/serverutils"
	"pawrescue-be/internal/server"
	"pawrescue-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// setupApp boots the full application against the database configured in
// .env. Tests are skipped when no database is reachable so the suite stays
// runnable on machines without local infrastructure.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Skipf("database not reachable, skipping: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	return srv.GetApp(), db
}

func loginAs(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	body, _ := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("login as %s returned %d", username, resp.StatusCode)
	}

	var result serverutils.BaseResponse[dto.LoginResponse]
	json.NewDecoder(resp.Body).Decode(&result)
	if result.Data.AccessToken == "" {
		t.Fatalf("login as %s returned empty token", username)
	}
	return result.Data.AccessToken
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, payload interface{}) (int, []byte) {
	t.Helper()

	reader := strings.NewReader("")
	if payload != nil {
		body, _ := json.Marshal(payload)
		reader = strings.NewReader(string(body))
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, target, err)
	}
	return resp.StatusCode, body
}
