package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stumpworks-site/internal/config"
	"stumpworks-site/internal/middleware"
	"stumpworks-site/internal/repository"
	"stumpworks-site/internal/service"
	"stumpworks-site/internal/storage"
)

type testEnv struct {
	app        *fiber.App
	cfg        *config.Config
	uploadsDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		AdminPassword: "shared-secret",
		AllowedEmails: []string{"admin@example.com"},
		JWTSecret:     "test-signing-key",
		JWTExpiry:     7 * 24 * time.Hour,
		MaxUploadSize: 50 * 1024 * 1024,
		PortfolioFile: filepath.Join(dir, "portfolio.json"),
		UploadsDir:    filepath.Join(dir, "uploads"),
	}

	repos := repository.NewFileRepositories(cfg.PortfolioFile)
	store, err := storage.NewDiskStore(cfg.UploadsDir)
	require.NoError(t, err)

	services := service.NewServices(repos, store, nil, cfg)
	handlers := NewHandlers(services, repos, store, cfg)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	api := app.Group("/api")
	api.Get("/health", handlers.Health.Check)
	api.Post("/auth/login", handlers.Auth.Login)
	api.Post("/auth/logout", handlers.Auth.Logout)
	api.Get("/auth/check", handlers.Auth.Check)
	api.Get("/portfolio", handlers.Portfolio.List)

	protected := api.Group("", middleware.AuthRequired(services.Auth))
	protected.Post("/portfolio", handlers.Portfolio.Create)
	protected.Put("/portfolio", handlers.Portfolio.Update)
	protected.Delete("/portfolio", handlers.Portfolio.Delete)
	protected.Delete("/portfolio/:id", handlers.Portfolio.Delete)
	protected.Post("/portfolio/upload", handlers.Portfolio.Upload)
	protected.Post("/upload", handlers.Media.Upload)

	return &testEnv{app: app, cfg: cfg, uploadsDir: cfg.UploadsDir}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func (e *testEnv) listItems(t *testing.T) []map[string]any {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	return items
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()

	resp, body := e.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "shared-secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Missing Fields", func(t *testing.T) {
		resp, body := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "admin@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Email and password are required", body["error"])
	})

	t.Run("Wrong Password", func(t *testing.T) {
		resp, body := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "admin@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid email or password", body["error"])
	})

	t.Run("Success Lower-Cases Email", func(t *testing.T) {
		resp, body := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "ADMIN@example.com",
			"password": "shared-secret",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["token"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "admin@example.com", user["email"])
	})

	t.Run("Unconfigured Deployment", func(t *testing.T) {
		bare := newTestEnv(t)
		bare.cfg.AdminPassword = ""

		resp, _ := bare.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "admin@example.com",
			"password": "shared-secret",
		})
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestAuthCheck(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Anonymous", func(t *testing.T) {
		resp, body := env.request(t, http.MethodGet, "/api/auth/check", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["authenticated"])
	})

	t.Run("Authenticated", func(t *testing.T) {
		token := env.login(t)

		resp, body := env.request(t, http.MethodGet, "/api/auth/check", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["authenticated"])
	})
}

func TestPortfolioLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	t.Run("Empty Store Lists Nothing", func(t *testing.T) {
		assert.Empty(t, env.listItems(t))
	})

	t.Run("Unauthenticated Writes Are Rejected", func(t *testing.T) {
		resp, _ := env.request(t, http.MethodPost, "/api/portfolio", "", map[string]any{
			"type":     "standalone",
			"mediaUrl": "https://cdn.example.com/a.jpg",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp, _ = env.request(t, http.MethodDelete, "/api/portfolio/some-id", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		assert.Empty(t, env.listItems(t))
	})

	var itemID string

	t.Run("Create Ignores Client Id", func(t *testing.T) {
		resp, body := env.request(t, http.MethodPost, "/api/portfolio", token, map[string]any{
			"id":          "client-chosen-id",
			"type":        "standalone",
			"description": "fresh grind",
			"mediaUrl":    "https://cdn.example.com/a.jpg",
			"mediaRef":    "portfolio/a",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		item, ok := body["item"].(map[string]any)
		require.True(t, ok)
		itemID, _ = item["id"].(string)
		assert.NotEmpty(t, itemID)
		assert.NotEqual(t, "client-chosen-id", itemID)
		assert.NotEmpty(t, item["uploadedAt"])
	})

	t.Run("Listing Includes New Item", func(t *testing.T) {
		items := env.listItems(t)
		require.Len(t, items, 1)
		assert.Equal(t, itemID, items[0]["id"])
	})

	t.Run("Update Description", func(t *testing.T) {
		resp, body := env.request(t, http.MethodPut, "/api/portfolio", token, map[string]any{
			"id":          itemID,
			"description": "edited",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		item := body["item"].(map[string]any)
		assert.Equal(t, "edited", item["description"])
	})

	t.Run("Before After Round Trip", func(t *testing.T) {
		resp, body := env.request(t, http.MethodPost, "/api/portfolio", token, map[string]any{
			"type":      "before-after",
			"beforeUrl": "https://cdn.example.com/before.jpg",
			"afterUrl":  "https://cdn.example.com/after.jpg",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		created := body["item"].(map[string]any)
		items := env.listItems(t)
		for _, item := range items {
			if item["id"] == created["id"] {
				assert.Equal(t, "https://cdn.example.com/before.jpg", item["beforeUrl"])
				assert.Equal(t, "https://cdn.example.com/after.jpg", item["afterUrl"])
			}
		}
	})

	t.Run("Invalid Create", func(t *testing.T) {
		resp, _ := env.request(t, http.MethodPost, "/api/portfolio", token, map[string]any{
			"type": "gallery",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Delete Then Delete Again", func(t *testing.T) {
		resp, _ := env.request(t, http.MethodDelete, "/api/portfolio/"+itemID, token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		for _, item := range env.listItems(t) {
			assert.NotEqual(t, itemID, item["id"])
		}

		resp, body := env.request(t, http.MethodDelete, "/api/portfolio?id="+itemID, token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Item not found", body["error"])
	})
}

func TestUploadThenDeletePurgesAssets(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	payload := base64.StdEncoding.EncodeToString([]byte("gallery image bytes"))

	resp, body := env.request(t, http.MethodPost, "/api/upload", token, map[string]any{
		"uploadType":   "gallery",
		"galleryFiles": []string{payload, payload},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rawImages, ok := body["images"].([]any)
	require.True(t, ok)
	require.Len(t, rawImages, 2)

	var urls, refs []string
	for _, raw := range rawImages {
		image := raw.(map[string]any)
		urls = append(urls, image["url"].(string))
		refs = append(refs, image["ref"].(string))

		// the asset is on disk before any record exists
		_, err := os.Stat(filepath.Join(env.uploadsDir, image["ref"].(string)))
		require.NoError(t, err)
	}

	resp, body = env.request(t, http.MethodPost, "/api/portfolio", token, map[string]any{
		"type":      "gallery",
		"images":    urls,
		"imageRefs": refs,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	itemID := body["item"].(map[string]any)["id"].(string)

	resp, _ = env.request(t, http.MethodDelete, "/api/portfolio/"+itemID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, ref := range refs {
		_, err := os.Stat(filepath.Join(env.uploadsDir, ref))
		assert.True(t, os.IsNotExist(err), "asset %s should be purged", ref)
	}
}

func TestMultipartUpload(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	buildForm := func(t *testing.T, fileName, contentType string) (*bytes.Buffer, string) {
		t.Helper()

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)

		header := make(map[string][]string)
		header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName)}
		header["Content-Type"] = []string{contentType}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("file bytes"))
		require.NoError(t, err)

		require.NoError(t, writer.WriteField("description", "multipart upload"))
		require.NoError(t, writer.Close())
		return &buf, writer.FormDataContentType()
	}

	t.Run("Image Upload Creates Record", func(t *testing.T) {
		buf, contentType := buildForm(t, "stump.jpg", "image/jpeg")

		req := httptest.NewRequest(http.MethodPost, "/api/portfolio/upload", buf)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		item := body["item"].(map[string]any)
		assert.Equal(t, "standalone", item["type"])
		assert.Equal(t, "image", item["mediaType"])
		assert.Equal(t, "multipart upload", item["description"])
		assert.True(t, strings.HasPrefix(item["mediaUrl"].(string), "/api/uploads/"))
	})

	t.Run("Disallowed Extension", func(t *testing.T) {
		buf, contentType := buildForm(t, "notes.txt", "text/plain")

		req := httptest.NewRequest(http.MethodPost, "/api/portfolio/upload", buf)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}
