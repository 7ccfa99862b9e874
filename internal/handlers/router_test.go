package handlers_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/config"
	dbpkg "github.com/vkclicks/vkclicks-api/internal/db"
	"github.com/vkclicks/vkclicks-api/internal/models"
	"github.com/vkclicks/vkclicks-api/internal/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		SecretKey:     "test-secret",
		SiteName:      "VK Clicks",
		FromEmail:     "noreply@vkclicks.local",
		ResetTokenTTL: time.Hour,

		StorageDriver:  "local",
		StoragePath:    t.TempDir(),
		StorageBaseURL: "/media",

		UploadMaxWidth:    1600,
		UploadWebpQuality: 85,
	}
}

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	r := gin.New()
	routes.RegisterRoutes(r, db, testConfig(t))
	return r, db
}

func doJSON(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// signup registers a user and returns its auth token.
func signup(t *testing.T, r http.Handler, username string) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/auth/signup/", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// saveProfile creates the photographer row for the user behind token
// and returns its id.
func saveProfile(t *testing.T, r http.Handler, token, location string) uint {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/photographer/profile/", token, gin.H{
		"phone_number":        "9999999999",
		"location":            location,
		"bio":                 "shoots weddings",
		"type_of_photography": "Wedding",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	id, _ := decode(t, w)["id"].(float64)
	require.NotZero(t, id)
	return uint(id)
}

// pngUpload builds a multipart body carrying a small generated PNG
// under field, plus any extra form fields.
func pngUpload(t *testing.T, field string, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile(field, "upload.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(fw, img))

	for k, v := range extra {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func seedReview(t *testing.T, db *gorm.DB, photographerID uint, email string, rating int, age time.Duration) {
	t.Helper()

	require.NoError(t, db.Create(&models.Review{
		PhotographerID: photographerID,
		ClientName:     "Client " + email,
		ClientEmail:    email,
		Rating:         rating,
		CreatedAt:      time.Now().Add(-age),
	}).Error)
}

func bookingPayload(photographerID uint) gin.H {
	return gin.H{
		"photographer_id": photographerID,
		"client_name":     "Ravi",
		"client_email":    "ravi@example.com",
		"client_phone":    "9999999999",
		"event_date":      "2026-09-12",
		"event_time":      "14:30",
		"event_location":  "Mumbai",
		"event_type":      "Wedding",
	}
}
