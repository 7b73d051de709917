package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/routes"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One shared connection so every session sees the same in-memory DB.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.MigrateModels(db))
	config.DB = db

	return routes.SetupRouter()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func registerAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	email := fmt.Sprintf("%s@brewpoints.cafe", username)
	w, _ := doJSON(t, router, http.MethodPost, "/v1/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "Password1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp := doJSON(t, router, http.MethodPost, "/v1/login", "", gin.H{
		"email":    email,
		"password": "Password1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := resp["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	require.True(t, ok, "login response missing token")
	return token
}

func TestRegisterLoginAndBalance(t *testing.T) {
	router := setupTestServer(t)
	token := registerAndLogin(t, router, "ana_latte")

	w, resp := doJSON(t, router, http.MethodGet, "/v1/points", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["points"])
	assert.Equal(t, "Bronze", data["tier"])
	assert.Equal(t, float64(1.0), data["multiplier"])
}

func TestBalanceRequiresAuth(t *testing.T) {
	router := setupTestServer(t)

	w, _ := doJSON(t, router, http.MethodGet, "/v1/points", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReferralSignupCreditsReferrer(t *testing.T) {
	router := setupTestServer(t)
	referrerToken := registerAndLogin(t, router, "ben_mocha")

	// Fetch the invite code issued at registration.
	w, resp := doJSON(t, router, http.MethodGet, "/v1/referrals", referrerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	referrals := resp["data"].(map[string]interface{})["referrals"].([]interface{})
	require.Len(t, referrals, 1)
	code := referrals[0].(map[string]interface{})["code"].(string)

	// A friend signs up with the code.
	w, _ = doJSON(t, router, http.MethodPost, "/v1/register", "", gin.H{
		"username":      "cara_flat",
		"email":         "cara_flat@brewpoints.cafe",
		"password":      "Password1",
		"referral_code": code,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The referrer got the bonus.
	w, resp = doJSON(t, router, http.MethodGet, "/v1/points", referrerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(200), resp["data"].(map[string]interface{})["points"])

	// The code cannot be used again.
	w, _ = doJSON(t, router, http.MethodPost, "/v1/register", "", gin.H{
		"username":      "dan_drip",
		"email":         "dan_drip@brewpoints.cafe",
		"password":      "Password1",
		"referral_code": code,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	router := setupTestServer(t)

	w, _ := doJSON(t, router, http.MethodPost, "/v1/register", "", gin.H{
		"username": "eve_espresso",
		"email":    "eve@brewpoints.cafe",
		"password": "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
