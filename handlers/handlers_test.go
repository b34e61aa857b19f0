package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sigmaquiz/handlers"
	"sigmaquiz/middleware"
	"sigmaquiz/models"
	"sigmaquiz/routes"
	"sigmaquiz/services"
)

func setupApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.School{},
		&models.SchoolRegistration{},
		&models.Round{},
		&models.Question{},
		&models.RoundParticipation{},
	))

	authService := services.NewAuthService(db, "test-secret", time.Hour)

	router := gin.New()
	router.Use(middleware.ErrorEnvelope())
	routes.SetupRoutes(router,
		handlers.NewAuthHandler(authService),
		handlers.NewUserHandler(services.NewUserService(db)),
		handlers.NewQuizHandler(services.NewQuizService(db), services.NewRegistrationService(db)),
		handlers.NewSchoolHandler(services.NewSchoolService(db)),
		handlers.NewRoundHandler(services.NewRoundService(db)),
		authService,
	)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string, roles []string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/auth/register-admin", "", gin.H{
		"first_name": "delight",
		"last_name":  "jose",
		"email":      email,
		"password":   "delightjoseph",
		"roles":      roles,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "delightjoseph",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decodeBody(t, w)["access_token"].(string)
	require.True(t, ok)
	return token
}

func TestRegisterAdminMissingEmailEnvelope(t *testing.T) {
	router, _ := setupApp(t)

	w := doJSON(t, router, http.MethodPost, "/auth/register-admin", "", gin.H{
		"first_name": "delight",
		"last_name":  "jose",
		"roles":      []string{models.RoleSuperAdmin},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]interface{}{
		"error":      "missing required field",
		"statusCode": float64(400),
		"message":    "email is required",
	}, decodeBody(t, w))
}

func TestRegisterAdminResponseShape(t *testing.T) {
	router, _ := setupApp(t)

	w := doJSON(t, router, http.MethodPost, "/auth/register-admin", "", gin.H{
		"first_name": "delight",
		"last_name":  "jose",
		"email":      "delightjose@mail.com",
		"password":   "delightjoseph",
		"roles":      []string{models.RoleSuperAdmin},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "delight", body["first_name"])
	assert.Equal(t, "jose", body["last_name"])
	assert.Equal(t, "delightjose@mail.com", body["email"])
	assert.Equal(t, []interface{}{"super-admin"}, body["roles"])
	assert.NotContains(t, body, "password")
	assert.NotEmpty(t, body["id"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z$`, body["created_at"])
}

func TestRequestsWithoutCredentialAreRejected(t *testing.T) {
	router, _ := setupApp(t)

	w := doJSON(t, router, http.MethodGet, "/quiz", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, w)["error"])

	w = doJSON(t, router, http.MethodGet, "/quiz", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsersRequiresSuperAdmin(t *testing.T) {
	router, _ := setupApp(t)
	token := registerAndLogin(t, router, "admin@mail.com", []string{models.RoleSuperAdmin})

	w := doJSON(t, router, http.MethodGet, "/users", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListUsersForbiddenForNonSuperAdmin(t *testing.T) {
	router, db := setupApp(t)
	token := registerAndLogin(t, router, "admin@mail.com", []string{models.RoleSuperAdmin})

	// Strip the role after registration; the gate checks current state.
	var user models.User
	require.NoError(t, db.Where("email = ?", "admin@mail.com").First(&user).Error)
	user.Roles = []string{models.RoleAdhoc, models.RoleQuizMaster}
	require.NoError(t, db.Save(&user).Error)

	w := doJSON(t, router, http.MethodGet, "/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, map[string]interface{}{
		"message":    "Forbidden: super-admin Only",
		"error":      "Forbidden",
		"statusCode": float64(403),
	}, decodeBody(t, w))
}

func TestQuizRoundTrip(t *testing.T) {
	router, _ := setupApp(t)
	token := registerAndLogin(t, router, "admin@mail.com", []string{models.RoleSuperAdmin})

	w := doJSON(t, router, http.MethodPost, "/quiz", token, gin.H{
		"title": "T",
		"date":  "2025-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeBody(t, w)
	assert.Contains(t, created, "created_at")
	quizID := created["id"].(string)

	w = doJSON(t, router, http.MethodGet, "/quiz/"+quizID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, map[string]interface{}{
		"id":          quizID,
		"year":        "2025",
		"title":       "T",
		"description": nil,
		"date":        "2025-03-01",
	}, body)
}

func TestQuizDuplicateDateEnvelope(t *testing.T) {
	router, _ := setupApp(t)
	token := registerAndLogin(t, router, "admin@mail.com", []string{models.RoleSuperAdmin})

	w := doJSON(t, router, http.MethodPost, "/quiz", token, gin.H{"title": "A", "date": "2025-03-01"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/quiz", token, gin.H{"title": "B", "date": "2025-03-01"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, map[string]interface{}{
		"message":    "Key (date)=(2025-03-01) already exists.",
		"error":      "Conflict",
		"statusCode": float64(409),
	}, decodeBody(t, w))
}

func TestQuizNotFoundEnvelope(t *testing.T) {
	router, _ := setupApp(t)
	token := registerAndLogin(t, router, "admin@mail.com", []string{models.RoleSuperAdmin})

	w := doJSON(t, router, http.MethodGet, "/quiz/308f5fc8-ff04-4c1d-bc6d-ea1dab4343c1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]interface{}{
		"message":    "Sigma Quiz with this id does not exist",
		"error":      "Not Found",
		"statusCode": float64(404),
	}, decodeBody(t, w))
}

func TestProfileResolvesFromCredential(t *testing.T) {
	router, _ := setupApp(t)
	token := registerAndLogin(t, router, "admin@mail.com", []string{models.RoleSuperAdmin})

	w := doJSON(t, router, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@mail.com", decodeBody(t, w)["email"])
}

func TestCreateRoundAcceptsZeroValuedFields(t *testing.T) {
	router, _ := setupApp(t)
	token := registerAndLogin(t, router, "admin@mail.com", []string{models.RoleSuperAdmin})

	w := doJSON(t, router, http.MethodPost, "/quiz", token, gin.H{"title": "T", "date": "2025-03-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	quizID := decodeBody(t, w)["id"].(string)

	// No bonus marks in this round; 0 is a present value, not a missing one.
	w = doJSON(t, router, http.MethodPost, "/rounds", token, gin.H{
		"quizId":                   quizID,
		"name":                     "Round 1",
		"round_number":             1,
		"no_of_questions":          10,
		"no_of_schools":            4,
		"marks_per_question":       2,
		"marks_per_bonus_question": 0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, float64(0), decodeBody(t, w)["marks_per_bonus_question"])

	// Leaving the field out entirely is still rejected.
	w = doJSON(t, router, http.MethodPost, "/rounds", token, gin.H{
		"quizId":             quizID,
		"name":               "Round 2",
		"round_number":       2,
		"no_of_questions":    10,
		"no_of_schools":      4,
		"marks_per_question": 2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "marks_per_bonus_question is required", decodeBody(t, w)["message"])
}

func TestValidationTagSurfacedAsErrorCode(t *testing.T) {
	router, _ := setupApp(t)

	w := doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "not-an-address",
		"password": "delightjoseph",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]interface{}{
		"error":      "email",
		"message":    "email must be a valid email",
		"statusCode": float64(400),
	}, decodeBody(t, w))

	token := registerAndLogin(t, router, "admin@mail.com", []string{models.RoleSuperAdmin})
	w = doJSON(t, router, http.MethodPost, "/quiz", token, gin.H{"title": "T", "date": "2025-03-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	quizID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/quiz/"+quizID+"/schools", token, gin.H{
		"school_id": "not-a-uuid",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "uuid", decodeBody(t, w)["error"])
}

func TestUnregisterSchoolResponse(t *testing.T) {
	router, _ := setupApp(t)
	token := registerAndLogin(t, router, "admin@mail.com", []string{models.RoleSuperAdmin})

	w := doJSON(t, router, http.MethodPost, "/quiz", token, gin.H{"title": "T", "date": "2025-03-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	quizID := decodeBody(t, w)["id"].(string)

	var schoolIDs []string
	for _, name := range []string{"Govt College", "God's grace"} {
		w = doJSON(t, router, http.MethodPost, "/school", token, gin.H{"name": name, "state": "Lagos"})
		require.Equal(t, http.StatusCreated, w.Code)
		schoolIDs = append(schoolIDs, decodeBody(t, w)["id"].(string))
	}

	for _, schoolID := range schoolIDs {
		w = doJSON(t, router, http.MethodPost, "/quiz/"+quizID+"/schools", token, gin.H{"school_id": schoolID})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, "/quiz/"+quizID+"/schools/"+schoolIDs[0], token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Successful", body["message"])
	remaining := body["registered_school"].([]interface{})
	require.Len(t, remaining, 1)

	reg := remaining[0].(map[string]interface{})
	assert.Equal(t, schoolIDs[1], reg["schoolId"])
	assert.Contains(t, reg, "quiz")
	assert.Contains(t, reg, "school")
}
