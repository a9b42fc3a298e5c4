package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"planner/internal/auth"
	"planner/internal/handler"
	"planner/internal/model"
)

const testAdminPassword = "let-me-in"

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func setupUserRouter() (*gin.Engine, *MockUserRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockRepo := new(MockUserRepository)
	tokens := auth.NewTokenManager("test-secret-key", 24)
	userHandler := handler.NewUserHandler(mockRepo, tokens, testAdminPassword)

	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	return r, mockRepo
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter()
	mockRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	jsonBody, _ := json.Marshal(map[string]string{
		"email":          "Alice@Example.com",
		"password":       "password123",
		"admin_password": testAdminPassword,
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert: email is lowercased, a usable token comes back
	assert.Equal(t, http.StatusCreated, resp.Code)

	var response handler.AuthResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "alice@example.com", response.User.Email)
	mockRepo.AssertExpectations(t)
}

func TestRegister_WrongAdminPassword(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter()

	jsonBody, _ := json.Marshal(map[string]string{
		"email":          "alice@example.com",
		"password":       "password123",
		"admin_password": "nope",
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid admin password")
	mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestRegister_EmptyAdminPasswordConfig(t *testing.T) {
	// Arrange: an unset admin password closes registration entirely
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockRepo := new(MockUserRepository)
	tokens := auth.NewTokenManager("test-secret-key", 24)
	r.POST("/register", handler.NewUserHandler(mockRepo, tokens, "").Register)

	jsonBody, _ := json.Marshal(map[string]string{
		"email":          "alice@example.com",
		"password":       "password123",
		"admin_password": "",
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	// Assert: binding rejects the empty field before the gate is reached
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter()
	existing := &model.User{ID: uuid.New(), Email: "alice@example.com"}
	mockRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	jsonBody, _ := json.Marshal(map[string]string{
		"email":          "alice@example.com",
		"password":       "password123",
		"admin_password": testAdminPassword,
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "User already exists")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_PasswordTooShort(t *testing.T) {
	// Arrange
	router, _ := setupUserRouter()

	jsonBody, _ := json.Marshal(map[string]string{
		"email":          "alice@example.com",
		"password":       "short",
		"admin_password": testAdminPassword,
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &model.User{ID: uuid.New(), Email: "alice@example.com", HashedPassword: string(hash)}
	mockRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

	jsonBody, _ := json.Marshal(map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.AuthResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, user.ID.String(), response.User.ID)
	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &model.User{ID: uuid.New(), Email: "alice@example.com", HashedPassword: string(hash)}
	mockRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

	jsonBody, _ := json.Marshal(map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid email or password")
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter()
	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	jsonBody, _ := json.Marshal(map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert: unknown email and wrong password are indistinguishable
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid email or password")
}
