package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lexi2/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) ListRecent(ctx context.Context, limit int) ([]*models.Contact, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Contact), args.Error(1)
}

type ContactHandlersTestSuite struct {
	suite.Suite
	e               *echo.Echo
	mockContactRepo *MockContactRepository
	handlers        *ContactHandlers
}

func (suite *ContactHandlersTestSuite) SetupTest() {
	suite.e = echo.New()
	suite.mockContactRepo = &MockContactRepository{}
	suite.handlers = NewContactHandlers(suite.mockContactRepo)
}

func (suite *ContactHandlersTestSuite) TearDownTest() {
	suite.mockContactRepo.AssertExpectations(suite.T())
}

func TestContactHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlersTestSuite))
}

func (suite *ContactHandlersTestSuite) postJSON(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return suite.e.NewContext(req, rec), rec
}

func (suite *ContactHandlersTestSuite) TestCreate_Success() {
	var created *models.Contact
	suite.mockContactRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Contact")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Contact)
		}).
		Return(nil)

	c, rec := suite.postJSON(`{"name":"Ada","email":"ada@example.com","subject":"Pricing","message":"How much?","type":"sales"}`)
	assert.NoError(suite.T(), suite.handlers.Create(c))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Contact message sent successfully")

	assert.Equal(suite.T(), "Ada", created.Name)
	assert.Equal(suite.T(), models.ContactSales, created.Type)
	assert.Equal(suite.T(), models.ContactNew, created.Status)
	assert.NotEqual(suite.T(), uuid.Nil, created.ID)
}

func (suite *ContactHandlersTestSuite) TestCreate_TypeDefaultsToGeneral() {
	var created *models.Contact
	suite.mockContactRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Contact")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Contact)
		}).
		Return(nil)

	c, rec := suite.postJSON(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	assert.NoError(suite.T(), suite.handlers.Create(c))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), models.ContactGeneral, created.Type)
	assert.Nil(suite.T(), created.Subject)
}

func (suite *ContactHandlersTestSuite) TestCreate_InvalidType() {
	c, rec := suite.postJSON(`{"name":"Ada","email":"ada@example.com","message":"Hello","type":"billing"}`)
	assert.NoError(suite.T(), suite.handlers.Create(c))
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "VALIDATION_ERROR")
	suite.mockContactRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ContactHandlersTestSuite) TestCreate_MissingFields() {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"email":"ada@example.com","message":"Hello"}`},
		{name: "missing email", body: `{"name":"Ada","message":"Hello"}`},
		{name: "missing message", body: `{"name":"Ada","email":"ada@example.com"}`},
		{name: "bad email", body: `{"name":"Ada","email":"not-an-email","message":"Hello"}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			c, rec := suite.postJSON(tt.body)
			assert.NoError(suite.T(), suite.handlers.Create(c))
			assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
		})
	}
	suite.mockContactRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ContactHandlersTestSuite) TestCreate_SubjectTooLong() {
	subject := strings.Repeat("x", 201)
	c, rec := suite.postJSON(`{"name":"Ada","email":"ada@example.com","message":"Hello","subject":"` + subject + `"}`)
	assert.NoError(suite.T(), suite.handlers.Create(c))
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	suite.mockContactRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ContactHandlersTestSuite) TestCreate_RepositoryFailure() {
	suite.mockContactRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Contact")).
		Return(errors.New("insert failed"))

	c, rec := suite.postJSON(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	assert.NoError(suite.T(), suite.handlers.Create(c))
	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
	assert.NotContains(suite.T(), rec.Body.String(), "insert failed")
}

func (suite *ContactHandlersTestSuite) TestList_Success() {
	now := time.Now().UTC()
	contacts := []*models.Contact{
		{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Message: "Second", Type: models.ContactGeneral, Status: models.ContactNew, CreatedAt: now},
		{ID: uuid.New(), Name: "Luis", Email: "luis@example.com", Message: "First", Type: models.ContactSupport, Status: models.ContactNew, CreatedAt: now.Add(-time.Hour)},
	}
	suite.mockContactRepo.On("ListRecent", mock.Anything, 100).Return(contacts, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	c := suite.e.NewContext(req, rec)

	assert.NoError(suite.T(), suite.handlers.List(c))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var resp []*models.ContactResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "Second", resp[0].Message)
	assert.Equal(suite.T(), "First", resp[1].Message)
}

func (suite *ContactHandlersTestSuite) TestList_RepositoryFailure() {
	suite.mockContactRepo.On("ListRecent", mock.Anything, 100).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	c := suite.e.NewContext(req, rec)

	assert.NoError(suite.T(), suite.handlers.List(c))
	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
}
