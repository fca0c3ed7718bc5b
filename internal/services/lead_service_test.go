package services

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"lexi2/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) GetByEmail(ctx context.Context, email string) (*models.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *models.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) ListRecent(ctx context.Context, limit int) ([]*models.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Lead), args.Error(1)
}

func (m *MockLeadRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type LeadServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLeadRepository
	service  LeadService
	ctx      context.Context
}

func (suite *LeadServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockLeadRepository{}
	suite.service = NewLeadService(suite.mockRepo)
	suite.ctx = context.Background()
	suite.mockRepo.Test(suite.T())
}

func (suite *LeadServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}

func TestExtractUTMParams(t *testing.T) {
	query := url.Values{}
	query.Set("utm_source", "google")
	query.Set("utm_campaign", "x")
	query.Set("unrelated", "y")

	utm := ExtractUTMParams(query)

	assert.Equal(t, map[string]string{
		"utm_source":   "google",
		"utm_campaign": "x",
	}, utm)
}

func TestExtractUTMParams_Empty(t *testing.T) {
	assert.Empty(t, ExtractUTMParams(url.Values{}))
}

func (suite *LeadServiceTestSuite) TestSubmit_CreatesNewLead() {
	suite.mockRepo.On("GetByEmail", suite.ctx, "new@example.com").Return(nil, pgx.ErrNoRows)

	var created *models.Lead
	suite.mockRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.Lead")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Lead)
		}).
		Return(nil)

	query := url.Values{}
	query.Set("utm_source", "google")
	query.Set("utm_campaign", "x")
	query.Set("unrelated", "y")

	firstName := "Ada"
	result, err := suite.service.Submit(suite.ctx, &LeadInput{
		Email:     "new@example.com",
		FirstName: &firstName,
		Source:    "hero",
	}, query)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Created)
	assert.NotEqual(suite.T(), uuid.Nil, result.LeadID)

	assert.Equal(suite.T(), "new@example.com", created.Email)
	assert.Equal(suite.T(), "hero", created.Source)
	assert.Equal(suite.T(), models.LeadNew, created.Status)
	assert.Equal(suite.T(), map[string]string{"utm_source": "google", "utm_campaign": "x"}, created.UTM)
}

func (suite *LeadServiceTestSuite) TestSubmit_DefaultsSource() {
	suite.mockRepo.On("GetByEmail", suite.ctx, "new@example.com").Return(nil, pgx.ErrNoRows)

	var created *models.Lead
	suite.mockRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.Lead")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Lead)
		}).
		Return(nil)

	result, err := suite.service.Submit(suite.ctx, &LeadInput{Email: "new@example.com"}, url.Values{})
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Created)
	assert.Equal(suite.T(), "unknown", created.Source)
}

func (suite *LeadServiceTestSuite) TestSubmit_UpdatesExistingLead() {
	existingID := uuid.New()
	oldCompany := "Old Co"
	existing := &models.Lead{
		ID:      existingID,
		Email:   "repeat@example.com",
		Company: &oldCompany,
		Source:  "hero",
		UTM:     map[string]string{"utm_source": "google"},
		Status:  models.LeadNew,
	}

	suite.mockRepo.On("GetByEmail", suite.ctx, "repeat@example.com").Return(existing, nil)

	var updated *models.Lead
	suite.mockRepo.On("Update", suite.ctx, mock.AnythingOfType("*models.Lead")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*models.Lead)
		}).
		Return(nil)

	newPhone := "+1-555-0100"
	query := url.Values{}
	query.Set("utm_source", "bing") // update path never reprocesses attribution

	result, err := suite.service.Submit(suite.ctx, &LeadInput{
		Email:  "repeat@example.com",
		Phone:  &newPhone,
		Source: "pricing",
	}, query)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.Created)
	assert.Equal(suite.T(), existingID, result.LeadID)

	// Non-nil fields overwrite, absent ones are preserved
	assert.Equal(suite.T(), &newPhone, updated.Phone)
	assert.Equal(suite.T(), &oldCompany, updated.Company)
	assert.Equal(suite.T(), "pricing", updated.Source)

	// Attribution keeps its creation-time value
	assert.Equal(suite.T(), map[string]string{"utm_source": "google"}, updated.UTM)
}

func (suite *LeadServiceTestSuite) TestSubmit_LookupFailure() {
	suite.mockRepo.On("GetByEmail", suite.ctx, "new@example.com").
		Return(nil, errors.New("connection refused"))

	result, err := suite.service.Submit(suite.ctx, &LeadInput{Email: "new@example.com"}, url.Values{})
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
}

func (suite *LeadServiceTestSuite) TestSubmit_CreateFailure() {
	suite.mockRepo.On("GetByEmail", suite.ctx, "new@example.com").Return(nil, pgx.ErrNoRows)
	suite.mockRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.Lead")).
		Return(errors.New("insert failed"))

	result, err := suite.service.Submit(suite.ctx, &LeadInput{Email: "new@example.com"}, url.Values{})
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
}

func (suite *LeadServiceTestSuite) TestListRecent() {
	leads := []*models.Lead{{ID: uuid.New(), Email: "a@example.com", Source: "hero"}}
	suite.mockRepo.On("ListRecent", suite.ctx, 100).Return(leads, nil)

	result, err := suite.service.ListRecent(suite.ctx, 100)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 1)
}
