package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	service AuthService
	userID  uuid.UUID
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.service = NewAuthService("test-signing-secret")
	suite.userID = uuid.New()
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) TestHashPassword_RoundTrip() {
	digest, err := suite.service.HashPassword("s3cret-password")
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), "s3cret-password", digest)
	assert.True(suite.T(), suite.service.CheckPassword("s3cret-password", digest))
}

func (suite *AuthServiceTestSuite) TestHashPassword_DistinctDigests() {
	first, err := suite.service.HashPassword("same-password")
	assert.NoError(suite.T(), err)
	second, err := suite.service.HashPassword("same-password")
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), first, second)

	// Both digests still verify
	assert.True(suite.T(), suite.service.CheckPassword("same-password", first))
	assert.True(suite.T(), suite.service.CheckPassword("same-password", second))
}

func (suite *AuthServiceTestSuite) TestCheckPassword_WrongPassword() {
	digest, err := suite.service.HashPassword("correct-password")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), suite.service.CheckPassword("wrong-password", digest))
}

func (suite *AuthServiceTestSuite) TestCheckPassword_MalformedDigest() {
	assert.False(suite.T(), suite.service.CheckPassword("anything", "not-a-bcrypt-digest"))
	assert.False(suite.T(), suite.service.CheckPassword("anything", ""))
}

func (suite *AuthServiceTestSuite) TestGenerateToken_ValidatesWithinTTL() {
	token, err := suite.service.GenerateToken(suite.userID, "user@example.com", time.Hour)
	assert.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user@example.com", claims.Email)

	userID, err := claims.UserID()
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.userID, userID)
}

func (suite *AuthServiceTestSuite) TestValidateToken_Expired() {
	token, err := suite.service.GenerateToken(suite.userID, "user@example.com", -time.Second)
	assert.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(token)
	assert.Nil(suite.T(), claims)
	assert.ErrorIs(suite.T(), err, ErrTokenExpired)
}

func (suite *AuthServiceTestSuite) TestValidateToken_ForeignSecret() {
	other := NewAuthService("a-different-secret")
	token, err := other.GenerateToken(suite.userID, "user@example.com", time.Hour)
	assert.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(token)
	assert.Nil(suite.T(), claims)
	assert.ErrorIs(suite.T(), err, ErrTokenInvalid)
}

func (suite *AuthServiceTestSuite) TestValidateToken_TamperedPayload() {
	token, err := suite.service.GenerateToken(suite.userID, "user@example.com", time.Hour)
	assert.NoError(suite.T(), err)

	// Flip a character in the payload segment
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	claims, err := suite.service.ValidateToken(string(tampered))
	assert.Nil(suite.T(), claims)
	assert.ErrorIs(suite.T(), err, ErrTokenInvalid)
}

func (suite *AuthServiceTestSuite) TestValidateToken_Malformed() {
	claims, err := suite.service.ValidateToken("not.a.token")
	assert.Nil(suite.T(), claims)
	assert.ErrorIs(suite.T(), err, ErrTokenInvalid)
}

func (suite *AuthServiceTestSuite) TestValidateTokenOptional_AnonymousCases() {
	// Absent
	assert.Nil(suite.T(), suite.service.ValidateTokenOptional(""))

	// Malformed
	assert.Nil(suite.T(), suite.service.ValidateTokenOptional("garbage"))

	// Expired
	expired, err := suite.service.GenerateToken(suite.userID, "user@example.com", -time.Second)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), suite.service.ValidateTokenOptional(expired))
}

func (suite *AuthServiceTestSuite) TestValidateTokenOptional_ValidToken() {
	token, err := suite.service.GenerateToken(suite.userID, "user@example.com", time.Hour)
	assert.NoError(suite.T(), err)

	claims := suite.service.ValidateTokenOptional(token)
	assert.NotNil(suite.T(), claims)
	assert.Equal(suite.T(), "user@example.com", claims.Email)
	assert.Equal(suite.T(), suite.userID.String(), claims.Subject)
}
