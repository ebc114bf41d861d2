package contactrepo_test

import (
	"context"
	"testing"
	"time"

	"foodibot/internal/adapters/out/postgres/contactrepo"
	"foodibot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ContactRepositoryIntegrationTestSuite provides integration tests for
// ContactRepository using PostgreSQL containers.
type ContactRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *contactrepo.GormContactRepository
}

func (suite *ContactRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&contactrepo.ContactDTO{}))
}

func (suite *ContactRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE user_contacts").Error)
	suite.repository = contactrepo.NewGormContactRepository(suite.db)
}

func (suite *ContactRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ContactRepositoryIntegrationTestSuite) TestGet_UnknownSession_EmptyContact() {
	ctx := context.Background()

	stored, err := suite.repository.Get(ctx, suite.sessionID("session-1"))
	suite.Require().NoError(err)
	suite.True(stored.IsEmpty())
}

func (suite *ContactRepositoryIntegrationTestSuite) TestSetPhone_CreatesRecord() {
	ctx := context.Background()
	sessionID := suite.sessionID("session-1")

	suite.Require().NoError(suite.repository.SetPhone(ctx, sessionID, "+923001234567"))

	stored, err := suite.repository.Get(ctx, sessionID)
	suite.Require().NoError(err)
	suite.Equal("+923001234567", stored.Phone())
	suite.False(stored.HasEmail())
}

func (suite *ContactRepositoryIntegrationTestSuite) TestSetEmail_PreservesPhone() {
	ctx := context.Background()
	sessionID := suite.sessionID("session-1")

	suite.Require().NoError(suite.repository.SetPhone(ctx, sessionID, "+923001234567"))
	suite.Require().NoError(suite.repository.SetEmail(ctx, sessionID, "user@example.com"))

	stored, err := suite.repository.Get(ctx, sessionID)
	suite.Require().NoError(err)
	suite.Equal("+923001234567", stored.Phone())
	suite.Equal("user@example.com", stored.Email())
	suite.True(stored.IsComplete())
}

func (suite *ContactRepositoryIntegrationTestSuite) TestSetPhone_PreservesEmail() {
	ctx := context.Background()
	sessionID := suite.sessionID("session-1")

	suite.Require().NoError(suite.repository.SetEmail(ctx, sessionID, "user@example.com"))
	suite.Require().NoError(suite.repository.SetPhone(ctx, sessionID, "+923001234567"))

	stored, err := suite.repository.Get(ctx, sessionID)
	suite.Require().NoError(err)
	suite.Equal("user@example.com", stored.Email())
	suite.Equal("+923001234567", stored.Phone())
}

func (suite *ContactRepositoryIntegrationTestSuite) TestSetPhone_ReplacesExistingPhone() {
	ctx := context.Background()
	sessionID := suite.sessionID("session-1")

	suite.Require().NoError(suite.repository.SetPhone(ctx, sessionID, "+923001234567"))
	suite.Require().NoError(suite.repository.SetPhone(ctx, sessionID, "+923009999999"))

	stored, err := suite.repository.Get(ctx, sessionID)
	suite.Require().NoError(err)
	suite.Equal("+923009999999", stored.Phone())

	var count int64
	suite.Require().NoError(suite.db.Model(&contactrepo.ContactDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *ContactRepositoryIntegrationTestSuite) TestContacts_IsolatedBySession() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.SetPhone(ctx, suite.sessionID("session-1"), "+923001234567"))
	suite.Require().NoError(suite.repository.SetEmail(ctx, suite.sessionID("session-2"), "other@example.com"))

	first, err := suite.repository.Get(ctx, suite.sessionID("session-1"))
	suite.Require().NoError(err)
	suite.False(first.HasEmail())

	second, err := suite.repository.Get(ctx, suite.sessionID("session-2"))
	suite.Require().NoError(err)
	suite.False(second.HasPhone())
	suite.Equal("other@example.com", second.Email())
}

func (suite *ContactRepositoryIntegrationTestSuite) sessionID(value string) kernel.SessionID {
	sessionID, err := kernel.NewSessionID(value)
	suite.Require().NoError(err)
	return sessionID
}

func TestContactRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ContactRepositoryIntegrationTestSuite))
}
