package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tripofis/travel_ledger_app/internal/apperrors"
	"github.com/tripofis/travel_ledger_app/internal/core/domain"
	portssvc "github.com/tripofis/travel_ledger_app/internal/core/ports/services"
	"github.com/tripofis/travel_ledger_app/internal/core/services"
	"github.com/tripofis/travel_ledger_app/internal/dto"
	"github.com/tripofis/travel_ledger_app/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error {
	args := m.Called(ctx, userID, deletedBy, now)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade

	admin   domain.Principal
	regular domain.Principal
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)

	suite.admin = domain.Principal{UserID: "admin-1", Username: "admin", DisplayName: "Admin", Role: domain.RoleAdmin}
	suite.regular = domain.Principal{UserID: "user-1", Username: "ayse", DisplayName: "Ayşe Yılmaz", Role: domain.RoleFinanceUser}
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username:    "mehmet",
		DisplayName: "Mehmet Demir",
		Password:    "password123",
		Role:        "finance_user",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "mehmet" &&
			u.Role == domain.RoleFinanceUser &&
			u.IsActive &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, suite.admin)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(suite.admin.UserID, user.CreatedBy)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_NonAdminForbidden() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "mehmet", DisplayName: "Mehmet", Password: "password123", Role: "finance_user"}

	user, err := suite.service.CreateUser(ctx, req, suite.regular)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "mehmet", DisplayName: "Mehmet", Password: "password123", Role: "finance_user"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req, suite.admin)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- ListUsers Tests ---
func (suite *UserServiceTestSuite) TestListUsers_AdminOnly() {
	ctx := context.Background()

	users, err := suite.service.ListUsers(ctx, 10, 0, suite.regular)

	suite.Require().Error(err)
	suite.Nil(users)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUsers", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestListUsers_Success() {
	ctx := context.Background()
	expected := []domain.User{{UserID: uuid.NewString()}, {UserID: uuid.NewString()}}

	suite.mockUserRepo.On("FindUsers", ctx, 10, 0).Return(expected, nil).Once()

	users, err := suite.service.ListUsers(ctx, 10, 0, suite.admin)

	suite.Require().NoError(err)
	suite.Len(users, 2)
}

// --- UpdateUser Tests ---
func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	newName := "New Name"
	original := &domain.User{
		UserID:      userID,
		Username:    "mehmet",
		DisplayName: "Old Name",
		Role:        domain.RoleFinanceUser,
		IsActive:    true,
	}
	req := dto.UpdateUserRequest{DisplayName: &newName}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(original, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.DisplayName == newName && u.LastUpdatedBy == suite.admin.UserID
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, req, suite.admin)

	suite.Require().NoError(err)
	suite.Equal(newName, user.DisplayName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_NonAdminForbidden() {
	ctx := context.Background()
	newName := "New Name"

	user, err := suite.service.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{DisplayName: &newName}, suite.regular)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- DeleteUser Tests ---
func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, suite.admin.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, suite.admin)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteBlocked() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, suite.admin.UserID, suite.admin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Authenticate Tests ---
func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "ayse",
		PasswordHash: hash,
		IsActive:     true,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ayse").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "ayse", "password123")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "ayse", PasswordHash: hash, IsActive: true}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ayse").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "ayse", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "ghost", "password123")

	suite.Require().Error(err)
	suite.Nil(got)
	// Unknown user and bad password are indistinguishable.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_InactiveUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "ayse", PasswordHash: hash, IsActive: false}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ayse").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "ayse", "password123")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_RepoError() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ayse").Return(nil, assert.AnError).Once()

	got, err := suite.service.Authenticate(ctx, "ayse", "password123")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, assert.AnError)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
