package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cashcard-service/internal/core/domain"
	"cashcard-service/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthService(t *testing.T) (*AuthServiceImpl, *mocks.MockUserRepository, *mocks.MockHashService, *mocks.MockTokenService) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockHash := mocks.NewMockHashService(ctrl)
	mockToken := mocks.NewMockTokenService(ctrl)
	return NewAuthService(mockRepo, mockHash, mockToken), mockRepo, mockHash, mockToken
}

func TestAuthService_Verify_Success(t *testing.T) {
	svc, mockRepo, mockHash, _ := newAuthService(t)

	mockRepo.EXPECT().GetByUsername(gomock.Any(), "sarah1").Return(&domain.User{
		Username:     "sarah1",
		PasswordHash: "$2a$10$hash",
		Roles:        []string{domain.RoleCardOwner},
	}, nil)
	mockHash.EXPECT().Verify("abc123", "$2a$10$hash").Return(true, nil)

	user, err := svc.Verify(context.Background(), "sarah1", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "sarah1", user.Username)
	assert.True(t, user.HasRole(domain.RoleCardOwner))
}

func TestAuthService_Verify_UnknownUser(t *testing.T) {
	svc, mockRepo, _, _ := newAuthService(t)

	mockRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	_, err := svc.Verify(context.Background(), "ghost", "whatever")
	assertAppError(t, err, "AUTH_002", 401)
}

func TestAuthService_Verify_WrongPassword(t *testing.T) {
	// Same error as an unknown username.
	svc, mockRepo, mockHash, _ := newAuthService(t)

	mockRepo.EXPECT().GetByUsername(gomock.Any(), "sarah1").Return(&domain.User{
		Username:     "sarah1",
		PasswordHash: "$2a$10$hash",
	}, nil)
	mockHash.EXPECT().Verify("wrong", "$2a$10$hash").Return(false, nil)

	_, err := svc.Verify(context.Background(), "sarah1", "wrong")
	assertAppError(t, err, "AUTH_002", 401)
}

func TestAuthService_Verify_RepoError(t *testing.T) {
	svc, mockRepo, _, _ := newAuthService(t)

	mockRepo.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

	_, err := svc.Verify(context.Background(), "sarah1", "abc123")
	assertAppError(t, err, "SYS_002", 503)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, mockRepo, mockHash, mockToken := newAuthService(t)

	roles := []string{domain.RoleCardOwner}
	mockRepo.EXPECT().GetByUsername(gomock.Any(), "sarah1").Return(&domain.User{
		Username:     "sarah1",
		PasswordHash: "$2a$10$hash",
		Roles:        roles,
	}, nil)
	mockHash.EXPECT().Verify("abc123", "$2a$10$hash").Return(true, nil)

	expiry := time.Now().Add(24 * time.Hour)
	mockToken.EXPECT().Generate("sarah1", roles).Return("jwt-token", expiry, nil)

	token, exp, err := svc.Login(context.Background(), "sarah1", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, mockRepo, _, _ := newAuthService(t)

	mockRepo.EXPECT().GetByUsername(gomock.Any(), "john").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), "john", "bad")
	assertAppError(t, err, "AUTH_002", 401)
}

func TestAuthService_Login_TokenError(t *testing.T) {
	svc, mockRepo, mockHash, mockToken := newAuthService(t)

	mockRepo.EXPECT().GetByUsername(gomock.Any(), "sarah1").Return(&domain.User{
		Username:     "sarah1",
		PasswordHash: "$2a$10$hash",
	}, nil)
	mockHash.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true, nil)
	mockToken.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", time.Time{}, errors.New("sign failed"))

	_, _, err := svc.Login(context.Background(), "sarah1", "abc123")
	assertAppError(t, err, "SYS_001", 500)
}
