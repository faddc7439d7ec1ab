package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/pizza-service/internal/auth"
	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/service"
	mocks "github.com/SergeyBogomolovv/pizza-service/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	type MockBehavior func(users *mocks.MockUserFinder, password *mocks.MockPasswordComparer, tokens *mocks.MockTokenManager)

	dbError := errors.New("db error")
	user := entities.User{ID: "u1", Email: "jane@example.com", PasswordHash: "hashed", Role: entities.RoleCustomer}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantToken    string
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(users *mocks.MockUserFinder, password *mocks.MockPasswordComparer, tokens *mocks.MockTokenManager) {
				users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(user, nil)
				password.EXPECT().Compare("hashed", "secret123").Return(nil)
				tokens.EXPECT().Issue(user).Return("token", nil)
			},
			wantToken: "token",
		},
		{
			name: "Unknown email",
			mockBehavior: func(users *mocks.MockUserFinder, password *mocks.MockPasswordComparer, tokens *mocks.MockTokenManager) {
				users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			mockBehavior: func(users *mocks.MockUserFinder, password *mocks.MockPasswordComparer, tokens *mocks.MockTokenManager) {
				users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(user, nil)
				password.EXPECT().Compare("hashed", "secret123").Return(auth.ErrPasswordMismatch)
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name: "Store fails",
			mockBehavior: func(users *mocks.MockUserFinder, password *mocks.MockPasswordComparer, tokens *mocks.MockTokenManager) {
				users.EXPECT().GetUserByEmail(mock.Anything, "jane@example.com").Return(entities.User{}, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserFinder(t)
			password := mocks.NewMockPasswordComparer(t)
			tokens := mocks.NewMockTokenManager(t)
			tc.mockBehavior(users, password, tokens)

			svc := service.NewAuthService(newTestLogger(), users, password, tokens, mocks.NewMockCache(t))
			token, err := svc.Login(context.Background(), "jane@example.com", "secret123")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantToken, token)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	type MockBehavior func(users *mocks.MockUserFinder, tokens *mocks.MockTokenManager, cache *mocks.MockCache)

	claims := &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
	principal := entities.Principal{ID: "u1", Email: "cook@example.com", Role: entities.RoleKitchenStaff}
	cached, err := principal.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "Cached principal",
			mockBehavior: func(users *mocks.MockUserFinder, tokens *mocks.MockTokenManager, cache *mocks.MockCache) {
				tokens.EXPECT().Parse("token").Return(claims, nil)
				cache.EXPECT().Get("u1").Return(cached, true)
			},
		},
		{
			name: "Loads user on miss",
			mockBehavior: func(users *mocks.MockUserFinder, tokens *mocks.MockTokenManager, cache *mocks.MockCache) {
				tokens.EXPECT().Parse("token").Return(claims, nil)
				cache.EXPECT().Get("u1").Return(nil, false)
				users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{
					ID: "u1", Email: "cook@example.com", Role: entities.RoleKitchenStaff,
				}, nil)
				cache.EXPECT().Set("u1", cached).Return()
			},
		},
		{
			name: "Expired token",
			mockBehavior: func(users *mocks.MockUserFinder, tokens *mocks.MockTokenManager, cache *mocks.MockCache) {
				tokens.EXPECT().Parse("token").Return(nil, auth.ErrExpiredToken)
			},
			wantErr: entities.ErrUnauthenticated,
		},
		{
			name: "Deleted user",
			mockBehavior: func(users *mocks.MockUserFinder, tokens *mocks.MockTokenManager, cache *mocks.MockCache) {
				tokens.EXPECT().Parse("token").Return(claims, nil)
				cache.EXPECT().Get("u1").Return(nil, false)
				users.EXPECT().GetUserByID(mock.Anything, "u1").Return(entities.User{}, entities.ErrUserNotFound)
			},
			wantErr: entities.ErrUnauthenticated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserFinder(t)
			tokens := mocks.NewMockTokenManager(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(users, tokens, cache)

			svc := service.NewAuthService(newTestLogger(), users, mocks.NewMockPasswordComparer(t), tokens, cache)
			got, err := svc.Authenticate(context.Background(), "token")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, principal, got)
		})
	}
}
