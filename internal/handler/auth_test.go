package handler_test

import (
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/pizza-service/internal/handler/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Login(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "jane@example.com", "secret123").Return("token", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"token":"token"}`,
		},
		{
			name: "wrong password",
			body: `{"email":"jane@example.com","password":"nope"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "jane@example.com", "nope").Return("", entities.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"invalid username or password"}`,
		},
		{
			name:         "missing password",
			body:         `{"email":"jane@example.com"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"message":"invalid request","fields":{"Password":"required"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			tc.mockBehavior(svc)

			h := handler.NewAuthHandler(newTestLogger(), svc)
			status, body := serve(t, h, http.MethodPost, "/auth/login", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.JSONEq(t, tc.wantBody, body)
		})
	}
}
