package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/pizza-service/internal/handler/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Register(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		path         string
		body         string
		mockBehavior func(svc *mocks.MockUserService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "customer",
			path: "/users",
			body: `{"fullName":"Jane Doe","email":"jane@example.com","password":"secret123"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().
					Register(mock.Anything, entities.CreateUser{
						FullName: "Jane Doe",
						Email:    "jane@example.com",
						Password: "secret123",
					}).
					Return(entities.User{
						ID:           "u1",
						FullName:     "Jane Doe",
						Email:        "jane@example.com",
						Role:         entities.RoleCustomer,
						PasswordHash: "hash",
						CreatedAt:    created,
						UpdatedAt:    created,
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"role":"customer"`,
		},
		{
			name: "customer asking for staff role",
			path: "/users",
			body: `{"fullName":"Jane Doe","email":"jane@example.com","password":"secret123","role":"internal_administrator"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().Register(mock.Anything, mock.Anything).Return(entities.User{}, entities.ErrInvalidRole).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"role is not allowed here"`,
		},
		{
			name: "duplicate email",
			path: "/users",
			body: `{"fullName":"Jane Doe","email":"jane@example.com","password":"secret123"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().Register(mock.Anything, mock.Anything).Return(entities.User{}, entities.ErrUserExists).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"the user exists with same email"`,
		},
		{
			name:         "bad email",
			path:         "/users",
			body:         `{"fullName":"Jane Doe","email":"jane","password":"secret123"}`,
			mockBehavior: func(svc *mocks.MockUserService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Email":"email"`,
		},
		{
			name: "internal",
			path: "/users/internal",
			body: `{"fullName":"Kim Cook","email":"kim@example.com","password":"secret123","role":"internal_kitchen_staff"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().
					RegisterInternal(mock.Anything, mock.MatchedBy(func(in entities.CreateUser) bool {
						return in.Role == entities.RoleKitchenStaff
					})).
					Return(entities.User{ID: "u2", Role: entities.RoleKitchenStaff}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"role":"internal_kitchen_staff"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockUserService(t)
			tc.mockBehavior(svc)

			h := handler.NewUserHandler(newTestLogger(), svc, as(admin))
			status, body := serve(t, h, http.MethodPost, tc.path, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
			assert.NotContains(t, body, "hash")
		})
	}
}

func TestUserHandler_UsersByRole(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockUserService(t)
		svc.EXPECT().
			UsersByRole(mock.Anything, entities.RoleDeliveryStaff).
			Return([]entities.User{{ID: "u3", Role: entities.RoleDeliveryStaff}}, nil).Once()

		h := handler.NewUserHandler(newTestLogger(), svc, as(admin))
		status, body := serve(t, h, http.MethodPost, "/users/find/internal_delivery_staff", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"id":"u3"`)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc := mocks.NewMockUserService(t)
		svc.EXPECT().
			UsersByRole(mock.Anything, entities.Role("chef")).
			Return(nil, entities.ErrInvalidRole).Once()

		h := handler.NewUserHandler(newTestLogger(), svc, as(admin))
		status, _ := serve(t, h, http.MethodPost, "/users/find/chef", "")

		assert.Equal(t, http.StatusBadRequest, status)
	})
}
