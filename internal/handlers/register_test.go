package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/sbilibin2017/askaround/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := models.UserSummary{ID: uuid.New(), Name: "John", Email: "john@example.com"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","password":"secret1","name":"John"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret1", "John").
					Return(&models.AuthResponse{AccessToken: "jwt", User: user}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email already registered",
			body: `{"email":"alice@example.com","password":"secret1","name":"Alice"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "secret1", "Alice").
					Return(nil, services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  services.ErrEmailTaken.Error(),
		},
		{
			name: "validation error",
			body: `{"email":"bad","password":"secret1","name":"Bob"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bad", "secret1", "Bob").
					Return(nil, validationErr("email must be a valid email address"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "registration failed",
			body: `{"email":"bob@example.com","password":"secret1","name":"Bob"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob@example.com", "secret1", "Bob").
					Return(nil, services.ErrRegistrationFailed)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  services.ErrRegistrationFailed.Error(),
		},
		{
			name: "internal server error hides details",
			body: `{"email":"bob@example.com","password":"secret1","name":"Bob"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob@example.com", "secret1", "Bob").
					Return(nil, errors.New("pq: connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  internalErrorMessage,
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			if tt.expectedCode == http.StatusCreated {
				var resp models.AuthResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "jwt", resp.AccessToken)
				assert.Equal(t, user, resp.User)
				assert.NotContains(t, rr.Body.String(), "password")
				return
			}
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rr.Body.Bytes()))
			}
		})
	}
}
