package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/sbilibin2017/askaround/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: uuid.New(), Email: "john@example.com", Name: "John", Role: models.RoleUser}
	other := uuid.New()

	tests := []struct {
		name         string
		pathID       string
		body         string
		anonymous    bool
		mockSetup    func(m *MockProfileUpdater)
		expectedCode int
		expectedName string
	}{
		{
			name:   "owner renames",
			pathID: user.ID.String(),
			body:   `{"name":"Johnny"}`,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), user.ID, user.ID, "Johnny").
					Return(&models.UserProfile{ID: user.ID, Name: "Johnny"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedName: "Johnny",
		},
		{
			name:   "another user's profile",
			pathID: other.String(),
			body:   `{"name":"Mallory"}`,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), user.ID, other, "Mallory").Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "blank name",
			pathID: user.ID.String(),
			body:   `{"name":""}`,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), user.ID, user.ID, "").Return(nil, validationErr("name is required"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "storage failure",
			pathID: user.ID.String(),
			body:   `{"name":"Johnny"}`,
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), user.ID, user.ID, "Johnny").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "malformed id",
			pathID:       "nope",
			body:         `{"name":"Johnny"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			pathID:       user.ID.String(),
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no user in context",
			pathID:       user.ID.String(),
			body:         `{"name":"Johnny"}`,
			anonymous:    true,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPatch, "/users/"+tt.pathID, strings.NewReader(tt.body))
			req = withURLParam(req, "id", tt.pathID)
			if !tt.anonymous {
				req = withUser(req, user)
			}
			rr := httptest.NewRecorder()

			NewUpdateProfileHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedName != "" {
				var profile models.UserProfile
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
				assert.Equal(t, tt.expectedName, profile.Name)
			}
		})
	}
}
