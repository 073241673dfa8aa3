package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
	"github.com/sbilibin2017/askaround/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateAnswerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: uuid.New()}
	questionID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockAnswerCreator)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"question_id":"` + questionID.String() + `","content":"Corner cafe"}`,
			mockSetup: func(m *MockAnswerCreator) {
				m.EXPECT().Create(gomock.Any(), user.ID, questionID.String(), "Corner cafe").
					Return(&models.Answer{ID: uuid.New(), QuestionID: questionID}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "question not found",
			body: `{"question_id":"` + questionID.String() + `","content":"x"}`,
			mockSetup: func(m *MockAnswerCreator) {
				m.EXPECT().Create(gomock.Any(), user.ID, questionID.String(), "x").
					Return(nil, services.ErrQuestionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "malformed question id",
			body: `{"question_id":"abc","content":"x"}`,
			mockSetup: func(m *MockAnswerCreator) {
				m.EXPECT().Create(gomock.Any(), user.ID, "abc", "x").
					Return(nil, validationErr("question_id must be a valid uuid"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `[]`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAnswerCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withUser(httptest.NewRequest(http.MethodPost, "/answers", bytes.NewBufferString(tt.body)), user)
			rr := httptest.NewRecorder()
			NewCreateAnswerHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAnswersByQuestionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAnswersByQuestionFinder(ctrl)
	handler := NewAnswersByQuestionHandler(mockSvc)
	id := uuid.New()

	mockSvc.EXPECT().FindByQuestion(gomock.Any(), id).Return([]models.Answer{}, nil)
	rr := httptest.NewRecorder()
	handler(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/answers/question/"+id.String(), nil), "id", id.String()))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = httptest.NewRecorder()
	handler(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/answers/question/nope", nil), "id", "nope"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetAnswerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAnswerGetter(ctrl)
	handler := NewGetAnswerHandler(mockSvc)
	id := uuid.New()

	mockSvc.EXPECT().GetByID(gomock.Any(), id).Return(&models.Answer{ID: id}, nil)
	rr := httptest.NewRecorder()
	handler(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/answers/"+id.String(), nil), "id", id.String()))
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().GetByID(gomock.Any(), id).Return(nil, services.ErrAnswerNotFound)
	rr = httptest.NewRecorder()
	handler(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/answers/"+id.String(), nil), "id", id.String()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
