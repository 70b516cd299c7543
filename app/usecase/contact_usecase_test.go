package usecase

import (
	"context"
	"testing"
	"time"

	"portal-service/app/domain"
	mock_port "portal-service/app/mocks"
	"portal-service/app/utils/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "We would like a security assessment.",
	}
}

func TestContactUseCase_Submit(t *testing.T) {
	t.Run("stores the lead and notifies in the background", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lead := &domain.Lead{ID: uuid.New(), CreatedAt: time.Now()}
		submission := validSubmission()

		notified := make(chan struct{})
		mockRepo := mock_port.NewMockContactRepositoryPort(ctrl)
		mockRepo.EXPECT().
			SubmitContactForm(gomock.Any(), submission).
			Return(lead, nil)

		mockNotifier := mock_port.NewMockEmailNotifier(ctrl)
		mockNotifier.EXPECT().
			NotifyContactSubmission(gomock.Any(), submission, lead).
			DoAndReturn(func(context.Context, *domain.ContactSubmission, *domain.Lead) error {
				close(notified)
				return nil
			})

		uc := NewContactUseCase(mockRepo, mockNotifier, validator.New(), newTestLogger(t))

		got, err := uc.Submit(context.Background(), submission)

		require.NoError(t, err)
		assert.Equal(t, lead, got)

		select {
		case <-notified:
		case <-time.After(2 * time.Second):
			t.Fatal("notification never sent")
		}
	})

	t.Run("invalid submission never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_port.NewMockContactRepositoryPort(ctrl)
		mockNotifier := mock_port.NewMockEmailNotifier(ctrl)

		uc := NewContactUseCase(mockRepo, mockNotifier, validator.New(), newTestLogger(t))

		lead, err := uc.Submit(context.Background(), &domain.ContactSubmission{
			Name:    "J",
			Email:   "not-an-email",
			Message: "short",
		})

		assert.Error(t, err)
		assert.Nil(t, lead)
	})

	t.Run("notifier failure never reaches the submitter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lead := &domain.Lead{ID: uuid.New(), CreatedAt: time.Now()}
		submission := validSubmission()

		attempted := make(chan struct{})
		mockRepo := mock_port.NewMockContactRepositoryPort(ctrl)
		mockRepo.EXPECT().
			SubmitContactForm(gomock.Any(), submission).
			Return(lead, nil)

		mockNotifier := mock_port.NewMockEmailNotifier(ctrl)
		mockNotifier.EXPECT().
			NotifyContactSubmission(gomock.Any(), submission, lead).
			DoAndReturn(func(context.Context, *domain.ContactSubmission, *domain.Lead) error {
				close(attempted)
				return assert.AnError
			})

		uc := NewContactUseCase(mockRepo, mockNotifier, validator.New(), newTestLogger(t))

		got, err := uc.Submit(context.Background(), submission)

		require.NoError(t, err)
		assert.Equal(t, lead, got)

		select {
		case <-attempted:
		case <-time.After(2 * time.Second):
			t.Fatal("notification never attempted")
		}
	})

	t.Run("repository failure surfaces and skips notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		submission := validSubmission()
		mockRepo := mock_port.NewMockContactRepositoryPort(ctrl)
		mockRepo.EXPECT().
			SubmitContactForm(gomock.Any(), submission).
			Return(nil, assert.AnError)

		mockNotifier := mock_port.NewMockEmailNotifier(ctrl)

		uc := NewContactUseCase(mockRepo, mockNotifier, validator.New(), newTestLogger(t))

		lead, err := uc.Submit(context.Background(), submission)

		assert.Error(t, err)
		assert.Nil(t, lead)
	})
}
