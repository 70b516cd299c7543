package usecase

import (
	"context"
	"testing"
	"time"

	"portal-service/app/domain"
	mock_port "portal-service/app/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testAssignments(userID uuid.UUID, roles ...domain.Role) []domain.RoleAssignment {
	assignments := make([]domain.RoleAssignment, 0, len(roles))
	for _, role := range roles {
		assignments = append(assignments, domain.RoleAssignment{
			UserID:     userID,
			Role:       role,
			AssignedAt: time.Now(),
		})
	}
	return assignments
}

func testProfile(userID uuid.UUID, orgID *uuid.UUID) *domain.UserProfile {
	return &domain.UserProfile{
		ID:             userID,
		Email:          "user@example.com",
		FirstName:      "Jane",
		LastName:       "Doe",
		OrganizationID: orgID,
	}
}

func testSnapshot(userID uuid.UUID, orgID *uuid.UUID, roles ...domain.Role) *domain.UserSnapshot {
	return &domain.UserSnapshot{
		Roles:    domain.NewRoleSet(testAssignments(userID, roles...)),
		Profile:  testProfile(userID, orgID),
		LoadedAt: time.Now(),
	}
}

func TestRoleUseCase_Ensure(t *testing.T) {
	userID := uuid.New()

	t.Run("first call fetches and holds the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_port.NewMockRoleRepositoryPort(ctrl)
		mockRepo.EXPECT().
			FetchUserData(gomock.Any(), userID).
			Return(testAssignments(userID, domain.RoleManager), testProfile(userID, nil), nil).
			Times(1)

		uc := NewRoleUseCase(mockRepo, newTestLogger(t))

		notified := []uuid.UUID{}
		uc.Subscribe(func(id uuid.UUID) { notified = append(notified, id) })

		snapshot, err := uc.Ensure(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, snapshot.HasRole(domain.RoleManager))
		assert.False(t, snapshot.IsAdmin())
		require.NotNil(t, snapshot.Profile)
		assert.Equal(t, userID, snapshot.Profile.ID)
		assert.Equal(t, []uuid.UUID{userID}, notified)

		// Second call answers from the held snapshot.
		again, err := uc.Ensure(context.Background(), userID)
		require.NoError(t, err)
		assert.Same(t, snapshot, again)
	})

	t.Run("fetch failure with no prior snapshot returns the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_port.NewMockRoleRepositoryPort(ctrl)
		gomock.InOrder(
			mockRepo.EXPECT().
				FetchUserData(gomock.Any(), userID).
				Return(nil, nil, assert.AnError),
			mockRepo.EXPECT().
				FetchUserData(gomock.Any(), userID).
				Return(testAssignments(userID, domain.RoleSupport), testProfile(userID, nil), nil),
		)

		uc := NewRoleUseCase(mockRepo, newTestLogger(t))

		snapshot, err := uc.Ensure(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, snapshot)

		// No poisoned state: the next call retries and succeeds.
		snapshot, err = uc.Ensure(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, snapshot.HasRole(domain.RoleSupport))
		assert.False(t, snapshot.Stale())
	})

	t.Run("snapshots are held per user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adminID := uuid.New()
		supportID := uuid.New()

		mockRepo := mock_port.NewMockRoleRepositoryPort(ctrl)
		mockRepo.EXPECT().
			FetchUserData(gomock.Any(), adminID).
			Return(testAssignments(adminID, domain.RoleAdmin), testProfile(adminID, nil), nil)
		mockRepo.EXPECT().
			FetchUserData(gomock.Any(), supportID).
			Return(testAssignments(supportID, domain.RoleSupport), testProfile(supportID, nil), nil)

		uc := NewRoleUseCase(mockRepo, newTestLogger(t))

		adminSnap, err := uc.Ensure(context.Background(), adminID)
		require.NoError(t, err)
		supportSnap, err := uc.Ensure(context.Background(), supportID)
		require.NoError(t, err)

		// Loading the second user must not change the first user's answer.
		assert.True(t, adminSnap.IsAdmin())
		assert.False(t, supportSnap.IsAdmin())

		held, ok := uc.Snapshot(adminID)
		require.True(t, ok)
		assert.True(t, held.IsAdmin())
	})
}

func TestRoleUseCase_Refresh(t *testing.T) {
	userID := uuid.New()

	t.Run("failed refresh keeps the previous snapshot available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_port.NewMockRoleRepositoryPort(ctrl)
		gomock.InOrder(
			mockRepo.EXPECT().
				FetchUserData(gomock.Any(), userID).
				Return(testAssignments(userID, domain.RoleAdmin), testProfile(userID, nil), nil),
			mockRepo.EXPECT().
				FetchUserData(gomock.Any(), userID).
				Return(nil, nil, assert.AnError),
		)

		uc := NewRoleUseCase(mockRepo, newTestLogger(t))
		_, err := uc.Ensure(context.Background(), userID)
		require.NoError(t, err)

		snapshot, err := uc.Refresh(context.Background(), userID)
		assert.Error(t, err)

		// Stale data stays queryable while the error is surfaced.
		require.NotNil(t, snapshot)
		assert.True(t, snapshot.IsAdmin())
		assert.NotNil(t, snapshot.Profile)
		assert.True(t, snapshot.Stale())
		assert.Equal(t, roleLoadErrorMessage, snapshot.RefreshError)
	})

	t.Run("successful refresh clears the stale marker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_port.NewMockRoleRepositoryPort(ctrl)
		gomock.InOrder(
			mockRepo.EXPECT().
				FetchUserData(gomock.Any(), userID).
				Return(testAssignments(userID, domain.RoleSupport), testProfile(userID, nil), nil),
			mockRepo.EXPECT().
				FetchUserData(gomock.Any(), userID).
				Return(nil, nil, assert.AnError),
			mockRepo.EXPECT().
				FetchUserData(gomock.Any(), userID).
				Return(testAssignments(userID, domain.RoleSupport), testProfile(userID, nil), nil),
		)

		uc := NewRoleUseCase(mockRepo, newTestLogger(t))
		_, err := uc.Ensure(context.Background(), userID)
		require.NoError(t, err)

		stale, err := uc.Refresh(context.Background(), userID)
		assert.Error(t, err)
		assert.True(t, stale.Stale())

		fresh, err := uc.Refresh(context.Background(), userID)
		require.NoError(t, err)
		assert.False(t, fresh.Stale())
		assert.True(t, fresh.HasRole(domain.RoleSupport))
	})

	t.Run("failure for one user leaves other users untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adminID := uuid.New()
		otherID := uuid.New()

		mockRepo := mock_port.NewMockRoleRepositoryPort(ctrl)
		mockRepo.EXPECT().
			FetchUserData(gomock.Any(), adminID).
			Return(testAssignments(adminID, domain.RoleAdmin), testProfile(adminID, nil), nil).
			Times(1)
		mockRepo.EXPECT().
			FetchUserData(gomock.Any(), otherID).
			Return(nil, nil, assert.AnError)

		uc := NewRoleUseCase(mockRepo, newTestLogger(t))
		_, err := uc.Ensure(context.Background(), adminID)
		require.NoError(t, err)

		_, err = uc.Refresh(context.Background(), otherID)
		assert.Error(t, err)

		// The admin's snapshot is neither dropped nor marked stale.
		snapshot, err := uc.Ensure(context.Background(), adminID)
		require.NoError(t, err)
		assert.True(t, snapshot.IsAdmin())
		assert.False(t, snapshot.Stale())
	})
}

func TestRoleUseCase_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	otherID := uuid.New()

	mockRepo := mock_port.NewMockRoleRepositoryPort(ctrl)
	mockRepo.EXPECT().
		FetchUserData(gomock.Any(), userID).
		Return(testAssignments(userID, domain.RoleAdmin), testProfile(userID, nil), nil)
	mockRepo.EXPECT().
		FetchUserData(gomock.Any(), otherID).
		Return(testAssignments(otherID, domain.RoleClient), testProfile(otherID, nil), nil)

	uc := NewRoleUseCase(mockRepo, newTestLogger(t))
	_, err := uc.Ensure(context.Background(), userID)
	require.NoError(t, err)
	_, err = uc.Ensure(context.Background(), otherID)
	require.NoError(t, err)

	uc.Reset(userID)

	_, ok := uc.Snapshot(userID)
	assert.False(t, ok)

	// The other user's snapshot survives a targeted reset.
	held, ok := uc.Snapshot(otherID)
	require.True(t, ok)
	assert.True(t, held.HasRole(domain.RoleClient))

	uc.ResetAll()
	_, ok = uc.Snapshot(otherID)
	assert.False(t, ok)
}
