package usecase

import (
	"context"
	"testing"

	"portal-service/app/domain"
	mock_port "portal-service/app/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrganizationUseCase_MembershipFor(t *testing.T) {
	guestOrgID := uuid.New()
	memberOrgID := uuid.New()
	userID := uuid.New()

	t.Run("member of a real organization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		org := &domain.Organization{ID: memberOrgID, Name: "Acme Corp", Status: domain.OrganizationStatusActive}

		mockRoles := mock_port.NewMockRoleUsecase(ctrl)
		mockRoles.EXPECT().
			Ensure(gomock.Any(), userID).
			Return(testSnapshot(userID, &memberOrgID, domain.RoleClient), nil)

		mockRepo := mock_port.NewMockOrganizationRepositoryPort(ctrl)
		mockRepo.EXPECT().GetByID(gomock.Any(), memberOrgID).Return(org, nil)

		uc := NewOrganizationUseCase(mockRepo, mockRoles, guestOrgID, newTestLogger(t))

		view, err := uc.MembershipFor(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, view.HasOrganization())
		assert.False(t, view.IsGuest())
		assert.False(t, view.CrossOrganization)
		assert.Equal(t, org, view.Organization)
	})

	t.Run("guest organization sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRoles := mock_port.NewMockRoleUsecase(ctrl)
		mockRoles.EXPECT().
			Ensure(gomock.Any(), userID).
			Return(testSnapshot(userID, &guestOrgID, domain.RoleClient), nil)

		mockRepo := mock_port.NewMockOrganizationRepositoryPort(ctrl)
		mockRepo.EXPECT().GetByID(gomock.Any(), guestOrgID).
			Return(&domain.Organization{ID: guestOrgID, Name: "Guests"}, nil)

		uc := NewOrganizationUseCase(mockRepo, mockRoles, guestOrgID, newTestLogger(t))

		view, err := uc.MembershipFor(context.Background(), userID)
		require.NoError(t, err)
		assert.False(t, view.HasOrganization())
		assert.True(t, view.IsGuest())
	})

	t.Run("unassigned user resolves without a repository call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRoles := mock_port.NewMockRoleUsecase(ctrl)
		mockRoles.EXPECT().
			Ensure(gomock.Any(), userID).
			Return(testSnapshot(userID, nil, domain.RoleClient), nil)

		mockRepo := mock_port.NewMockOrganizationRepositoryPort(ctrl)

		uc := NewOrganizationUseCase(mockRepo, mockRoles, guestOrgID, newTestLogger(t))

		view, err := uc.MembershipFor(context.Background(), userID)
		require.NoError(t, err)
		assert.False(t, view.HasOrganization())
		assert.False(t, view.IsGuest())
		assert.Nil(t, view.Organization)
	})

	t.Run("admin carries cross-organization scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRoles := mock_port.NewMockRoleUsecase(ctrl)
		mockRoles.EXPECT().
			Ensure(gomock.Any(), userID).
			Return(testSnapshot(userID, nil, domain.RoleAdmin), nil)

		mockRepo := mock_port.NewMockOrganizationRepositoryPort(ctrl)

		uc := NewOrganizationUseCase(mockRepo, mockRoles, guestOrgID, newTestLogger(t))

		view, err := uc.MembershipFor(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, view.CrossOrganization)
	})

	t.Run("record lookup failure degrades, membership still classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRoles := mock_port.NewMockRoleUsecase(ctrl)
		mockRoles.EXPECT().
			Ensure(gomock.Any(), userID).
			Return(testSnapshot(userID, &memberOrgID, domain.RoleClient), nil)

		mockRepo := mock_port.NewMockOrganizationRepositoryPort(ctrl)
		mockRepo.EXPECT().GetByID(gomock.Any(), memberOrgID).Return(nil, assert.AnError)

		uc := NewOrganizationUseCase(mockRepo, mockRoles, guestOrgID, newTestLogger(t))

		view, err := uc.MembershipFor(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, view.HasOrganization())
		assert.Nil(t, view.Organization)
	})

	t.Run("unavailable snapshot is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRoles := mock_port.NewMockRoleUsecase(ctrl)
		mockRoles.EXPECT().
			Ensure(gomock.Any(), userID).
			Return(nil, assert.AnError)

		mockRepo := mock_port.NewMockOrganizationRepositoryPort(ctrl)

		uc := NewOrganizationUseCase(mockRepo, mockRoles, guestOrgID, newTestLogger(t))

		view, err := uc.MembershipFor(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, view)
	})
}

func TestOrganizationUseCase_OrganizationName(t *testing.T) {
	guestOrgID := uuid.New()
	orgID := uuid.New()

	t.Run("repeated lookups answer from the record cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRoles := mock_port.NewMockRoleUsecase(ctrl)
		mockRepo := mock_port.NewMockOrganizationRepositoryPort(ctrl)
		mockRepo.EXPECT().GetByID(gomock.Any(), orgID).
			Return(&domain.Organization{ID: orgID, Name: "Acme Corp"}, nil).
			Times(1)

		uc := NewOrganizationUseCase(mockRepo, mockRoles, guestOrgID, newTestLogger(t))

		name, err := uc.OrganizationName(context.Background(), orgID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", name)

		name, err = uc.OrganizationName(context.Background(), orgID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", name)
	})

	t.Run("fetch failure surfaces the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otherID := uuid.New()

		mockRoles := mock_port.NewMockRoleUsecase(ctrl)
		mockRepo := mock_port.NewMockOrganizationRepositoryPort(ctrl)
		mockRepo.EXPECT().GetByID(gomock.Any(), otherID).Return(nil, assert.AnError)

		uc := NewOrganizationUseCase(mockRepo, mockRoles, guestOrgID, newTestLogger(t))

		_, err := uc.OrganizationName(context.Background(), otherID)
		assert.Error(t, err)
	})
}
