package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bazaar/internal/domain/client"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"
)

type profileServiceFixtures struct {
	service    usecase.ProfileUsecase
	userClient *mockUserClient
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userClient := newMockUserClient(t)
	service := NewProfileService(userClient, newDiscardLogger())

	return profileServiceFixtures{
		service:    service,
		userClient: userClient,
	}
}

func TestProfileService_GetProfile_MergesFirstAddress(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "ada", Email: "ada@example.com", Role: entity.RoleUser}
	addresses := []*entity.Address{
		{ID: uuid.New(), UserID: userID, Country: "NL", City: "Delft", Street: "Mijnbouwstraat 1"},
		{ID: uuid.New(), UserID: userID, Country: "NL", City: "Leiden", Street: "Breestraat 2"},
	}

	fx.userClient.On("GetUser", mock.Anything, userID).Return(user, nil).Once()
	fx.userClient.On("ListAddresses", mock.Anything, userID).Return(addresses, nil).Once()

	profile, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, profile.User)
	assert.Equal(t, addresses[0], profile.Address)
}

func TestProfileService_GetProfile_AddressFailureDegrades(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "ada", Email: "ada@example.com", Role: entity.RoleUser}

	fx.userClient.On("GetUser", mock.Anything, userID).Return(user, nil).Once()
	fx.userClient.On("ListAddresses", mock.Anything, userID).
		Return(nil, errors.New("address backend down")).Once()

	profile, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, profile.User)
	assert.Nil(t, profile.Address)
}

func TestProfileService_GetProfile_UserFailureIsFatal(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userClient.On("GetUser", mock.Anything, userID).Return(nil, client.ErrNotFound).Once()
	fx.userClient.On("ListAddresses", mock.Anything, userID).
		Return([]*entity.Address{}, nil).Maybe()

	profile, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, profile)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestProfileService_UpdateProfile_UpdatesUserAndCreatesAddress(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fullName := "Ada Lovelace"
	input := &usecase.UpdateProfileInput{
		FullName: &fullName,
		Address: &usecase.AddressInput{
			Country: "NL",
			City:    "Delft",
			Street:  "Mijnbouwstraat 1",
		},
	}

	updatedUser := &entity.User{ID: userID, Username: "ada", FullName: fullName, Role: entity.RoleUser}
	createdAddress := &entity.Address{ID: uuid.New(), UserID: userID, Country: "NL", City: "Delft", Street: "Mijnbouwstraat 1"}

	fx.userClient.On("UpdateUser", ctx, userID, mock.MatchedBy(func(in *client.UpdateUserInput) bool {
		return in.FullName != nil && *in.FullName == fullName && in.Username == nil
	})).Return(updatedUser, nil).Once()
	fx.userClient.On("ListAddresses", ctx, userID).Return([]*entity.Address{}, nil).Once()
	fx.userClient.On("CreateAddress", ctx, mock.MatchedBy(func(in *client.UpsertAddressInput) bool {
		return in.UserID == userID && in.City == "Delft"
	})).Return(createdAddress, nil).Once()

	profile, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, updatedUser, profile.User)
	assert.Equal(t, createdAddress, profile.Address)
}

func TestProfileService_UpdateProfile_ReplacesExistingAddress(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Address{ID: uuid.New(), UserID: userID, Country: "NL", City: "Leiden", Street: "Breestraat 2"}
	replaced := &entity.Address{ID: existing.ID, UserID: userID, Country: "NL", City: "Delft", Street: "Mijnbouwstraat 1"}
	input := &usecase.UpdateProfileInput{
		Address: &usecase.AddressInput{Country: "NL", City: "Delft", Street: "Mijnbouwstraat 1"},
	}

	user := &entity.User{ID: userID, Username: "ada", Role: entity.RoleUser}

	fx.userClient.On("UpdateUser", ctx, userID, mock.Anything).Return(user, nil).Once()
	fx.userClient.On("ListAddresses", ctx, userID).Return([]*entity.Address{existing}, nil).Once()
	fx.userClient.On("UpdateAddress", ctx, existing.ID, mock.Anything).Return(replaced, nil).Once()

	profile, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, replaced, profile.Address)
	fx.userClient.AssertNotCalled(t, "CreateAddress", ctx, mock.Anything)
}

func TestProfileService_ListUsers_FailureSurfaces(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	backendErr := errors.New("user backend down")

	fx.userClient.On("ListUsers", ctx).Return(nil, backendErr).Once()

	users, err := fx.service.ListUsers(ctx)

	require.Error(t, err)
	assert.Nil(t, users)
	assert.ErrorIs(t, err, backendErr)
}

func TestProfileService_UpdateProfile_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userClient.On("UpdateUser", ctx, userID, mock.Anything).Return(nil, client.ErrNotFound).Once()

	profile, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{})

	require.Error(t, err)
	assert.Nil(t, profile)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), appErr.ErrorCode())
}
