package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/client"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userClient client.UserClient
	logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userClient client.UserClient,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userClient: userClient,
		logger:     logger,
	}
}

// GetProfile fetches the user and their addresses concurrently and merges
// the first address into the profile. The address fetch is best effort;
// the user fetch is not.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var (
		user    *entity.User
		address *entity.Address
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := srv.userClient.GetUser(groupCtx, userID)
		if err != nil {
			if errors.Is(err, client.ErrNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to fetch user")
		}
		user = found

		return nil
	})
	group.Go(func() error {
		addresses, err := srv.userClient.ListAddresses(groupCtx, userID)
		if err != nil {
			srv.log(ctx).Warn("address fetch failed, composing profile without address",
				slog.Any("userID", userID), slog.Any("error", err))

			return nil
		}
		if len(addresses) > 0 {
			address = addresses[0]
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &entity.Profile{User: user, Address: address}, nil
}

// UpdateProfile applies the partial user update and upserts the attached
// address when one is supplied.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("updating profile", slog.Any("userID", userID))

	user, err := srv.userClient.UpdateUser(ctx, userID, &client.UpdateUserInput{
		Username:  input.Username,
		FullName:  input.FullName,
		AvatarURL: input.AvatarURL,
		Phone:     input.Phone,
	})
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	var address *entity.Address
	if input.Address != nil {
		address, err = srv.upsertAddress(ctx, userID, input.Address)
		if err != nil {
			return nil, err
		}
	} else {
		addresses, err := srv.userClient.ListAddresses(ctx, userID)
		if err == nil && len(addresses) > 0 {
			address = addresses[0]
		}
	}

	return &entity.Profile{User: user, Address: address}, nil
}

// upsertAddress replaces the user's first address or creates one when the
// user has none yet.
func (srv *profileService) upsertAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	existing, err := srv.userClient.ListAddresses(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	upsert := &client.UpsertAddressInput{
		UserID:     userID,
		Country:    input.Country,
		City:       input.City,
		Street:     input.Street,
		PostalCode: input.PostalCode,
	}

	if len(existing) > 0 {
		address, err := srv.userClient.UpdateAddress(ctx, existing[0].ID, upsert)
		if err != nil {
			return nil, errors.Wrap(err, "failed to update address")
		}

		return address, nil
	}

	address, err := srv.userClient.CreateAddress(ctx, upsert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// ListUsers returns every account from the User service.
func (srv *profileService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userClient.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
