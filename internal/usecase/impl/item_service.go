package impl

import (
	"context"
	"log/slog"
	"path"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/client"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/sellermap"
	"bazaar/internal/usecase"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	listingClient client.ListingClient
	sellers       *sellermap.Registry
	mediaStore    service.MediaStore
	logger        *slog.Logger
}

// NewItemService is the constructor for itemService. mediaStore may be nil
// when no bucket is configured; file uploads are then rejected.
func NewItemService(
	listingClient client.ListingClient,
	sellers *sellermap.Registry,
	mediaStore service.MediaStore,
	logger *slog.Logger,
) usecase.ItemUsecase {
	return &itemService{
		listingClient: listingClient,
		sellers:       sellers,
		mediaStore:    mediaStore,
		logger:        logger,
	}
}

// GetItem returns the item with the seller resolved from the backend record
// or the registry. Reads tolerate an unresolved seller; the item is returned
// with a nil seller id.
func (srv *itemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.listingClient.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("item not found")
		}

		return nil, errors.Wrap(err, "failed to fetch item")
	}

	srv.attachSeller(item)

	return item, nil
}

// ListItems returns every item with sellers resolved where known. A failing
// list call fails the whole read; no silent empty result.
func (srv *itemService) ListItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := srv.listingClient.ListItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	for _, item := range items {
		srv.attachSeller(item)
	}

	return items, nil
}

// CreateItem uploads the optional media, registers the media record, creates
// the listing and records the item -> seller mapping.
func (srv *itemService) CreateItem(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateItemInput) (*entity.Item, error) {
	var mediaIDs []uuid.UUID
	if input.Upload != nil {
		media, err := srv.storeUpload(ctx, input.Upload)
		if err != nil {
			return nil, err
		}
		mediaIDs = append(mediaIDs, media.ID)
	}

	item, err := srv.listingClient.CreateItem(ctx, &client.CreateItemInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Status:      input.Status,
		Condition:   input.Condition,
		CategoryID:  input.CategoryID,
		MediaIDs:    mediaIDs,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	// The Listing service may not track ownership. Record the creator so
	// later composite reads can resolve the seller.
	srv.sellers.Record(item.ID, sellerID)
	if item.SellerID == uuid.Nil {
		item.SellerID = sellerID
	}

	srv.log(ctx).Info("item created",
		slog.Any("itemID", item.ID), slog.Any("sellerID", sellerID))

	return item, nil
}

// UpdateItem forwards the partial update after an ownership check.
func (srv *itemService) UpdateItem(ctx context.Context, callerID, itemID uuid.UUID, input *usecase.UpdateItemInput) (*entity.Item, error) {
	if err := srv.authorizeOwner(ctx, callerID, itemID); err != nil {
		return nil, err
	}

	item, err := srv.listingClient.UpdateItem(ctx, itemID, &client.UpdateItemInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Status:      input.Status,
		Condition:   input.Condition,
	})
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("item not found")
		}

		return nil, errors.Wrap(err, "failed to update item")
	}

	srv.attachSeller(item)

	return item, nil
}

// DeleteItem removes a listing after an ownership check; admins may delete
// any listing.
func (srv *itemService) DeleteItem(ctx context.Context, callerID uuid.UUID, callerRole entity.Role, itemID uuid.UUID) error {
	if callerRole != entity.RoleAdmin {
		if err := srv.authorizeOwner(ctx, callerID, itemID); err != nil {
			return err
		}
	} else if _, err := srv.GetItem(ctx, itemID); err != nil {
		// Admin path still distinguishes absent items from backend failures.
		return err
	}

	if err := srv.listingClient.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("item not found")
		}

		return errors.Wrap(err, "failed to delete item")
	}

	srv.log(ctx).Info("item deleted", slog.Any("itemID", itemID), slog.Any("callerID", callerID))

	return nil
}

// authorizeOwner fetches the item and verifies the caller is its seller.
func (srv *itemService) authorizeOwner(ctx context.Context, callerID, itemID uuid.UUID) error {
	item, err := srv.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	sellerID, err := srv.sellers.Resolve(item.ID, item.SellerID)
	if err != nil || sellerID != callerID {
		return domainerrors.ErrForbidden.WrapMessage("caller does not own this item")
	}

	return nil
}

// attachSeller fills in the seller id from the registry when the backend
// record does not carry one. The backend value is authoritative.
func (srv *itemService) attachSeller(item *entity.Item) {
	sellerID, err := srv.sellers.Resolve(item.ID, item.SellerID)
	if err != nil {
		// Unknown seller stays nil for reads.
		return
	}
	item.SellerID = sellerID
}

// storeUpload writes the blob to the bucket and registers the media record
// with the Listing service.
func (srv *itemService) storeUpload(ctx context.Context, upload *usecase.MediaUpload) (*entity.Media, error) {
	if srv.mediaStore == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("media uploads are not enabled")
	}

	key := uuid.New().String() + path.Ext(upload.Filename)
	url, err := srv.mediaStore.Upload(ctx, key, upload.ContentType, upload.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store media upload")
	}

	media, err := srv.listingClient.CreateMedia(ctx, &client.CreateMediaInput{
		URL:       url,
		Type:      "image",
		AltText:   upload.AltText,
		IsPrimary: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register media record")
	}

	return media, nil
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
