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
	"bazaar/internal/infra/sellermap"
	"bazaar/internal/usecase"
)

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	txClient      client.TransactionClient
	listingClient client.ListingClient
	profiles      usecase.ProfileUsecase
	wallets       usecase.WalletUsecase
	sellers       *sellermap.Registry
	logger        *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(
	txClient client.TransactionClient,
	listingClient client.ListingClient,
	profiles usecase.ProfileUsecase,
	wallets usecase.WalletUsecase,
	sellers *sellermap.Registry,
	logger *slog.Logger,
) usecase.TransactionUsecase {
	return &transactionService{
		txClient:      txClient,
		listingClient: listingClient,
		profiles:      profiles,
		wallets:       wallets,
		sellers:       sellers,
		logger:        logger,
	}
}

// Create orchestrates the purchase composition. Stages advance strictly in
// order: buyer and item resolve first, then the seller, then seller profile
// and wallets, and only then does the create call reach the backend. A
// failure at any stage aborts before the next; no partial transaction is
// ever client-visible.
func (srv *transactionService) Create(ctx context.Context, buyerID uuid.UUID, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	// Buyer profile and raw item are independent; fetch them concurrently.
	var (
		buyer *entity.Profile
		item  *entity.Item
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := srv.profiles.GetProfile(groupCtx, buyerID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve buyer")
		}
		buyer = found

		return nil
	})
	group.Go(func() error {
		found, err := srv.listingClient.GetItem(groupCtx, input.ItemID)
		if err != nil {
			if errors.Is(err, client.ErrNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("item not found")
			}

			return errors.Wrap(err, "failed to fetch item")
		}
		item = found

		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Creation-time seller resolution is strict: without a seller there is
	// nothing to transact against and the backend is never called.
	sellerID, err := srv.sellers.Resolve(item.ID, item.SellerID)
	if err != nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("seller could not be resolved for item " + item.ID.String())
	}
	item.SellerID = sellerID

	if sellerID == buyerID {
		return nil, domainerrors.ErrConflict.WrapMessage("cannot purchase your own item")
	}

	// Seller profile and both wallet provisions are independent of each
	// other; run them concurrently for latency.
	var seller *entity.Profile
	group, groupCtx = errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := srv.profiles.GetProfile(groupCtx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve seller")
		}
		seller = found

		return nil
	})
	group.Go(func() error {
		if _, err := srv.wallets.EnsureWallet(groupCtx, buyerID); err != nil {
			return errors.Wrap(err, "failed to ensure buyer wallet")
		}

		return nil
	})
	group.Go(func() error {
		if _, err := srv.wallets.EnsureWallet(groupCtx, sellerID); err != nil {
			return errors.Wrap(err, "failed to ensure seller wallet")
		}

		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Final price: caller override when present, else the item's current
	// price. Decimal end to end; no float conversion anywhere.
	price := item.Price
	if input.PriceOverride != nil {
		price = *input.PriceOverride
	}

	record, err := srv.txClient.CreateTransaction(ctx, &client.CreateTransactionInput{
		BuyerID:       buyerID,
		SellerID:      sellerID,
		ItemID:        item.ID,
		OrderType:     input.OrderType,
		TitleSnapshot: item.Name,
		PriceSnapshot: price,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit transaction")
	}

	srv.log(ctx).Info("transaction created",
		slog.Any("transactionID", record.ID),
		slog.Any("buyerID", buyerID),
		slog.Any("sellerID", sellerID),
		slog.String("priceSnapshot", record.PriceSnapshot.String()),
	)

	// The view embeds the item with the snapshot price so the composite
	// stays internally consistent even if the listing changes later.
	item.Price = record.PriceSnapshot

	return &entity.Transaction{
		ID:            record.ID,
		Buyer:         buyer,
		Seller:        seller,
		Item:          item,
		OrderType:     record.OrderType,
		TitleSnapshot: record.TitleSnapshot,
		PriceSnapshot: record.PriceSnapshot,
		Status:        record.Status,
		CreatedAt:     record.CreatedAt,
	}, nil
}

// Get returns the composed transaction for one of its parties.
func (srv *transactionService) Get(ctx context.Context, callerID, id uuid.UUID) (*entity.Transaction, error) {
	record, err := srv.fetchRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if callerID != record.BuyerID && callerID != record.SellerID {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller is not a party to this transaction")
	}

	return srv.compose(ctx, record)
}

// ListMine returns the caller's raw records for the requested side.
func (srv *transactionService) ListMine(ctx context.Context, userID uuid.UUID, side string) ([]*entity.TransactionRecord, error) {
	filter := client.TransactionFilter{}
	switch side {
	case usecase.TransactionSideSeller:
		filter.SellerID = userID
	case usecase.TransactionSideBuyer, "":
		filter.BuyerID = userID
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("side must be buyer or seller")
	}

	records, err := srv.txClient.ListTransactions(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return records, nil
}

// Checkout settles the transaction for its buyer and then deletes the
// purchased listing best effort.
func (srv *transactionService) Checkout(ctx context.Context, callerID, id uuid.UUID) (*entity.Transaction, error) {
	record, err := srv.fetchRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if callerID != record.BuyerID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the buyer may check out a transaction")
	}

	settled, err := srv.txClient.Checkout(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check out transaction")
	}

	// The listing is sold; remove it. The checkout already succeeded, so a
	// failed delete is logged and nothing more.
	if err := srv.listingClient.DeleteItem(ctx, settled.ItemID); err != nil {
		srv.log(ctx).Warn("failed to delete purchased listing",
			slog.Any("itemID", settled.ItemID), slog.Any("error", err))
	}

	return srv.compose(ctx, settled)
}

// fetchRecord loads the raw record, translating absence to NotFound.
func (srv *transactionService) fetchRecord(ctx context.Context, id uuid.UUID) (*entity.TransactionRecord, error) {
	record, err := srv.txClient.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("transaction not found")
		}

		return nil, errors.Wrap(err, "failed to fetch transaction")
	}

	return record, nil
}

// compose builds the full view around a raw record. Party profiles are
// required; the item may already be deleted after checkout, in which case
// the view carries no item.
func (srv *transactionService) compose(ctx context.Context, record *entity.TransactionRecord) (*entity.Transaction, error) {
	var (
		buyer  *entity.Profile
		seller *entity.Profile
		item   *entity.Item
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := srv.profiles.GetProfile(groupCtx, record.BuyerID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve buyer")
		}
		buyer = found

		return nil
	})
	group.Go(func() error {
		found, err := srv.profiles.GetProfile(groupCtx, record.SellerID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve seller")
		}
		seller = found

		return nil
	})
	group.Go(func() error {
		found, err := srv.listingClient.GetItem(groupCtx, record.ItemID)
		if err != nil {
			srv.log(ctx).Debug("item unavailable for transaction view",
				slog.Any("itemID", record.ItemID), slog.Any("error", err))

			return nil
		}
		item = found

		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if item != nil {
		if sellerID, err := srv.sellers.Resolve(item.ID, item.SellerID); err == nil {
			item.SellerID = sellerID
		}
		item.Price = record.PriceSnapshot
	}

	return &entity.Transaction{
		ID:            record.ID,
		Buyer:         buyer,
		Seller:        seller,
		Item:          item,
		OrderType:     record.OrderType,
		TitleSnapshot: record.TitleSnapshot,
		PriceSnapshot: record.PriceSnapshot,
		Status:        record.Status,
		CreatedAt:     record.CreatedAt,
	}, nil
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
