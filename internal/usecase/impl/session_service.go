package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/client"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
)

// placeholderPhone fills the required phone field when provisioning an
// account from a federated identity that carries none.
const placeholderPhone = "0000000000"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userClient   client.UserClient
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	userClient client.UserClient,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		userClient:   userClient,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login resolves the asserted email to an account, provisioning one when
// absent, and issues a session token bound to the account and its role.
//
// TODO: verify the federated token against its issuer before trusting the
// asserted email.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userClient.GetUserByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, client.ErrNotFound):
		user, err = srv.userClient.CreateUser(ctx, &client.CreateUserInput{
			Username:  input.Username,
			Email:     input.Email,
			FullName:  input.FullName,
			AvatarURL: input.AvatarURL,
			Phone:     placeholderPhone,
			Role:      entity.RoleUser,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to provision account")
		}
		srv.log(ctx).Info("account provisioned for new federated identity",
			slog.Any("userID", user.ID), slog.String("email", input.Email))
	case err != nil:
		return nil, errors.Wrap(err, "failed to look up account by email")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.LoginOutput{
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
	}, nil
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
