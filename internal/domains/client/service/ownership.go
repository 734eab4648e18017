package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"vetclinic/infras/otel"
	"vetclinic/internal/domains/client/repository"
	"vetclinic/shared/constant"
	"vetclinic/shared/model"
)

// Ownership decides whether a requester may act on behalf of a client.
type Ownership interface {
	IsRequesterAuthorizedForClient(ctx context.Context, requester model.Requester, clientID string) (bool, error)
}

type ownershipImpl struct {
	repo repository.Client
	otel otel.Otel
}

func NewOwnership(repo repository.Client, otel otel.Otel) Ownership {
	return &ownershipImpl{
		repo: repo,
		otel: otel,
	}
}

// IsRequesterAuthorizedForClient lets staff through and matches client requesters against
// the client's login account, ignoring case.
func (s *ownershipImpl) IsRequesterAuthorizedForClient(ctx context.Context, requester model.Requester, clientID string) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRequesterAuthorizedForClient")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !requester.IsClient() {
		return true, nil
	}

	client, err := s.repo.Get(ctx, clientID)
	if err != nil {
		log.Error().Err(err).Str("client_id", clientID).Msg("failed to get client")

		return false, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == constant.Empty || !client.UserID.Valid {
		return false, nil
	}

	return strings.EqualFold(client.UserID.String, requester.Username), nil
}
