// ABOUTME: Identity resolver mapping Authorization headers to stored accounts
// ABOUTME: Token lookup failures collapse into UnauthorizedError so callers return 401 uniformly

package identity

import (
	"context"
	"strings"

	"sitegen-api/core/domain"
	coreerrors "sitegen-api/core/errors"
	"sitegen-api/core/interfaces"
)

// Service resolves bearer tokens against account storage
type Service struct {
	storage interfaces.AccountStorage
	logger  interfaces.Logger
}

// NewService creates a new identity service
func NewService(storage interfaces.AccountStorage, logger interfaces.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Resolve parses an Authorization header value and returns the account the
// token belongs to. Both a missing token and an unknown token produce an
// UnauthorizedError; the two cases are not distinguishable to the caller.
func (s *Service) Resolve(ctx context.Context, authorization string) (*domain.Account, error) {
	token := extractBearerToken(authorization)
	if token == "" {
		return nil, &coreerrors.UnauthorizedError{Reason: "missing or malformed authorization header"}
	}

	account, err := s.storage.GetAccountByToken(ctx, token)
	if err != nil {
		if coreerrors.IsNotFound(err) || coreerrors.IsUnauthorized(err) {
			if s.logger != nil {
				s.logger.Warn("authentication failed", map[string]interface{}{
					"reason": "unknown token",
				})
			}
			return nil, &coreerrors.UnauthorizedError{Reason: "invalid token"}
		}
		return nil, coreerrors.WrapError(err, "account lookup failed")
	}

	return account, nil
}

// extractBearerToken pulls the token out of a "Bearer <token>" header value.
// A bare token without the scheme prefix is accepted as well.
func extractBearerToken(authorization string) string {
	value := strings.TrimSpace(authorization)
	if value == "" {
		return ""
	}

	parts := strings.Fields(value)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	if len(parts) == 1 && !strings.EqualFold(parts[0], "Bearer") {
		return parts[0]
	}
	return ""
}
