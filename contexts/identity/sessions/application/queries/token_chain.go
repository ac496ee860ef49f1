package queries

import (
	"context"
	"fmt"

	"janus/contexts/identity/sessions/domain/entities"
	"janus/contexts/identity/sessions/ports"
	"janus/internal/shared/apperrors"
)

// TokenChainUseCase reconstructs the rotation chain for a
// (session, application) pair, head (live or most recent) first.
type TokenChainUseCase struct {
	Repository ports.Repository
}

// Execute walks the previousTokenID links backward from the head. Every
// stored token must appear exactly once; a cycle or an orphaned link means
// the rotation invariant was broken and surfaces as INTERNAL.
func (u TokenChainUseCase) Execute(ctx context.Context, sessionID int64, applicationID int32) ([]entities.Token, error) {
	tokens, err := u.Repository.PairTokens(ctx, sessionID, applicationID)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	byID := make(map[string]entities.Token, len(tokens))
	superseded := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		byID[token.ID] = token
		if token.PreviousTokenID != nil {
			superseded[*token.PreviousTokenID] = true
		}
	}

	// The head is the only token no later issuance points back to.
	var head *entities.Token
	for i := range tokens {
		if !superseded[tokens[i].ID] {
			if head != nil {
				return nil, apperrors.Internal(fmt.Errorf("rotation chain for session %d application %d has multiple heads", sessionID, applicationID))
			}
			head = &tokens[i]
		}
	}
	if head == nil {
		return nil, apperrors.Internal(fmt.Errorf("rotation chain for session %d application %d is cyclic", sessionID, applicationID))
	}

	chain := make([]entities.Token, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	current := *head
	for {
		if seen[current.ID] {
			return nil, apperrors.Internal(fmt.Errorf("rotation chain for session %d application %d is cyclic", sessionID, applicationID))
		}
		seen[current.ID] = true
		chain = append(chain, current)

		if current.PreviousTokenID == nil {
			break
		}
		previous, found := byID[*current.PreviousTokenID]
		if !found {
			return nil, apperrors.Internal(fmt.Errorf("rotation chain for session %d application %d references missing token %s", sessionID, applicationID, *current.PreviousTokenID))
		}
		current = previous
	}

	if len(chain) != len(tokens) {
		return nil, apperrors.Internal(fmt.Errorf("rotation chain for session %d application %d has orphaned tokens", sessionID, applicationID))
	}
	return chain, nil
}
