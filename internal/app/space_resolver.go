package app

import (
	"context"
	"fmt"

	"github.com/example/tether/internal/ports/secondary"
)

// SpaceResolver finds or creates the local space bound to a remote team.
type SpaceResolver struct {
	spaceRepo secondary.SpaceRepository
}

// NewSpaceResolver creates a new SpaceResolver with injected dependencies.
func NewSpaceResolver(spaceRepo secondary.SpaceRepository) *SpaceResolver {
	return &SpaceResolver{spaceRepo: spaceRepo}
}

// Resolve returns the space bound to remoteID, creating one named name when
// none exists. The returned bool reports whether a space was created.
//
// A nil candidates slice means "not supplied" and the store is queried; a
// non-nil slice is trusted as the full set of remote-bound spaces, saving a
// lookup when the caller already fetched them.
//
// An existing space comes back unchanged. The local name is user-owned once
// the space exists, so a renamed remote team never overwrites it.
func (r *SpaceResolver) Resolve(ctx context.Context, remoteID, name string, candidates []*secondary.SpaceRecord) (*secondary.SpaceRecord, bool, error) {
	if candidates != nil {
		for _, candidate := range candidates {
			if candidate.RemoteID == remoteID {
				return candidate, false, nil
			}
		}
	} else {
		existing, err := r.spaceRepo.GetByRemoteID(ctx, remoteID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to look up space for remote %s: %w", remoteID, err)
		}
		if existing != nil {
			return existing, false, nil
		}
	}

	space := &secondary.SpaceRecord{
		RemoteID: remoteID,
		Name:     name,
	}
	if err := r.spaceRepo.Create(ctx, space); err != nil {
		return nil, false, fmt.Errorf("failed to create space for remote %s: %w", remoteID, err)
	}

	return space, true, nil
}
