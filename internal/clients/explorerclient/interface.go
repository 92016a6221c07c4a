package explorerclient

import (
	"context"

	"github.com/aleotools/aleo-tvl-adapter/internal/types"
)

type ExplorerInterface interface {
	// GetCommittee returns the current validator committee, normalized and
	// deduplicated. Fails with types.CommitteeUnavailableError when no
	// endpoint candidate yields usable rows.
	GetCommittee(ctx context.Context) (types.Committee, error)
	// LatestHeight returns the current chain height.
	LatestHeight(ctx context.Context) (uint64, error)
	// BondedAtHeight returns the full unfiltered list of bonded rows at the
	// given height; filtering to the committee is the caller's job.
	BondedAtHeight(ctx context.Context, height uint64) ([]types.BondedRow, error)
}
