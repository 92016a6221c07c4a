package services

import (
	"github.com/aleotools/aleo-tvl-adapter/internal/clients/explorerclient"
	"github.com/aleotools/aleo-tvl-adapter/internal/config"
)

// Methodology documents how the reported figure is derived. It is exposed
// for downstream aggregators that surface per-adapter methodology text.
const Methodology = "Sum of microcredits staked by the current validator committee. " +
	"When the committee response carries no stake figures, falls back to the " +
	"per-validator bonded amounts at the latest block height, restricted to " +
	"committee members."

type Service struct {
	cfg      *config.Config
	explorer explorerclient.ExplorerInterface
}

func NewService(cfg *config.Config, explorer explorerclient.ExplorerInterface) *Service {
	return &Service{
		cfg:      cfg,
		explorer: explorer,
	}
}
