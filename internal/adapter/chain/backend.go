// Package chain provides the ledger gateway: a single capability set with
// two interchangeable backends. The mock backend simulates everything in
// memory; the live backend talks to an EVM network. Selection happens once
// at startup and is invisible to callers.
package chain

import (
	"github.com/rs/zerolog"

	"github.com/fillipeguerrabtc/agro-token-kaleido/config"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
)

// New selects the backend from configuration: live when both contract
// addresses are set, mock otherwise.
func New(cfg config.ChainConfig, log zerolog.Logger) (ports.ChainBackend, error) {
	if cfg.LiveMode() {
		log.Info().
			Str("mode", ModeLive).
			Str("brlx_contract", cfg.BRLXContract).
			Str("asset_contract", cfg.AgroTokenContract).
			Int64("chain_id", cfg.ChainID).
			Msg("chain backend selected")
		return NewLiveBackend(cfg, log)
	}
	log.Info().Str("mode", ModeMock).Msg("chain backend selected")
	return NewMockBackend(log), nil
}
