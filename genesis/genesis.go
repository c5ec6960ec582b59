// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis builds the initial world state: token deployment, role
// wiring, emission schedule, premine and demo assets.
package genesis

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/savannaswap/savanna/builtin"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

// Builder helper to build genesis state.
type Builder struct {
	stateProcs []func(state *state.State) error
}

// State adds a state process.
func (b *Builder) State(proc func(state *state.State) error) *Builder {
	b.stateProcs = append(b.stateProcs, proc)
	return b
}

// Build applies all presets to the given state.
func (b *Builder) Build(st *state.State) error {
	for _, proc := range b.stateProcs {
		if err := proc(st); err != nil {
			return errors.Wrap(err, "state process")
		}
	}
	return nil
}

// Genesis describes a ready-to-build genesis preset.
type Genesis struct {
	builder *Builder
	name    string
}

// Name returns the preset name.
func (g *Genesis) Name() string {
	return g.name
}

// Build builds the genesis state.
func (g *Genesis) Build(st *state.State) error {
	return g.builder.Build(st)
}

// Premine a token grant applied at genesis.
type Premine struct {
	Address savanna.Address
	Amount  *big.Int
}

// AssetGrant a staked-asset issuance applied at genesis.
type AssetGrant struct {
	Asset  savanna.Address
	Holder savanna.Address
	Amount *big.Int
}

// wire assembles the standard deployment: token roles and exclusions,
// referral operator wiring, farm emission schedule, vault ownership.
// Token ownership ends at the farm so accrual can mint; the deployer keeps
// the token operator role for economic parameters.
func wire(owner savanna.Address, rewardPerBlock *big.Int, startBlock uint32, maxSupply *big.Int, premine []Premine, grants []AssetGrant) *Builder {
	return new(Builder).
		State(func(st *state.State) error {
			tok := builtin.Token(st)
			if err := tok.Initialize(owner); err != nil {
				return err
			}
			if maxSupply != nil && maxSupply.Sign() > 0 {
				if err := tok.SetMaxSupply(owner, maxSupply); err != nil {
					return err
				}
			}
			for _, p := range premine {
				if err := tok.Mint(owner, p.Address, p.Amount); err != nil {
					return err
				}
			}
			// the farm is a system address: its reward credits are
			// untaxed and uncapped
			if err := tok.SetExcludedFromAntiWhale(owner, builtin.FarmAddress, true); err != nil {
				return err
			}
			if err := tok.SetExcludedFromTax(owner, builtin.FarmAddress, true); err != nil {
				return err
			}
			return tok.TransferOwnership(owner, builtin.FarmAddress)
		}).
		State(func(st *state.State) error {
			ref := builtin.Referral(st)
			if err := ref.Initialize(owner); err != nil {
				return err
			}
			return ref.UpdateOperator(owner, builtin.FarmAddress, true)
		}).
		State(func(st *state.State) error {
			return builtin.Farm(st).Initialize(owner, rewardPerBlock, startBlock)
		}).
		State(func(st *state.State) error {
			return builtin.Vault(st).Initialize(owner)
		}).
		State(func(st *state.State) error {
			assets := builtin.Assets(st)
			for _, g := range grants {
				if err := assets.Issue(g.Asset, g.Holder, g.Amount); err != nil {
					return err
				}
			}
			return nil
		})
}
