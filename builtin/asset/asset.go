// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package asset implements a plain multi-asset balance ledger.
// Staked pool assets (LP tokens) live here; they carry no tax and no caps.
package asset

import (
	"math/big"

	"github.com/savannaswap/savanna/reverts"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

func balanceKey(asset, holder savanna.Address) savanna.Bytes32 {
	return savanna.Blake2b([]byte("balance"), asset.Bytes(), holder.Bytes())
}

func supplyKey(asset savanna.Address) savanna.Bytes32 {
	return savanna.Blake2b([]byte("supply"), asset.Bytes())
}

// Ledger tracks balances of arbitrary asset handles.
type Ledger struct {
	addr  savanna.Address
	state *state.State
}

// New creates a ledger instance.
func New(addr savanna.Address, state *state.State) *Ledger {
	return &Ledger{addr, state}
}

// Balance returns holder's balance of the given asset.
func (l *Ledger) Balance(asset, holder savanna.Address) (*big.Int, error) {
	return l.state.GetStorageBigInt(l.addr, balanceKey(asset, holder))
}

// TotalSupply returns the issued amount of the given asset.
func (l *Ledger) TotalSupply(asset savanna.Address) (*big.Int, error) {
	return l.state.GetStorageBigInt(l.addr, supplyKey(asset))
}

// Issue credits newly created units of asset to the given holder.
func (l *Ledger) Issue(asset, to savanna.Address, amount *big.Int) error {
	if to.IsZero() {
		return reverts.BadState("asset: issue to the zero address")
	}
	if amount.Sign() <= 0 {
		return reverts.BadState("asset: issue amount must be positive")
	}
	bal, err := l.Balance(asset, to)
	if err != nil {
		return err
	}
	if err := l.state.SetStorageBigInt(l.addr, balanceKey(asset, to), new(big.Int).Add(bal, amount)); err != nil {
		return err
	}
	supply, err := l.TotalSupply(asset)
	if err != nil {
		return err
	}
	return l.state.SetStorageBigInt(l.addr, supplyKey(asset), new(big.Int).Add(supply, amount))
}

// Transfer moves amount of asset between holders.
func (l *Ledger) Transfer(asset, from, to savanna.Address, amount *big.Int) error {
	if from.IsZero() || to.IsZero() {
		return reverts.BadState("asset: transfer with the zero address")
	}
	if amount.Sign() < 0 {
		return reverts.BadState("asset: negative transfer amount")
	}
	if amount.Sign() == 0 {
		return nil
	}
	fromBal, err := l.Balance(asset, from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return reverts.BadState("asset: transfer amount exceeds balance")
	}
	if err := l.state.SetStorageBigInt(l.addr, balanceKey(asset, from), new(big.Int).Sub(fromBal, amount)); err != nil {
		return err
	}
	toBal, err := l.Balance(asset, to)
	if err != nil {
		return err
	}
	return l.state.SetStorageBigInt(l.addr, balanceKey(asset, to), new(big.Int).Add(toBal, amount))
}
