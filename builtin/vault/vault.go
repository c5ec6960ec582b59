// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package vault implements the token timelock vault.
//
// Anyone may credit assets to the vault's address; the owner releases the
// entire held balance of an asset in one shot. There is no schedule and no
// partial release.
package vault

import (
	"math/big"

	"github.com/savannaswap/savanna/builtin/asset"
	"github.com/savannaswap/savanna/reverts"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

var ownerKey = savanna.BytesToBytes32([]byte("owner"))

// Vault implements the timelock vault contract.
type Vault struct {
	addr   savanna.Address
	state  *state.State
	assets *asset.Ledger
}

// New creates a vault instance.
func New(addr savanna.Address, state *state.State, assets *asset.Ledger) *Vault {
	return &Vault{addr, state, assets}
}

// Address returns the vault's own contract address.
func (v *Vault) Address() savanna.Address {
	return v.addr
}

// Initialize sets the initial owner.
func (v *Vault) Initialize(owner savanna.Address) error {
	return v.state.SetStorageAddress(v.addr, ownerKey, owner)
}

// Owner returns the current owner.
func (v *Vault) Owner() (savanna.Address, error) {
	return v.state.GetStorageAddress(v.addr, ownerKey)
}

// TransferOwnership hands the vault over to a new owner.
func (v *Vault) TransferOwnership(caller, newOwner savanna.Address) error {
	if err := v.checkOwner(caller); err != nil {
		return err
	}
	if newOwner.IsZero() {
		return reverts.BadState("Ownable: new owner is the zero address")
	}
	return v.state.SetStorageAddress(v.addr, ownerKey, newOwner)
}

func (v *Vault) checkOwner(caller savanna.Address) error {
	owner, err := v.Owner()
	if err != nil {
		return err
	}
	if caller != owner {
		return reverts.Unauthorized("Ownable: caller is not the owner")
	}
	return nil
}

// Held returns the vault's balance of the given asset.
func (v *Vault) Held(assetHandle savanna.Address) (*big.Int, error) {
	return v.assets.Balance(assetHandle, v.addr)
}

// Unlock releases the vault's entire held balance of the asset to the
// recipient. Owner only.
func (v *Vault) Unlock(caller, assetHandle, recipient savanna.Address) error {
	if err := v.checkOwner(caller); err != nil {
		return err
	}
	if recipient.IsZero() {
		return reverts.BadState("unlock: recipient is the zero address")
	}
	held, err := v.Held(assetHandle)
	if err != nil {
		return err
	}
	if held.Sign() == 0 {
		return nil
	}
	return v.assets.Transfer(assetHandle, v.addr, recipient, held)
}
