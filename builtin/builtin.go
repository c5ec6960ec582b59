// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package builtin binds the native contracts to their well-known addresses.
package builtin

import (
	"github.com/savannaswap/savanna/builtin/asset"
	"github.com/savannaswap/savanna/builtin/farm"
	"github.com/savannaswap/savanna/builtin/referral"
	"github.com/savannaswap/savanna/builtin/token"
	"github.com/savannaswap/savanna/builtin/vault"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

// Addresses of the builtin contracts.
var (
	TokenAddress    = savanna.BytesToAddress([]byte("sava-token"))
	FarmAddress     = savanna.BytesToAddress([]byte("sava-farm"))
	ReferralAddress = savanna.BytesToAddress([]byte("sava-referral"))
	VaultAddress    = savanna.BytesToAddress([]byte("sava-vault"))
	AssetAddress    = savanna.BytesToAddress([]byte("sava-assets"))
)

// Token binds the reward token to the given state.
func Token(st *state.State) *token.Token {
	return token.New(TokenAddress, st)
}

// Assets binds the staked-asset ledger to the given state.
func Assets(st *state.State) *asset.Ledger {
	return asset.New(AssetAddress, st)
}

// Referral binds the commission ledger to the given state.
func Referral(st *state.State) *referral.Referral {
	return referral.New(ReferralAddress, st)
}

// Farm binds the reward engine to the given state.
func Farm(st *state.State) *farm.Farm {
	return farm.New(FarmAddress, st, Token(st), Referral(st), Assets(st))
}

// Vault binds the timelock vault to the given state.
func Vault(st *state.State) *vault.Vault {
	return vault.New(VaultAddress, st, Assets(st))
}
