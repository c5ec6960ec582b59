// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"fmt"
	"math/big"

	"github.com/savannaswap/savanna/savanna"
)

var bigE18 = big.NewInt(1e18)

// DevAccounts returns the deterministic accounts of the devnet.
// The first one owns every contract at genesis.
func DevAccounts() []savanna.Address {
	accounts := make([]savanna.Address, 0, 10)
	for i := range 10 {
		accounts = append(accounts, savanna.BytesToAddress(
			savanna.Blake2b([]byte(fmt.Sprintf("devnet-account-%d", i))).Bytes()[12:]))
	}
	return accounts
}

// DevAssets returns the handles of the demo staked assets of the devnet.
func DevAssets() []savanna.Address {
	return []savanna.Address{
		savanna.BytesToAddress([]byte("devnet-lp1")),
		savanna.BytesToAddress([]byte("devnet-lp2")),
	}
}

// NewDevnet creates the devnet genesis: 100 SAVA per block from block 0,
// a premine and demo LP balances for every dev account.
func NewDevnet() *Genesis {
	accounts := DevAccounts()
	owner := accounts[0]

	premine := make([]Premine, 0, len(accounts))
	var grants []AssetGrant
	for _, acc := range accounts {
		premine = append(premine, Premine{
			Address: acc,
			Amount:  new(big.Int).Mul(big.NewInt(1_000_000), bigE18),
		})
		for _, lp := range DevAssets() {
			grants = append(grants, AssetGrant{
				Asset:  lp,
				Holder: acc,
				Amount: new(big.Int).Mul(big.NewInt(10_000), bigE18),
			})
		}
	}

	rewardPerBlock := new(big.Int).Mul(big.NewInt(100), bigE18)
	return &Genesis{
		builder: wire(owner, rewardPerBlock, 0, nil, premine, grants),
		name:    "devnet",
	}
}
