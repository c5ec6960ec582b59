// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package asset_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savannaswap/savanna/builtin/asset"
	"github.com/savannaswap/savanna/lvldb"
	"github.com/savannaswap/savanna/reverts"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

var (
	ledgerAddr = savanna.BytesToAddress([]byte("ledger"))
	lp         = savanna.BytesToAddress([]byte("lp-token"))
	alice      = savanna.BytesToAddress([]byte("alice"))
	bob        = savanna.BytesToAddress([]byte("bob"))
)

func newTestLedger(t *testing.T) *asset.Ledger {
	store, err := lvldb.NewMem()
	if err != nil {
		t.Fatal(err)
	}
	return asset.New(ledgerAddr, state.New(store))
}

func TestIssueAndTransfer(t *testing.T) {
	assert := assert.New(t)
	ledger := newTestLedger(t)

	assert.Nil(ledger.Issue(lp, alice, big.NewInt(1000)))

	bal, err := ledger.Balance(lp, alice)
	assert.Nil(err)
	assert.Equal(big.NewInt(1000), bal)

	supply, err := ledger.TotalSupply(lp)
	assert.Nil(err)
	assert.Equal(big.NewInt(1000), supply)

	assert.Nil(ledger.Transfer(lp, alice, bob, big.NewInt(400)))

	bal, _ = ledger.Balance(lp, alice)
	assert.Equal(big.NewInt(600), bal)
	bal, _ = ledger.Balance(lp, bob)
	assert.Equal(big.NewInt(400), bal)

	// supply unchanged by transfers
	supply, _ = ledger.TotalSupply(lp)
	assert.Equal(big.NewInt(1000), supply)
}

func TestTransferRules(t *testing.T) {
	assert := assert.New(t)
	ledger := newTestLedger(t)

	assert.Nil(ledger.Issue(lp, alice, big.NewInt(100)))

	err := ledger.Transfer(lp, alice, bob, big.NewInt(101))
	assert.True(reverts.IsState(err))
	assert.EqualError(err, "asset: transfer amount exceeds balance")

	err = ledger.Transfer(lp, alice, savanna.Address{}, big.NewInt(1))
	assert.True(reverts.IsState(err))

	err = ledger.Transfer(lp, alice, bob, big.NewInt(-1))
	assert.True(reverts.IsState(err))

	// zero transfer is a no-op
	assert.Nil(ledger.Transfer(lp, alice, bob, &big.Int{}))

	// balances per asset are independent
	other := savanna.BytesToAddress([]byte("other-lp"))
	bal, _ := ledger.Balance(other, alice)
	assert.Equal(0, bal.Sign())
}

func TestIssueRules(t *testing.T) {
	assert := assert.New(t)
	ledger := newTestLedger(t)

	assert.True(reverts.IsState(ledger.Issue(lp, savanna.Address{}, big.NewInt(1))))
	assert.True(reverts.IsState(ledger.Issue(lp, alice, &big.Int{})))
	assert.True(reverts.IsState(ledger.Issue(lp, alice, big.NewInt(-5))))
}
