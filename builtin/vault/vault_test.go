// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vault_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savannaswap/savanna/builtin/asset"
	"github.com/savannaswap/savanna/builtin/vault"
	"github.com/savannaswap/savanna/lvldb"
	"github.com/savannaswap/savanna/reverts"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

var (
	vaultAddr  = savanna.BytesToAddress([]byte("vault"))
	ledgerAddr = savanna.BytesToAddress([]byte("ledger"))
	lp         = savanna.BytesToAddress([]byte("lp-token"))
	owner      = savanna.BytesToAddress([]byte("owner"))
	alice      = savanna.BytesToAddress([]byte("alice"))
)

func newTestVault(t *testing.T) (*vault.Vault, *asset.Ledger) {
	store, err := lvldb.NewMem()
	if err != nil {
		t.Fatal(err)
	}
	st := state.New(store)
	ledger := asset.New(ledgerAddr, st)
	v := vault.New(vaultAddr, st, ledger)
	if err := v.Initialize(owner); err != nil {
		t.Fatal(err)
	}
	return v, ledger
}

func TestUnlock(t *testing.T) {
	assert := assert.New(t)
	v, ledger := newTestVault(t)

	// anyone may fund the vault
	assert.Nil(ledger.Issue(lp, alice, big.NewInt(1000)))
	assert.Nil(ledger.Transfer(lp, alice, vaultAddr, big.NewInt(600)))

	held, err := v.Held(lp)
	assert.Nil(err)
	assert.Equal(big.NewInt(600), held)

	// the whole balance is released in one shot
	assert.Nil(v.Unlock(owner, lp, alice))
	held, _ = v.Held(lp)
	assert.Equal(0, held.Sign())
	bal, _ := ledger.Balance(lp, alice)
	assert.Equal(big.NewInt(1000), bal)

	// empty vault unlock is a no-op
	assert.Nil(v.Unlock(owner, lp, alice))
}

func TestUnlockRules(t *testing.T) {
	assert := assert.New(t)
	v, ledger := newTestVault(t)

	assert.Nil(ledger.Issue(lp, vaultAddr, big.NewInt(100)))

	err := v.Unlock(alice, lp, alice)
	assert.True(reverts.IsAuthorization(err))
	assert.EqualError(err, "Ownable: caller is not the owner")

	assert.True(reverts.IsState(v.Unlock(owner, lp, savanna.Address{})))

	// still locked
	held, _ := v.Held(lp)
	assert.Equal(big.NewInt(100), held)
}

func TestVaultOwnership(t *testing.T) {
	assert := assert.New(t)
	v, ledger := newTestVault(t)

	assert.Nil(ledger.Issue(lp, vaultAddr, big.NewInt(100)))

	assert.True(reverts.IsAuthorization(v.TransferOwnership(alice, alice)))
	assert.Nil(v.TransferOwnership(owner, alice))

	assert.True(reverts.IsAuthorization(v.Unlock(owner, lp, owner)))
	assert.Nil(v.Unlock(alice, lp, alice))
	bal, _ := ledger.Balance(lp, alice)
	assert.Equal(big.NewInt(100), bal)
}
