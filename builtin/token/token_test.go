// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savannaswap/savanna/builtin/token"
	"github.com/savannaswap/savanna/lvldb"
	"github.com/savannaswap/savanna/reverts"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

var (
	tokenAddr = savanna.BytesToAddress([]byte("token"))
	owner     = savanna.BytesToAddress([]byte("owner"))
	alice     = savanna.BytesToAddress([]byte("alice"))
	bob       = savanna.BytesToAddress([]byte("bob"))
)

func newTestToken(t *testing.T) *token.Token {
	store, err := lvldb.NewMem()
	if err != nil {
		t.Fatal(err)
	}
	tok := token.New(tokenAddr, state.New(store))
	if err := tok.Initialize(owner); err != nil {
		t.Fatal(err)
	}
	return tok
}

func mustBalance(t *testing.T, tok *token.Token, addr savanna.Address) *big.Int {
	bal, err := tok.BalanceOf(addr)
	if err != nil {
		t.Fatal(err)
	}
	return bal
}

func TestInitializeDefaults(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	got, _ := tok.Owner()
	assert.Equal(owner, got)
	got, _ = tok.Operator()
	assert.Equal(owner, got)

	taxRate, _ := tok.TransferTaxRate()
	assert.Equal(uint64(token.DefaultTransferTaxRate), taxRate)
	burnRate, _ := tok.BurnRate()
	assert.Equal(uint64(token.DefaultBurnRate), burnRate)
	maxRate, _ := tok.MaxTransferAmountRate()
	assert.Equal(uint64(token.DefaultMaxTransferAmountRate), maxRate)
	minLiquify, _ := tok.MinAmountToLiquify()
	assert.Equal(token.DefaultMinAmountToLiquify, minLiquify)

	for _, addr := range []savanna.Address{owner, tokenAddr, savanna.BurnAddress, {}} {
		excluded, _ := tok.IsExcludedFromAntiWhale(addr)
		assert.True(excluded)
	}
	excluded, _ := tok.IsExcludedFromTax(tokenAddr)
	assert.True(excluded)
	excluded, _ = tok.IsExcludedFromTax(alice)
	assert.False(excluded)
}

func TestMint(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	assert.Nil(tok.Mint(owner, alice, big.NewInt(1000)))
	assert.Equal(big.NewInt(1000), mustBalance(t, tok, alice))
	supply, _ := tok.TotalSupply()
	assert.Equal(big.NewInt(1000), supply)

	assert.True(reverts.IsAuthorization(tok.Mint(alice, alice, big.NewInt(1))))
	assert.True(reverts.IsState(tok.Mint(owner, savanna.Address{}, big.NewInt(1))))

	// optional cap
	assert.Nil(tok.SetMaxSupply(owner, big.NewInt(1500)))
	assert.Nil(tok.Mint(owner, alice, big.NewInt(500)))
	err := tok.Mint(owner, alice, big.NewInt(1))
	assert.True(reverts.IsBounds(err))
	assert.EqualError(err, "SAVA::mint: cap exceeded")
}

func TestTransferTaxSplit(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	// the owner bypasses the anti-whale cap but not the tax
	assert.Nil(tok.Mint(owner, owner, big.NewInt(1_000_000)))

	assert.Nil(tok.Transfer(owner, bob, big.NewInt(12345)))

	// 5% tax of 12345 = 617; 20% of that burned = 123; rest liquified
	assert.Equal(big.NewInt(11728), mustBalance(t, tok, bob))
	assert.Equal(big.NewInt(123), mustBalance(t, tok, savanna.BurnAddress))
	assert.Equal(big.NewInt(494), mustBalance(t, tok, tokenAddr))
	assert.Equal(big.NewInt(1_000_000-12345), mustBalance(t, tok, owner))

	reserve, _ := tok.LiquifyReserve()
	assert.Equal(big.NewInt(494), reserve)

	// supply unchanged: tax redistributes, nothing leaves the ledger
	supply, _ := tok.TotalSupply()
	assert.Equal(big.NewInt(1_000_000), supply)
}

func TestTransferBelowTaxQuantum(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	assert.Nil(tok.Mint(owner, alice, big.NewInt(1_000_000)))

	// 5% of 19 rounds to zero, passes untaxed
	assert.Nil(tok.Transfer(alice, bob, big.NewInt(19)))
	assert.Equal(big.NewInt(19), mustBalance(t, tok, bob))
	assert.Equal(0, mustBalance(t, tok, savanna.BurnAddress).Sign())
}

func TestTransferTaxVariants(t *testing.T) {
	assert := assert.New(t)

	t.Run("zero tax rate", func(t *testing.T) {
		tok := newTestToken(t)
		assert.Nil(tok.Mint(owner, owner, big.NewInt(1_000_000)))
		assert.Nil(tok.UpdateTransferTaxRate(owner, 0))

		assert.Nil(tok.Transfer(owner, bob, big.NewInt(12345)))
		assert.Equal(big.NewInt(12345), mustBalance(t, tok, bob))
	})

	t.Run("all burn", func(t *testing.T) {
		tok := newTestToken(t)
		assert.Nil(tok.Mint(owner, owner, big.NewInt(1_000_000)))
		assert.Nil(tok.UpdateBurnRate(owner, 100))

		assert.Nil(tok.Transfer(owner, bob, big.NewInt(12345)))
		assert.Equal(big.NewInt(617), mustBalance(t, tok, savanna.BurnAddress))
		assert.Equal(0, mustBalance(t, tok, tokenAddr).Sign())
	})

	t.Run("no burn", func(t *testing.T) {
		tok := newTestToken(t)
		assert.Nil(tok.Mint(owner, owner, big.NewInt(1_000_000)))
		assert.Nil(tok.UpdateBurnRate(owner, 0))

		assert.Nil(tok.Transfer(owner, bob, big.NewInt(12345)))
		assert.Equal(0, mustBalance(t, tok, savanna.BurnAddress).Sign())
		assert.Equal(big.NewInt(617), mustBalance(t, tok, tokenAddr))
	})

	t.Run("tax excluded sender", func(t *testing.T) {
		tok := newTestToken(t)
		assert.Nil(tok.Mint(owner, owner, big.NewInt(1_000_000)))
		assert.Nil(tok.SetExcludedFromTax(owner, owner, true))

		assert.Nil(tok.Transfer(owner, bob, big.NewInt(12345)))
		assert.Equal(big.NewInt(12345), mustBalance(t, tok, bob))
	})
}

func TestTransferInsufficientBalance(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	assert.Nil(tok.Mint(owner, alice, big.NewInt(100)))
	err := tok.Transfer(alice, bob, big.NewInt(200))
	assert.True(reverts.IsState(err))
	assert.EqualError(err, "SAVA::transfer: transfer amount exceeds balance")
}

func TestAntiWhale(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	// supply 50000, cap rate 50 bps -> max transfer 250
	assert.Nil(tok.Mint(owner, alice, big.NewInt(50000)))

	maxAmount, err := tok.MaxTransferAmount()
	assert.Nil(err)
	assert.Equal(big.NewInt(250), maxAmount)

	assert.Nil(tok.Transfer(alice, bob, big.NewInt(250)))

	err = tok.Transfer(alice, bob, big.NewInt(251))
	assert.True(reverts.IsCapacity(err))
	assert.EqualError(err, "SAVA::antiWhale: transfer amount exceeds the maxTransferAmount")

	// excluded holders bypass the cap
	assert.Nil(tok.SetExcludedFromAntiWhale(owner, alice, true))
	assert.Nil(tok.Transfer(alice, bob, big.NewInt(251)))

	// cap follows the rate
	assert.Nil(tok.SetExcludedFromAntiWhale(owner, alice, false))
	assert.Nil(tok.UpdateMaxTransferAmountRate(owner, 100))
	maxAmount, _ = tok.MaxTransferAmount()
	assert.Equal(big.NewInt(500), maxAmount)
}

func TestAllowance(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	assert.Nil(tok.Mint(owner, alice, big.NewInt(1_000_000)))
	assert.Nil(tok.SetExcludedFromTax(owner, alice, true))

	assert.Nil(tok.Approve(alice, bob, big.NewInt(500)))
	allowance, _ := tok.Allowance(alice, bob)
	assert.Equal(big.NewInt(500), allowance)

	err := tok.TransferFrom(bob, alice, bob, big.NewInt(501))
	assert.True(reverts.IsState(err))
	assert.EqualError(err, "SAVA::transferFrom: transfer amount exceeds allowance")

	assert.Nil(tok.TransferFrom(bob, alice, bob, big.NewInt(300)))
	assert.Equal(big.NewInt(300), mustBalance(t, tok, bob))
	allowance, _ = tok.Allowance(alice, bob)
	assert.Equal(big.NewInt(200), allowance)

	assert.Nil(tok.IncreaseAllowance(alice, bob, big.NewInt(100)))
	allowance, _ = tok.Allowance(alice, bob)
	assert.Equal(big.NewInt(300), allowance)

	assert.Nil(tok.DecreaseAllowance(alice, bob, big.NewInt(300)))
	allowance, _ = tok.Allowance(alice, bob)
	assert.Equal(0, allowance.Sign())

	assert.True(reverts.IsState(tok.DecreaseAllowance(alice, bob, big.NewInt(1))))
}

func TestOperatorGating(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	for _, err := range []error{
		tok.UpdateTransferTaxRate(alice, 100),
		tok.UpdateBurnRate(alice, 10),
		tok.UpdateMaxTransferAmountRate(alice, 100),
		tok.SetExcludedFromAntiWhale(alice, bob, true),
		tok.SetExcludedFromTax(alice, bob, true),
		tok.UpdateSwapAndLiquifyEnabled(alice, true),
		tok.UpdateMinAmountToLiquify(alice, big.NewInt(1)),
		tok.UpdateRouter(alice, bob),
	} {
		assert.True(reverts.IsAuthorization(err))
		assert.EqualError(err, "operator: caller is not the operator")
	}
}

func TestRateCeilings(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	assert.True(reverts.IsBounds(tok.UpdateTransferTaxRate(owner, savanna.MaxTransferTaxRate+1)))
	assert.True(reverts.IsBounds(tok.UpdateBurnRate(owner, savanna.MaxBurnRate+1)))
	assert.True(reverts.IsBounds(tok.UpdateMaxTransferAmountRate(owner, savanna.MaxTransferAmountRate+1)))

	assert.Nil(tok.UpdateTransferTaxRate(owner, savanna.MaxTransferTaxRate))
	assert.Nil(tok.UpdateBurnRate(owner, savanna.MaxBurnRate))
	assert.Nil(tok.UpdateMaxTransferAmountRate(owner, savanna.MaxTransferAmountRate))
}

func TestRoles(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	err := tok.TransferOperator(owner, savanna.Address{})
	assert.True(reverts.IsState(err))
	assert.EqualError(err, "SAVA::transferOperator: new operator is the zero address")

	assert.Nil(tok.TransferOperator(owner, alice))
	got, _ := tok.Operator()
	assert.Equal(alice, got)

	// the old operator lost the role
	assert.True(reverts.IsAuthorization(tok.UpdateTransferTaxRate(owner, 100)))
	assert.Nil(tok.UpdateTransferTaxRate(alice, 100))

	// ownership transfer is separate
	assert.Nil(tok.TransferOwnership(owner, bob))
	assert.True(reverts.IsAuthorization(tok.Mint(owner, alice, big.NewInt(1))))
	assert.Nil(tok.Mint(bob, alice, big.NewInt(1)))
}

func TestShouldLiquify(t *testing.T) {
	assert := assert.New(t)
	tok := newTestToken(t)

	assert.Nil(tok.UpdateMinAmountToLiquify(owner, big.NewInt(500)))

	should, _ := tok.ShouldLiquify()
	assert.False(should)

	assert.Nil(tok.UpdateSwapAndLiquifyEnabled(owner, true))
	should, _ = tok.ShouldLiquify()
	assert.False(should)

	// feed the reserve via transfer tax
	assert.Nil(tok.Mint(owner, owner, big.NewInt(1_000_000)))
	assert.Nil(tok.Transfer(owner, bob, big.NewInt(12345)))
	reserve, _ := tok.LiquifyReserve()
	assert.Equal(big.NewInt(494), reserve)

	should, _ = tok.ShouldLiquify()
	assert.False(should)

	assert.Nil(tok.UpdateMinAmountToLiquify(owner, big.NewInt(494)))
	should, _ = tok.ShouldLiquify()
	assert.True(should)
}
