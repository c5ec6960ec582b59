// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package referral_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savannaswap/savanna/builtin/referral"
	"github.com/savannaswap/savanna/lvldb"
	"github.com/savannaswap/savanna/reverts"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

var (
	contractAddr = savanna.BytesToAddress([]byte("referral"))
	owner        = savanna.BytesToAddress([]byte("owner"))
	operator     = savanna.BytesToAddress([]byte("operator"))
	alice        = savanna.BytesToAddress([]byte("alice"))
	bob          = savanna.BytesToAddress([]byte("bob"))
	carol        = savanna.BytesToAddress([]byte("carol"))
)

func newTestReferral(t *testing.T) *referral.Referral {
	store, err := lvldb.NewMem()
	if err != nil {
		t.Fatal(err)
	}
	ref := referral.New(contractAddr, state.New(store))
	if err := ref.Initialize(owner); err != nil {
		t.Fatal(err)
	}
	if err := ref.UpdateOperator(owner, operator, true); err != nil {
		t.Fatal(err)
	}
	return ref
}

func TestOperatorGating(t *testing.T) {
	assert := assert.New(t)
	ref := newTestReferral(t)

	err := ref.RecordReferral(alice, bob, carol)
	assert.True(reverts.IsAuthorization(err))
	assert.EqualError(err, "Operator: caller is not the operator")

	err = ref.UpdateOperator(alice, alice, true)
	assert.True(reverts.IsAuthorization(err))
	assert.EqualError(err, "Ownable: caller is not the owner")

	// owner may revoke
	assert.Nil(ref.UpdateOperator(owner, operator, false))
	assert.True(reverts.IsAuthorization(ref.RecordReferral(operator, bob, carol)))
}

func TestRecordReferral(t *testing.T) {
	assert := assert.New(t)
	ref := newTestReferral(t)

	assert.Nil(ref.RecordReferral(operator, alice, bob))

	got, err := ref.Referrer(alice)
	assert.Nil(err)
	assert.Equal(bob, got)

	count, err := ref.ReferralsCount(bob)
	assert.Nil(err)
	assert.Equal(uint64(1), count)

	// first writer wins
	assert.Nil(ref.RecordReferral(operator, alice, carol))
	got, _ = ref.Referrer(alice)
	assert.Equal(bob, got)
	count, _ = ref.ReferralsCount(carol)
	assert.Equal(uint64(0), count)

	// repeated record of the same pair does not double count
	assert.Nil(ref.RecordReferral(operator, alice, bob))
	count, _ = ref.ReferralsCount(bob)
	assert.Equal(uint64(1), count)

	// self referral and zero addresses are silent no-ops
	assert.Nil(ref.RecordReferral(operator, carol, carol))
	assert.Nil(ref.RecordReferral(operator, savanna.Address{}, bob))
	assert.Nil(ref.RecordReferral(operator, carol, savanna.Address{}))
	got, _ = ref.Referrer(carol)
	assert.True(got.IsZero())
}

func TestRecordReferralCommission(t *testing.T) {
	assert := assert.New(t)
	ref := newTestReferral(t)

	assert.Nil(ref.RecordReferralCommission(operator, bob, big.NewInt(100)))
	assert.Nil(ref.RecordReferralCommission(operator, bob, big.NewInt(25)))

	total, err := ref.TotalReferralCommissions(bob)
	assert.Nil(err)
	assert.Equal(big.NewInt(125), total)

	// zero amount and zero referrer are no-ops
	assert.Nil(ref.RecordReferralCommission(operator, bob, &big.Int{}))
	assert.Nil(ref.RecordReferralCommission(operator, savanna.Address{}, big.NewInt(10)))
	total, _ = ref.TotalReferralCommissions(bob)
	assert.Equal(big.NewInt(125), total)

	assert.True(reverts.IsAuthorization(ref.RecordReferralCommission(alice, bob, big.NewInt(1))))
}

func TestTransferOwnership(t *testing.T) {
	assert := assert.New(t)
	ref := newTestReferral(t)

	assert.True(reverts.IsAuthorization(ref.TransferOwnership(alice, alice)))
	assert.True(reverts.IsState(ref.TransferOwnership(owner, savanna.Address{})))

	assert.Nil(ref.TransferOwnership(owner, alice))
	got, _ := ref.Owner()
	assert.Equal(alice, got)
}
