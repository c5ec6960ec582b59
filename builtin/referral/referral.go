// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package referral implements the referral commission ledger.
//
// Referral assignment is first-writer-wins: once a referee has a referrer it
// is never overwritten, and repeated or malformed record calls are silent
// no-ops rather than errors.
package referral

import (
	"math/big"

	"github.com/savannaswap/savanna/reverts"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

var ownerKey = savanna.BytesToBytes32([]byte("owner"))

func operatorKey(addr savanna.Address) savanna.Bytes32 {
	return savanna.Blake2b([]byte("operator"), addr.Bytes())
}

func referrerKey(referee savanna.Address) savanna.Bytes32 {
	return savanna.Blake2b([]byte("referrer"), referee.Bytes())
}

func countKey(referrer savanna.Address) savanna.Bytes32 {
	return savanna.Blake2b([]byte("referrals-count"), referrer.Bytes())
}

func commissionKey(referrer savanna.Address) savanna.Bytes32 {
	return savanna.Blake2b([]byte("total-commission"), referrer.Bytes())
}

// Referral implements the commission ledger contract.
type Referral struct {
	addr  savanna.Address
	state *state.State
}

// New creates a referral instance.
func New(addr savanna.Address, state *state.State) *Referral {
	return &Referral{addr, state}
}

// Initialize sets the initial owner.
func (r *Referral) Initialize(owner savanna.Address) error {
	return r.state.SetStorageAddress(r.addr, ownerKey, owner)
}

// Owner returns the current owner.
func (r *Referral) Owner() (savanna.Address, error) {
	return r.state.GetStorageAddress(r.addr, ownerKey)
}

// TransferOwnership hands the contract over to a new owner.
func (r *Referral) TransferOwnership(caller, newOwner savanna.Address) error {
	if err := r.checkOwner(caller); err != nil {
		return err
	}
	if newOwner.IsZero() {
		return reverts.BadState("Ownable: new owner is the zero address")
	}
	return r.state.SetStorageAddress(r.addr, ownerKey, newOwner)
}

func (r *Referral) checkOwner(caller savanna.Address) error {
	owner, err := r.Owner()
	if err != nil {
		return err
	}
	if caller != owner {
		return reverts.Unauthorized("Ownable: caller is not the owner")
	}
	return nil
}

func (r *Referral) checkOperator(caller savanna.Address) error {
	ok, err := r.IsOperator(caller)
	if err != nil {
		return err
	}
	if !ok {
		return reverts.Unauthorized("Operator: caller is not the operator")
	}
	return nil
}

// IsOperator returns whether addr is in the operator allow-set.
func (r *Referral) IsOperator(addr savanna.Address) (bool, error) {
	return r.state.GetStorageBool(r.addr, operatorKey(addr))
}

// UpdateOperator toggles addr in the operator allow-set. Owner only.
// Unlike the token's single operator, the ledger supports several at once.
func (r *Referral) UpdateOperator(caller, operator savanna.Address, enabled bool) error {
	if err := r.checkOwner(caller); err != nil {
		return err
	}
	return r.state.SetStorageBool(r.addr, operatorKey(operator), enabled)
}

// RecordReferral records that referee was referred by referrer. Operator only.
// The call is a no-op if either address is zero, referee refers itself, or
// referee already has a referrer.
func (r *Referral) RecordReferral(caller, referee, referrer savanna.Address) error {
	if err := r.checkOperator(caller); err != nil {
		return err
	}
	if referee.IsZero() || referrer.IsZero() || referee == referrer {
		return nil
	}
	existing, err := r.Referrer(referee)
	if err != nil {
		return err
	}
	if !existing.IsZero() {
		return nil
	}
	if err := r.state.SetStorageAddress(r.addr, referrerKey(referee), referrer); err != nil {
		return err
	}
	count, err := r.ReferralsCount(referrer)
	if err != nil {
		return err
	}
	return r.state.SetStorageUint64(r.addr, countKey(referrer), count+1)
}

// Referrer returns the recorded referrer of referee, zero if none.
func (r *Referral) Referrer(referee savanna.Address) (savanna.Address, error) {
	return r.state.GetStorageAddress(r.addr, referrerKey(referee))
}

// ReferralsCount returns the number of referees recorded for referrer.
func (r *Referral) ReferralsCount(referrer savanna.Address) (uint64, error) {
	return r.state.GetStorageUint64(r.addr, countKey(referrer))
}

// RecordReferralCommission accumulates a paid commission. Operator only.
// Zero referrer or zero amount is a no-op.
func (r *Referral) RecordReferralCommission(caller, referrer savanna.Address, amount *big.Int) error {
	if err := r.checkOperator(caller); err != nil {
		return err
	}
	if referrer.IsZero() || amount.Sign() == 0 {
		return nil
	}
	total, err := r.TotalReferralCommissions(referrer)
	if err != nil {
		return err
	}
	return r.state.SetStorageBigInt(r.addr, commissionKey(referrer), new(big.Int).Add(total, amount))
}

// TotalReferralCommissions returns the cumulative commission paid to referrer.
func (r *Referral) TotalReferralCommissions(referrer savanna.Address) (*big.Int, error) {
	return r.state.GetStorageBigInt(r.addr, commissionKey(referrer))
}
