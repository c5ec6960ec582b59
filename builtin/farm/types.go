// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

var (
	_ state.StorageEncoder = (*Pool)(nil)
	_ state.StorageDecoder = (*Pool)(nil)

	_ state.StorageEncoder = (*UserInfo)(nil)
	_ state.StorageDecoder = (*UserInfo)(nil)
)

// Pool holds the reward accounting of one staked asset.
type Pool struct {
	StakeAsset        savanna.Address
	AllocPoint        uint64
	LastRewardBlock   uint32
	AccRewardPerShare *big.Int
	DepositFeeBP      uint16
	HarvestInterval   uint64
}

// Encode implements state.StorageEncoder.
func (p *Pool) Encode() ([]byte, error) {
	if p.IsEmpty() {
		return nil, nil
	}
	return rlp.EncodeToBytes(p)
}

// Decode implements state.StorageDecoder.
func (p *Pool) Decode(data []byte) error {
	if len(data) == 0 {
		*p = Pool{AccRewardPerShare: &big.Int{}}
		return nil
	}
	return rlp.DecodeBytes(data, p)
}

// IsEmpty returns whether the pool can be treated as unregistered.
func (p *Pool) IsEmpty() bool {
	return p.StakeAsset.IsZero() && p.LastRewardBlock == 0
}

// UserInfo holds one user's stake in one pool.
type UserInfo struct {
	Amount           *big.Int
	RewardDebt       *big.Int
	RewardLockedUp   *big.Int
	NextHarvestUntil uint64
}

// Encode implements state.StorageEncoder.
func (u *UserInfo) Encode() ([]byte, error) {
	if u.IsEmpty() {
		return nil, nil
	}
	return rlp.EncodeToBytes(u)
}

// Decode implements state.StorageDecoder.
func (u *UserInfo) Decode(data []byte) error {
	if len(data) == 0 {
		*u = UserInfo{Amount: &big.Int{}, RewardDebt: &big.Int{}, RewardLockedUp: &big.Int{}}
		return nil
	}
	return rlp.DecodeBytes(data, u)
}

// IsEmpty returns whether the record is at its resting zero state.
func (u *UserInfo) IsEmpty() bool {
	return u.Amount.Sign() == 0 &&
		u.RewardDebt.Sign() == 0 &&
		u.RewardLockedUp.Sign() == 0 &&
		u.NextHarvestUntil == 0
}
