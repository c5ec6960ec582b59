// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farms

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/savannaswap/savanna/savanna"
)

// Summary the farm-wide configuration and counters.
type Summary struct {
	Owner                  savanna.Address       `json:"owner"`
	DevAddress             savanna.Address       `json:"devAddress"`
	FeeAddress             savanna.Address       `json:"feeAddress"`
	RewardPerBlock         *math.HexOrDecimal256 `json:"rewardPerBlock"`
	StartBlock             uint32                `json:"startBlock"`
	TotalAllocPoint        uint64                `json:"totalAllocPoint"`
	ReferralCommissionRate uint64                `json:"referralCommissionRate"`
	TotalLockedUpRewards   *math.HexOrDecimal256 `json:"totalLockedUpRewards"`
	PoolLength             uint32                `json:"poolLength"`
}

// Pool a staking pool view.
type Pool struct {
	Pid               uint32                `json:"pid"`
	StakeAsset        savanna.Address       `json:"stakeAsset"`
	AllocPoint        uint64                `json:"allocPoint"`
	LastRewardBlock   uint32                `json:"lastRewardBlock"`
	AccRewardPerShare *math.HexOrDecimal256 `json:"accRewardPerShare"`
	DepositFeeBP      uint16                `json:"depositFeeBP"`
	HarvestInterval   uint64                `json:"harvestInterval"`
	StakedSupply      *math.HexOrDecimal256 `json:"stakedSupply"`
}

// Stake a user's position in a pool.
type Stake struct {
	Amount           *math.HexOrDecimal256 `json:"amount"`
	RewardDebt       *math.HexOrDecimal256 `json:"rewardDebt"`
	RewardLockedUp   *math.HexOrDecimal256 `json:"rewardLockedUp"`
	NextHarvestUntil uint64                `json:"nextHarvestUntil"`
	PendingReward    *math.HexOrDecimal256 `json:"pendingReward"`
	CanHarvest       bool                  `json:"canHarvest"`
}

// DepositRequest body of a deposit action.
type DepositRequest struct {
	Caller   savanna.Address       `json:"caller"`
	Pid      uint32                `json:"pid"`
	Amount   *math.HexOrDecimal256 `json:"amount"`
	Referrer savanna.Address       `json:"referrer"`
}

// WithdrawRequest body of a withdraw action.
type WithdrawRequest struct {
	Caller savanna.Address       `json:"caller"`
	Pid    uint32                `json:"pid"`
	Amount *math.HexOrDecimal256 `json:"amount"`
}

// EmergencyWithdrawRequest body of an emergency withdraw action.
type EmergencyWithdrawRequest struct {
	Caller savanna.Address `json:"caller"`
	Pid    uint32          `json:"pid"`
}
