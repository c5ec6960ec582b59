// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package farm implements the pool accounting / reward engine.
//
// Each pool accrues a share of a fixed per-block SAVA emission proportional
// to its weight. Accrued reward is minted to the farm's own reserve (plus a
// dev share to the dev address) and paid out on harvest, subject to the
// pool's harvest lockup. Deposits of the staked asset may carry a
// basis-point fee routed to the fee address. Harvest payouts trigger a
// referral commission minted to the harvester's recorded referrer.
package farm

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/log"

	"github.com/savannaswap/savanna/builtin/asset"
	"github.com/savannaswap/savanna/builtin/referral"
	"github.com/savannaswap/savanna/builtin/token"
	"github.com/savannaswap/savanna/reverts"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

var logger = log.New("pkg", "farm")

var (
	ownerKey            = nameToKey("owner")
	devAddressKey       = nameToKey("dev-address")
	feeAddressKey       = nameToKey("fee-address")
	rewardPerBlockKey   = nameToKey("reward-per-block")
	startBlockKey       = nameToKey("start-block")
	totalAllocPointKey  = nameToKey("total-alloc-point")
	poolCountKey        = nameToKey("pool-count")
	totalLockedUpKey    = nameToKey("total-locked-up-rewards")
	referralRateKey     = nameToKey("referral-commission-rate")
	devRewardDivisorKey = nameToKey("dev-reward-divisor")
)

func nameToKey(name string) savanna.Bytes32 {
	return savanna.BytesToBytes32([]byte(name))
}

func poolKey(pid uint32) savanna.Bytes32 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], pid)
	return savanna.Blake2b([]byte("pool"), b[:])
}

func userKey(pid uint32, user savanna.Address) savanna.Bytes32 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], pid)
	return savanna.Blake2b([]byte("user"), b[:], user.Bytes())
}

// Defaults of the governance parameters.
const (
	DefaultReferralCommissionRate = 100 // 1% of each harvest, in bps
	DefaultDevRewardDivisor       = 10  // dev share = pool reward / 10
)

// Farm implements the reward engine contract.
type Farm struct {
	addr     savanna.Address
	state    *state.State
	token    *token.Token
	referral *referral.Referral
	assets   *asset.Ledger
}

// New creates a farm instance bound to its collaborators.
func New(addr savanna.Address, state *state.State, tok *token.Token, ref *referral.Referral, assets *asset.Ledger) *Farm {
	return &Farm{addr, state, tok, ref, assets}
}

// Address returns the farm's own contract address.
func (f *Farm) Address() savanna.Address {
	return f.addr
}

// Initialize sets the owner, emission schedule and parameter defaults.
// The dev and fee addresses start at the owner.
func (f *Farm) Initialize(owner savanna.Address, rewardPerBlock *big.Int, startBlock uint32) error {
	if err := f.state.SetStorageAddress(f.addr, ownerKey, owner); err != nil {
		return err
	}
	if err := f.state.SetStorageAddress(f.addr, devAddressKey, owner); err != nil {
		return err
	}
	if err := f.state.SetStorageAddress(f.addr, feeAddressKey, owner); err != nil {
		return err
	}
	if err := f.state.SetStorageBigInt(f.addr, rewardPerBlockKey, rewardPerBlock); err != nil {
		return err
	}
	if err := f.state.SetStorageUint64(f.addr, startBlockKey, uint64(startBlock)); err != nil {
		return err
	}
	if err := f.state.SetStorageUint64(f.addr, referralRateKey, DefaultReferralCommissionRate); err != nil {
		return err
	}
	return f.state.SetStorageUint64(f.addr, devRewardDivisorKey, DefaultDevRewardDivisor)
}

//
// Roles and governance
//

// Owner returns the current owner.
func (f *Farm) Owner() (savanna.Address, error) {
	return f.state.GetStorageAddress(f.addr, ownerKey)
}

func (f *Farm) checkOwner(caller savanna.Address) error {
	owner, err := f.Owner()
	if err != nil {
		return err
	}
	if caller != owner {
		return reverts.Unauthorized("Ownable: caller is not the owner")
	}
	return nil
}

// TransferOwnership hands the contract over to a new owner.
func (f *Farm) TransferOwnership(caller, newOwner savanna.Address) error {
	if err := f.checkOwner(caller); err != nil {
		return err
	}
	if newOwner.IsZero() {
		return reverts.BadState("Ownable: new owner is the zero address")
	}
	return f.state.SetStorageAddress(f.addr, ownerKey, newOwner)
}

// DevAddress returns the dev-share recipient.
func (f *Farm) DevAddress() (savanna.Address, error) {
	return f.state.GetStorageAddress(f.addr, devAddressKey)
}

// SetDevAddress reassigns the dev-share recipient.
// Only the current holder may do so, never the owner.
func (f *Farm) SetDevAddress(caller, newAddr savanna.Address) error {
	dev, err := f.DevAddress()
	if err != nil {
		return err
	}
	if caller != dev {
		return reverts.Unauthorized("setDevAddress: FORBIDDEN")
	}
	if newAddr.IsZero() {
		return reverts.BadState("setDevAddress: ZERO")
	}
	return f.state.SetStorageAddress(f.addr, devAddressKey, newAddr)
}

// FeeAddress returns the deposit-fee recipient.
func (f *Farm) FeeAddress() (savanna.Address, error) {
	return f.state.GetStorageAddress(f.addr, feeAddressKey)
}

// SetFeeAddress reassigns the deposit-fee recipient.
// Only the current holder may do so, never the owner.
func (f *Farm) SetFeeAddress(caller, newAddr savanna.Address) error {
	fee, err := f.FeeAddress()
	if err != nil {
		return err
	}
	if caller != fee {
		return reverts.Unauthorized("setFeeAddress: FORBIDDEN")
	}
	if newAddr.IsZero() {
		return reverts.BadState("setFeeAddress: ZERO")
	}
	return f.state.SetStorageAddress(f.addr, feeAddressKey, newAddr)
}

// RewardPerBlock returns the SAVA emission per block.
func (f *Farm) RewardPerBlock() (*big.Int, error) {
	return f.state.GetStorageBigInt(f.addr, rewardPerBlockKey)
}

// UpdateEmissionRate changes the per-block emission. Owner only.
// All pools are accrued first so the old rate applies to the elapsed blocks.
func (f *Farm) UpdateEmissionRate(caller savanna.Address, blockNum uint32, rewardPerBlock *big.Int) error {
	if err := f.checkOwner(caller); err != nil {
		return err
	}
	if err := f.MassUpdatePools(blockNum); err != nil {
		return err
	}
	logger.Info("emission rate updated", "rewardPerBlock", rewardPerBlock)
	return f.state.SetStorageBigInt(f.addr, rewardPerBlockKey, rewardPerBlock)
}

// StartBlock returns the block emission starts at.
func (f *Farm) StartBlock() (uint32, error) {
	v, err := f.state.GetStorageUint64(f.addr, startBlockKey)
	return uint32(v), err
}

// TotalAllocPoint returns the sum of all pools' weights.
func (f *Farm) TotalAllocPoint() (uint64, error) {
	return f.state.GetStorageUint64(f.addr, totalAllocPointKey)
}

// ReferralCommissionRate returns the commission rate in bps.
func (f *Farm) ReferralCommissionRate() (uint64, error) {
	return f.state.GetStorageUint64(f.addr, referralRateKey)
}

// SetReferralCommissionRate sets the commission rate. Owner only.
func (f *Farm) SetReferralCommissionRate(caller savanna.Address, rate uint64) error {
	if err := f.checkOwner(caller); err != nil {
		return err
	}
	if rate > savanna.MaxReferralCommissionRate {
		return reverts.OutOfBounds("setReferralCommissionRate: invalid referral commission rate basis points")
	}
	return f.state.SetStorageUint64(f.addr, referralRateKey, rate)
}

// DevRewardDivisor returns the divisor of the dev share minted per accrual.
func (f *Farm) DevRewardDivisor() (uint64, error) {
	return f.state.GetStorageUint64(f.addr, devRewardDivisorKey)
}

// TotalLockedUpRewards returns reward withheld farm-wide by harvest lockups.
func (f *Farm) TotalLockedUpRewards() (*big.Int, error) {
	return f.state.GetStorageBigInt(f.addr, totalLockedUpKey)
}

//
// Pool registry
//

// PoolLength returns the number of registered pools.
func (f *Farm) PoolLength() (uint32, error) {
	v, err := f.state.GetStorageUint64(f.addr, poolCountKey)
	return uint32(v), err
}

// GetPool returns the pool at the given index.
func (f *Farm) GetPool(pid uint32) (*Pool, error) {
	count, err := f.PoolLength()
	if err != nil {
		return nil, err
	}
	if pid >= count {
		return nil, reverts.BadState("pool: not found")
	}
	var pool Pool
	if err := f.state.GetStructuredStorage(f.addr, poolKey(pid), &pool); err != nil {
		return nil, err
	}
	return &pool, nil
}

func (f *Farm) savePool(pid uint32, pool *Pool) error {
	return f.state.SetStructuredStorage(f.addr, poolKey(pid), pool)
}

// GetUserInfo returns user's stake record in the given pool.
func (f *Farm) GetUserInfo(pid uint32, user savanna.Address) (*UserInfo, error) {
	var info UserInfo
	if err := f.state.GetStructuredStorage(f.addr, userKey(pid, user), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (f *Farm) saveUserInfo(pid uint32, user savanna.Address, info *UserInfo) error {
	return f.state.SetStructuredStorage(f.addr, userKey(pid, user), info)
}

// AddPool registers a new pool. Owner only.
// Pool indices are append-only and never reused; pools are retired by
// setting their weight to zero.
func (f *Farm) AddPool(caller savanna.Address, blockNum uint32, allocPoint uint64, stakeAsset savanna.Address, depositFeeBP uint16, harvestInterval uint64, withUpdate bool) error {
	if err := f.checkOwner(caller); err != nil {
		return err
	}
	if stakeAsset.IsZero() {
		return reverts.BadState("add: stake asset is the zero address")
	}
	if uint64(depositFeeBP) > savanna.MaxDepositFeeRate {
		return reverts.OutOfBounds("add: invalid deposit fee basis points")
	}
	if harvestInterval > savanna.MaxHarvestLockup {
		return reverts.OutOfBounds("add: invalid harvest interval")
	}
	if withUpdate {
		if err := f.MassUpdatePools(blockNum); err != nil {
			return err
		}
	}
	startBlock, err := f.StartBlock()
	if err != nil {
		return err
	}
	lastRewardBlock := blockNum
	if startBlock > lastRewardBlock {
		lastRewardBlock = startBlock
	}
	totalAlloc, err := f.TotalAllocPoint()
	if err != nil {
		return err
	}
	if err := f.state.SetStorageUint64(f.addr, totalAllocPointKey, totalAlloc+allocPoint); err != nil {
		return err
	}
	count, err := f.PoolLength()
	if err != nil {
		return err
	}
	pool := Pool{
		StakeAsset:        stakeAsset,
		AllocPoint:        allocPoint,
		LastRewardBlock:   lastRewardBlock,
		AccRewardPerShare: &big.Int{},
		DepositFeeBP:      depositFeeBP,
		HarvestInterval:   harvestInterval,
	}
	if err := f.savePool(count, &pool); err != nil {
		return err
	}
	logger.Info("pool added", "pid", count, "asset", stakeAsset, "allocPoint", allocPoint)
	return f.state.SetStorageUint64(f.addr, poolCountKey, uint64(count)+1)
}

// SetPool reweights or re-fees an existing pool. Owner only.
func (f *Farm) SetPool(caller savanna.Address, blockNum uint32, pid uint32, allocPoint uint64, depositFeeBP uint16, harvestInterval uint64, withUpdate bool) error {
	if err := f.checkOwner(caller); err != nil {
		return err
	}
	if uint64(depositFeeBP) > savanna.MaxDepositFeeRate {
		return reverts.OutOfBounds("set: invalid deposit fee basis points")
	}
	if harvestInterval > savanna.MaxHarvestLockup {
		return reverts.OutOfBounds("set: invalid harvest interval")
	}
	if withUpdate {
		if err := f.MassUpdatePools(blockNum); err != nil {
			return err
		}
	}
	pool, err := f.GetPool(pid)
	if err != nil {
		return err
	}
	totalAlloc, err := f.TotalAllocPoint()
	if err != nil {
		return err
	}
	if err := f.state.SetStorageUint64(f.addr, totalAllocPointKey, totalAlloc-pool.AllocPoint+allocPoint); err != nil {
		return err
	}
	pool.AllocPoint = allocPoint
	pool.DepositFeeBP = depositFeeBP
	pool.HarvestInterval = harvestInterval
	return f.savePool(pid, pool)
}

//
// Accrual
//

// UpdatePool accrues the pool's emission up to the given block.
// Idempotent: a second call at the same block is a no-op, as is accrual of
// an empty or zero-weight pool.
func (f *Farm) UpdatePool(blockNum uint32, pid uint32) error {
	pool, err := f.GetPool(pid)
	if err != nil {
		return err
	}
	_, err = f.accrue(blockNum, pid, pool)
	return err
}

// MassUpdatePools accrues every pool. Must precede any change of
// totalAllocPoint or the emission rate so elapsed blocks settle against the
// weights that applied during them.
func (f *Farm) MassUpdatePools(blockNum uint32) error {
	count, err := f.PoolLength()
	if err != nil {
		return err
	}
	for pid := uint32(0); pid < count; pid++ {
		if err := f.UpdatePool(blockNum, pid); err != nil {
			return err
		}
	}
	return nil
}

// accrue settles pool emission up to blockNum and saves the pool.
// The passed pool record is mutated and returned.
func (f *Farm) accrue(blockNum uint32, pid uint32, pool *Pool) (*Pool, error) {
	if blockNum <= pool.LastRewardBlock {
		return pool, nil
	}
	staked, err := f.assets.Balance(pool.StakeAsset, f.addr)
	if err != nil {
		return nil, err
	}
	totalAlloc, err := f.TotalAllocPoint()
	if err != nil {
		return nil, err
	}
	if staked.Sign() == 0 || pool.AllocPoint == 0 || totalAlloc == 0 {
		pool.LastRewardBlock = blockNum
		return pool, f.savePool(pid, pool)
	}

	rewardPerBlock, err := f.RewardPerBlock()
	if err != nil {
		return nil, err
	}
	multiplier := new(big.Int).SetUint64(uint64(blockNum - pool.LastRewardBlock))
	reward := multiplier.Mul(multiplier, rewardPerBlock)
	reward.Mul(reward, new(big.Int).SetUint64(pool.AllocPoint))
	reward.Div(reward, new(big.Int).SetUint64(totalAlloc))

	divisor, err := f.DevRewardDivisor()
	if err != nil {
		return nil, err
	}
	if divisor > 0 {
		devShare := new(big.Int).Div(reward, new(big.Int).SetUint64(divisor))
		if devShare.Sign() > 0 {
			dev, err := f.DevAddress()
			if err != nil {
				return nil, err
			}
			if err := f.token.Mint(f.addr, dev, devShare); err != nil {
				return nil, err
			}
		}
	}
	// the principal share lands in the farm reserve and is paid on harvest
	if err := f.token.Mint(f.addr, f.addr, reward); err != nil {
		return nil, err
	}

	perShare := new(big.Int).Mul(reward, savanna.RewardScale)
	perShare.Div(perShare, staked)
	pool.AccRewardPerShare = new(big.Int).Add(pool.AccRewardPerShare, perShare)
	pool.LastRewardBlock = blockNum
	return pool, f.savePool(pid, pool)
}

//
// User operations
//

// PendingReward returns user's harvestable reward simulated at blockNum,
// excluding any amount withheld by an active lockup.
func (f *Farm) PendingReward(blockNum uint32, pid uint32, user savanna.Address) (*big.Int, error) {
	pool, err := f.GetPool(pid)
	if err != nil {
		return nil, err
	}
	info, err := f.GetUserInfo(pid, user)
	if err != nil {
		return nil, err
	}
	acc := pool.AccRewardPerShare
	staked, err := f.assets.Balance(pool.StakeAsset, f.addr)
	if err != nil {
		return nil, err
	}
	if blockNum > pool.LastRewardBlock && staked.Sign() > 0 && pool.AllocPoint > 0 {
		totalAlloc, err := f.TotalAllocPoint()
		if err != nil {
			return nil, err
		}
		rewardPerBlock, err := f.RewardPerBlock()
		if err != nil {
			return nil, err
		}
		if totalAlloc > 0 {
			reward := new(big.Int).SetUint64(uint64(blockNum - pool.LastRewardBlock))
			reward.Mul(reward, rewardPerBlock)
			reward.Mul(reward, new(big.Int).SetUint64(pool.AllocPoint))
			reward.Div(reward, new(big.Int).SetUint64(totalAlloc))
			perShare := reward.Mul(reward, savanna.RewardScale)
			perShare.Div(perShare, staked)
			acc = new(big.Int).Add(acc, perShare)
		}
	}
	pending := new(big.Int).Mul(info.Amount, acc)
	pending.Div(pending, savanna.RewardScale)
	return pending.Sub(pending, info.RewardDebt), nil
}

// CanHarvest reports whether user's lockup window in the pool has elapsed.
func (f *Farm) CanHarvest(blockTime uint64, pid uint32, user savanna.Address) (bool, error) {
	info, err := f.GetUserInfo(pid, user)
	if err != nil {
		return false, err
	}
	return blockTime >= info.NextHarvestUntil, nil
}

// Deposit stakes amount of the pool's asset for the caller. A non-empty,
// non-self referrer hint is recorded on the caller's first referred deposit.
// Any pending reward is paid (or locked up) first.
func (f *Farm) Deposit(blockNum uint32, blockTime uint64, user savanna.Address, pid uint32, amount *big.Int, referrer savanna.Address) error {
	pool, err := f.GetPool(pid)
	if err != nil {
		return err
	}
	if amount.Sign() < 0 {
		return reverts.BadState("deposit: negative amount")
	}
	if pool, err = f.accrue(blockNum, pid, pool); err != nil {
		return err
	}
	if amount.Sign() > 0 && !referrer.IsZero() && referrer != user {
		if err := f.referral.RecordReferral(f.addr, user, referrer); err != nil {
			return err
		}
	}
	info, err := f.GetUserInfo(pid, user)
	if err != nil {
		return err
	}
	if err := f.settlePending(blockTime, pid, pool, user, info); err != nil {
		return err
	}
	if amount.Sign() > 0 {
		fee := new(big.Int).Mul(amount, new(big.Int).SetUint64(uint64(pool.DepositFeeBP)))
		fee.Div(fee, big.NewInt(savanna.BpsDenominator))
		staked := new(big.Int).Sub(amount, fee)
		if fee.Sign() > 0 {
			feeAddr, err := f.FeeAddress()
			if err != nil {
				return err
			}
			if err := f.assets.Transfer(pool.StakeAsset, user, feeAddr, fee); err != nil {
				return err
			}
		}
		if err := f.assets.Transfer(pool.StakeAsset, user, f.addr, staked); err != nil {
			return err
		}
		info.Amount = new(big.Int).Add(info.Amount, staked)
	}
	info.RewardDebt = debtOf(info.Amount, pool.AccRewardPerShare)
	if err := f.saveUserInfo(pid, user, info); err != nil {
		return err
	}
	logger.Debug("deposit", "user", user, "pid", pid, "amount", amount)
	return nil
}

// Withdraw unstakes amount of the pool's asset for the caller, paying (or
// locking up) pending reward first.
func (f *Farm) Withdraw(blockNum uint32, blockTime uint64, user savanna.Address, pid uint32, amount *big.Int) error {
	pool, err := f.GetPool(pid)
	if err != nil {
		return err
	}
	if amount.Sign() < 0 {
		return reverts.BadState("withdraw: negative amount")
	}
	info, err := f.GetUserInfo(pid, user)
	if err != nil {
		return err
	}
	if info.Amount.Cmp(amount) < 0 {
		return reverts.BadState("withdraw: amount exceeds stake")
	}
	if pool, err = f.accrue(blockNum, pid, pool); err != nil {
		return err
	}
	if err := f.settlePending(blockTime, pid, pool, user, info); err != nil {
		return err
	}
	if amount.Sign() > 0 {
		info.Amount = new(big.Int).Sub(info.Amount, amount)
		if err := f.assets.Transfer(pool.StakeAsset, f.addr, user, amount); err != nil {
			return err
		}
	}
	info.RewardDebt = debtOf(info.Amount, pool.AccRewardPerShare)
	if err := f.saveUserInfo(pid, user, info); err != nil {
		return err
	}
	logger.Debug("withdraw", "user", user, "pid", pid, "amount", amount)
	return nil
}

// EmergencyWithdraw returns the caller's full stake, forfeiting all reward
// accounting. It bypasses accrual entirely so principal recovery cannot be
// blocked by reward-side edge cases.
func (f *Farm) EmergencyWithdraw(user savanna.Address, pid uint32) error {
	pool, err := f.GetPool(pid)
	if err != nil {
		return err
	}
	info, err := f.GetUserInfo(pid, user)
	if err != nil {
		return err
	}
	amount := info.Amount
	if info.RewardLockedUp.Sign() > 0 {
		totalLocked, err := f.TotalLockedUpRewards()
		if err != nil {
			return err
		}
		if err := f.state.SetStorageBigInt(f.addr, totalLockedUpKey, new(big.Int).Sub(totalLocked, info.RewardLockedUp)); err != nil {
			return err
		}
	}
	info.Amount = &big.Int{}
	info.RewardDebt = &big.Int{}
	info.RewardLockedUp = &big.Int{}
	info.NextHarvestUntil = 0
	if err := f.saveUserInfo(pid, user, info); err != nil {
		return err
	}
	if amount.Sign() > 0 {
		if err := f.assets.Transfer(pool.StakeAsset, f.addr, user, amount); err != nil {
			return err
		}
	}
	logger.Warn("emergency withdraw", "user", user, "pid", pid, "amount", amount)
	return nil
}

// settlePending pays out user's pending reward, or defers it while the
// harvest lockup window is open. Pays referral commission on every payout.
func (f *Farm) settlePending(blockTime uint64, pid uint32, pool *Pool, user savanna.Address, info *UserInfo) error {
	if info.NextHarvestUntil == 0 {
		info.NextHarvestUntil = blockTime + pool.HarvestInterval
	}
	pending := debtOf(info.Amount, pool.AccRewardPerShare)
	pending.Sub(pending, info.RewardDebt)

	if blockTime >= info.NextHarvestUntil {
		if pending.Sign() > 0 || info.RewardLockedUp.Sign() > 0 {
			payout := new(big.Int).Add(pending, info.RewardLockedUp)
			if info.RewardLockedUp.Sign() > 0 {
				totalLocked, err := f.TotalLockedUpRewards()
				if err != nil {
					return err
				}
				if err := f.state.SetStorageBigInt(f.addr, totalLockedUpKey, new(big.Int).Sub(totalLocked, info.RewardLockedUp)); err != nil {
					return err
				}
				info.RewardLockedUp = &big.Int{}
			}
			info.NextHarvestUntil = blockTime + pool.HarvestInterval
			if err := f.safeRewardTransfer(user, payout); err != nil {
				return err
			}
			if err := f.payReferralCommission(user, payout); err != nil {
				return err
			}
		}
	} else if pending.Sign() > 0 {
		info.RewardLockedUp = new(big.Int).Add(info.RewardLockedUp, pending)
		totalLocked, err := f.TotalLockedUpRewards()
		if err != nil {
			return err
		}
		if err := f.state.SetStorageBigInt(f.addr, totalLockedUpKey, new(big.Int).Add(totalLocked, pending)); err != nil {
			return err
		}
		logger.Debug("reward locked up", "user", user, "pid", pid, "amount", pending)
	}
	return nil
}

// safeRewardTransfer pays out of the farm reserve, capped at its balance to
// absorb rounding drift of per-share accounting.
func (f *Farm) safeRewardTransfer(to savanna.Address, amount *big.Int) error {
	reserve, err := f.token.BalanceOf(f.addr)
	if err != nil {
		return err
	}
	if amount.Cmp(reserve) > 0 {
		amount = reserve
	}
	if amount.Sign() == 0 {
		return nil
	}
	return f.token.Transfer(f.addr, to, amount)
}

// payReferralCommission mints the commission share of a harvest payout to
// the user's recorded referrer and records it in the commission ledger.
func (f *Farm) payReferralCommission(user savanna.Address, payout *big.Int) error {
	rate, err := f.ReferralCommissionRate()
	if err != nil {
		return err
	}
	if rate == 0 {
		return nil
	}
	referrer, err := f.referral.Referrer(user)
	if err != nil {
		return err
	}
	if referrer.IsZero() {
		return nil
	}
	commission := new(big.Int).Mul(payout, new(big.Int).SetUint64(rate))
	commission.Div(commission, big.NewInt(savanna.BpsDenominator))
	if commission.Sign() == 0 {
		return nil
	}
	if err := f.token.Mint(f.addr, referrer, commission); err != nil {
		return err
	}
	return f.referral.RecordReferralCommission(f.addr, referrer, commission)
}

func debtOf(amount, accRewardPerShare *big.Int) *big.Int {
	debt := new(big.Int).Mul(amount, accRewardPerShare)
	return debt.Div(debt, savanna.RewardScale)
}
