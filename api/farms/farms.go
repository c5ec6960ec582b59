// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farms

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/savannaswap/savanna/api/utils"
	"github.com/savannaswap/savanna/builtin"
	"github.com/savannaswap/savanna/runtime"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/solo"
)

type Farms struct {
	solo *solo.Solo
}

func New(solo *solo.Solo) *Farms {
	return &Farms{solo}
}

func toHex(v *big.Int) *math.HexOrDecimal256 {
	return (*math.HexOrDecimal256)(v)
}

func parsePid(req *http.Request) (uint32, error) {
	pid, err := strconv.ParseUint(mux.Vars(req)["pid"], 10, 32)
	if err != nil {
		return 0, utils.BadRequest(errors.WithMessage(err, "pid"))
	}
	return uint32(pid), nil
}

func (f *Farms) handleGetSummary(w http.ResponseWriter, _ *http.Request) error {
	var summary Summary
	if err := f.solo.Inspect(func(env *runtime.Environment) error {
		farm := builtin.Farm(env.State())
		owner, err := farm.Owner()
		if err != nil {
			return err
		}
		dev, err := farm.DevAddress()
		if err != nil {
			return err
		}
		fee, err := farm.FeeAddress()
		if err != nil {
			return err
		}
		rewardPerBlock, err := farm.RewardPerBlock()
		if err != nil {
			return err
		}
		startBlock, err := farm.StartBlock()
		if err != nil {
			return err
		}
		totalAlloc, err := farm.TotalAllocPoint()
		if err != nil {
			return err
		}
		refRate, err := farm.ReferralCommissionRate()
		if err != nil {
			return err
		}
		lockedUp, err := farm.TotalLockedUpRewards()
		if err != nil {
			return err
		}
		length, err := farm.PoolLength()
		if err != nil {
			return err
		}
		summary = Summary{
			Owner:                  owner,
			DevAddress:             dev,
			FeeAddress:             fee,
			RewardPerBlock:         toHex(rewardPerBlock),
			StartBlock:             startBlock,
			TotalAllocPoint:        totalAlloc,
			ReferralCommissionRate: refRate,
			TotalLockedUpRewards:   toHex(lockedUp),
			PoolLength:             length,
		}
		return nil
	}); err != nil {
		return err
	}
	return utils.WriteJSON(w, summary)
}

func (f *Farms) getPool(env *runtime.Environment, pid uint32) (*Pool, error) {
	farm := builtin.Farm(env.State())
	pool, err := farm.GetPool(pid)
	if err != nil {
		return nil, err
	}
	staked, err := builtin.Assets(env.State()).Balance(pool.StakeAsset, farm.Address())
	if err != nil {
		return nil, err
	}
	return &Pool{
		Pid:               pid,
		StakeAsset:        pool.StakeAsset,
		AllocPoint:        pool.AllocPoint,
		LastRewardBlock:   pool.LastRewardBlock,
		AccRewardPerShare: toHex(pool.AccRewardPerShare),
		DepositFeeBP:      pool.DepositFeeBP,
		HarvestInterval:   pool.HarvestInterval,
		StakedSupply:      toHex(staked),
	}, nil
}

func (f *Farms) handleGetPools(w http.ResponseWriter, _ *http.Request) error {
	pools := []*Pool{}
	if err := f.solo.Inspect(func(env *runtime.Environment) error {
		length, err := builtin.Farm(env.State()).PoolLength()
		if err != nil {
			return err
		}
		for pid := uint32(0); pid < length; pid++ {
			pool, err := f.getPool(env, pid)
			if err != nil {
				return err
			}
			pools = append(pools, pool)
		}
		return nil
	}); err != nil {
		return err
	}
	return utils.WriteJSON(w, pools)
}

func (f *Farms) handleGetPool(w http.ResponseWriter, req *http.Request) error {
	pid, err := parsePid(req)
	if err != nil {
		return err
	}
	var pool *Pool
	if err := f.solo.Inspect(func(env *runtime.Environment) error {
		pool, err = f.getPool(env, pid)
		return err
	}); err != nil {
		return utils.ConvertRuleError(err)
	}
	return utils.WriteJSON(w, pool)
}

func (f *Farms) handleGetStake(w http.ResponseWriter, req *http.Request) error {
	pid, err := parsePid(req)
	if err != nil {
		return err
	}
	addr, err := savanna.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	var stake Stake
	if err := f.solo.Inspect(func(env *runtime.Environment) error {
		farm := builtin.Farm(env.State())
		info, err := farm.GetUserInfo(pid, *addr)
		if err != nil {
			return err
		}
		pending, err := farm.PendingReward(env.BlockNumber(), pid, *addr)
		if err != nil {
			return err
		}
		canHarvest, err := farm.CanHarvest(env.BlockTime(), pid, *addr)
		if err != nil {
			return err
		}
		stake = Stake{
			Amount:           toHex(info.Amount),
			RewardDebt:       toHex(info.RewardDebt),
			RewardLockedUp:   toHex(info.RewardLockedUp),
			NextHarvestUntil: info.NextHarvestUntil,
			PendingReward:    toHex(pending),
			CanHarvest:       canHarvest,
		}
		return nil
	}); err != nil {
		return utils.ConvertRuleError(err)
	}
	return utils.WriteJSON(w, stake)
}

func (f *Farms) handleDeposit(w http.ResponseWriter, req *http.Request) error {
	var body DepositRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == nil {
		return utils.BadRequest(errors.New("amount: missing"))
	}
	if err := f.solo.Execute(body.Caller, func(env *runtime.Environment) error {
		return builtin.Farm(env.State()).Deposit(
			env.BlockNumber(), env.BlockTime(), env.Caller(), body.Pid, (*big.Int)(body.Amount), body.Referrer)
	}); err != nil {
		return utils.ConvertRuleError(err)
	}
	return utils.WriteJSON(w, utils.M{"ok": true})
}

func (f *Farms) handleWithdraw(w http.ResponseWriter, req *http.Request) error {
	var body WithdrawRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == nil {
		return utils.BadRequest(errors.New("amount: missing"))
	}
	if err := f.solo.Execute(body.Caller, func(env *runtime.Environment) error {
		return builtin.Farm(env.State()).Withdraw(
			env.BlockNumber(), env.BlockTime(), env.Caller(), body.Pid, (*big.Int)(body.Amount))
	}); err != nil {
		return utils.ConvertRuleError(err)
	}
	return utils.WriteJSON(w, utils.M{"ok": true})
}

func (f *Farms) handleEmergencyWithdraw(w http.ResponseWriter, req *http.Request) error {
	var body EmergencyWithdrawRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := f.solo.Execute(body.Caller, func(env *runtime.Environment) error {
		return builtin.Farm(env.State()).EmergencyWithdraw(env.Caller(), body.Pid)
	}); err != nil {
		return utils.ConvertRuleError(err)
	}
	return utils.WriteJSON(w, utils.M{"ok": true})
}

func (f *Farms) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(f.handleGetSummary))
	sub.Path("/pools").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(f.handleGetPools))
	sub.Path("/pools/{pid}").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(f.handleGetPool))
	sub.Path("/pools/{pid}/stakes/{address}").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(f.handleGetStake))
	sub.Path("/deposits").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(f.handleDeposit))
	sub.Path("/withdrawals").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(f.handleWithdraw))
	sub.Path("/emergency-withdrawals").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(f.handleEmergencyWithdraw))
}
