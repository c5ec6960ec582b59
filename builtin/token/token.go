// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token implements SAVA, the reward token.
//
// Transfers between ordinary holders are subject to an anti-whale cap, a
// transfer tax split into a burned portion and a contract-retained liquify
// portion. Excluded system addresses (the token itself, the burn sink, the
// farm) move funds untaxed and uncapped.
package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/log"

	"github.com/savannaswap/savanna/reverts"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

var logger = log.New("pkg", "token")

var (
	ownerKey           = nameToKey("owner")
	operatorKey        = nameToKey("operator")
	totalSupplyKey     = nameToKey("total-supply")
	maxSupplyKey       = nameToKey("max-supply")
	taxRateKey         = nameToKey("transfer-tax-rate")
	burnRateKey        = nameToKey("burn-rate")
	maxTransferRateKey = nameToKey("max-transfer-amount-rate")
	liquifyEnabledKey  = nameToKey("swap-and-liquify-enabled")
	minLiquifyKey      = nameToKey("min-amount-to-liquify")
	routerKey          = nameToKey("router")
)

func nameToKey(name string) savanna.Bytes32 {
	return savanna.BytesToBytes32([]byte(name))
}

func balanceKey(holder savanna.Address) savanna.Bytes32 {
	return savanna.Blake2b([]byte("balance"), holder.Bytes())
}

func allowanceKey(owner, spender savanna.Address) savanna.Bytes32 {
	return savanna.Blake2b([]byte("allowance"), owner.Bytes(), spender.Bytes())
}

func antiWhaleExclusionKey(addr savanna.Address) savanna.Bytes32 {
	return savanna.Blake2b([]byte("excluded-from-anti-whale"), addr.Bytes())
}

func taxExclusionKey(addr savanna.Address) savanna.Bytes32 {
	return savanna.Blake2b([]byte("excluded-from-tax"), addr.Bytes())
}

// Token identity.
const (
	Name     = "Savanna Token"
	Symbol   = "SAVA"
	Decimals = 18
)

// Default economic parameters, adjustable by the operator within the
// protocol ceilings.
const (
	DefaultTransferTaxRate       = 500 // 5% in bps
	DefaultBurnRate              = 20  // 20% of the tax
	DefaultMaxTransferAmountRate = 50  // 0.5% of total supply in bps
)

// DefaultMinAmountToLiquify threshold of the accrued liquify reserve.
var DefaultMinAmountToLiquify = new(big.Int).Mul(big.NewInt(500), big.NewInt(1e18))

// Token implements the reward token contract.
type Token struct {
	addr  savanna.Address
	state *state.State
}

// New creates a token instance.
func New(addr savanna.Address, state *state.State) *Token {
	return &Token{addr, state}
}

// Address returns the token's own contract address.
func (t *Token) Address() savanna.Address {
	return t.addr
}

// Initialize sets the deployer as owner and operator and applies the default
// economic parameters. The owner, the token itself, the burn sink, and the
// zero address start excluded from the anti-whale cap; the token itself
// starts excluded from tax.
func (t *Token) Initialize(owner savanna.Address) error {
	if err := t.state.SetStorageAddress(t.addr, ownerKey, owner); err != nil {
		return err
	}
	if err := t.state.SetStorageAddress(t.addr, operatorKey, owner); err != nil {
		return err
	}
	if err := t.state.SetStorageUint64(t.addr, taxRateKey, DefaultTransferTaxRate); err != nil {
		return err
	}
	if err := t.state.SetStorageUint64(t.addr, burnRateKey, DefaultBurnRate); err != nil {
		return err
	}
	if err := t.state.SetStorageUint64(t.addr, maxTransferRateKey, DefaultMaxTransferAmountRate); err != nil {
		return err
	}
	if err := t.state.SetStorageBigInt(t.addr, minLiquifyKey, DefaultMinAmountToLiquify); err != nil {
		return err
	}
	for _, excluded := range []savanna.Address{owner, t.addr, savanna.BurnAddress, {}} {
		if err := t.state.SetStorageBool(t.addr, antiWhaleExclusionKey(excluded), true); err != nil {
			return err
		}
	}
	return t.state.SetStorageBool(t.addr, taxExclusionKey(t.addr), true)
}

//
// Roles
//

// Owner returns the current owner.
func (t *Token) Owner() (savanna.Address, error) {
	return t.state.GetStorageAddress(t.addr, ownerKey)
}

// Operator returns the current operator.
func (t *Token) Operator() (savanna.Address, error) {
	return t.state.GetStorageAddress(t.addr, operatorKey)
}

func (t *Token) checkOwner(caller savanna.Address) error {
	owner, err := t.Owner()
	if err != nil {
		return err
	}
	if caller != owner {
		return reverts.Unauthorized("Ownable: caller is not the owner")
	}
	return nil
}

func (t *Token) checkOperator(caller savanna.Address) error {
	operator, err := t.Operator()
	if err != nil {
		return err
	}
	if caller != operator {
		return reverts.Unauthorized("operator: caller is not the operator")
	}
	return nil
}

// TransferOwnership hands the contract over to a new owner.
func (t *Token) TransferOwnership(caller, newOwner savanna.Address) error {
	if err := t.checkOwner(caller); err != nil {
		return err
	}
	if newOwner.IsZero() {
		return reverts.BadState("Ownable: new owner is the zero address")
	}
	return t.state.SetStorageAddress(t.addr, ownerKey, newOwner)
}

// TransferOperator hands day-to-day parameter control to a new operator.
func (t *Token) TransferOperator(caller, newOperator savanna.Address) error {
	if err := t.checkOperator(caller); err != nil {
		return err
	}
	if newOperator.IsZero() {
		return reverts.BadState("SAVA::transferOperator: new operator is the zero address")
	}
	return t.state.SetStorageAddress(t.addr, operatorKey, newOperator)
}

//
// Supply and balances
//

// TotalSupply returns the total minted supply, burn sink included.
func (t *Token) TotalSupply() (*big.Int, error) {
	return t.state.GetStorageBigInt(t.addr, totalSupplyKey)
}

// MaxSupply returns the mint cap, zero meaning uncapped.
func (t *Token) MaxSupply() (*big.Int, error) {
	return t.state.GetStorageBigInt(t.addr, maxSupplyKey)
}

// SetMaxSupply sets the mint cap. Owner only.
func (t *Token) SetMaxSupply(caller savanna.Address, cap *big.Int) error {
	if err := t.checkOwner(caller); err != nil {
		return err
	}
	return t.state.SetStorageBigInt(t.addr, maxSupplyKey, cap)
}

// BalanceOf returns holder's balance.
func (t *Token) BalanceOf(holder savanna.Address) (*big.Int, error) {
	return t.state.GetStorageBigInt(t.addr, balanceKey(holder))
}

// Mint creates amount new units for the given holder. Owner only.
// Minting is a system credit: no tax, no anti-whale cap, only the optional
// supply cap applies.
func (t *Token) Mint(caller, to savanna.Address, amount *big.Int) error {
	if err := t.checkOwner(caller); err != nil {
		return err
	}
	if to.IsZero() {
		return reverts.BadState("SAVA::mint: mint to the zero address")
	}
	if amount.Sign() <= 0 {
		return nil
	}
	supply, err := t.TotalSupply()
	if err != nil {
		return err
	}
	newSupply := new(big.Int).Add(supply, amount)
	maxSupply, err := t.MaxSupply()
	if err != nil {
		return err
	}
	if maxSupply.Sign() > 0 && newSupply.Cmp(maxSupply) > 0 {
		return reverts.OutOfBounds("SAVA::mint: cap exceeded")
	}
	if err := t.state.SetStorageBigInt(t.addr, totalSupplyKey, newSupply); err != nil {
		return err
	}
	bal, err := t.BalanceOf(to)
	if err != nil {
		return err
	}
	return t.state.SetStorageBigInt(t.addr, balanceKey(to), new(big.Int).Add(bal, amount))
}

//
// Transfers
//

// Transfer moves amount from sender to the given recipient, applying the
// anti-whale cap and the tax/burn/liquify split.
func (t *Token) Transfer(sender, to savanna.Address, amount *big.Int) error {
	return t.transfer(sender, to, amount)
}

// Allowance returns the remaining allowance of spender over owner's balance.
func (t *Token) Allowance(owner, spender savanna.Address) (*big.Int, error) {
	return t.state.GetStorageBigInt(t.addr, allowanceKey(owner, spender))
}

// Approve sets spender's allowance over owner's balance.
func (t *Token) Approve(owner, spender savanna.Address, amount *big.Int) error {
	if spender.IsZero() {
		return reverts.BadState("SAVA::approve: approve to the zero address")
	}
	return t.state.SetStorageBigInt(t.addr, allowanceKey(owner, spender), amount)
}

// IncreaseAllowance raises spender's allowance by added.
func (t *Token) IncreaseAllowance(owner, spender savanna.Address, added *big.Int) error {
	cur, err := t.Allowance(owner, spender)
	if err != nil {
		return err
	}
	return t.Approve(owner, spender, new(big.Int).Add(cur, added))
}

// DecreaseAllowance lowers spender's allowance by subtracted.
func (t *Token) DecreaseAllowance(owner, spender savanna.Address, subtracted *big.Int) error {
	cur, err := t.Allowance(owner, spender)
	if err != nil {
		return err
	}
	if cur.Cmp(subtracted) < 0 {
		return reverts.BadState("SAVA::decreaseAllowance: decreased allowance below zero")
	}
	return t.Approve(owner, spender, new(big.Int).Sub(cur, subtracted))
}

// TransferFrom moves amount from the from address using spender's allowance.
func (t *Token) TransferFrom(spender, from, to savanna.Address, amount *big.Int) error {
	allowance, err := t.Allowance(from, spender)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return reverts.BadState("SAVA::transferFrom: transfer amount exceeds allowance")
	}
	if err := t.transfer(from, to, amount); err != nil {
		return err
	}
	return t.state.SetStorageBigInt(t.addr, allowanceKey(from, spender), new(big.Int).Sub(allowance, amount))
}

func (t *Token) transfer(from, to savanna.Address, amount *big.Int) error {
	if from.IsZero() {
		return reverts.BadState("SAVA::transfer: transfer from the zero address")
	}
	if to.IsZero() {
		return reverts.BadState("SAVA::transfer: transfer to the zero address")
	}
	if amount.Sign() < 0 {
		return reverts.BadState("SAVA::transfer: negative transfer amount")
	}
	if err := t.checkAntiWhale(from, to, amount); err != nil {
		return err
	}

	taxed, err := t.isTaxed(from, to)
	if err != nil {
		return err
	}
	if !taxed {
		return t.move(from, to, amount)
	}

	taxRate, err := t.TransferTaxRate()
	if err != nil {
		return err
	}
	taxAmount := new(big.Int).Mul(amount, new(big.Int).SetUint64(taxRate))
	taxAmount.Div(taxAmount, big.NewInt(savanna.BpsDenominator))
	if taxAmount.Sign() == 0 {
		// below the smallest tax quantum, passes untaxed
		return t.move(from, to, amount)
	}

	burnRate, err := t.BurnRate()
	if err != nil {
		return err
	}
	burnAmount := new(big.Int).Mul(taxAmount, new(big.Int).SetUint64(burnRate))
	burnAmount.Div(burnAmount, big.NewInt(100))
	liquifyAmount := new(big.Int).Sub(taxAmount, burnAmount)
	sendAmount := new(big.Int).Sub(amount, taxAmount)

	// the sender pays the full amount, split across recipient, burn sink
	// and the liquify reserve
	if err := t.debit(from, amount); err != nil {
		return err
	}
	if err := t.credit(to, sendAmount); err != nil {
		return err
	}
	if err := t.credit(savanna.BurnAddress, burnAmount); err != nil {
		return err
	}
	return t.credit(t.addr, liquifyAmount)
}

// move debits from and credits to with no side effects.
func (t *Token) move(from, to savanna.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	if err := t.debit(from, amount); err != nil {
		return err
	}
	return t.credit(to, amount)
}

func (t *Token) debit(from savanna.Address, amount *big.Int) error {
	bal, err := t.BalanceOf(from)
	if err != nil {
		return err
	}
	if bal.Cmp(amount) < 0 {
		return reverts.BadState("SAVA::transfer: transfer amount exceeds balance")
	}
	return t.state.SetStorageBigInt(t.addr, balanceKey(from), new(big.Int).Sub(bal, amount))
}

func (t *Token) credit(to savanna.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	bal, err := t.BalanceOf(to)
	if err != nil {
		return err
	}
	return t.state.SetStorageBigInt(t.addr, balanceKey(to), new(big.Int).Add(bal, amount))
}

func (t *Token) checkAntiWhale(from, to savanna.Address, amount *big.Int) error {
	exFrom, err := t.IsExcludedFromAntiWhale(from)
	if err != nil {
		return err
	}
	exTo, err := t.IsExcludedFromAntiWhale(to)
	if err != nil {
		return err
	}
	if exFrom || exTo {
		return nil
	}
	maxAmount, err := t.MaxTransferAmount()
	if err != nil {
		return err
	}
	if maxAmount.Sign() > 0 && amount.Cmp(maxAmount) > 0 {
		return reverts.OverCapacity("SAVA::antiWhale: transfer amount exceeds the maxTransferAmount")
	}
	return nil
}

func (t *Token) isTaxed(from, to savanna.Address) (bool, error) {
	taxRate, err := t.TransferTaxRate()
	if err != nil {
		return false, err
	}
	if taxRate == 0 {
		return false, nil
	}
	exFrom, err := t.state.GetStorageBool(t.addr, taxExclusionKey(from))
	if err != nil {
		return false, err
	}
	exTo, err := t.state.GetStorageBool(t.addr, taxExclusionKey(to))
	if err != nil {
		return false, err
	}
	return !exFrom && !exTo, nil
}

//
// Economic parameters
//

// TransferTaxRate returns the transfer tax rate in bps.
func (t *Token) TransferTaxRate() (uint64, error) {
	return t.state.GetStorageUint64(t.addr, taxRateKey)
}

// UpdateTransferTaxRate sets the transfer tax rate. Operator only.
func (t *Token) UpdateTransferTaxRate(caller savanna.Address, rate uint64) error {
	if err := t.checkOperator(caller); err != nil {
		return err
	}
	if rate > savanna.MaxTransferTaxRate {
		return reverts.OutOfBounds("SAVA::updateTransferTaxRate: transfer tax rate must not exceed the maximum rate")
	}
	logger.Debug("transfer tax rate updated", "rate", rate)
	return t.state.SetStorageUint64(t.addr, taxRateKey, rate)
}

// BurnRate returns the burned percentage of the tax.
func (t *Token) BurnRate() (uint64, error) {
	return t.state.GetStorageUint64(t.addr, burnRateKey)
}

// UpdateBurnRate sets the burned percentage of the tax. Operator only.
func (t *Token) UpdateBurnRate(caller savanna.Address, rate uint64) error {
	if err := t.checkOperator(caller); err != nil {
		return err
	}
	if rate > savanna.MaxBurnRate {
		return reverts.OutOfBounds("SAVA::updateBurnRate: burn rate must not exceed the maximum rate")
	}
	return t.state.SetStorageUint64(t.addr, burnRateKey, rate)
}

// MaxTransferAmountRate returns the anti-whale cap rate in bps.
func (t *Token) MaxTransferAmountRate() (uint64, error) {
	return t.state.GetStorageUint64(t.addr, maxTransferRateKey)
}

// UpdateMaxTransferAmountRate sets the anti-whale cap rate. Operator only.
func (t *Token) UpdateMaxTransferAmountRate(caller savanna.Address, rate uint64) error {
	if err := t.checkOperator(caller); err != nil {
		return err
	}
	if rate > savanna.MaxTransferAmountRate {
		return reverts.OutOfBounds("SAVA::updateMaxTransferAmountRate: max transfer amount rate must not exceed the maximum rate")
	}
	return t.state.SetStorageUint64(t.addr, maxTransferRateKey, rate)
}

// MaxTransferAmount returns the per-transfer ceiling, recomputed on demand.
func (t *Token) MaxTransferAmount() (*big.Int, error) {
	supply, err := t.TotalSupply()
	if err != nil {
		return nil, err
	}
	rate, err := t.MaxTransferAmountRate()
	if err != nil {
		return nil, err
	}
	maxAmount := new(big.Int).Mul(supply, new(big.Int).SetUint64(rate))
	return maxAmount.Div(maxAmount, big.NewInt(savanna.BpsDenominator)), nil
}

// IsExcludedFromAntiWhale returns whether addr bypasses the anti-whale cap.
func (t *Token) IsExcludedFromAntiWhale(addr savanna.Address) (bool, error) {
	return t.state.GetStorageBool(t.addr, antiWhaleExclusionKey(addr))
}

// SetExcludedFromAntiWhale toggles addr in the anti-whale exclusion set.
// Operator only.
func (t *Token) SetExcludedFromAntiWhale(caller, addr savanna.Address, excluded bool) error {
	if err := t.checkOperator(caller); err != nil {
		return err
	}
	return t.state.SetStorageBool(t.addr, antiWhaleExclusionKey(addr), excluded)
}

// IsExcludedFromTax returns whether transfers involving addr skip the tax.
func (t *Token) IsExcludedFromTax(addr savanna.Address) (bool, error) {
	return t.state.GetStorageBool(t.addr, taxExclusionKey(addr))
}

// SetExcludedFromTax toggles addr in the tax exclusion set. Operator only.
// System addresses (the farm) are registered here at genesis so reward
// credits are untaxed.
func (t *Token) SetExcludedFromTax(caller, addr savanna.Address, excluded bool) error {
	if err := t.checkOperator(caller); err != nil {
		return err
	}
	return t.state.SetStorageBool(t.addr, taxExclusionKey(addr), excluded)
}

//
// Liquify collaborator surface
//

// SwapAndLiquifyEnabled returns whether the liquify hand-off is enabled.
func (t *Token) SwapAndLiquifyEnabled() (bool, error) {
	return t.state.GetStorageBool(t.addr, liquifyEnabledKey)
}

// UpdateSwapAndLiquifyEnabled toggles the liquify hand-off. Operator only.
func (t *Token) UpdateSwapAndLiquifyEnabled(caller savanna.Address, enabled bool) error {
	if err := t.checkOperator(caller); err != nil {
		return err
	}
	return t.state.SetStorageBool(t.addr, liquifyEnabledKey, enabled)
}

// MinAmountToLiquify returns the reserve threshold of the liquify hand-off.
func (t *Token) MinAmountToLiquify() (*big.Int, error) {
	return t.state.GetStorageBigInt(t.addr, minLiquifyKey)
}

// UpdateMinAmountToLiquify sets the reserve threshold. Operator only.
func (t *Token) UpdateMinAmountToLiquify(caller savanna.Address, min *big.Int) error {
	if err := t.checkOperator(caller); err != nil {
		return err
	}
	return t.state.SetStorageBigInt(t.addr, minLiquifyKey, min)
}

// Router returns the swap router collaborator address.
func (t *Token) Router() (savanna.Address, error) {
	return t.state.GetStorageAddress(t.addr, routerKey)
}

// UpdateRouter sets the swap router collaborator address. Operator only.
func (t *Token) UpdateRouter(caller, router savanna.Address) error {
	if err := t.checkOperator(caller); err != nil {
		return err
	}
	if router.IsZero() {
		return reverts.BadState("SAVA::updateRouter: new router is the zero address")
	}
	return t.state.SetStorageAddress(t.addr, routerKey, router)
}

// LiquifyReserve returns the tax portion retained for liquidity conversion,
// i.e. the token's own balance.
func (t *Token) LiquifyReserve() (*big.Int, error) {
	return t.BalanceOf(t.addr)
}

// ShouldLiquify reports whether the external conversion may be triggered:
// enabled and the reserve has reached the threshold. The conversion itself
// is the router collaborator's job.
func (t *Token) ShouldLiquify() (bool, error) {
	enabled, err := t.SwapAndLiquifyEnabled()
	if err != nil {
		return false, err
	}
	if !enabled {
		return false, nil
	}
	reserve, err := t.LiquifyReserve()
	if err != nil {
		return false, err
	}
	min, err := t.MinAmountToLiquify()
	if err != nil {
		return false, err
	}
	return reserve.Cmp(min) >= 0, nil
}
