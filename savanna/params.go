// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package savanna

import "math/big"

// Constants of the Savanna protocol.
const (
	// BpsDenominator denominator of all basis-point rates.
	BpsDenominator = 10000

	// MaxTransferTaxRate ceiling of the token transfer tax, in bps.
	MaxTransferTaxRate = 1000

	// MaxBurnRate ceiling of the burn portion of the tax, in percent.
	MaxBurnRate = 100

	// MaxTransferAmountRate ceiling of the anti-whale transfer cap rate, in bps.
	MaxTransferAmountRate = 10000

	// MaxDepositFeeRate ceiling of a pool's deposit fee, in bps.
	MaxDepositFeeRate = 10000

	// MaxReferralCommissionRate ceiling of the referral commission rate, in bps.
	MaxReferralCommissionRate = 1000

	// MaxHarvestLockup ceiling of a pool's harvest lockup, in seconds.
	MaxHarvestLockup uint64 = 14 * 24 * 3600

	// BlockInterval time between two consecutive blocks, in seconds.
	BlockInterval uint64 = 3
)

// RewardScale fixed-point scale of pool reward-per-share accumulators.
var RewardScale = big.NewInt(1e12)

// BurnAddress the burn sink. Credits to it are permanently out of circulation.
var BurnAddress = MustParseAddress("0x000000000000000000000000000000000000dead")
