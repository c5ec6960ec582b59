// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tokens

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/savannaswap/savanna/savanna"
)

// Config the token economic configuration.
type Config struct {
	Name                  string                `json:"name"`
	Symbol                string                `json:"symbol"`
	Decimals              uint8                 `json:"decimals"`
	Owner                 savanna.Address       `json:"owner"`
	Operator              savanna.Address       `json:"operator"`
	TotalSupply           *math.HexOrDecimal256 `json:"totalSupply"`
	MaxSupply             *math.HexOrDecimal256 `json:"maxSupply"`
	TransferTaxRate       uint64                `json:"transferTaxRate"`
	BurnRate              uint64                `json:"burnRate"`
	MaxTransferAmountRate uint64                `json:"maxTransferAmountRate"`
	MaxTransferAmount     *math.HexOrDecimal256 `json:"maxTransferAmount"`
	SwapAndLiquifyEnabled bool                  `json:"swapAndLiquifyEnabled"`
	MinAmountToLiquify    *math.HexOrDecimal256 `json:"minAmountToLiquify"`
	LiquifyReserve        *math.HexOrDecimal256 `json:"liquifyReserve"`
}

// Account a token holder view.
type Account struct {
	Balance               *math.HexOrDecimal256 `json:"balance"`
	ExcludedFromTax       bool                  `json:"excludedFromTax"`
	ExcludedFromAntiWhale bool                  `json:"excludedFromAntiWhale"`
}

// Allowance a spender allowance view.
type Allowance struct {
	Remaining *math.HexOrDecimal256 `json:"remaining"`
}

// TransferRequest body of a transfer action.
type TransferRequest struct {
	Caller savanna.Address       `json:"caller"`
	To     savanna.Address       `json:"to"`
	Amount *math.HexOrDecimal256 `json:"amount"`
}

// ApproveRequest body of an approval action.
type ApproveRequest struct {
	Caller  savanna.Address       `json:"caller"`
	Spender savanna.Address       `json:"spender"`
	Amount  *math.HexOrDecimal256 `json:"amount"`
}
