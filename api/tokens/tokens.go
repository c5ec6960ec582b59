// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tokens

import (
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/savannaswap/savanna/api/utils"
	"github.com/savannaswap/savanna/builtin"
	"github.com/savannaswap/savanna/builtin/token"
	"github.com/savannaswap/savanna/runtime"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/solo"
)

type Tokens struct {
	solo *solo.Solo
}

func New(solo *solo.Solo) *Tokens {
	return &Tokens{solo}
}

func toHex(v *big.Int) *math.HexOrDecimal256 {
	return (*math.HexOrDecimal256)(v)
}

func (t *Tokens) getConfig() (*Config, error) {
	var cfg Config
	if err := t.solo.Inspect(func(env *runtime.Environment) error {
		tok := builtin.Token(env.State())
		owner, err := tok.Owner()
		if err != nil {
			return err
		}
		operator, err := tok.Operator()
		if err != nil {
			return err
		}
		supply, err := tok.TotalSupply()
		if err != nil {
			return err
		}
		maxSupply, err := tok.MaxSupply()
		if err != nil {
			return err
		}
		taxRate, err := tok.TransferTaxRate()
		if err != nil {
			return err
		}
		burnRate, err := tok.BurnRate()
		if err != nil {
			return err
		}
		maxRate, err := tok.MaxTransferAmountRate()
		if err != nil {
			return err
		}
		maxAmount, err := tok.MaxTransferAmount()
		if err != nil {
			return err
		}
		liquifyEnabled, err := tok.SwapAndLiquifyEnabled()
		if err != nil {
			return err
		}
		minLiquify, err := tok.MinAmountToLiquify()
		if err != nil {
			return err
		}
		reserve, err := tok.LiquifyReserve()
		if err != nil {
			return err
		}
		cfg = Config{
			Name:                  token.Name,
			Symbol:                token.Symbol,
			Decimals:              token.Decimals,
			Owner:                 owner,
			Operator:              operator,
			TotalSupply:           toHex(supply),
			MaxSupply:             toHex(maxSupply),
			TransferTaxRate:       taxRate,
			BurnRate:              burnRate,
			MaxTransferAmountRate: maxRate,
			MaxTransferAmount:     toHex(maxAmount),
			SwapAndLiquifyEnabled: liquifyEnabled,
			MinAmountToLiquify:    toHex(minLiquify),
			LiquifyReserve:        toHex(reserve),
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (t *Tokens) handleGetConfig(w http.ResponseWriter, _ *http.Request) error {
	cfg, err := t.getConfig()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, cfg)
}

func (t *Tokens) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	addr, err := savanna.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	var acc Account
	if err := t.solo.Inspect(func(env *runtime.Environment) error {
		tok := builtin.Token(env.State())
		balance, err := tok.BalanceOf(*addr)
		if err != nil {
			return err
		}
		taxExcluded, err := tok.IsExcludedFromTax(*addr)
		if err != nil {
			return err
		}
		whaleExcluded, err := tok.IsExcludedFromAntiWhale(*addr)
		if err != nil {
			return err
		}
		acc = Account{
			Balance:               toHex(balance),
			ExcludedFromTax:       taxExcluded,
			ExcludedFromAntiWhale: whaleExcluded,
		}
		return nil
	}); err != nil {
		return err
	}
	return utils.WriteJSON(w, acc)
}

func (t *Tokens) handleGetAllowance(w http.ResponseWriter, req *http.Request) error {
	owner, err := savanna.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	spender, err := savanna.ParseAddress(mux.Vars(req)["spender"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "spender"))
	}
	var remaining *big.Int
	if err := t.solo.Inspect(func(env *runtime.Environment) error {
		remaining, err = builtin.Token(env.State()).Allowance(*owner, *spender)
		return err
	}); err != nil {
		return err
	}
	return utils.WriteJSON(w, Allowance{Remaining: toHex(remaining)})
}

func (t *Tokens) handleTransfer(w http.ResponseWriter, req *http.Request) error {
	var body TransferRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == nil {
		return utils.BadRequest(errors.New("amount: missing"))
	}
	if err := t.solo.Execute(body.Caller, func(env *runtime.Environment) error {
		return builtin.Token(env.State()).Transfer(env.Caller(), body.To, (*big.Int)(body.Amount))
	}); err != nil {
		return utils.ConvertRuleError(err)
	}
	return utils.WriteJSON(w, utils.M{"ok": true})
}

func (t *Tokens) handleApprove(w http.ResponseWriter, req *http.Request) error {
	var body ApproveRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == nil {
		return utils.BadRequest(errors.New("amount: missing"))
	}
	if err := t.solo.Execute(body.Caller, func(env *runtime.Environment) error {
		return builtin.Token(env.State()).Approve(env.Caller(), body.Spender, (*big.Int)(body.Amount))
	}); err != nil {
		return utils.ConvertRuleError(err)
	}
	return utils.WriteJSON(w, utils.M{"ok": true})
}

func (t *Tokens) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(t.handleGetConfig))
	sub.Path("/accounts/{address}").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(t.handleGetAccount))
	sub.Path("/accounts/{address}/allowances/{spender}").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(t.handleGetAllowance))
	sub.Path("/transfers").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(t.handleTransfer))
	sub.Path("/approvals").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(t.handleApprove))
}
