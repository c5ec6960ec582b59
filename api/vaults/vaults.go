// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vaults

import (
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/savannaswap/savanna/api/utils"
	"github.com/savannaswap/savanna/builtin"
	"github.com/savannaswap/savanna/runtime"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/solo"
)

type Vaults struct {
	solo *solo.Solo
}

func New(solo *solo.Solo) *Vaults {
	return &Vaults{solo}
}

// Holding the vault balance of one asset.
type Holding struct {
	Owner savanna.Address       `json:"owner"`
	Held  *math.HexOrDecimal256 `json:"held"`
}

// UnlockRequest body of an unlock action.
type UnlockRequest struct {
	Caller    savanna.Address `json:"caller"`
	Asset     savanna.Address `json:"asset"`
	Recipient savanna.Address `json:"recipient"`
}

func (v *Vaults) handleGetHolding(w http.ResponseWriter, req *http.Request) error {
	assetHandle, err := savanna.ParseAddress(mux.Vars(req)["asset"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "asset"))
	}
	var holding Holding
	if err := v.solo.Inspect(func(env *runtime.Environment) error {
		vault := builtin.Vault(env.State())
		owner, err := vault.Owner()
		if err != nil {
			return err
		}
		var held *big.Int
		if held, err = vault.Held(*assetHandle); err != nil {
			return err
		}
		holding = Holding{Owner: owner, Held: (*math.HexOrDecimal256)(held)}
		return nil
	}); err != nil {
		return err
	}
	return utils.WriteJSON(w, holding)
}

func (v *Vaults) handleUnlock(w http.ResponseWriter, req *http.Request) error {
	var body UnlockRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := v.solo.Execute(body.Caller, func(env *runtime.Environment) error {
		return builtin.Vault(env.State()).Unlock(env.Caller(), body.Asset, body.Recipient)
	}); err != nil {
		return utils.ConvertRuleError(err)
	}
	return utils.WriteJSON(w, utils.M{"ok": true})
}

func (v *Vaults) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/{asset}").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(v.handleGetHolding))
	sub.Path("/unlocks").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(v.handleUnlock))
}
