// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package referrals

import (
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

type Referrals struct {
	solo *solo.Solo
}

func New(solo *solo.Solo) *Referrals {
	return &Referrals{solo}
}

// Record a referral profile: who referred the account, and the account's
// own standing as a referrer.
type Record struct {
	Referrer                 savanna.Address       `json:"referrer"`
	ReferralsCount           uint64                `json:"referralsCount"`
	TotalReferralCommissions *math.HexOrDecimal256 `json:"totalReferralCommissions"`
}

func (r *Referrals) handleGetRecord(w http.ResponseWriter, req *http.Request) error {
	addr, err := savanna.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	var record Record
	if err := r.solo.Inspect(func(env *runtime.Environment) error {
		ref := builtin.Referral(env.State())
		referrer, err := ref.Referrer(*addr)
		if err != nil {
			return err
		}
		count, err := ref.ReferralsCount(*addr)
		if err != nil {
			return err
		}
		commissions, err := ref.TotalReferralCommissions(*addr)
		if err != nil {
			return err
		}
		record = Record{
			Referrer:                 referrer,
			ReferralsCount:           count,
			TotalReferralCommissions: (*math.HexOrDecimal256)(commissions),
		}
		return nil
	}); err != nil {
		return err
	}
	return utils.WriteJSON(w, record)
}

func (r *Referrals) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/{address}").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(r.handleGetRecord))
}
