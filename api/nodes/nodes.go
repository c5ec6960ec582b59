// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nodes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/savannaswap/savanna/api/utils"
	"github.com/savannaswap/savanna/solo"
)

type Nodes struct {
	solo *solo.Solo
}

func New(solo *solo.Solo) *Nodes {
	return &Nodes{solo}
}

// Status the host's current block clock reading.
type Status struct {
	BlockNumber uint32 `json:"blockNumber"`
	BlockTime   uint64 `json:"blockTime"`
}

func (n *Nodes) handleGetStatus(w http.ResponseWriter, _ *http.Request) error {
	head := n.solo.HeadBlock()
	return utils.WriteJSON(w, Status{
		BlockNumber: head.Number,
		BlockTime:   head.Time,
	})
}

func (n *Nodes) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/status").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(n.handleGetStatus))
}
