// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"encoding/json"
	"io"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"

	"github.com/savannaswap/savanna/savanna"
)

// CustomGenesis is the JSON form of a user-defined genesis.
type CustomGenesis struct {
	Name           string                `json:"name"`
	Owner          savanna.Address       `json:"owner"`
	RewardPerBlock *math.HexOrDecimal256 `json:"rewardPerBlock"`
	StartBlock     uint32                `json:"startBlock"`
	MaxSupply      *math.HexOrDecimal256 `json:"maxSupply,omitempty"`
	Premine        []CustomPremine       `json:"premine,omitempty"`
	Assets         []CustomAssetGrant    `json:"assets,omitempty"`
}

// CustomPremine a token grant entry of a custom genesis.
type CustomPremine struct {
	Address savanna.Address       `json:"address"`
	Amount  *math.HexOrDecimal256 `json:"amount"`
}

// CustomAssetGrant a staked-asset issuance entry of a custom genesis.
type CustomAssetGrant struct {
	Asset  savanna.Address       `json:"asset"`
	Holder savanna.Address       `json:"holder"`
	Amount *math.HexOrDecimal256 `json:"amount"`
}

// LoadCustomGenesisFile reads and decodes a custom genesis JSON file.
func LoadCustomGenesisFile(path string) (*CustomGenesis, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open genesis file")
	}
	defer file.Close()
	return DecodeCustomGenesis(file)
}

// DecodeCustomGenesis decodes a custom genesis from JSON.
func DecodeCustomGenesis(r io.Reader) (*CustomGenesis, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var custom CustomGenesis
	if err := decoder.Decode(&custom); err != nil {
		return nil, errors.Wrap(err, "decode genesis")
	}
	return &custom, nil
}

// NewCustomNet creates a genesis preset from a custom genesis description.
func NewCustomNet(custom *CustomGenesis) (*Genesis, error) {
	if custom.Owner.IsZero() {
		return nil, errors.New("customnet: owner must not be zero")
	}
	if custom.RewardPerBlock == nil {
		return nil, errors.New("customnet: rewardPerBlock must be set")
	}

	premine := make([]Premine, 0, len(custom.Premine))
	for _, p := range custom.Premine {
		if p.Amount == nil {
			return nil, errors.New("customnet: premine amount must be set")
		}
		premine = append(premine, Premine{Address: p.Address, Amount: (*big.Int)(p.Amount)})
	}
	grants := make([]AssetGrant, 0, len(custom.Assets))
	for _, g := range custom.Assets {
		if g.Amount == nil {
			return nil, errors.New("customnet: asset amount must be set")
		}
		grants = append(grants, AssetGrant{Asset: g.Asset, Holder: g.Holder, Amount: (*big.Int)(g.Amount)})
	}

	name := custom.Name
	if name == "" {
		name = "customnet"
	}
	return &Genesis{
		builder: wire(custom.Owner, (*big.Int)(custom.RewardPerBlock), custom.StartBlock, (*big.Int)(custom.MaxSupply), premine, grants),
		name:    name,
	}, nil
}
