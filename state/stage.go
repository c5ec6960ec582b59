// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/savannaswap/savanna/kv"
	"github.com/savannaswap/savanna/savanna"
)

// Stage abstracts the changes ready to be committed.
type Stage struct {
	kv      kv.GetPutter
	cache   *lru.Cache
	changes map[savanna.Bytes32]rlp.RawValue
}

// Commit commits all changes into the kv store in one batch.
func (s *Stage) Commit() error {
	batch := s.kv.NewBatch()
	for hashed, raw := range s.changes {
		if len(raw) == 0 {
			if err := batch.Delete(hashed.Bytes()); err != nil {
				return errors.Wrap(err, "stage commit")
			}
		} else {
			if err := batch.Put(hashed.Bytes(), raw); err != nil {
				return errors.Wrap(err, "stage commit")
			}
		}
	}
	if err := batch.Write(); err != nil {
		return errors.Wrap(err, "stage commit")
	}
	// keep the read cache coherent with the store
	for hashed, raw := range s.changes {
		s.cache.Add(hashed, raw)
	}
	return nil
}
