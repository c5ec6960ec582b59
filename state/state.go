// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	lru "github.com/hashicorp/golang-lru"

	"github.com/savannaswap/savanna/kv"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/stackedmap"
)

const readCacheSize = 8192

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// State manages the world state.
//
// Reads fall through a journaled map stack onto the backing kv store, so
// uncommitted writes shadow persisted values. Checkpoints bracket atomic
// call execution.
type State struct {
	kv    kv.GetPutter
	cache *lru.Cache // raw values by hashed storage key
	sm    *stackedmap.StackedMap
}

type storageKey struct {
	addr savanna.Address
	key  savanna.Bytes32
}

// New creates a state object backed by the given kv store.
func New(store kv.GetPutter) *State {
	cache, _ := lru.New(readCacheSize)
	state := State{
		kv:    store,
		cache: cache,
	}
	state.sm = stackedmap.New(func(key interface{}) (interface{}, bool, error) {
		return state.srcGetter(key)
	})

	// the bottom layer holds writes until staged
	state.sm.Push()
	return &state
}

// srcGetter implements stackedmap.MapGetter.
func (s *State) srcGetter(key interface{}) (interface{}, bool, error) {
	switch k := key.(type) {
	case storageKey:
		raw, err := s.loadStorage(k)
		if err != nil {
			return nil, false, &Error{err}
		}
		return raw, true, nil
	}
	panic(fmt.Errorf("unexpected key type %+v", key))
}

func (s *State) loadStorage(k storageKey) (rlp.RawValue, error) {
	hashed := hashKey(k)
	if cached, ok := s.cache.Get(hashed); ok {
		return cached.(rlp.RawValue), nil
	}
	data, err := s.kv.Get(hashed.Bytes())
	if err != nil {
		if !s.kv.IsNotFound(err) {
			return nil, err
		}
		data = nil
	}
	raw := rlp.RawValue(data)
	s.cache.Add(hashed, raw)
	return raw, nil
}

func hashKey(k storageKey) savanna.Bytes32 {
	return savanna.Blake2b(k.addr.Bytes(), k.key.Bytes())
}

// GetRawStorage returns the raw storage value for the given (addr, key).
func (s *State) GetRawStorage(addr savanna.Address, key savanna.Bytes32) (rlp.RawValue, error) {
	raw, _, err := s.sm.Get(storageKey{addr, key})
	if err != nil {
		return nil, err
	}
	return raw.(rlp.RawValue), nil
}

// SetRawStorage sets the raw storage value for the given (addr, key).
// An empty value deletes the entry on commit.
func (s *State) SetRawStorage(addr savanna.Address, key savanna.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// EncodeStorage sets the storage value encoded by the given enc function.
func (s *State) EncodeStorage(addr savanna.Address, key savanna.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return &Error{err}
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage decodes the storage value through the given dec function.
func (s *State) DecodeStorage(addr savanna.Address, key savanna.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return err
	}
	if err := dec(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// GetStructuredStorage loads the storage value into val.
func (s *State) GetStructuredStorage(addr savanna.Address, key savanna.Bytes32, val StorageDecoder) error {
	return s.DecodeStorage(addr, key, val.Decode)
}

// SetStructuredStorage stores the encoded form of val.
func (s *State) SetStructuredStorage(addr savanna.Address, key savanna.Bytes32, val StorageEncoder) error {
	return s.EncodeStorage(addr, key, val.Encode)
}

// NewCheckpoint makes a checkpoint of the current state.
// It returns the checkpoint to be passed to RevertTo.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo reverts the state to the given checkpoint.
//
// Note that the checkpoint and all those made after it become invalid.
func (s *State) RevertTo(checkpoint int) {
	s.sm.PopTo(checkpoint)
}

// Stage collects all uncommitted changes for writing to the kv store.
func (s *State) Stage() *Stage {
	changes := make(map[savanna.Bytes32]rlp.RawValue)
	s.sm.Journal(func(key, value interface{}) bool {
		if k, ok := key.(storageKey); ok {
			changes[hashKey(k)] = value.(rlp.RawValue)
		}
		return true
	})
	return &Stage{kv: s.kv, cache: s.cache, changes: changes}
}
