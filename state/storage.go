// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/savannaswap/savanna/savanna"
)

// StorageEncoder implement it to customize encoding process for storage data.
type StorageEncoder interface {
	Encode() ([]byte, error)
}

// StorageDecoder implement it to customize decoding process for storage data.
type StorageDecoder interface {
	Decode([]byte) error
}

type stgBigInt big.Int

var (
	_ StorageEncoder = (*stgBigInt)(nil)
	_ StorageDecoder = (*stgBigInt)(nil)
)

func (v *stgBigInt) Encode() ([]byte, error) {
	if (*big.Int)(v).Sign() == 0 {
		return nil, nil
	}
	return rlp.EncodeToBytes((*big.Int)(v))
}

func (v *stgBigInt) Decode(data []byte) error {
	if len(data) == 0 {
		*v = stgBigInt(big.Int{})
		return nil
	}
	return rlp.DecodeBytes(data, (*big.Int)(v))
}

type stgUint64 uint64

func (v *stgUint64) Encode() ([]byte, error) {
	if *v == 0 {
		return nil, nil
	}
	return rlp.EncodeToBytes((*uint64)(v))
}

func (v *stgUint64) Decode(data []byte) error {
	if len(data) == 0 {
		*v = 0
		return nil
	}
	return rlp.DecodeBytes(data, (*uint64)(v))
}

type stgBool bool

func (v *stgBool) Encode() ([]byte, error) {
	if !*v {
		return nil, nil
	}
	return rlp.EncodeToBytes((*bool)(v))
}

func (v *stgBool) Decode(data []byte) error {
	if len(data) == 0 {
		*v = false
		return nil
	}
	return rlp.DecodeBytes(data, (*bool)(v))
}

type stgAddress savanna.Address

func (v *stgAddress) Encode() ([]byte, error) {
	if savanna.Address(*v).IsZero() {
		return nil, nil
	}
	return rlp.EncodeToBytes(bytes.TrimLeft(v[:], "\x00"))
}

func (v *stgAddress) Decode(data []byte) error {
	if len(data) == 0 {
		*v = stgAddress{}
		return nil
	}
	_, content, _, err := rlp.Split(data)
	if err != nil {
		return err
	}
	*v = stgAddress(savanna.BytesToAddress(content))
	return nil
}

// GetStorageBigInt loads a big.Int storage value, zero if unset.
func (s *State) GetStorageBigInt(addr savanna.Address, key savanna.Bytes32) (*big.Int, error) {
	var v stgBigInt
	if err := s.GetStructuredStorage(addr, key, &v); err != nil {
		return nil, err
	}
	return (*big.Int)(&v), nil
}

// SetStorageBigInt stores a big.Int storage value, deleting the slot on zero.
func (s *State) SetStorageBigInt(addr savanna.Address, key savanna.Bytes32, v *big.Int) error {
	return s.SetStructuredStorage(addr, key, (*stgBigInt)(v))
}

// GetStorageUint64 loads a uint64 storage value, zero if unset.
func (s *State) GetStorageUint64(addr savanna.Address, key savanna.Bytes32) (uint64, error) {
	var v stgUint64
	if err := s.GetStructuredStorage(addr, key, &v); err != nil {
		return 0, err
	}
	return uint64(v), nil
}

// SetStorageUint64 stores a uint64 storage value.
func (s *State) SetStorageUint64(addr savanna.Address, key savanna.Bytes32, v uint64) error {
	return s.SetStructuredStorage(addr, key, (*stgUint64)(&v))
}

// GetStorageBool loads a bool storage value, false if unset.
func (s *State) GetStorageBool(addr savanna.Address, key savanna.Bytes32) (bool, error) {
	var v stgBool
	if err := s.GetStructuredStorage(addr, key, &v); err != nil {
		return false, err
	}
	return bool(v), nil
}

// SetStorageBool stores a bool storage value.
func (s *State) SetStorageBool(addr savanna.Address, key savanna.Bytes32, v bool) error {
	return s.SetStructuredStorage(addr, key, (*stgBool)(&v))
}

// GetStorageAddress loads an address storage value, zero if unset.
func (s *State) GetStorageAddress(addr savanna.Address, key savanna.Bytes32) (savanna.Address, error) {
	var v stgAddress
	if err := s.GetStructuredStorage(addr, key, &v); err != nil {
		return savanna.Address{}, err
	}
	return savanna.Address(v), nil
}

// SetStorageAddress stores an address storage value.
func (s *State) SetStorageAddress(addr savanna.Address, key savanna.Bytes32, v savanna.Address) error {
	return s.SetStructuredStorage(addr, key, (*stgAddress)(&v))
}
