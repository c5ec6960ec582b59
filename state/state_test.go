// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savannaswap/savanna/lvldb"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

func newTestState(t *testing.T) *state.State {
	store, err := lvldb.NewMem()
	if err != nil {
		t.Fatal(err)
	}
	return state.New(store)
}

var (
	testAddr = savanna.BytesToAddress([]byte("addr"))
	testKey  = savanna.BytesToBytes32([]byte("key"))
)

func TestStorage(t *testing.T) {
	assert := assert.New(t)
	st := newTestState(t)

	v, err := st.GetStorageBigInt(testAddr, testKey)
	assert.Nil(err)
	assert.Equal(0, v.Sign())

	assert.Nil(st.SetStorageBigInt(testAddr, testKey, big.NewInt(12345)))
	v, err = st.GetStorageBigInt(testAddr, testKey)
	assert.Nil(err)
	assert.Equal(big.NewInt(12345), v)

	assert.Nil(st.SetStorageUint64(testAddr, testKey, 42))
	u, err := st.GetStorageUint64(testAddr, testKey)
	assert.Nil(err)
	assert.Equal(uint64(42), u)

	assert.Nil(st.SetStorageBool(testAddr, testKey, true))
	b, err := st.GetStorageBool(testAddr, testKey)
	assert.Nil(err)
	assert.True(b)

	other := savanna.BytesToAddress([]byte("other"))
	assert.Nil(st.SetStorageAddress(testAddr, testKey, other))
	a, err := st.GetStorageAddress(testAddr, testKey)
	assert.Nil(err)
	assert.Equal(other, a)
}

func TestCheckpointRevert(t *testing.T) {
	assert := assert.New(t)
	st := newTestState(t)

	assert.Nil(st.SetStorageUint64(testAddr, testKey, 1))

	cp := st.NewCheckpoint()
	assert.Nil(st.SetStorageUint64(testAddr, testKey, 2))
	assert.Nil(st.SetStorageUint64(testAddr, testKey, 3))
	st.RevertTo(cp)

	v, err := st.GetStorageUint64(testAddr, testKey)
	assert.Nil(err)
	assert.Equal(uint64(1), v)
}

func TestStageCommit(t *testing.T) {
	assert := assert.New(t)
	store, err := lvldb.NewMem()
	assert.Nil(err)

	st := state.New(store)
	assert.Nil(st.SetStorageBigInt(testAddr, testKey, big.NewInt(7)))
	assert.Nil(st.Stage().Commit())

	// a fresh state over the same store sees the committed value
	st2 := state.New(store)
	v, err := st2.GetStorageBigInt(testAddr, testKey)
	assert.Nil(err)
	assert.Equal(big.NewInt(7), v)

	// zero value deletes the slot on commit
	assert.Nil(st2.SetStorageBigInt(testAddr, testKey, &big.Int{}))
	assert.Nil(st2.Stage().Commit())

	st3 := state.New(store)
	v, err = st3.GetStorageBigInt(testAddr, testKey)
	assert.Nil(err)
	assert.Equal(0, v.Sign())
}

func TestRevertedWritesNotStaged(t *testing.T) {
	assert := assert.New(t)
	store, err := lvldb.NewMem()
	assert.Nil(err)

	st := state.New(store)
	cp := st.NewCheckpoint()
	assert.Nil(st.SetStorageUint64(testAddr, testKey, 9))
	st.RevertTo(cp)
	assert.Nil(st.Stage().Commit())

	st2 := state.New(store)
	v, err := st2.GetStorageUint64(testAddr, testKey)
	assert.Nil(err)
	assert.Equal(uint64(0), v)
}
