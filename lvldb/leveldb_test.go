// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savannaswap/savanna/kv"
	"github.com/savannaswap/savanna/lvldb"
)

func TestGetPut(t *testing.T) {
	assert := assert.New(t)
	db, err := lvldb.NewMem()
	assert.Nil(err)
	defer db.Close()

	_, err = db.Get([]byte("missing"))
	assert.True(db.IsNotFound(err))

	assert.Nil(db.Put([]byte("key"), []byte("value")))
	v, err := db.Get([]byte("key"))
	assert.Nil(err)
	assert.Equal([]byte("value"), v)

	has, err := db.Has([]byte("key"))
	assert.Nil(err)
	assert.True(has)

	assert.Nil(db.Delete([]byte("key")))
	has, err = db.Has([]byte("key"))
	assert.Nil(err)
	assert.False(has)
}

func TestBatch(t *testing.T) {
	assert := assert.New(t)
	db, err := lvldb.NewMem()
	assert.Nil(err)
	defer db.Close()

	batch := db.NewBatch()
	assert.Nil(batch.Put([]byte("a"), []byte("1")))
	assert.Nil(batch.Put([]byte("b"), []byte("2")))
	assert.Equal(2, batch.Len())

	// nothing lands before Write
	has, _ := db.Has([]byte("a"))
	assert.False(has)

	assert.Nil(batch.Write())
	v, err := db.Get([]byte("b"))
	assert.Nil(err)
	assert.Equal([]byte("2"), v)
}

func TestIterator(t *testing.T) {
	assert := assert.New(t)
	db, err := lvldb.NewMem()
	assert.Nil(err)
	defer db.Close()

	for _, k := range []string{"a1", "a2", "b1"} {
		assert.Nil(db.Put([]byte(k), []byte(k)))
	}

	it := db.NewIterator(kv.Range{From: []byte("a"), To: []byte("b")})
	defer it.Release()

	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	assert.Nil(it.Error())
	assert.Equal([]string{"a1", "a2"}, keys)
}
