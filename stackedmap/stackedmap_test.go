// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savannaswap/savanna/stackedmap"
)

func TestStackedMap(t *testing.T) {
	assert := assert.New(t)

	src := map[string]string{"base": "b"}
	sm := stackedmap.New(func(key interface{}) (interface{}, bool, error) {
		v, ok := src[key.(string)]
		return v, ok, nil
	})
	sm.Push()

	v, ok, err := sm.Get("base")
	assert.Nil(err)
	assert.True(ok)
	assert.Equal("b", v)

	_, ok, err = sm.Get("missing")
	assert.Nil(err)
	assert.False(ok)

	sm.Put("k", "v0")
	v, ok, _ = sm.Get("k")
	assert.True(ok)
	assert.Equal("v0", v)

	depth := sm.Push()
	sm.Put("k", "v1")
	v, _, _ = sm.Get("k")
	assert.Equal("v1", v)

	sm.Pop()
	v, _, _ = sm.Get("k")
	assert.Equal("v0", v)
	assert.Equal(depth, sm.Depth())

	d1 := sm.Push()
	sm.Put("k", "v1")
	sm.Push()
	sm.Put("k", "v2")
	sm.PopTo(d1)
	v, _, _ = sm.Get("k")
	assert.Equal("v0", v)
}

func TestStackedMapRepeatedPut(t *testing.T) {
	assert := assert.New(t)

	sm := stackedmap.New(func(key interface{}) (interface{}, bool, error) {
		return nil, false, nil
	})
	sm.Push()
	sm.Put("k", "v0")

	depth := sm.Push()
	sm.Put("k", "v1")
	sm.Put("k", "v2")
	sm.PopTo(depth)

	v, ok, _ := sm.Get("k")
	assert.True(ok)
	assert.Equal("v0", v)
}

func TestStackedMapJournal(t *testing.T) {
	assert := assert.New(t)

	sm := stackedmap.New(func(key interface{}) (interface{}, bool, error) {
		return nil, false, nil
	})
	sm.Push()

	sm.Put("a", 1)
	sm.Push()
	sm.Put("b", 2)
	sm.Put("a", 3)

	collected := make(map[string]int)
	sm.Journal(func(key, value interface{}) bool {
		collected[key.(string)] = value.(int)
		return true
	})
	assert.Equal(map[string]int{"a": 3, "b": 2}, collected)

	n := 0
	sm.Journal(func(key, value interface{}) bool {
		n++
		return false
	})
	assert.Equal(1, n)
}
