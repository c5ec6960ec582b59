// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/savannaswap/savanna/reverts"
)

func TestKinds(t *testing.T) {
	assert := assert.New(t)

	err := reverts.Unauthorized("nope")
	assert.EqualError(err, "nope")
	assert.True(reverts.IsAuthorization(err))
	assert.False(reverts.IsBounds(err))
	assert.True(reverts.IsRule(err))

	assert.True(reverts.IsBounds(reverts.OutOfBounds("x")))
	assert.True(reverts.IsState(reverts.BadState("x")))
	assert.True(reverts.IsCapacity(reverts.OverCapacity("x")))
}

func TestWrapped(t *testing.T) {
	assert := assert.New(t)

	err := errors.Wrap(reverts.BadState("inner"), "outer")
	assert.True(reverts.IsState(err))
	assert.True(reverts.IsRule(err))

	assert.False(reverts.IsRule(errors.New("plain")))
	assert.False(reverts.IsRule(nil))
}
