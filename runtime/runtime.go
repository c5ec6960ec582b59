// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

// BlockContext block context.
type BlockContext struct {
	Number uint32
	Time   uint64
}

// Environment an env to execute a contract call.
type Environment struct {
	state    *state.State
	blockCtx *BlockContext
	caller   savanna.Address
}

// State returns the world state.
func (env *Environment) State() *state.State { return env.state }

// BlockContext returns the block context.
func (env *Environment) BlockContext() *BlockContext { return env.blockCtx }

// BlockNumber returns the current block number.
func (env *Environment) BlockNumber() uint32 { return env.blockCtx.Number }

// BlockTime returns the current block timestamp.
func (env *Environment) BlockTime() uint64 { return env.blockCtx.Time }

// Caller returns the calling principal.
func (env *Environment) Caller() savanna.Address { return env.caller }

// Runtime executes contract calls atomically against the world state.
//
// The host environment is a single writer: calls are totally ordered, run to
// completion, and either commit all of their sub-effects or none.
type Runtime struct {
	state    *state.State
	blockCtx BlockContext
}

// New creates a runtime over the given state.
func New(st *state.State, blockCtx BlockContext) *Runtime {
	return &Runtime{state: st, blockCtx: blockCtx}
}

// State returns the world state bound to this runtime.
func (rt *Runtime) State() *state.State { return rt.state }

// BlockContext returns the current block context.
func (rt *Runtime) BlockContext() BlockContext { return rt.blockCtx }

// AdvanceBlock moves the block clock forward by n blocks.
func (rt *Runtime) AdvanceBlock(n uint32) {
	rt.blockCtx.Number += n
	rt.blockCtx.Time += uint64(n) * savanna.BlockInterval
}

// Call runs fn under a checkpoint. If fn returns an error the state is
// reverted to the checkpoint and the error returned unchanged, so a failed
// call leaves no partial effects.
func (rt *Runtime) Call(caller savanna.Address, fn func(env *Environment) error) error {
	checkpoint := rt.state.NewCheckpoint()
	env := &Environment{
		state:    rt.state,
		blockCtx: &rt.blockCtx,
		caller:   caller,
	}
	if err := fn(env); err != nil {
		rt.state.RevertTo(checkpoint)
		return err
	}
	return nil
}
