// Copyright (c) 2021 The Savanna developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solo

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/savannaswap/savanna/co"
	"github.com/savannaswap/savanna/genesis"
	"github.com/savannaswap/savanna/kv"
	"github.com/savannaswap/savanna/runtime"
	"github.com/savannaswap/savanna/savanna"
	"github.com/savannaswap/savanna/state"
)

var (
	logger  = log.New("pkg", "solo")
	headKey = []byte("head-block")
)

// Options solo options.
type Options struct {
	// OnDemand disables the block clock. Blocks then only advance via
	// explicit AdvanceBlocks calls, which is what the tests want.
	OnDemand bool
	// BlockInterval overrides the default block interval, in seconds.
	BlockInterval uint64
}

// Solo is the standalone host. It owns the store and serializes every
// call and block tick, so callers never observe partial effects. Each
// execution runs on a fresh state over the committed store, the way a
// block packer would.
type Solo struct {
	mu      sync.Mutex
	store   kv.GetPutter
	head    runtime.BlockContext
	options Options
}

type headBlock struct {
	Number uint32
	Time   uint64
}

// New opens a solo host over the given store. A fresh store gets the
// genesis state built and committed; otherwise the persisted head block
// is restored and the clock continues from there.
func New(store kv.GetPutter, gene *genesis.Genesis, options Options) (*Solo, error) {
	if options.BlockInterval == 0 {
		options.BlockInterval = savanna.BlockInterval
	}

	head, err := loadHead(store)
	if err != nil {
		return nil, err
	}
	if head == nil {
		st := state.New(store)
		if err := gene.Build(st); err != nil {
			return nil, errors.Wrap(err, "build genesis")
		}
		if err := st.Stage().Commit(); err != nil {
			return nil, errors.Wrap(err, "commit genesis")
		}
		head = &headBlock{Number: 0, Time: uint64(time.Now().Unix())}
		if err := saveHead(store, head); err != nil {
			return nil, err
		}
		logger.Info("genesis built", "name", gene.Name())
	} else {
		logger.Info("head block restored", "number", head.Number, "time", head.Time)
	}

	return &Solo{
		store:   store,
		head:    runtime.BlockContext{Number: head.Number, Time: head.Time},
		options: options,
	}, nil
}

func loadHead(store kv.GetPutter) (*headBlock, error) {
	data, err := store.Get(headKey)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "load head block")
	}
	var head headBlock
	if err := rlp.DecodeBytes(data, &head); err != nil {
		return nil, errors.Wrap(err, "decode head block")
	}
	return &head, nil
}

func saveHead(store kv.GetPutter, head *headBlock) error {
	data, err := rlp.EncodeToBytes(head)
	if err != nil {
		return errors.Wrap(err, "encode head block")
	}
	return errors.Wrap(store.Put(headKey, data), "save head block")
}

// HeadBlock returns the current block context.
func (s *Solo) HeadBlock() runtime.BlockContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.head
}

// Execute runs fn as caller against a fresh state and commits its
// effects. A failed call commits nothing.
func (s *Solo) Execute(caller savanna.Address, fn func(env *runtime.Environment) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := state.New(s.store)
	if err := runtime.New(st, s.head).Call(caller, fn); err != nil {
		return err
	}
	return st.Stage().Commit()
}

// Inspect runs fn against the committed state without committing
// anything, for read paths.
func (s *Solo) Inspect(fn func(env *runtime.Environment) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := state.New(s.store)
	return runtime.New(st, s.head).Call(savanna.Address{}, fn)
}

// AdvanceBlocks moves the block clock forward by n blocks and persists
// the new head.
func (s *Solo) AdvanceBlocks(n uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advanceLocked(n)
}

func (s *Solo) advanceLocked(n uint32) error {
	s.head.Number += n
	s.head.Time += uint64(n) * s.options.BlockInterval
	return saveHead(s.store, &headBlock{Number: s.head.Number, Time: s.head.Time})
}

// Run drives the block clock until ctx is done. With OnDemand set it
// returns immediately after ctx is done without ticking.
func (s *Solo) Run(ctx context.Context) error {
	goes := &co.Goes{}
	defer func() {
		<-ctx.Done()
		goes.Wait()
	}()

	if s.options.OnDemand {
		logger.Info("on-demand mode, block clock disabled")
		return nil
	}

	logger.Info("block clock started", "interval", s.options.BlockInterval)
	goes.Go(func() {
		s.loop(ctx)
	})
	return nil
}

func (s *Solo) loop(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(s.options.BlockInterval) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping block clock......")
			return
		case <-ticker.C:
			s.mu.Lock()
			err := s.advanceLocked(1)
			head := s.head
			s.mu.Unlock()
			if err != nil {
				logger.Error("failed to persist head block", "err", err)
			} else {
				logger.Debug("new block", "number", head.Number, "time", head.Time)
			}
		}
	}
}
