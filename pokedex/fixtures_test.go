package pokedex

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Nicolas-rosa/Pokedex/types"
)

var knownNames = map[int]string{
	1:  "bulbasaur",
	4:  "charmander",
	5:  "charmeleon",
	6:  "charizard",
	7:  "squirtle",
	25: "pikachu",
}

var typeCycle = [][]string{
	{"grass", "poison"},
	{"fire"},
	{"water"},
	{"electric"},
	{"normal", "flying"},
}

func fixturePokemon(id int) types.Pokemon {
	name, ok := knownNames[id]
	if !ok {
		name = fmt.Sprintf("mon%03d", id)
	}
	return types.NewPokemon(id, name, id%20+1, id*10, typeCycle[id%len(typeCycle)], "")
}

func fixtureRecords(n int) RecordSet {
	out := make(RecordSet, 0, n)
	for id := 1; id <= n; id++ {
		out = append(out, fixturePokemon(id))
	}
	return out
}

// fakeSource simulates the lookup service with per-id latency and failures.
type fakeSource struct {
	delays   map[int]time.Duration
	failures map[int]error

	mu    sync.Mutex
	calls map[int]int

	inFlight    int32
	maxInFlight int32
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		delays:   map[int]time.Duration{},
		failures: map[int]error{},
		calls:    map[int]int{},
	}
}

func (f *fakeSource) GetPokemon(ctx context.Context, id int) (types.Pokemon, error) {
	cur := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		prev := atomic.LoadInt32(&f.maxInFlight)
		if cur <= prev || atomic.CompareAndSwapInt32(&f.maxInFlight, prev, cur) {
			break
		}
	}

	f.mu.Lock()
	f.calls[id]++
	f.mu.Unlock()

	if d := f.delays[id]; d > 0 {
		time.Sleep(d)
	}
	if err, ok := f.failures[id]; ok {
		return types.Pokemon{}, err
	}
	return fixturePokemon(id), nil
}

func (f *fakeSource) callCount(id int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}
