package escrow

import (
	"errors"
	"sync"
)

// Escrow is the stake custody seam. The engine only ever locks a stake when
// a battle starts and releases it to the winner when the battle settles;
// how the funds are actually held is a collaborator concern.
type Escrow interface {
	// Lock reserves the stake for a battle. Both sides are assumed to have
	// posted the same amount.
	Lock(battleUUID, p1UUID, p2UUID string, amount uint64) error
	// Release pays the full pot to the winner and closes the lock. Calling
	// Release twice for the same battle is a no-op.
	Release(battleUUID, winnerUUID string) error
}

var ErrAlreadyLocked = errors.New("stake already locked for battle")

type lock struct {
	amount   uint64
	released bool
}

// MemoryLedger is the in-process Escrow used by local deployments and
// tests. Balances exist only for inspection.
type MemoryLedger struct {
	mu       sync.Mutex
	locks    map[string]*lock
	balances map[string]uint64
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		locks:    make(map[string]*lock),
		balances: make(map[string]uint64),
	}
}

func (m *MemoryLedger) Lock(battleUUID, p1UUID, p2UUID string, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.locks[battleUUID]; ok {
		return ErrAlreadyLocked
	}
	m.locks[battleUUID] = &lock{amount: amount * 2}
	return nil
}

func (m *MemoryLedger) Release(battleUUID, winnerUUID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[battleUUID]
	if !ok || l.released {
		return nil
	}
	l.released = true
	m.balances[winnerUUID] += l.amount
	return nil
}

// Balance reports the total released winnings credited to a character.
func (m *MemoryLedger) Balance(characterUUID string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[characterUUID]
}
