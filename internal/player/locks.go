package player

import (
	"encoding/binary"
	"sync"

	"github.com/google/uuid"
)

// stripedLock serialises writers per identity without a lock per player
type stripedLock struct {
	stripes [lockStripes]sync.Mutex
}

func (l *stripedLock) forID(id uuid.UUID) *sync.Mutex {
	return &l.stripes[binary.BigEndian.Uint64(id[8:])%lockStripes]
}
