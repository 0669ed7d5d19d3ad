package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/SillyCatLover68/NourishNine-Web-App/logger"
)

// GatewayClient mirrors state to the remote sync gateway. Implementations
// are expected to be safe for use from the outbox's drain goroutine.
type GatewayClient interface {
	MirrorEntry(entry FoodLogEntry) error
	UpsertProfile(p UserProfile) error
	DeleteProfile() error
}

type mirrorOp struct {
	id   string
	kind string
	run  func() error
}

// Outbox queues remote mirror writes and performs each one at most once.
// That is the contract, not an accident: a failed or overflowed operation is
// logged and dropped, never retried, and local state is never rolled back.
type Outbox struct {
	client GatewayClient
	log    *logger.Logger
	ops    chan mirrorOp
	done   chan struct{}
	once   sync.Once
}

// NewOutbox starts the drain goroutine. buffer bounds the queue; operations
// enqueued while it is full are dropped.
func NewOutbox(client GatewayClient, log *logger.Logger, buffer int) *Outbox {
	if buffer <= 0 {
		buffer = 64
	}
	o := &Outbox{
		client: client,
		log:    log,
		ops:    make(chan mirrorOp, buffer),
		done:   make(chan struct{}),
	}
	go o.drain()
	return o
}

func (o *Outbox) drain() {
	defer close(o.done)
	for op := range o.ops {
		if err := op.run(); err != nil {
			o.log.Warn("mirror write dropped", "op", op.kind, "id", op.id, "err", err)
		}
	}
}

func (o *Outbox) enqueue(kind string, run func() error) {
	op := mirrorOp{id: uuid.NewString(), kind: kind, run: run}
	select {
	case o.ops <- op:
	default:
		o.log.Warn("outbox full, mirror write dropped", "op", kind, "id", op.id)
	}
}

// EnqueueEntry queues a food log mirror write.
func (o *Outbox) EnqueueEntry(e FoodLogEntry) {
	o.enqueue("foodlog", func() error { return o.client.MirrorEntry(e) })
}

// EnqueueProfile queues a profile upsert.
func (o *Outbox) EnqueueProfile(p UserProfile) {
	o.enqueue("profile", func() error { return o.client.UpsertProfile(p) })
}

// EnqueueProfileDelete queues a profile delete.
func (o *Outbox) EnqueueProfileDelete() {
	o.enqueue("profileDelete", func() error { return o.client.DeleteProfile() })
}

// Close stops accepting operations, drains what is already queued, and
// waits for the drainer to exit.
func (o *Outbox) Close() {
	o.once.Do(func() { close(o.ops) })
	<-o.done
}
