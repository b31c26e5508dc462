package notification

//go:generate mockgen -source=emitter.go -destination=mock_emitter.go -package=notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"forum/pkg/logger"
	"forum/pkg/metrics"
	"forum/pkg/user"
)

const sendTimeout = 5 * time.Second

type Sink interface {
	Add(context.Context, *Notification) error
}

// Emitter stores notifications in the background. A failed send is logged
// and counted; it never reaches the caller.
type Emitter struct {
	sink    Sink
	timeout time.Duration
	now     func() time.Time

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewEmitter(sink Sink) *Emitter {
	return &Emitter{
		sink:    sink,
		timeout: sendTimeout,
		now:     time.Now,
	}
}

// Send notifies recipientId that actor did t. Acting on your own content
// notifies nobody.
func (e *Emitter) Send(ctx context.Context, recipientId int64, actor *user.User, t Type, content string) {
	if actor == nil || recipientId == 0 || recipientId == actor.Id {
		return
	}

	n := &Notification{
		Id:          uuid.NewString(),
		RecipientId: recipientId,
		ActorId:     actor.Id,
		ActorName:   actor.Username,
		Type:        t,
		Content:     truncate(content, maxContentLen),
		Created:     e.now(),
	}
	log := logger.Log(ctx)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		log.Warnf("notification: emitter closed, dropping %s for user %d", t, recipientId)
		metrics.NotificationsFailed.Inc()
		return
	}
	e.wg.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.wg.Done()
		sendCtx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		if err := e.sink.Add(sendCtx, n); err != nil {
			metrics.NotificationsFailed.Inc()
			log.Errorf("notification: can't store %s for user %d: %v", t, recipientId, err)
			return
		}
		log.Debugw("notification stored", "id", n.Id, "type", t, "recipient", recipientId)
	}()
}

// Close stops accepting notifications and waits for the pending ones.
func (e *Emitter) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.wg.Wait()
}
