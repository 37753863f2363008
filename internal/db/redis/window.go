package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/reelscout/internal/db"
	"github.com/kailas-cloud/reelscout/internal/rategate"
)

var _ rategate.WindowStore = (*Window)(nil)

// DefaultWindowKey is the sorted set holding dispatch timestamps.
const DefaultWindowKey = "reelscout:rategate:provider"

// reserveScript runs the sliding-window decision atomically.
// KEYS[1] zset of dispatch timestamps (score = unix ms).
// ARGV: now ms, capacity, window ms, member.
// Returns 0 when the dispatch was recorded, otherwise the wait in ms.
const reserveScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local window = tonumber(ARGV[3])
local n = redis.call('ZCARD', key)
if n >= capacity then
  local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
  local age = now - tonumber(oldest[2])
  if age < window then
    return window - age
  end
  redis.call('ZPOPMIN', key, n - capacity + 1)
end
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return 0
`

// Window is a rategate.WindowStore shared by every process pointing at the same key.
type Window struct {
	store    *Store
	key      string
	capacity int
	window   time.Duration
}

// NewWindow creates a Redis-backed sliding window. Non-positive values fall back to gate defaults.
func NewWindow(store *Store, key string, capacity int, window time.Duration) *Window {
	if key == "" {
		key = DefaultWindowKey
	}
	if capacity <= 0 {
		capacity = rategate.DefaultCapacity
	}
	if window <= 0 {
		window = rategate.DefaultWindow
	}
	return &Window{store: store, key: key, capacity: capacity, window: window}
}

// Key returns the sorted set name.
func (w *Window) Key() string { return w.key }

// Reserve records now in the shared window or reports how long to wait.
func (w *Window) Reserve(ctx context.Context, now time.Time) (time.Duration, error) {
	cmd := w.store.b().Eval().
		Script(reserveScript).
		Numkeys(1).
		Key(w.key).
		Arg(
			strconv.FormatInt(now.UnixMilli(), 10),
			strconv.Itoa(w.capacity),
			strconv.FormatInt(w.window.Milliseconds(), 10),
			uuid.NewString(),
		).
		Build()

	ms, err := w.store.do(ctx, cmd).AsInt64()
	if err != nil {
		return 0, &db.Error{Op: db.OpEval, Err: err}
	}
	if ms < 0 {
		return 0, &db.Error{Op: db.OpEval, Err: fmt.Errorf("%w: negative wait %d", db.ErrUnexpectedReply, ms)}
	}

	wait := time.Duration(ms) * time.Millisecond
	// Clock skew between processes can push the oldest entry into the future.
	if wait > w.window {
		wait = w.window
	}
	return wait, nil
}
