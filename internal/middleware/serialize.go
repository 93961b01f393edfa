package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// PerSenderLock serializes update processing per sender, so two dialog steps
// from the same user never race on shared scratch state. Different senders
// proceed concurrently.
func PerSenderLock() tele.MiddlewareFunc {
	var (
		mux   sync.Mutex
		locks = make(map[int64]*sync.Mutex)
	)

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			mux.Lock()
			lock, exists := locks[sender.ID]
			if !exists {
				lock = &sync.Mutex{}
				locks[sender.ID] = lock
			}
			mux.Unlock()

			lock.Lock()
			defer lock.Unlock()
			return next(c)
		}
	}
}
