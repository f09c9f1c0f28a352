package persist

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Guard flushes on exit triggers until ctx is done or stop is called.
// SIGINT and SIGTERM flush as an unload and then call onUnload, which is
// expected to end the process. SIGHUP flushes as hidden.
func (c *Coordinator) Guard(ctx context.Context, onUnload func()) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigs:
				if sig == syscall.SIGHUP {
					c.Flush(ExitHidden)
					continue
				}
				c.Flush(ExitUnload)
				if onUnload != nil {
					onUnload()
				}
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigs)
			cancel()
		})
	}
}
