package journey

import (
	"sync"
	"time"
)

// DefaultTickInterval is one simulated second of real time per tick.
const DefaultTickInterval = time.Second

// Driver ticks a simulator on a wall-clock interval in a background
// goroutine. Stop is idempotent and waits for the loop to exit.
type Driver struct {
	sim      *Simulator
	interval time.Duration

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	stopOnce     sync.Once
}

// NewDriver wraps a simulator with a ticker loop. A non-positive interval
// falls back to DefaultTickInterval.
func NewDriver(sim *Simulator, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Driver{
		sim:          sim,
		interval:     interval,
		shutdownChan: make(chan struct{}),
	}
}

// Start launches the tick loop.
func (d *Driver) Start() {
	d.wg.Add(1)
	go d.run()
}

func (d *Driver) run() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.sim.Tick()
		case <-d.shutdownChan:
			return
		}
	}
}

// Stop halts the tick loop and blocks until it has exited.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.shutdownChan)
		d.wg.Wait()
	})
}
