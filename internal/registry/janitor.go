package registry

import (
	"syscall"
	"time"

	"github.com/teambition/rrule-go"

	"termic/internal/logx"
)

// Janitor periodically sweeps the registry for entries whose pid is no
// longer alive (a session whose termic process crashed without reaching
// its own cleanup) and removes them. The sweep schedule is expressed as
// an rrule rather than a bare ticker so the interval reads the same way
// a cron-like maintenance window would in a larger deployment.
type Janitor struct {
	stop chan struct{}
}

// StartJanitor launches a background sweep every intervalMinutes
// minutes and returns a handle to stop it.
func StartJanitor(intervalMinutes int) *Janitor {
	if intervalMinutes <= 0 {
		intervalMinutes = 10
	}
	j := &Janitor{stop: make(chan struct{})}
	go j.run(intervalMinutes)
	return j
}

func (j *Janitor) run(intervalMinutes int) {
	schedule, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.MINUTELY,
		Interval: intervalMinutes,
		Dtstart:  time.Now(),
	})
	if err != nil {
		logx.Errorf("registry: janitor schedule: %v", err)
		return
	}
	cursor := time.Now()
	for {
		next := schedule.After(cursor, false)
		wait := time.Until(next)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-time.After(wait):
			j.sweep()
			cursor = next
		case <-j.stop:
			return
		}
	}
}

// Stop ends the janitor's background goroutine.
func (j *Janitor) Stop() {
	close(j.stop)
}

func (j *Janitor) sweep() {
	entries, err := List()
	if err != nil {
		logx.Warnf("registry: janitor list: %v", err)
		return
	}
	for _, e := range entries {
		if processAlive(e.Pid) {
			continue
		}
		if err := Remove(e.ID); err != nil {
			logx.Warnf("registry: janitor remove %s: %v", e.ID, err)
			continue
		}
		logx.Debugf("registry: janitor reaped stale entry %s (pid %d)", e.ID, e.Pid)
	}
}

func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	return syscall.Kill(pid, 0) == nil
}
