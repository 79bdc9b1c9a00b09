package core

import (
	"log"
	"os/exec"
	"strings"
	"sync"
)

// Job is one detached child process, tracked from launch until the reaper
// collects its exit.
type Job struct {
	ID      int
	PID     int
	Command string
}

// Tracker owns the set of live background jobs. Each job is waited on by a
// dedicated goroutine that reports completion on a channel; Reap drains the
// channel without ever blocking the prompt loop.
type Tracker struct {
	mu     sync.Mutex
	nextID int
	live   map[int]*Job
	done   chan *Job
	log    *log.Logger
}

func NewTracker(logger *log.Logger) *Tracker {
	return &Tracker{
		nextID: 1,
		live:   make(map[int]*Job),
		done:   make(chan *Job),
		log:    logger,
	}
}

// Add registers a started command as a background job and begins waiting for
// its exit. The returned job's ID and PID are stable for its lifetime.
func (t *Tracker) Add(cmd *exec.Cmd, argv []string) *Job {
	t.mu.Lock()
	job := &Job{
		ID:      t.nextID,
		PID:     cmd.Process.Pid,
		Command: strings.Join(argv, " "),
	}
	t.nextID++
	t.live[job.ID] = job
	t.mu.Unlock()

	go func() {
		// Exit statuses of background jobs are discarded; waiting only
		// releases the process-table entry.
		_ = cmd.Wait()
		t.done <- job
	}()

	t.log.Printf("job %d started: pid=%d command=%q", job.ID, job.PID, job.Command)
	return job
}

// Reap collects any jobs that have finished since the last call. It never
// blocks: with nothing outstanding it returns immediately.
func (t *Tracker) Reap() []*Job {
	var reaped []*Job
	for {
		select {
		case job := <-t.done:
			t.mu.Lock()
			delete(t.live, job.ID)
			t.mu.Unlock()
			t.log.Printf("job %d reaped: pid=%d", job.ID, job.PID)
			reaped = append(reaped, job)
		default:
			return reaped
		}
	}
}

// Live reports the number of jobs not yet reaped.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}
