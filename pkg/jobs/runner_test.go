package jobs

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ariahq/aria/pkg/models"
)

// blockingJob lets the test hold a run open.
type blockingJob struct {
	release chan struct{}
	runs    atomic.Int32
}

func (j *blockingJob) Name() string     { return "blocking" }
func (j *blockingJob) CronSpec() string { return "* * * * *" }

func (j *blockingJob) Run(ctx context.Context) models.RunSummary {
	j.runs.Add(1)
	<-j.release
	return models.RunSummary{Job: j.Name()}
}

func TestRunner_DropsOverlappingTicks(t *testing.T) {
	job := &blockingJob{release: make(chan struct{})}
	r := NewRunner(testLogger())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); r.RunNow(job) }()

	// Let the first run start and block.
	assert.Eventually(t, func() bool { return job.runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	// A second tick while the first is in flight is dropped.
	go func() { defer wg.Done(); r.RunNow(job) }()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), job.runs.Load())

	close(job.release)
	wg.Wait()

	// After the first run finishes, the job is runnable again.
	job.release = make(chan struct{})
	close(job.release)
	r.RunNow(job)
	assert.Equal(t, int32(2), job.runs.Load())
}

func TestRunner_RegisterRejectsBadSpec(t *testing.T) {
	r := NewRunner(testLogger())
	job := &blockingJob{release: make(chan struct{})}

	_, err := r.cron.AddFunc("not a cron spec", func() {})
	assert.Error(t, err)

	assert.NoError(t, r.Register(job))
}
