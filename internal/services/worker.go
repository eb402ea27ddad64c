package services

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

// IndexJob asks the worker to index a résumé's text, or to drop its points
// when Remove is set.
type IndexJob struct {
	ResumeID string
	Text     string
	Remove   bool
}

type Worker interface {
	Start(ctx context.Context)
	Stop()
	// Enqueue never blocks; it reports false when the job was dropped.
	Enqueue(job IndexJob) bool
}

// worker gives every goroutine its own queue and routes jobs by résumé id,
// so jobs for one résumé run one at a time in enqueue order.
type worker struct {
	indexer     ResumeIndexer
	jobQueues   []chan IndexJob
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

const jobQueueSize = 100

func NewWorker(indexer ResumeIndexer, concurrency int) Worker {
	if concurrency <= 0 {
		concurrency = 1
	}

	queues := make([]chan IndexJob, concurrency)
	for i := range queues {
		queues[i] = make(chan IndexJob, jobQueueSize)
	}

	return &worker{
		indexer:     indexer,
		jobQueues:   queues,
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

func (w *worker) queueFor(resumeID string) chan IndexJob {
	h := fnv.New32a()
	_, _ = h.Write([]byte(resumeID))
	return w.jobQueues[h.Sum32()%uint32(len(w.jobQueues))]
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Infof("🚀 Starting index worker with %d concurrent workers", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1, w.jobQueues[i])
	}
}

// Stop implements Worker. Queued jobs that have not started are discarded.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		log.Info("🛑 Stopping index worker...")
		close(w.stopChan)
		w.wg.Wait()
		log.Info("✅ Index worker stopped")
	})
}

// Enqueue implements Worker.
func (w *worker) Enqueue(job IndexJob) bool {
	select {
	case <-w.stopChan:
		log.Warnf("⚠️ Index worker stopped, dropping job for %s", job.ResumeID)
		return false
	default:
	}

	select {
	case w.queueFor(job.ResumeID) <- job:
		return true
	default:
		log.Warnf("⚠️ Index queue full, dropping job for %s", job.ResumeID)
		return false
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int, jobs <-chan IndexJob) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case job := <-jobs:
			w.handle(ctx, workerID, job)
		}
	}
}

func (w *worker) handle(ctx context.Context, workerID int, job IndexJob) {
	if job.Remove {
		if err := w.indexer.Remove(ctx, job.ResumeID); err != nil {
			log.Errorf("❌ Worker #%d failed to remove %s from index: %v", workerID, job.ResumeID, err)
			return
		}
		log.Infof("✅ Worker #%d removed %s from index", workerID, job.ResumeID)
		return
	}

	count, err := w.indexer.Index(ctx, job.ResumeID, job.Text)
	if err != nil {
		log.Errorf("❌ Worker #%d failed to index %s: %v", workerID, job.ResumeID, err)
		return
	}
	log.Infof("✅ Worker #%d indexed %s (%d chunks)", workerID, job.ResumeID, count)
}
