package service

import (
	"context"
	"sync"
	"time"

	"healthhub-directory/internal/domain/entity"
	"healthhub-directory/internal/domain/repository"
	"healthhub-directory/internal/infrastructure/feed"
	"healthhub-directory/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// LoadStatus is where the one-shot directory fetch stands.
type LoadStatus string

const (
	StatusLoading LoadStatus = "loading"
	StatusReady   LoadStatus = "ready"
	StatusFailed  LoadStatus = "failed"
)

// LoadResult is the outcome of the directory fetch. Err is set on failure, in which
// case Doctors and Specialties are empty.
type LoadResult struct {
	Doctors     []entity.Doctor
	Specialties []string
	Err         error
}

// DirectoryLoader fetches the doctor feed exactly once and publishes it to the
// doctor repository. A failed fetch is logged and leaves the directory empty.
type DirectoryLoader struct {
	client     feed.Client
	doctorRepo repository.DoctorRepository
	log        *logrus.Logger

	once   sync.Once
	done   chan struct{}
	mu     sync.RWMutex
	status LoadStatus
	result LoadResult
}

func NewDirectoryLoader(client feed.Client, doctorRepo repository.DoctorRepository, log *logrus.Logger) *DirectoryLoader {
	return &DirectoryLoader{
		client:     client,
		doctorRepo: doctorRepo,
		log:        log,
		done:       make(chan struct{}),
		status:     StatusLoading,
	}
}

// Load performs the fetch on its first call and returns the stored result on every
// later call. Concurrent callers wait for the first one.
func (l *DirectoryLoader) Load(ctx context.Context) LoadResult {
	l.once.Do(func() {
		defer close(l.done)
		l.finish(l.fetch(ctx))
	})
	<-l.done
	return l.Result()
}

func (l *DirectoryLoader) fetch(ctx context.Context) LoadResult {
	start := time.Now()
	doctors, err := l.client.FetchDoctors(ctx)
	metrics.FeedFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FeedFetches.WithLabelValues("failure").Inc()
		l.log.WithError(err).Error("Error fetching doctors")
		return LoadResult{Err: err}
	}

	if err := l.doctorRepo.ReplaceAll(ctx, doctors); err != nil {
		metrics.FeedFetches.WithLabelValues("failure").Inc()
		l.log.WithError(err).Error("Failed to store doctor directory")
		return LoadResult{Err: err}
	}

	specialties, err := l.doctorRepo.Specialties(ctx)
	if err != nil {
		l.log.WithError(err).Warn("Failed to read specialties")
	}

	metrics.FeedFetches.WithLabelValues("success").Inc()
	metrics.FeedDoctors.Set(float64(len(doctors)))
	l.log.WithFields(logrus.Fields{
		"doctors":     len(doctors),
		"specialties": len(specialties),
		"duration":    time.Since(start).String(),
	}).Info("Doctor directory loaded")

	return LoadResult{Doctors: doctors, Specialties: specialties}
}

func (l *DirectoryLoader) finish(result LoadResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.result = result
	if result.Err != nil {
		l.status = StatusFailed
	} else {
		l.status = StatusReady
	}
}

func (l *DirectoryLoader) Status() LoadStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

// Loading is true until the fetch resolves either way.
func (l *DirectoryLoader) Loading() bool {
	return l.Status() == StatusLoading
}

func (l *DirectoryLoader) Result() LoadResult {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.result
}

// Done is closed once the fetch has resolved.
func (l *DirectoryLoader) Done() <-chan struct{} {
	return l.done
}
