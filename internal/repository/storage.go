package repository

import (
	"context"
	"errors"
	"sync"

	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Source tells callers which store actually served a repository call.
type Source int

const (
	// SourceFallback means the local JSON store answered.
	SourceFallback Source = iota
	// SourceRemote means the database answered.
	SourceRemote
	// SourceSession means the in-session cache answered without touching
	// either store.
	SourceSession
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceSession:
		return "session"
	default:
		return "fallback"
	}
}

// Prober checks once whether the remote database is reachable.
type Prober interface {
	Probe(ctx context.Context) error
}

var errNoDatabase = errors.New("no database configured")

// DatabaseProber probes connectivity with a minimal count over the questions
// table, the cheapest query the schema guarantees to exist.
type DatabaseProber struct {
	DB *gorm.DB
}

func (p *DatabaseProber) Probe(ctx context.Context) error {
	if p.DB == nil {
		return errNoDatabase
	}
	var n int64
	return p.DB.WithContext(ctx).Model(&model.Question{}).Limit(1).Count(&n).Error
}

// Selector resolves the storage mode exactly once per process. A failed probe
// routes the whole run to the fallback store; there is no re-probe. The
// selector is built explicitly and injected into every repository, so tests
// can force either path.
type Selector struct {
	prober Prober
	once   sync.Once
	remote bool
}

func NewSelector(prober Prober) *Selector {
	return &Selector{prober: prober}
}

// UseRemote reports whether repository calls should try the database first.
func (s *Selector) UseRemote(ctx context.Context) bool {
	s.once.Do(func() {
		err := s.prober.Probe(ctx)
		s.remote = err == nil
		if err != nil {
			logger.Log.Warn("remote storage unavailable, using local fallback", zap.Error(err))
		} else {
			logger.Log.Info("remote storage reachable, using database")
		}
	})
	return s.remote
}
