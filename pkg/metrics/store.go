package metrics

import (
	"time"

	"github.com/shashiranjanraj/storefront/pkg/recordstore"
)

type instrumentedStore struct {
	next recordstore.Store
}

// InstrumentStore wraps s so every call is counted and timed.
func InstrumentStore(s recordstore.Store) recordstore.Store {
	return &instrumentedStore{next: s}
}

func (s *instrumentedStore) Get(key string) (string, bool, error) {
	start := time.Now()
	v, ok, err := s.next.Get(key)
	result := "hit"
	switch {
	case err != nil:
		result = "error"
	case !ok:
		result = "miss"
	}
	observe("get", key, result, start)
	return v, ok, err
}

func (s *instrumentedStore) Put(key, value string) error {
	start := time.Now()
	err := s.next.Put(key, value)
	observe("put", key, outcome(err), start)
	return err
}

func (s *instrumentedStore) Delete(key string) error {
	start := time.Now()
	err := s.next.Delete(key)
	observe("delete", key, outcome(err), start)
	return err
}

func (s *instrumentedStore) Close() error { return s.next.Close() }

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func observe(op, key, result string, start time.Time) {
	RecordOps.WithLabelValues(op, key, result).Inc()
	RecordOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
