package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotel-data-generator/models"
)

// DatasetStore keeps generated datasets in memory, keyed by UUID, so
// the browser can come back for CSV and ZIP downloads after the
// generate call. When the store is full the oldest dataset is evicted.
// Nothing survives a restart.
type DatasetStore struct {
	mu       sync.Mutex
	capacity int
	datasets map[string]*models.Dataset
	order    []string // insertion order, oldest first
}

// NewDatasetStore creates a store holding at most capacity datasets.
func NewDatasetStore(capacity int) *DatasetStore {
	if capacity < 1 {
		capacity = 1
	}
	return &DatasetStore{
		capacity: capacity,
		datasets: make(map[string]*models.Dataset, capacity),
	}
}

// Put assigns the dataset a fresh ID and stores it, evicting the
// oldest entry when at capacity. The assigned ID is returned.
func (s *DatasetStore) Put(ds *models.Dataset) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds.ID = uuid.NewString()
	ds.CreatedAt = time.Now()

	for len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.datasets, oldest)
	}

	s.datasets[ds.ID] = ds
	s.order = append(s.order, ds.ID)

	return ds.ID
}

// Get returns the dataset for an ID.
func (s *DatasetStore) Get(id string) (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, ok := s.datasets[id]
	if !ok {
		return nil, fmt.Errorf("store: dataset %q not found", id)
	}
	return ds, nil
}

// Len reports how many datasets are currently held.
func (s *DatasetStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.datasets)
}
