package models

import (
	"sync"
)

const firstRecordID RecordID = 1

// RecordStore holds the ordered record collection and the next-id counter.
// It trusts its caller: records must be validated before Append.
type RecordStore struct {
	mu      sync.RWMutex
	records []Record
	nextID  RecordID
}

// NewRecordStore creates an empty record store
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make([]Record, 0),
		nextID:  firstRecordID,
	}
}

// Append stores a new record at the end of the collection and returns its id
func (s *RecordStore) Append(name string, lat, lon float64, category Category, amount int) RecordID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.records = append(s.records, Record{
		ID:        id,
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
		Category:  category,
		Amount:    amount,
	})
	s.nextID++

	return id
}

// Clear removes every record and resets the id counter
func (s *RecordStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]Record, 0)
	s.nextID = firstRecordID
}

// All returns a copy of the records in insertion order
func (s *RecordStore) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]Record, len(s.records))
	copy(records, s.records)
	return records
}

// Len returns the number of stored records
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// At returns the record at row i
func (s *RecordStore) At(i int) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i < 0 || i >= len(s.records) {
		return Record{}, false
	}
	return s.records[i], true
}

// NextID returns the id the next Append will assign
func (s *RecordStore) NextID() RecordID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

// Points returns the coordinates of every record in insertion order
func (s *RecordStore) Points() []LatLon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points := make([]LatLon, 0, len(s.records))
	for _, r := range s.records {
		points = append(points, LatLon{Lat: r.Latitude, Lon: r.Longitude})
	}
	return points
}

// Shutdown releases stored records
func (s *RecordStore) Shutdown() {
	s.Clear()
}
