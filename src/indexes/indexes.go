// Package indexes maintains the secondary lookup indexes of one collection.
// Every index maps an encoded field value to the set of document ids holding
// that value; unique indexes admit at most one id per value. The owning
// store engine calls into the set under its collection lock, so the set does
// no locking of its own.
package indexes

import (
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Def declares one secondary index.
type Def struct {
	Name   string
	Field  string
	Unique bool
}

// UniqueError reports that a unique index already holds the value for a
// different document.
type UniqueError struct {
	Kind  string
	Index string
	Value interface{}
}

func (e *UniqueError) Error() string {
	return fmt.Sprintf("%s: value %v already exists for unique index %q", e.Kind, e.Value, e.Index)
}

// Set holds every secondary index of one collection.
type Set struct {
	kind    string
	defs    []Def
	entries map[string]map[string]map[string]struct{}
	logger  *zap.SugaredLogger
}

func NewSet(kind string, defs []Def, logger *zap.SugaredLogger) *Set {
	s := &Set{
		kind:    kind,
		defs:    defs,
		entries: make(map[string]map[string]map[string]struct{}, len(defs)),
		logger:  logger,
	}
	for _, def := range defs {
		s.entries[def.Name] = make(map[string]map[string]struct{})
	}
	return s
}

func (s *Set) Defs() []Def { return s.defs }

// Rebuild repopulates every index from a full document set, as done when a
// collection file is loaded from disk.
func (s *Set) Rebuild(docs map[string]bson.M) error {
	for _, def := range s.defs {
		s.entries[def.Name] = make(map[string]map[string]struct{})
	}
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := s.Check(id, docs[id]); err != nil {
			return fmt.Errorf("index rebuild for %s: %w", s.kind, err)
		}
		s.Add(id, docs[id])
	}
	return nil
}

// Check reports the first uniqueness violation the document would cause,
// without mutating any index. The engine calls it before making any write
// visible.
func (s *Set) Check(id string, doc bson.M) error {
	for _, def := range s.defs {
		if !def.Unique {
			continue
		}
		key, ok := encodeKey(doc[def.Field])
		if !ok {
			continue
		}
		for holder := range s.entries[def.Name][key] {
			if holder != id {
				return &UniqueError{Kind: s.kind, Index: def.Name, Value: doc[def.Field]}
			}
		}
	}
	return nil
}

// Add inserts the document's indexed field values into every index.
func (s *Set) Add(id string, doc bson.M) {
	for _, def := range s.defs {
		key, ok := encodeKey(doc[def.Field])
		if !ok {
			continue
		}
		bucket := s.entries[def.Name][key]
		if bucket == nil {
			bucket = make(map[string]struct{})
			s.entries[def.Name][key] = bucket
		}
		bucket[id] = struct{}{}
	}
}

// Remove deletes all of the document's entries from every index.
func (s *Set) Remove(id string, doc bson.M) {
	for _, def := range s.defs {
		key, ok := encodeKey(doc[def.Field])
		if !ok {
			continue
		}
		bucket := s.entries[def.Name][key]
		delete(bucket, id)
		if len(bucket) == 0 {
			delete(s.entries[def.Name], key)
		}
	}
}

// Replace moves the document's entries from its old field values to its new
// ones. Uniqueness of the new values must have been checked first.
func (s *Set) Replace(id string, oldDoc, newDoc bson.M) {
	s.Remove(id, oldDoc)
	s.Add(id, newDoc)
}

// Lookup returns the ids of every document whose indexed field equals the
// given value, in stable order.
func (s *Set) Lookup(indexName string, value interface{}) ([]string, error) {
	bucketsByKey, ok := s.entries[indexName]
	if !ok {
		return nil, fmt.Errorf("%s: no index named %q", s.kind, indexName)
	}
	key, ok := encodeKey(value)
	if !ok {
		return nil, nil
	}
	bucket := bucketsByKey[key]
	ids := make([]string, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
