// Package engine implements the generic transactional document store:
// named collections of map-shaped documents keyed by caller-assigned ids,
// validated against a schema registry, with secondary indexes kept
// consistent on every mutation and a persisted per-kind sequence counter
// for business numbering.
package engine

import (
	"fmt"
	"path/filepath"
	"sync"

	"tallydb/src/indexes"
	"tallydb/src/schema"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Options configures an opened store.
type Options struct {
	DataDir            string
	JournalDir         string // defaults to <DataDir>/journal
	MaxJournalFileSize int64
	SchemaVersion      int
	Logger             *zap.SugaredLogger
}

// Store is an explicit handle to one data directory. Every service takes a
// handle at construction; independent stores never share state.
type Store struct {
	logger   *zap.SugaredLogger
	registry *schema.Registry
	disk     *StorageEngine
	journal  *Journal

	mu          sync.RWMutex
	collections map[string]*collection
	closed      bool
}

// collection pairs one kind's document set with its schema, indexes and
// sequence counter. The mutex serializes writers; readers may run
// concurrently and observe only committed state.
type collection struct {
	kind     string
	schema   *schema.Collection
	mu       sync.RWMutex
	docs     map[string]bson.M
	indexes  *indexes.Set
	sequence int64
}

// Open establishes the store, declaring every collection and its indexes up
// front. Existing data files are loaded and their indexes rebuilt; missing
// collections are created, which is the whole of the additive migration.
func Open(opts Options, collections []*schema.Collection) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	registry, err := schema.NewRegistry(collections)
	if err != nil {
		return nil, fmt.Errorf("invalid collection set: %w", err)
	}

	disk, err := NewStorageEngine(opts.DataDir, logger)
	if err != nil {
		return nil, err
	}

	storedVersion, err := disk.LoadMeta()
	if err != nil {
		return nil, err
	}
	if storedVersion > opts.SchemaVersion {
		return nil, fmt.Errorf("data directory %s requires schema version %d, this build supports %d",
			opts.DataDir, storedVersion, opts.SchemaVersion)
	}

	journalDir := opts.JournalDir
	if journalDir == "" {
		journalDir = filepath.Join(opts.DataDir, "journal")
	}
	maxJournal := opts.MaxJournalFileSize
	if maxJournal <= 0 {
		maxJournal = 1000000
	}
	journal, err := NewJournal(journalDir, maxJournal, logger)
	if err != nil {
		return nil, err
	}

	s := &Store{
		logger:      logger,
		registry:    registry,
		disk:        disk,
		journal:     journal,
		collections: make(map[string]*collection, len(collections)),
	}

	for _, cs := range collections {
		c := &collection{
			kind:    cs.Kind,
			schema:  cs,
			indexes: indexes.NewSet(cs.Kind, indexDefs(cs), logger),
		}
		if disk.CollectionFileExists(cs.Kind) {
			seq, docs, err := disk.LoadCollectionFile(cs.Kind)
			if err != nil {
				journal.Close()
				return nil, err
			}
			c.sequence = seq
			c.docs = docs
		} else {
			c.docs = make(map[string]bson.M)
			if err := disk.SaveCollectionFile(cs.Kind, 0, c.docs); err != nil {
				journal.Close()
				return nil, err
			}
			logger.Infof("Created collection %s", cs.Kind)
		}
		if err := c.indexes.Rebuild(c.docs); err != nil {
			journal.Close()
			return nil, err
		}
		s.collections[cs.Kind] = c
	}

	if storedVersion < opts.SchemaVersion {
		if err := disk.SaveMeta(opts.SchemaVersion); err != nil {
			journal.Close()
			return nil, err
		}
		if storedVersion > 0 {
			logger.Infof("Migrated data directory from schema version %d to %d", storedVersion, opts.SchemaVersion)
		}
	}

	logger.Infof("Store opened with %d collections in %s", len(s.collections), opts.DataDir)
	return s, nil
}

// Close flushes nothing (every mutation is write-through) and releases the
// journal. Further operations fail with ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.journal.Close()
}

// Registry exposes the schema registry for validating externally-sourced
// documents before import.
func (s *Store) Registry() *schema.Registry {
	return s.registry
}

func (s *Store) collection(kind string) (*collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	c, ok := s.collections[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, kind)
	}
	return c, nil
}

// Create validates and stores a new document. The identifier must already
// be set by the caller; the engine never assigns ids.
func (s *Store) Create(kind string, doc bson.M) (string, error) {
	c, err := s.collection(kind)
	if err != nil {
		return "", err
	}
	id, ok := doc["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%s: document id must be set by the caller", kind)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.docs[id]; exists {
		return "", &DuplicateIDError{Kind: kind, ID: id}
	}
	if err := s.registry.Validate(kind, doc); err != nil {
		return "", err
	}
	if err := c.indexes.Check(id, doc); err != nil {
		return "", err
	}

	stored := copyDoc(doc)
	c.docs[id] = stored
	c.indexes.Add(id, stored)

	if err := s.commit(c, "create", id); err != nil {
		delete(c.docs, id)
		c.indexes.Remove(id, stored)
		return "", err
	}
	return id, nil
}

// Update merges the partial document over the stored one, revalidates the
// full merged document and moves index entries whose values changed, all
// within the collection's write lock.
func (s *Store) Update(kind, id string, partial bson.M) error {
	c, err := s.collection(kind)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.docs[id]
	if !ok {
		return &NotFoundError{Kind: kind, ID: id}
	}

	merged := copyDoc(existing)
	for field, value := range partial {
		if field == "id" {
			continue
		}
		merged[field] = copyValue(value)
	}

	if err := s.registry.Validate(kind, merged); err != nil {
		return err
	}
	if err := c.indexes.Check(id, merged); err != nil {
		return err
	}

	c.indexes.Replace(id, existing, merged)
	c.docs[id] = merged

	if err := s.commit(c, "update", id); err != nil {
		c.indexes.Replace(id, merged, existing)
		c.docs[id] = existing
		return err
	}
	return nil
}

// Delete removes a document and all of its index entries.
func (s *Store) Delete(kind, id string) error {
	c, err := s.collection(kind)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.docs[id]
	if !ok {
		return &NotFoundError{Kind: kind, ID: id}
	}

	delete(c.docs, id)
	c.indexes.Remove(id, existing)

	if err := s.commit(c, "delete", id); err != nil {
		c.docs[id] = existing
		c.indexes.Add(id, existing)
		return err
	}
	return nil
}

// GetByID returns a copy of the document, or false when it does not exist.
func (s *Store) GetByID(kind, id string) (bson.M, bool, error) {
	c, err := s.collection(kind)
	if err != nil {
		return nil, false, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[id]
	if !ok {
		return nil, false, nil
	}
	return copyDoc(doc), true, nil
}

// GetAll returns copies of every document. Order is not guaranteed; callers
// sort as needed.
func (s *Store) GetAll(kind string) ([]bson.M, error) {
	c, err := s.collection(kind)
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	docs := make([]bson.M, 0, len(c.docs))
	for _, doc := range c.docs {
		docs = append(docs, copyDoc(doc))
	}
	return docs, nil
}

// GetByIndex returns copies of every document whose indexed field equals
// the given value.
func (s *Store) GetByIndex(kind, indexName string, value interface{}) ([]bson.M, error) {
	c, err := s.collection(kind)
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids, err := c.indexes.Lookup(indexName, value)
	if err != nil {
		return nil, err
	}
	docs := make([]bson.M, 0, len(ids))
	for _, id := range ids {
		if doc, ok := c.docs[id]; ok {
			docs = append(docs, copyDoc(doc))
		}
	}
	return docs, nil
}

func (s *Store) Count(kind string) (int, error) {
	c, err := s.collection(kind)
	if err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs), nil
}

// Clear removes every document of a collection. The sequence counter is
// kept, so business numbers are never reused.
func (s *Store) Clear(kind string) error {
	c, err := s.collection(kind)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	previous := c.docs
	c.docs = make(map[string]bson.M)
	if err := c.indexes.Rebuild(c.docs); err != nil {
		c.docs = previous
		return err
	}

	if err := s.commit(c, "clear", ""); err != nil {
		c.docs = previous
		if rerr := c.indexes.Rebuild(c.docs); rerr != nil {
			s.logger.Errorf("Index rebuild after failed clear of %s: %v", kind, rerr)
		}
		return err
	}
	return nil
}

// NextSequence atomically increments and persists the collection's business
// sequence counter. The first number handed out is 1; numbers are strictly
// monotonic and survive deletion of the documents that hold them.
func (s *Store) NextSequence(kind string) (int64, error) {
	c, err := s.collection(kind)
	if err != nil {
		return 0, err
	}
	if !c.schema.Numbered {
		return 0, fmt.Errorf("collection %s carries no sequence counter", kind)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sequence++
	if err := s.commit(c, "sequence", ""); err != nil {
		c.sequence--
		return 0, err
	}
	return c.sequence, nil
}

// commit journals the mutation and rewrites the collection file. Callers
// hold the collection write lock and roll their in-memory change back when
// the file write fails.
func (s *Store) commit(c *collection, op, id string) error {
	if err := s.journal.Append(op, c.kind, id); err != nil {
		s.logger.Warnf("Journal append failed for %s %s: %v", op, c.kind, err)
	}
	return s.disk.SaveCollectionFile(c.kind, c.sequence, c.docs)
}

func indexDefs(cs *schema.Collection) []indexes.Def {
	defs := make([]indexes.Def, 0, len(cs.Indexes))
	for _, idx := range cs.Indexes {
		defs = append(defs, indexes.Def{Name: idx.Name, Field: idx.Field, Unique: idx.Unique})
	}
	return defs
}

// copyDoc copies a document including its nested documents and arrays, so
// committed state never shares memory with documents handed to callers.
func copyDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for field, value := range doc {
		out[field] = copyValue(value)
	}
	return out
}

func copyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case bson.M:
		return copyDoc(v)
	case primitive.A:
		out := make(primitive.A, len(v))
		for i, item := range v {
			out[i] = copyValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = copyValue(item)
		}
		return out
	case []bson.M:
		out := make([]bson.M, len(v))
		for i, item := range v {
			out[i] = copyDoc(item)
		}
		return out
	default:
		return v
	}
}
