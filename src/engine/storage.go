package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"tallydb/src/helpers"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// collectionFile is the on-disk form of one collection: a single BSON
// document holding the full document set and the persisted sequence counter.
type collectionFile struct {
	Kind      string   `bson:"kind"`
	Sequence  int64    `bson:"sequence"`
	Documents []bson.M `bson:"documents"`
}

type storeMeta struct {
	SchemaVersion int `bson:"schema_version"`
}

// StorageEngine reads and writes collection data files in one directory.
type StorageEngine struct {
	DataDirectory string
	logger        *zap.SugaredLogger
}

func NewStorageEngine(dataDir string, logger *zap.SugaredLogger) (*StorageEngine, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return &StorageEngine{DataDirectory: dataDir, logger: logger}, nil
}

func (se *StorageEngine) collectionPath(kind string) string {
	return filepath.Join(se.DataDirectory, kind+".col")
}

func (se *StorageEngine) metaPath() string {
	return filepath.Join(se.DataDirectory, "store.meta")
}

// CollectionFileExists reports whether a data file for the kind is present.
func (se *StorageEngine) CollectionFileExists(kind string) bool {
	return helpers.FileExists(se.collectionPath(kind), *se.logger)
}

// LoadCollectionFile reads a collection data file through a memory mapping
// and decodes its BSON payload.
func (se *StorageEngine) LoadCollectionFile(kind string) (int64, map[string]bson.M, error) {
	path := se.collectionPath(kind)
	data, release, err := helpers.ReadFileMapped(path)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading collection file %s: %w", path, err)
	}
	defer release()

	if len(data) == 0 {
		return 0, make(map[string]bson.M), nil
	}

	var file collectionFile
	if err := bson.Unmarshal(data, &file); err != nil {
		return 0, nil, fmt.Errorf("error decoding collection file %s: %w", path, err)
	}

	docs := make(map[string]bson.M, len(file.Documents))
	for _, doc := range file.Documents {
		id, ok := doc["id"].(string)
		if !ok || id == "" {
			se.logger.Warnf("Skipping document without id in collection %s", kind)
			continue
		}
		docs[id] = doc
	}
	return file.Sequence, docs, nil
}

// SaveCollectionFile writes the full document set and sequence counter of a
// collection as one BSON file, replacing the previous file atomically.
func (se *StorageEngine) SaveCollectionFile(kind string, sequence int64, docs map[string]bson.M) error {
	file := collectionFile{
		Kind:      kind,
		Sequence:  sequence,
		Documents: make([]bson.M, 0, len(docs)),
	}
	for _, doc := range docs {
		file.Documents = append(file.Documents, doc)
	}

	encoded, err := bson.Marshal(file)
	if err != nil {
		return fmt.Errorf("error encoding collection %s: %w", kind, err)
	}
	if err := helpers.WriteFileAtomic(se.collectionPath(kind), encoded); err != nil {
		return fmt.Errorf("error writing collection %s: %w", kind, err)
	}
	return nil
}

// LoadMeta returns the stored schema version, or zero for a fresh directory.
func (se *StorageEngine) LoadMeta() (int, error) {
	path := se.metaPath()
	if !helpers.FileExists(path, *se.logger) {
		return 0, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("error reading store meta: %w", err)
	}
	var meta storeMeta
	if err := bson.Unmarshal(data, &meta); err != nil {
		return 0, fmt.Errorf("error decoding store meta: %w", err)
	}
	return meta.SchemaVersion, nil
}

func (se *StorageEngine) SaveMeta(version int) error {
	encoded, err := bson.Marshal(storeMeta{SchemaVersion: version})
	if err != nil {
		return fmt.Errorf("error encoding store meta: %w", err)
	}
	if err := helpers.WriteFileAtomic(se.metaPath(), encoded); err != nil {
		return fmt.Errorf("error writing store meta: %w", err)
	}
	return nil
}
