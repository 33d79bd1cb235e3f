package helpers

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// GenerateUUID returns a new random identifier. Documents are always keyed
// by caller-generated ids, never by the store.
func GenerateUUID() string {
	return uuid.New().String()
}

// ToDocument converts a typed entity into the map-shaped document form the
// store engine works with, by round-tripping through BSON.
func ToDocument(entity interface{}) (bson.M, error) {
	data, err := bson.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("error encoding entity: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding entity document: %w", err)
	}
	return doc, nil
}

// FromDocument converts a map-shaped document back into a typed entity.
func FromDocument(doc bson.M, out interface{}) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}
	if err := bson.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	return nil
}
