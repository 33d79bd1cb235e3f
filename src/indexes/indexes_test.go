package indexes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func testSet() *Set {
	return NewSet("gadgets", []Def{
		{Name: "code", Field: "code", Unique: true},
		{Name: "category", Field: "category"},
		{Name: "level", Field: "level"},
		{Name: "active", Field: "active"},
	}, zap.NewNop().Sugar())
}

func TestSet_AddAndLookup(t *testing.T) {
	s := testSet()
	s.Add("g-1", bson.M{"code": "A1", "category": "tools"})
	s.Add("g-2", bson.M{"code": "A2", "category": "tools"})

	ids, err := s.Lookup("category", "tools")
	require.NoError(t, err)
	assert.Equal(t, []string{"g-1", "g-2"}, ids, "lookup order is stable")

	ids, err = s.Lookup("code", "A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"g-1"}, ids)

	ids, err = s.Lookup("category", "garden")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSet_LookupUnknownIndex(t *testing.T) {
	s := testSet()
	_, err := s.Lookup("barcode", "x")
	assert.Error(t, err)
}

func TestSet_UniqueCheck(t *testing.T) {
	s := testSet()
	s.Add("g-1", bson.M{"code": "A1"})

	err := s.Check("g-2", bson.M{"code": "A1"})
	require.Error(t, err)
	var uerr *UniqueError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "gadgets", uerr.Kind)
	assert.Equal(t, "code", uerr.Index)

	assert.NoError(t, s.Check("g-1", bson.M{"code": "A1"}), "a document never conflicts with itself")
	assert.NoError(t, s.Check("g-2", bson.M{"code": "A2"}))
}

func TestSet_RemoveFreesUniqueValue(t *testing.T) {
	s := testSet()
	doc := bson.M{"code": "A1", "category": "tools"}
	s.Add("g-1", doc)
	s.Remove("g-1", doc)

	assert.NoError(t, s.Check("g-2", bson.M{"code": "A1"}))
	ids, err := s.Lookup("category", "tools")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSet_ReplaceMovesEntries(t *testing.T) {
	s := testSet()
	oldDoc := bson.M{"code": "A1", "category": "tools"}
	newDoc := bson.M{"code": "A1", "category": "garden"}
	s.Add("g-1", oldDoc)
	s.Replace("g-1", oldDoc, newDoc)

	ids, err := s.Lookup("category", "tools")
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = s.Lookup("category", "garden")
	require.NoError(t, err)
	assert.Equal(t, []string{"g-1"}, ids)
}

func TestSet_Rebuild(t *testing.T) {
	s := testSet()
	s.Add("stale", bson.M{"code": "Z9"})

	err := s.Rebuild(map[string]bson.M{
		"g-1": {"code": "A1", "category": "tools"},
		"g-2": {"code": "A2", "category": "tools"},
	})
	require.NoError(t, err)

	ids, err := s.Lookup("code", "Z9")
	require.NoError(t, err)
	assert.Empty(t, ids, "rebuild discards prior entries")

	ids, err = s.Lookup("category", "tools")
	require.NoError(t, err)
	assert.Equal(t, []string{"g-1", "g-2"}, ids)
}

func TestSet_RebuildReportsDuplicates(t *testing.T) {
	s := testSet()
	err := s.Rebuild(map[string]bson.M{
		"g-1": {"code": "A1"},
		"g-2": {"code": "A1"},
	})
	require.Error(t, err)
	var uerr *UniqueError
	assert.ErrorAs(t, err, &uerr)
}

func TestSet_NumericKeysNormalizeWidths(t *testing.T) {
	s := testSet()
	s.Add("g-1", bson.M{"level": int64(3)})

	ids, err := s.Lookup("level", float64(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"g-1"}, ids, "int64 and float64 forms of a value share a key")

	ids, err = s.Lookup("level", int32(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"g-1"}, ids)
}

func TestSet_BoolKeys(t *testing.T) {
	s := testSet()
	s.Add("g-1", bson.M{"active": true})
	s.Add("g-2", bson.M{"active": false})

	ids, err := s.Lookup("active", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"g-1"}, ids)

	ids, err = s.Lookup("active", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"g-2"}, ids)
}

func TestSet_MissingFieldIsNotIndexed(t *testing.T) {
	s := testSet()
	s.Add("g-1", bson.M{"code": "A1"})

	ids, err := s.Lookup("category", "tools")
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = s.Lookup("category", nil)
	require.NoError(t, err)
	assert.Empty(t, ids, "nil never matches")
}
