package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry([]*Collection{
		{
			Kind: "gadgets",
			Fields: []Field{
				ID("id"),
				String("name", 2, 10),
				Email("email", true),
				Number("price", 0),
				Int("level", 1, 5),
				Bool("active", true),
				Enum("status", "new", "used"),
				DateTime("created_at"),
				Clock("opens_at"),
				Array("parts",
					String("label", 1, 0),
					Number("quantity", 0.01),
				),
				OptionalString("notes", 5),
			},
			Indexes: []Index{{Name: "name", Field: "name", Unique: true}},
		},
	})
	require.NoError(t, err)
	return r
}

func validGadget() bson.M {
	return bson.M{
		"id":         "g-1",
		"name":       "widget",
		"email":      "a@b.com",
		"price":      float64(10),
		"level":      int64(3),
		"active":     true,
		"status":     "new",
		"created_at": "2025-06-01T10:00:00Z",
		"opens_at":   "08:30",
		"parts": primitive.A{
			bson.M{"label": "bolt", "quantity": float64(4)},
		},
	}
}

func TestValidate_AcceptsCompleteDocument(t *testing.T) {
	r := testRegistry(t)
	assert.NoError(t, r.Validate("gadgets", validGadget()))
}

func TestValidate_UnknownKind(t *testing.T) {
	r := testRegistry(t)
	err := r.Validate("nonsense", bson.M{})
	require.Error(t, err)
}

func TestValidate_RequiredFieldMissing(t *testing.T) {
	r := testRegistry(t)
	doc := validGadget()
	delete(doc, "name")

	err := r.Validate("gadgets", doc)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "gadgets", verr.Kind)
	assert.Len(t, verr.Violations(), 1)
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	r := testRegistry(t)
	doc := validGadget()
	doc["name"] = "x"            // below min length
	doc["email"] = "not-an-addr" // missing @
	doc["price"] = float64(-1)   // below minimum
	doc["status"] = "broken"     // outside enum

	err := r.Validate("gadgets", doc)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations(), 4)
}

func TestValidate_StringBounds(t *testing.T) {
	r := testRegistry(t)

	doc := validGadget()
	doc["name"] = "far too long a name"
	assert.Error(t, r.Validate("gadgets", doc))

	doc = validGadget()
	doc["notes"] = "within"
	assert.Error(t, r.Validate("gadgets", doc), "optional fields still honor max length")

	doc = validGadget()
	doc["notes"] = "ok"
	assert.NoError(t, r.Validate("gadgets", doc))
}

func TestValidate_IntBounds(t *testing.T) {
	r := testRegistry(t)

	doc := validGadget()
	doc["level"] = int64(6)
	assert.Error(t, r.Validate("gadgets", doc))

	doc["level"] = int64(0)
	assert.Error(t, r.Validate("gadgets", doc))

	doc["level"] = int32(5)
	assert.NoError(t, r.Validate("gadgets", doc), "all integer widths are accepted")
}

func TestValidate_TypeMismatches(t *testing.T) {
	r := testRegistry(t)

	doc := validGadget()
	doc["price"] = "ten"
	assert.Error(t, r.Validate("gadgets", doc))

	doc = validGadget()
	doc["active"] = "yes"
	assert.Error(t, r.Validate("gadgets", doc))

	doc = validGadget()
	doc["created_at"] = "01/06/2025"
	assert.Error(t, r.Validate("gadgets", doc))

	doc = validGadget()
	doc["opens_at"] = "25:99"
	assert.Error(t, r.Validate("gadgets", doc))
}

func TestValidate_ArrayItems(t *testing.T) {
	r := testRegistry(t)

	doc := validGadget()
	doc["parts"] = primitive.A{
		bson.M{"label": "bolt", "quantity": float64(0)},
		bson.M{"quantity": float64(2)},
	}
	err := r.Validate("gadgets", doc)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations(), 2)
}

func TestValidate_RequiredArrayMustBePresent(t *testing.T) {
	r := testRegistry(t)

	doc := validGadget()
	doc["parts"] = nil
	assert.Error(t, r.Validate("gadgets", doc))

	doc = validGadget()
	delete(doc, "parts")
	assert.Error(t, r.Validate("gadgets", doc))

	doc = validGadget()
	doc["parts"] = primitive.A{}
	assert.NoError(t, r.Validate("gadgets", doc), "an empty array satisfies a required array field")
}

func TestApplyDefaults(t *testing.T) {
	r, err := NewRegistry([]*Collection{
		{
			Kind: "gadgets",
			Fields: []Field{
				ID("id"),
				Bool("active", true),
				NumberDefault("stock", 0, 0),
				String("name", 1, 0),
			},
		},
	})
	require.NoError(t, err)

	doc := r.ApplyDefaults("gadgets", bson.M{"id": "g-1", "name": "widget"})
	assert.Equal(t, true, doc["active"])
	assert.Equal(t, float64(0), doc["stock"])
	assert.Equal(t, "widget", doc["name"])

	doc = r.ApplyDefaults("gadgets", bson.M{"id": "g-2", "name": "w", "active": false})
	assert.Equal(t, false, doc["active"], "present values are never overwritten")
}

func TestNewRegistry_RejectsBadDeclarations(t *testing.T) {
	_, err := NewRegistry([]*Collection{{Kind: ""}})
	assert.Error(t, err)

	_, err = NewRegistry([]*Collection{{Kind: "a"}, {Kind: "a"}})
	assert.Error(t, err)

	_, err = NewRegistry([]*Collection{{Kind: "a", Indexes: []Index{{Name: "x"}}}})
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	h, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.InDelta(t, 8.5, h, 1e-9)

	h, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)

	h, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.InDelta(t, 23.0+59.0/60.0, h, 1e-9)

	for _, bad := range []string{"24:00", "12:60", "noon", "-1:30", ""} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "value %q", bad)
	}
}
