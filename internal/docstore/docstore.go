package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// Collection names used across the portal. Every entity is exclusively
// owned by one collection; relationships are by denormalized name strings,
// not foreign keys.
const (
	CollectionModels       = "models"
	CollectionApplications = "applications"
	CollectionBookings     = "bookings"
	CollectionBlog         = "blog"
	CollectionAdmins       = "admins"
	CollectionSettings     = "settings"
	CollectionWebsite      = "website"
	CollectionUsers        = "users"
)

var (
	// ErrNotFound is returned on get/update/delete of a missing id.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable is returned on any transport failure.
	ErrUnavailable = errors.New("document store unavailable")
)

// Document is a schema-less record body. Values follow encoding/json
// conventions (string, float64, bool, []interface{}, map[string]interface{}).
type Document = map[string]interface{}

// Record is a stored document together with its store-assigned id.
type Record struct {
	ID   string
	Data Document
}

// Op is a filter comparison operator.
type Op string

const (
	OpEqual Op = "=="
	OpGte   Op = ">="
	OpLte   Op = "<="
)

// Filter is a single conjunctive predicate on one field.
type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

// Order is a single-key sort directive.
type Order struct {
	Field string
	Desc  bool
}

// Query describes a filtered, optionally ordered read of a collection.
// Filters are combined with AND.
type Query struct {
	Filters []Filter
	OrderBy *Order
}

// Where appends a predicate and returns the query for chaining.
func (q Query) Where(field string, op Op, value interface{}) Query {
	q.Filters = append(q.Filters, Filter{Field: field, Op: op, Value: value})
	return q
}

// Sort sets the order key.
func (q Query) Sort(field string, desc bool) Query {
	q.OrderBy = &Order{Field: field, Desc: desc}
	return q
}

// Store is the uniform CRUD and query facade over named collections.
// No operation is transactional across documents: callers must order
// side-effecting steps so partial failure leaves a recoverable state.
type Store interface {
	// List returns records matching the query.
	List(ctx context.Context, collection string, q Query) ([]Record, error)

	// Get returns the record with the given id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (*Record, error)

	// Create stores a new document and returns the assigned id.
	Create(ctx context.Context, collection string, data Document) (string, error)

	// Update merges the partial fields into an existing document as a
	// single document-level write. Missing id yields ErrNotFound.
	Update(ctx context.Context, collection, id string, partial Document) error

	// Set overwrites the full document at id, creating it if absent.
	// Used for singleton documents with well-known keys.
	Set(ctx context.Context, collection, id string, data Document) error

	// Delete removes the document. Missing id yields ErrNotFound.
	Delete(ctx context.Context, collection, id string) error
}

// Encode converts a typed value into a Document via its JSON form.
func Encode(v interface{}) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Decode populates a typed value from a document body.
func Decode(data Document, v interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
