// Package records implements the persistence engine shared by all six
// program-record categories. A Store is bound to one category's catalog
// configuration and collection; everything category-specific (required
// fields, enums, children, stats) is driven by the catalog.
package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"github.com/ngoworks/programhub/internal/app/system/apperr"
	"github.com/ngoworks/programhub/internal/app/system/paging"
	"github.com/ngoworks/programhub/internal/app/system/sanitize"
	"github.com/ngoworks/programhub/internal/domain/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists one category's records.
type Store struct {
	cat *catalog.Category
	c   *mongo.Collection
}

// New binds a store to its category's collection.
func New(db *mongo.Database, cat *catalog.Category) *Store {
	return &Store{cat: cat, c: db.Collection(cat.Collection)}
}

// Category returns the catalog configuration this store is bound to.
func (s *Store) Category() *catalog.Category { return s.cat }

// freeTextFields are the free-text paths stripped of HTML before any
// document or child element is persisted.
var freeTextFields = []string{"description", "content", "comment", "experience"}

func sanitizeFreeText(doc bson.M) {
	for _, f := range freeTextFields {
		if s, ok := doc[f].(string); ok {
			doc[f] = sanitize.Text(s)
		}
	}
}

// render strips the Mongo _id and merges the derived scores into a
// stored document before it is returned to a client.
func (s *Store) render(doc bson.M) bson.M {
	delete(doc, "_id")
	for k, v := range s.cat.Scores(doc) {
		doc[k] = v
	}
	return doc
}

func (s *Store) keyFilter(key string) bson.M {
	return bson.M{s.cat.KeyField: key}
}

// Create validates and inserts a new record. The document is stored as
// submitted, plus defaults and timestamps. A duplicate business key
// reports a conflict.
func (s *Store) Create(ctx context.Context, doc bson.M) (bson.M, error) {
	if err := s.cat.ValidateCreate(doc); err != nil {
		return nil, err
	}
	sanitizeFreeText(doc)

	now := time.Now().UTC()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, apperr.ErrConflict
		}
		return nil, fmt.Errorf("insert %s: %w", s.cat.Name, err)
	}
	return s.render(doc), nil
}

// Get returns one record by business key.
func (s *Store) Get(ctx context.Context, key string) (bson.M, error) {
	var doc bson.M
	err := s.c.FindOne(ctx, s.keyFilter(key)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.cat.Name, err)
	}
	return s.render(doc), nil
}

// List returns a page of records matching the category's recognized
// filters, newest first by the category's sort field. Bulky nested
// collections are projected out of list responses.
func (s *Store) List(ctx context.Context, params map[string]string, p paging.Params) ([]bson.M, int64, error) {
	filter := bson.M{}
	for param, path := range s.cat.Filters {
		if v, ok := params[param]; ok && v != "" {
			filter[path] = v
		}
	}

	projection := bson.M{"_id": 0}
	for _, path := range s.cat.ListOmit {
		projection[path] = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: s.cat.SortField, Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit)).
		SetProjection(projection)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", s.cat.Name, err)
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", s.cat.Name, err)
		}
		for k, v := range s.cat.Scores(doc) {
			doc[k] = v
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", s.cat.Name, err)
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", s.cat.Name, err)
	}
	return docs, total, nil
}

// Update merges the patch's top-level fields into the record. The
// business key and timestamps cannot be changed through a patch.
func (s *Store) Update(ctx context.Context, key string, patch bson.M) (bson.M, error) {
	if err := s.cat.ValidateUpdate(patch); err != nil {
		return nil, err
	}
	sanitizeFreeText(patch)

	delete(patch, s.cat.KeyField)
	delete(patch, "_id")
	delete(patch, "createdAt")
	delete(patch, "updatedAt")

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range patch {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc bson.M
	err := s.c.FindOneAndUpdate(ctx, s.keyFilter(key), bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", s.cat.Name, err)
	}
	return s.render(doc), nil
}

// Delete removes a record by business key.
func (s *Store) Delete(ctx context.Context, key string) error {
	res, err := s.c.DeleteOne(ctx, s.keyFilter(key))
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.cat.Name, err)
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// AppendChild validates a child element and pushes it onto the parent's
// array. A failed validation leaves the parent untouched.
func (s *Store) AppendChild(ctx context.Context, key string, child *catalog.Child, payload bson.M) error {
	if err := child.ValidateChild(payload); err != nil {
		return err
	}
	sanitizeFreeText(payload)

	now := time.Now().UTC()
	if child.GenerateID {
		payload[child.IDField] = uuid.NewString()
	}
	if child.Stamp != "" {
		payload[child.Stamp] = now
	}

	update := bson.M{
		"$push": bson.M{child.ArrayPath: payload},
		"$set":  bson.M{"updatedAt": now},
	}
	res, err := s.c.UpdateOne(ctx, s.keyFilter(key), update)
	if err != nil {
		return fmt.Errorf("append %s %s: %w", s.cat.Name, child.Kind, err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// UpdateChild patches one element of a child array, addressed by the
// child's ID field.
func (s *Store) UpdateChild(ctx context.Context, key string, child *catalog.Child, childID string, patch bson.M) error {
	if err := child.ValidateChildPatch(patch); err != nil {
		return err
	}
	sanitizeFreeText(patch)
	delete(patch, child.IDField)

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range patch {
		set[child.ArrayPath+".$."+k] = v
	}

	filter := bson.M{
		s.cat.KeyField:                        key,
		child.ArrayPath + "." + child.IDField: childID,
	}
	res, err := s.c.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update %s %s: %w", s.cat.Name, child.Kind, err)
	}
	if res.MatchedCount == 0 {
		return s.missingParentOrChild(ctx, key)
	}
	return nil
}

// missingParentOrChild distinguishes a missing parent from a missing
// child element after a zero-match array update.
func (s *Store) missingParentOrChild(ctx context.Context, key string) error {
	n, err := s.c.CountDocuments(ctx, s.keyFilter(key))
	if err != nil {
		return fmt.Errorf("check %s: %w", s.cat.Name, err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return apperr.ErrChildNotFound
}

// MergeSection merges a payload into one top-level section of the
// record (campaign metrics, outreach impact, learning analytics). Merge
// depth is one level: sub-object values overwrite leaf by leaf,
// everything else overwrites the section field whole.
func (s *Store) MergeSection(ctx context.Context, key, section string, payload bson.M) (bson.M, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range payload {
		if sub, ok := v.(map[string]any); ok {
			for k2, v2 := range sub {
				set[section+"."+k+"."+k2] = v2
			}
			continue
		}
		set[section+"."+k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc bson.M
	err := s.c.FindOneAndUpdate(ctx, s.keyFilter(key), bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("merge %s %s: %w", s.cat.Name, section, err)
	}
	return s.render(doc), nil
}

// Analytics returns the category's analytics view of one record,
// computed from the currently stored document.
func (s *Store) Analytics(ctx context.Context, key string) (bson.M, error) {
	var doc bson.M
	err := s.c.FindOne(ctx, s.keyFilter(key)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.cat.Name, err)
	}
	return s.cat.Analytics(doc), nil
}
