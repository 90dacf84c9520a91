package store

import (
	"bytes"
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory implements Store entirely in memory. It understands the operator
// subset the services actually issue ($set, $inc, $gt, single-field sorts,
// exclusion projections), which is enough to run full request flows in tests
// without a mongod.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]bson.M)}
}

func (m *Memory) InsertOne(ctx context.Context, collection string, doc interface{}) error {
	d, err := toDocument(doc)
	if err != nil {
		return err
	}
	if id, ok := d["_id"].(primitive.ObjectID); !ok || id.IsZero() {
		d["_id"] = primitive.NewObjectID()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], d)
	return nil
}

func (m *Memory) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.collections[collection] {
		if matches(d, filter) {
			return decodeDocument(d, out)
		}
	}
	return ErrNotFound
}

func (m *Memory) Find(ctx context.Context, collection string, filter bson.M, opts FindOptions, out interface{}) error {
	m.mu.Lock()
	var hits []bson.M
	for _, d := range m.collections[collection] {
		if matches(d, filter) {
			hits = append(hits, d)
		}
	}
	m.mu.Unlock()

	if opts.Sort != nil {
		sortDocuments(hits, opts.Sort)
	}
	if opts.Skip > 0 {
		if opts.Skip >= int64(len(hits)) {
			hits = nil
		} else {
			hits = hits[opts.Skip:]
		}
	}
	if opts.Limit > 0 && int64(len(hits)) > opts.Limit {
		hits = hits[:opts.Limit]
	}

	slicev := reflect.ValueOf(out).Elem()
	result := reflect.MakeSlice(slicev.Type(), 0, len(hits))
	for _, d := range hits {
		if opts.Projection != nil {
			d = project(d, opts.Projection)
		}
		elem := reflect.New(slicev.Type().Elem())
		if err := decodeDocument(d, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slicev.Set(result)
	return nil
}

func (m *Memory) UpdateOne(ctx context.Context, collection string, filter, update bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.collections[collection] {
		if matches(d, filter) {
			applyUpdate(d, update)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *Memory) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.collections[collection]
	for i, d := range docs {
		if matches(d, filter) {
			m.collections[collection] = append(docs[:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *Memory) DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []bson.M
	var deleted int64
	for _, d := range m.collections[collection] {
		if matches(d, filter) {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	m.collections[collection] = kept
	return deleted, nil
}

func (m *Memory) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, d := range m.collections[collection] {
		if matches(d, filter) {
			n++
		}
	}
	return n, nil
}

// toDocument round-trips a value through bson so stored documents carry the
// same representation a mongod would hand back (ObjectID, DateTime, int64).
func toDocument(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeDocument(d bson.M, out interface{}) error {
	raw, err := bson.Marshal(d)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func matches(d bson.M, filter bson.M) bool {
	for field, cond := range filter {
		switch cond := cond.(type) {
		case bson.M:
			for op, operand := range cond {
				switch op {
				case "$gt":
					if compareValues(d[field], operand) <= 0 {
						return false
					}
				case "$lt":
					if compareValues(d[field], operand) >= 0 {
						return false
					}
				default:
					return false
				}
			}
		default:
			if !equalValues(d[field], cond) {
				return false
			}
		}
	}
	return true
}

func equalValues(a, b interface{}) bool {
	if aid, ok := a.(primitive.ObjectID); ok {
		bid, ok := b.(primitive.ObjectID)
		return ok && aid == bid
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

// compareValues returns -1, 0 or 1; mixed types that cannot be compared
// collate as equal.
func compareValues(a, b interface{}) int {
	if aid, ok := a.(primitive.ObjectID); ok {
		if bid, ok := b.(primitive.ObjectID); ok {
			return bytes.Compare(aid[:], bid[:])
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			switch {
			case as < bs:
				return -1
			case as > bs:
				return 1
			}
			return 0
		}
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
	}
	return 0
}

func asFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case primitive.DateTime:
		return float64(v), true
	}
	return 0, false
}

func applyUpdate(d bson.M, update bson.M) {
	if set, ok := update["$set"].(bson.M); ok {
		for k, v := range set {
			d[k] = v
		}
	}
	if inc, ok := update["$inc"].(bson.M); ok {
		for k, v := range inc {
			cur, _ := asFloat(d[k])
			delta, _ := asFloat(v)
			d[k] = int64(cur + delta)
		}
	}
}

func sortDocuments(docs []bson.M, keys bson.D) {
	sort.SliceStable(docs, func(i, j int) bool {
		for _, key := range keys {
			dir := 1
			if n, ok := asFloat(key.Value); ok && n < 0 {
				dir = -1
			}
			if c := compareValues(docs[i][key.Key], docs[j][key.Key]); c != 0 {
				return c*dir < 0
			}
		}
		return false
	})
}

// project applies an exclusion projection ({field: 0}).
func project(d bson.M, projection bson.M) bson.M {
	out := make(bson.M, len(d))
	for k, v := range d {
		out[k] = v
	}
	for field, v := range projection {
		if n, ok := asFloat(v); ok && n == 0 {
			delete(out, field)
		}
	}
	return out
}
