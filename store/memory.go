package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory implements Store on in-process collections. Documents are held as
// bson-marshalled bytes so encoding behaves the same as the MongoDB backend,
// and ids are real ObjectID hex strings. All operations, including the
// guarded decrement, are serialized by one mutex.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]memDoc
}

type memDoc struct {
	id  string
	raw bson.Raw
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]memDoc)}
}

func (m *Memory) Create(_ context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal for %s: %w", collection, err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", err
	}

	oid := primitive.NewObjectID()
	fields["_id"] = oid
	raw, err = bson.Marshal(fields)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], memDoc{id: oid.Hex(), raw: raw})
	return oid.Hex(), nil
}

func (m *Memory) Find(_ context.Context, collection string, q Query, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []bson.Raw
	for _, doc := range m.collections[collection] {
		ok, err := matches(doc.raw, q)
		if err != nil {
			return err
		}
		if ok {
			matched = append(matched, doc.raw)
		}
	}
	return decodeAll(matched, out)
}

func (m *Memory) FindByID(_ context.Context, collection, id string, out any) error {
	if _, err := parseID(id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.collections[collection] {
		if doc.id == id {
			return bson.Unmarshal(doc.raw, out)
		}
	}
	return ErrNotFound
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	if _, err := parseID(id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.collections[collection]
	for i, doc := range docs {
		if doc.id == id {
			m.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DecrementGuarded(_ context.Context, collection, id, field string, by int) error {
	if _, err := parseID(id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.collections[collection]
	for i, doc := range docs {
		if doc.id != id {
			continue
		}
		var fields bson.M
		if err := bson.Unmarshal(doc.raw, &fields); err != nil {
			return err
		}
		cur, err := numericField(fields, field)
		if err != nil {
			return err
		}
		if cur < int64(by) {
			return ErrConditionFailed
		}
		fields[field] = cur - int64(by)
		raw, err := bson.Marshal(fields)
		if err != nil {
			return err
		}
		docs[i].raw = raw
		return nil
	}
	return ErrConditionFailed
}

func (m *Memory) IncrementField(_ context.Context, collection, id, field string, by int) error {
	if _, err := parseID(id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.collections[collection]
	for i, doc := range docs {
		if doc.id != id {
			continue
		}
		var fields bson.M
		if err := bson.Unmarshal(doc.raw, &fields); err != nil {
			return err
		}
		cur, err := numericField(fields, field)
		if err != nil {
			return err
		}
		fields[field] = cur + int64(by)
		raw, err := bson.Marshal(fields)
		if err != nil {
			return err
		}
		docs[i].raw = raw
		return nil
	}
	return ErrNotFound
}

func (m *Memory) Count(_ context.Context, collection string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.collections[collection])), nil
}

func (m *Memory) Collections(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	return names, nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func matches(raw bson.Raw, q Query) (bool, error) {
	if q.Term == "" {
		return true, nil
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return false, err
	}
	term := strings.ToLower(q.Term)
	for _, f := range q.Fields {
		if s, ok := fields[f].(string); ok && strings.Contains(strings.ToLower(s), term) {
			return true, nil
		}
	}
	return false, nil
}

func numericField(fields bson.M, name string) (int64, error) {
	switch v := fields[name].(type) {
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("field %q is not numeric (%T)", name, v)
	}
}

func decodeAll(raws []bson.Raw, out any) error {
	outv := reflect.ValueOf(out)
	if outv.Kind() != reflect.Ptr || outv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("out must be a pointer to a slice, got %T", out)
	}
	slicev := outv.Elem().Slice(0, 0)
	elemt := slicev.Type().Elem()
	for _, raw := range raws {
		elemp := reflect.New(elemt)
		if err := bson.Unmarshal(raw, elemp.Interface()); err != nil {
			return err
		}
		slicev = reflect.Append(slicev, elemp.Elem())
	}
	outv.Elem().Set(slicev)
	return nil
}
