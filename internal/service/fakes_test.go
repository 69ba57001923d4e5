package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/repository"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/validate"
)

// fakeStore is an in-memory RecordStore keyed by the configured key fields.
// It mirrors the real store's conditional semantics and counts calls so tests
// can assert the backend was (not) touched.
type fakeStore struct {
	keyFields []string
	items     map[string]map[string]any

	createCalls int
	updateCalls int
	deleteCalls int

	forcedErr error
}

func newFakeStore(keyFields ...string) *fakeStore {
	return &fakeStore{
		keyFields: keyFields,
		items:     make(map[string]map[string]any),
	}
}

func encode(v any) map[string]any {
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

func decode(m any, out any) {
	b, _ := json.Marshal(m)
	_ = json.Unmarshal(b, out)
}

func (f *fakeStore) keyOfItem(m map[string]any) string {
	parts := make([]string, 0, len(f.keyFields))
	for _, kf := range f.keyFields {
		parts = append(parts, fmt.Sprint(m[kf]))
	}
	return strings.Join(parts, "|")
}

func (f *fakeStore) keyOf(key repository.Key) string {
	parts := make([]string, 0, len(f.keyFields))
	for _, kf := range f.keyFields {
		parts = append(parts, key[kf])
	}
	return strings.Join(parts, "|")
}

func (f *fakeStore) Exists(_ context.Context, key repository.Key) (bool, error) {
	if f.forcedErr != nil {
		return false, f.forcedErr
	}
	_, ok := f.items[f.keyOf(key)]
	return ok, nil
}

func (f *fakeStore) Create(_ context.Context, record any) error {
	f.createCalls++
	if f.forcedErr != nil {
		return f.forcedErr
	}
	m := encode(record)
	k := f.keyOfItem(m)
	if _, ok := f.items[k]; ok {
		return repository.ErrItemExists
	}
	f.items[k] = m
	return nil
}

func (f *fakeStore) Get(_ context.Context, key repository.Key, out any) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	m, ok := f.items[f.keyOf(key)]
	if !ok {
		return repository.ErrItemNotFound
	}
	decode(m, out)
	return nil
}

func (f *fakeStore) GetAll(_ context.Context, out any) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	all := make([]map[string]any, 0, len(f.items))
	for _, m := range f.items {
		all = append(all, m)
	}
	decode(all, out)
	return nil
}

func (f *fakeStore) QueryByPartition(_ context.Context, value string, out any) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	matched := make([]map[string]any, 0)
	for _, m := range f.items {
		if fmt.Sprint(m[f.keyFields[0]]) == value {
			matched = append(matched, m)
		}
	}
	decode(matched, out)
	return nil
}

func (f *fakeStore) Update(_ context.Context, key repository.Key, set []validate.Field, out any) error {
	f.updateCalls++
	if f.forcedErr != nil {
		return f.forcedErr
	}
	m, ok := f.items[f.keyOf(key)]
	if !ok {
		return repository.ErrItemNotFound
	}
	for _, field := range set {
		m[field.Name] = field.Value
	}
	if out != nil {
		decode(m, out)
	}
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key repository.Key) error {
	f.deleteCalls++
	if f.forcedErr != nil {
		return f.forcedErr
	}
	k := f.keyOf(key)
	if _, ok := f.items[k]; !ok {
		return repository.ErrItemNotFound
	}
	delete(f.items, k)
	return nil
}

type fakeQueue struct {
	sent []string
	err  error
}

func (f *fakeQueue) Send(_ context.Context, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, body)
	return nil
}

type publishedEvent struct {
	Name    string
	Payload string
}

type fakeEvents struct {
	published []publishedEvent
	err       error
}

func (f *fakeEvents) Publish(_ context.Context, eventName, payload string) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, publishedEvent{Name: eventName, Payload: payload})
	return nil
}

// fakeBucket records uploads and serves downloads from a configured object
// map, writing the content to the requested local path.
type fakeBucket struct {
	uploads   map[string]string // key -> local path uploaded from
	objects   map[string]string // key -> content served on download
	uploadErr error
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{
		uploads: make(map[string]string),
		objects: make(map[string]string),
	}
}

func (f *fakeBucket) Upload(_ context.Context, localPath, key string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads[key] = localPath
	return nil
}

func (f *fakeBucket) Download(_ context.Context, key, localPath string) error {
	content, ok := f.objects[key]
	if !ok {
		return fmt.Errorf("no such object: %s", key)
	}
	return os.WriteFile(localPath, []byte(content), 0o644)
}
