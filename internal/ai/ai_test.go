package ai

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestFirstJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain array", `["python", "sql"]`, `["python", "sql"]`},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prose around object", `Sure! Here it is: {"a": 1} hope that helps`, `{"a": 1}`},
		{"array with braces in strings", `noise ["a {weird} value"] tail`, `["a {weird} value"]`},
		{"no json", "no structured data here", ""},
		{"empty", "", ""},
		{"unbalanced", `{"a": 1`, ""},
	}
	for _, c := range cases {
		got := FirstJSON(c.in)
		if c.want == "" {
			if got != nil {
				t.Fatalf("%s: expected nil, got %s", c.name, got)
			}
			continue
		}
		if string(got) != c.want {
			t.Fatalf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

type fakeGen struct {
	raw   json.RawMessage
	err   error
	calls int
}

func (f *fakeGen) GenerateStructured(context.Context, string) (json.RawMessage, error) {
	f.calls++
	return f.raw, f.err
}

type memCache struct {
	store map[string]json.RawMessage
}

func newMemCache() *memCache {
	return &memCache{store: make(map[string]json.RawMessage)}
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = raw
	return nil
}

func TestCachedMemoizesSuccess(t *testing.T) {
	gen := &fakeGen{raw: json.RawMessage(`["python"]`)}
	cached := NewCached(gen, newMemCache(), time.Minute)

	for i := 0; i < 3; i++ {
		raw, err := cached.GenerateStructured(context.Background(), "same prompt")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if string(raw) != `["python"]` {
			t.Fatalf("got %s", raw)
		}
	}
	if gen.calls != 1 {
		t.Fatalf("provider called %d times, want 1", gen.calls)
	}
}

func TestCachedDistinctPrompts(t *testing.T) {
	gen := &fakeGen{raw: json.RawMessage(`[]`)}
	cached := NewCached(gen, newMemCache(), time.Minute)

	_, _ = cached.GenerateStructured(context.Background(), "prompt a")
	_, _ = cached.GenerateStructured(context.Background(), "prompt b")
	if gen.calls != 2 {
		t.Fatalf("provider called %d times, want 2", gen.calls)
	}
}

func TestCachedErrorsAreNotStored(t *testing.T) {
	gen := &fakeGen{err: errors.New("provider down")}
	cached := NewCached(gen, newMemCache(), time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := cached.GenerateStructured(context.Background(), "prompt"); err == nil {
			t.Fatalf("expected error")
		}
	}
	if gen.calls != 2 {
		t.Fatalf("errors must pass through uncached, calls = %d", gen.calls)
	}
}

func TestCachedNilCache(t *testing.T) {
	gen := &fakeGen{raw: json.RawMessage(`{}`)}
	cached := NewCached(gen, nil, 0)

	raw, err := cached.GenerateStructured(context.Background(), "prompt")
	if err != nil || string(raw) != `{}` {
		t.Fatalf("got %s, %v", raw, err)
	}
}

func TestDisabledGenerator(t *testing.T) {
	_, err := Disabled{}.GenerateStructured(context.Background(), "prompt")
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}
