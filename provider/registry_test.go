package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeProvider struct {
	name      string
	available bool
	execErr   error
}

func (f *fakeProvider) Name() string                     { return f.name }
func (f *fakeProvider) IsAvailable(context.Context) bool { return f.available }

func (f *fakeProvider) Execute(_ context.Context, in string) (string, error) {
	if f.execErr != nil {
		return "", f.execErr
	}
	return "echo:" + in, nil
}

func TestRegistry_CreateAndGet(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	reg.Register("fake", func(cfg map[string]any) (*fakeProvider, error) {
		name, _ := cfg["name"].(string)
		return &fakeProvider{name: name, available: true}, nil
	})

	p, err := reg.Create("fake", map[string]any{"name": "one"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name() != "one" {
		t.Errorf("name = %q", p.Name())
	}

	reg.Set("one", p)
	got, ok := reg.Get("one")
	if !ok || got != p {
		t.Errorf("Get = %v, %v", got, ok)
	}
	if _, ok := reg.Get("missing"); ok {
		t.Error("Get(missing) should report absence")
	}
}

func TestRegistry_UnknownNameListsRegistered(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	factory := func(map[string]any) (*fakeProvider, error) { return &fakeProvider{}, nil }
	reg.Register("anthropic", factory)
	reg.Register("openai", factory)

	_, err := reg.Create("openia", nil)
	if err == nil {
		t.Fatal("want error for unregistered name")
	}
	if !strings.Contains(err.Error(), "anthropic, openai") {
		t.Errorf("err = %v, want registered names listed", err)
	}
}

func TestRegistry_UnknownNameEmptyRegistry(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	if _, err := reg.Create("nope", nil); err == nil {
		t.Error("want error for unregistered name")
	}
}

func TestRegistry_ResolveCachesInstance(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	builds := 0
	reg.Register("fake", func(map[string]any) (*fakeProvider, error) {
		builds++
		return &fakeProvider{name: fmt.Sprintf("build-%d", builds), available: true}, nil
	})

	first, err := reg.Resolve("fake", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := reg.Resolve("fake", nil)
	if err != nil {
		t.Fatalf("Resolve again: %v", err)
	}
	if first != second {
		t.Error("Resolve should return the cached instance")
	}
	if builds != 1 {
		t.Errorf("factory ran %d times, want 1", builds)
	}

	if cached, ok := reg.Get("fake"); !ok || cached != first {
		t.Errorf("Get after Resolve = %v, %v", cached, ok)
	}
}

func TestRegistry_ResolveFailureNotCached(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	boom := errors.New("bad config")
	reg.Register("fail", func(map[string]any) (*fakeProvider, error) {
		return nil, boom
	})

	if _, err := reg.Resolve("fail", nil); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want factory error", err)
	}
	if _, ok := reg.Get("fail"); ok {
		t.Error("failed build must not be cached")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	factory := func(map[string]any) (*fakeProvider, error) { return &fakeProvider{}, nil }
	reg.Register("zeta", factory)
	reg.Register("alpha", factory)
	reg.Register("mid", factory)

	names := reg.List()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("List = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestRegistry_FactoryErrorPropagates(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	boom := errors.New("bad config")
	reg.Register("fail", func(map[string]any) (*fakeProvider, error) {
		return nil, fmt.Errorf("creating: %w", boom)
	})

	if _, err := reg.Create("fail", nil); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped factory error", err)
	}
}
