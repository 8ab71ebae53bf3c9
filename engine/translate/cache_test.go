package translate

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCacheComputesOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.translate")
	defer teardown()
	//
	cache := NewCache()
	calls := 0
	compute := func() (string, error) {
		calls++
		return "Hallo.", nil
	}
	if out := cache.GetOrCompute("Hello.", compute); out != "Hallo." {
		t.Errorf("expected computed value, have %q", out)
	}
	if out := cache.GetOrCompute("Hello.", compute); out != "Hallo." {
		t.Errorf("expected cached value, have %q", out)
	}
	if calls != 1 {
		t.Errorf("expected a single computation, have %d", calls)
	}
	if cache.Size() != 1 {
		t.Errorf("expected 1 entry, have %d", cache.Size())
	}
}

func TestCacheDoesNotCacheFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glot.translate")
	defer teardown()
	//
	cache := NewCache()
	failing := true
	compute := func() (string, error) {
		if failing {
			return "", errors.New("transient")
		}
		return "Hallo.", nil
	}
	if out := cache.GetOrCompute("Hello.", compute); out != "Hello." {
		t.Errorf("failure must return the key unchanged, have %q", out)
	}
	if cache.Size() != 0 {
		t.Errorf("failure must not be cached")
	}
	failing = false // a later identical sentence retries
	if out := cache.GetOrCompute("Hello.", compute); out != "Hallo." {
		t.Errorf("retry after transient failure broken, have %q", out)
	}
}
