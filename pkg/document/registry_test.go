package document_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Dave-Ash-4297/letter/pkg/document"
)

func nopFactory() (document.Builder, error) { return nil, nil }

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := document.NewRegistry()
	if err := registry.Register("docx", nopFactory); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := registry.Get("docx"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if !registry.Has("docx") {
		t.Fatalf("expected Has to report the registered builder")
	}
	if _, err := registry.Get("pdf"); err == nil {
		t.Fatalf("expected unknown builder lookup to fail")
	}
}

func TestRegistryRejectsDuplicatesAndBadInput(t *testing.T) {
	t.Parallel()

	registry := document.NewRegistry()
	if err := registry.Register("docx", nopFactory); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("docx", nopFactory); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register("", nopFactory); err == nil {
		t.Fatalf("expected empty name to be rejected")
	}
	if err := registry.Register("other", nil); err == nil {
		t.Fatalf("expected nil factory to be rejected")
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	t.Parallel()

	registry := document.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := registry.Register(name, nopFactory); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestMustRegisterPanicsOnError(t *testing.T) {
	t.Parallel()

	registry := document.NewRegistry()
	registry.MustRegister("docx", nopFactory)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate MustRegister")
		}
	}()
	registry.MustRegister("docx", nopFactory)
}
