package sxm_test

import (
	"reflect"
	"testing"

	"github.com/aretw0/sxm"
	"github.com/aretw0/sxm/pkg/registry"
)

func TestDefaultRegistry(t *testing.T) {
	reg := sxm.DefaultRegistry()

	want := []string{"digicode", "door"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected models %v, got %v", want, got)
	}

	for _, name := range want {
		model, ok := reg.Get(name)
		if !ok {
			t.Fatalf("Model %q missing", name)
		}
		for _, kind := range registry.Kinds() {
			suite, err := model.Generate(kind, 0)
			if err != nil {
				t.Errorf("%s/%s: %v", name, kind, err)
				continue
			}
			if kind != registry.KindRobustness && len(suite.Cases) == 0 {
				t.Errorf("%s/%s: expected a non-empty suite", name, kind)
			}
			if len(suite.Uncovered) != 0 {
				t.Errorf("%s/%s: expected full coverage, got %v", name, kind, suite.Uncovered)
			}
		}
	}
}
