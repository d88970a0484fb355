package charmap_test

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/transform"

	"github.com/qamus/charmap"
)

func TestTransformer(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cm, err := charmap.New(validMap)
	if err != nil {
		t.Fatalf("cannot build mapper: %v", err)
	}
	out, _, err := transform.String(cm.Transformer(), "Hello, world!")
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if out != "Hu**o, wor*m!" {
		t.Errorf("expected 'Hu**o, wor*m!', got %q", out)
	}
}

func TestTransformerChain(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	first, err := charmap.New(charmap.MapSpec{"a": "b"})
	if err != nil {
		t.Fatalf("cannot build mapper: %v", err)
	}
	second, err := charmap.New(charmap.MapSpec{"b": "c"})
	if err != nil {
		t.Fatalf("cannot build mapper: %v", err)
	}
	chain := transform.Chain(first.Transformer(), second.Transformer())
	out, _, err := transform.String(chain, "aba")
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if out != "ccc" {
		t.Errorf("expected 'ccc', got %q", out)
	}
}

func TestTransformerDeletion(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cm, err := charmap.New(charmap.MapSpec{"a-f": ""})
	if err != nil {
		t.Fatalf("cannot build mapper: %v", err)
	}
	out, _, err := transform.String(cm.Transformer(), "xaybzc")
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if out != "xyz" {
		t.Errorf("expected 'xyz', got %q", out)
	}
}

func TestTransformerMalformedInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cm, err := charmap.New(charmap.MapSpec{"a": "x"})
	if err != nil {
		t.Fatalf("cannot build mapper: %v", err)
	}
	out, _, err := transform.Bytes(cm.Transformer(), []byte{'a', 0xff, 'b'})
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if string(out) != "x\xffb" {
		t.Errorf("malformed byte should pass through, got %q", out)
	}
}
