package display

import (
	"strings"
	"testing"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSprintSmallTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	root := arbor.NewArrayTree(5)
	two := root.Add(2)
	root.Add(7)
	two.Add(9)
	out := Sprint[int](root)
	t.Logf("\n%s", out)
	expect := "5\n" +
		"├── 2\n" +
		"│   └── 9\n" +
		"└── 7\n"
	if out != expect {
		t.Errorf("expected rendering\n%s\ngot\n%s", expect, out)
	}
}

func TestSprintSingleNode(t *testing.T) {
	root := arbor.NewArrayTree("solo")
	out := Sprint[string](root)
	if out != "solo\n" {
		t.Errorf("expected %q, got %q", "solo\n", out)
	}
}

func TestFprintShortensLongLabels(t *testing.T) {
	root := arbor.NewArrayTree(strings.Repeat("x", 40))
	var sb strings.Builder
	err := Fprint(&sb, arbor.Node[string](root), &Config{LineWidth: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := strings.TrimSuffix(sb.String(), "\n")
	if !strings.HasSuffix(line, "…") {
		t.Errorf("expected a shortened label with ellipsis, got %q", line)
	}
	if len([]rune(line)) > 10 {
		t.Errorf("expected at most 10 columns, got %d", len([]rune(line)))
	}
}

func TestFprintRejectsNilArguments(t *testing.T) {
	root := arbor.NewArrayTree(1)
	if err := Fprint[int](nil, root, nil); err != arbor.ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for a nil writer, got %v", err)
	}
	var sb strings.Builder
	if err := Fprint[int](&sb, nil, nil); err != arbor.ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for a nil root, got %v", err)
	}
}
