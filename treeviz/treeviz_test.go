package treeviz

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func setup(t *testing.T) func() {
	teardown := gotestingadapter.QuickConfig(t, "treeviz")
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

// 5 with children 3 (1, 4) and 8 (nil, 9)
func sample() *Node {
	return &Node{Label: "5", Class: Black, Children: []*Node{
		{Label: "3", Class: Red, Children: []*Node{
			{Label: "1", Class: Black},
			{Label: "4", Class: Black},
		}},
		{Label: "8", Class: Black, Children: []*Node{
			nil,
			{Label: "9", Class: Red},
		}},
	}}
}

func TestWalkPreOrder(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	var labels []string
	var depths []int
	sample().Walk(func(n *Node, depth int) error {
		labels = append(labels, n.Label)
		depths = append(depths, depth)
		return nil
	})
	if got := strings.Join(labels, " "); got != "5 3 1 4 8 9" {
		t.Errorf("expected pre-order 5 3 1 4 8 9, got %s", got)
	}
	if depths[0] != 0 || depths[2] != 2 || depths[5] != 2 {
		t.Errorf("unexpected depths %v", depths)
	}
	if sample().Count() != 6 {
		t.Errorf("expected 6 nodes, got %d", sample().Count())
	}
}

func TestWalkStopsOnError(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	stop := errors.New("stop")
	visited := 0
	err := sample().Walk(func(n *Node, depth int) error {
		visited++
		if n.Label == "3" {
			return stop
		}
		return nil
	})
	if err != stop || visited != 2 {
		t.Errorf("expected walk to stop after 2 nodes, visited %d, err=%v", visited, err)
	}
}

func TestDot(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	var buf bytes.Buffer
	if err := ToDot(sample(), &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT digraph header")
	}
	if strings.Count(dot, "->") != 6 {
		t.Errorf("expected 6 edges (5 children + 1 empty), got %d", strings.Count(dot, "->"))
	}
	if !strings.Contains(dot, `"1" -> "2"`) {
		t.Errorf("expected edge from root to first child")
	}
	if !strings.Contains(dot, `"nil1"`) {
		t.Errorf("expected empty node for missing child")
	}
	if !strings.Contains(dot, "#e4574b") {
		t.Errorf("expected red nodes to be filled red")
	}
}

func TestDotEscapesLabels(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	var buf bytes.Buffer
	ToDot(&Node{Label: `say "hi"`, Class: Page}, &buf)
	if !strings.Contains(buf.String(), `label="say \"hi\""`) {
		t.Errorf("expected quotes to be escaped, got %s", buf.String())
	}
}

func TestHTML(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	var buf bytes.Buffer
	if err := ToHTML(sample(), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, `<ul class="tree"><li><span class="black">5</span><ul>`) {
		t.Errorf("unexpected HTML prefix: %s", out)
	}
	if strings.Count(out, `<li class="empty">`) != 1 {
		t.Errorf("expected one empty list item")
	}
	if strings.Count(out, `<span class="red">`) != 2 {
		t.Errorf("expected two red spans")
	}
}

func TestHTMLEscapesLabels(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	var buf bytes.Buffer
	ToHTML(&Node{Label: "a<b"}, &buf)
	if !strings.Contains(buf.String(), "a&lt;b") {
		t.Errorf("expected label to be escaped, got %s", buf.String())
	}
}

func TestConsole(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	color.NoColor = true
	console := NewConsole(nil, &ConsoleConfig{LineWidth: 40, Context: uax11.LatinContext})
	var buf bytes.Buffer
	if err := console.Fprint(&buf, sample()); err != nil {
		t.Fatal(err)
	}
	expected := strings.Join([]string{
		"5",
		"├── 3",
		"│   ├── 1",
		"│   └── 4",
		"└── 8",
		"    ├── ·",
		"    └── 9",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("unexpected console output:\n%s", buf.String())
	}
}

func TestConsoleSingleNodeAndEmptyLabel(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	color.NoColor = true
	console := NewConsole(nil, &ConsoleConfig{LineWidth: 40, Context: uax11.LatinContext})
	var buf bytes.Buffer
	if err := console.Fprint(&buf, &Node{Label: "5"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "5\n" {
		t.Errorf("expected single line for one-node tree, got %q", buf.String())
	}
	buf.Reset()
	if err := console.Fprint(&buf, &Node{Children: []*Node{{Label: ""}, nil}}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\n├── \n└── ·\n" {
		t.Errorf("unexpected output for empty labels: %q", buf.String())
	}
	if labelWidth("", uax11.LatinContext) != 0 || clip("", 0, uax11.LatinContext) != "" {
		t.Errorf("expected empty label to have zero width")
	}
}

func TestConsoleClipsLongLabels(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	color.NoColor = true
	console := NewConsole(nil, &ConsoleConfig{LineWidth: 10})
	var buf bytes.Buffer
	console.Fprint(&buf, &Node{Label: "root", Children: []*Node{
		{Label: "0123456789abcdef"},
	}})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 || lines[1] != "└── 01234…" {
		t.Errorf("expected clipped label, got %q", lines)
	}
}

func TestConsoleEmpty(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	var buf bytes.Buffer
	NewConsole(nil, &ConsoleConfig{LineWidth: 10}).Fprint(&buf, nil)
	if buf.String() != "(empty)\n" {
		t.Errorf("expected empty marker, got %q", buf.String())
	}
}
