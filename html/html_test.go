package html

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRender(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := bintree.New("a")
	tree.SetLeft("b")
	tree.SetRight("c")
	var buf bytes.Buffer
	if err := Render(tree, &buf); err != nil {
		t.Fatal(err.Error())
	}
	expected := `<ul class="bintree"><li class="root">a<ul><li class="left">b</li><li class="right">c</li></ul></li></ul>`
	if buf.String() != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, buf.String())
	}
	buf.Reset()
	if err := Render[int](nil, &buf); err != nil {
		t.Fatal(err.Error())
	}
	if buf.String() != `<ul class="bintree"></ul>` {
		t.Errorf("expected empty list for absent tree, got %s", buf.String())
	}
}

func TestRenderEscapesValues(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var buf bytes.Buffer
	if err := Render(bintree.New("<b>&"), &buf); err != nil {
		t.Fatal(err.Error())
	}
	if !strings.Contains(buf.String(), "&lt;b&gt;&amp;") {
		t.Errorf("expected value to be escaped, got %s", buf.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := bintree.New("a")
	tree.SetLeft("b").SetLeft("d")
	tree.SetRight("c").SetRight("g & h")
	var buf bytes.Buffer
	if err := Render(tree, &buf); err != nil {
		t.Fatal(err.Error())
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !bintree.Equal(parsed, tree) {
		t.Errorf("expected parsed tree to equal original, got\n%s", bintree.Format(parsed))
	}
}

func TestParseKeepsWhiteSpaceOfRenderedValues(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := bintree.New(" a ")
	tree.SetLeft("b\tc")
	tree.SetRight("  ")
	var buf bytes.Buffer
	if err := Render(tree, &buf); err != nil {
		t.Fatal(err.Error())
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !bintree.Equal(parsed, tree) {
		t.Errorf("expected white space to survive, got %q, %q, %q",
			parsed.Value(), parsed.Left().Value(), parsed.Right().Value())
	}
}

func TestParseUnclassedItems(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := `<p>Tree:</p>
	<ul>
	  <li>1
	    <ul>
	      <li>2</li>
	      <li>3</li>
	    </ul>
	  </li>
	</ul>`
	parsed, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err.Error())
	}
	if !bintree.Equal(parsed, bintree.Rebuild([]string{"1", "2", "3"})) {
		t.Errorf("unexpected tree\n%s", bintree.Format(parsed))
	}
}

func TestParseRejectsMalformedLists(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, input := range []string{
		`<p>no list</p>`,
		`<ul><li>a</li><li>b</li></ul>`,
		`<ul><li>a<ul><li>b</li><li>c</li><li>d</li></ul></li></ul>`,
		`<ul><li>a<ul><li class="right">b</li><li class="right">c</li></ul></li></ul>`,
	} {
		if _, err := Parse(strings.NewReader(input)); !errors.Is(err, bintree.ErrIllegalArguments) {
			t.Errorf("expected ErrIllegalArguments for %q, got %v", input, err)
		}
	}
	if _, err := Parse(nil); !errors.Is(err, bintree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil reader, got %v", err)
	}
}

func TestParseEmptyList(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	parsed, err := Parse(strings.NewReader(`<ul class="bintree"></ul>`))
	if err != nil || parsed != nil {
		t.Errorf("expected absent tree without error, got %v, %v", parsed, err)
	}
}
