package bintree

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	tree := perfectTreeWithOneLevel()
	tree.Left().SetLeft("d")
	var buf bytes.Buffer
	if err := Tree2Dot(tree, &buf); err != nil {
		t.Fatal(err.Error())
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a DOT digraph, got %q", dot)
	}
	for _, expected := range []string{
		`"1" [label="a" ,style=filled,color=black,fillcolor="#a3d7e4",shape=circle];`,
		`"4" [label="d" ,style=filled,shape=box];`,
		`"1" -> "2";`,
		`"1" -> "3";`,
		`"2" -> "4";`,
		`"2" -> "nil1";`,
	} {
		if !strings.Contains(dot, expected) {
			t.Errorf("expected DOT output to contain %s", expected)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestTree2DotReportsWriteErrors(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	if err := Tree2Dot(New(1), failingWriter{}); err == nil {
		t.Errorf("expected write error to be returned")
	}
}
