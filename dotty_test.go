package intervals

import (
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	tree := buildTree()
	var sb strings.Builder
	Tree2Dot(tree, &sb)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("malformed DOT output:\n%s", out)
	}
	if !strings.Contains(out, "[15, 18]") {
		t.Errorf("root interval missing from DOT output:\n%s", out)
	}
}

func TestPrint(t *testing.T) {
	var sb strings.Builder
	New[int, int]().Print(&sb)
	if sb.String() != "·\n" {
		t.Errorf("unexpected empty-tree dump %q", sb.String())
	}
	sb.Reset()
	buildTree().Print(&sb)
	if !strings.Contains(sb.String(), "[15, 18]") {
		t.Errorf("root interval missing from dump:\n%s", sb.String())
	}
}
