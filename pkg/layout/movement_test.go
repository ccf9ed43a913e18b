package layout

import (
	"testing"

	"github.com/syntree-dev/syntree/pkg/syntax"
)

func resolveSource(t *testing.T, src string) (*syntax.Node, []*Movement) {
	t.Helper()
	cfg := DefaultConfig()
	root := syntax.Parse(src)
	root.Link()
	testEngine(cfg).Layout(root)
	return root, ResolveMovements(root, cfg)
}

func TestResolveWhMovement(t *testing.T) {
	root, links := resolveSource(t,
		"[CP [NP_1 what] [C' [C did] [S [NP you] [VP [V see] [NP <1>]]]]]")

	if len(links) != 1 {
		t.Fatalf("len(links) = %d, want 1", len(links))
	}
	l := links[0]
	if !l.Drawable {
		t.Fatal("link must be drawable")
	}
	if l.LCA != root {
		t.Errorf("LCA = %q, want the root", l.LCA.Text)
	}
	// The head's subtree comes before the tail's under the LCA, so the
	// curve swings leftwards.
	if l.Dir != Leftwards {
		t.Errorf("Dir = %v, want Leftwards", l.Dir)
	}

	head := root.FindHead("1")
	if l.DestX != head.X || l.DestY != head.MaxY {
		t.Errorf("dest = (%v, %v), want head position (%v, %v)",
			l.DestX, l.DestY, head.X, head.MaxY)
	}
	if l.Clearance < head.MaxY {
		t.Errorf("Clearance = %v, must be at least head.MaxY %v", l.Clearance, head.MaxY)
	}
	if l.BottomY != l.Clearance+DefaultConfig().VSpace {
		t.Errorf("BottomY = %v, want Clearance + VSpace", l.BottomY)
	}
}

func TestResolveDirectionRightwards(t *testing.T) {
	root, links := resolveSource(t, "[S [NP t <1>] [VP_1 moved]]")

	if len(links) != 1 || !links[0].Drawable {
		t.Fatal("expected one drawable link")
	}
	l := links[0]
	if l.LCA != root {
		t.Errorf("LCA = %q, want the root", l.LCA.Text)
	}
	if l.Dir != Rightwards {
		t.Errorf("Dir = %v, want Rightwards", l.Dir)
	}
}

func TestResolveHeadDominatesTail(t *testing.T) {
	_, links := resolveSource(t, "[NP_1 t <1>]")

	if len(links) != 1 {
		t.Fatalf("len(links) = %d, want 1", len(links))
	}
	if links[0].Drawable {
		t.Error("a head dominating its own tail must not be drawable")
	}
}

func TestResolveUnmatchedTail(t *testing.T) {
	_, links := resolveSource(t, "[S [NP t <9>]]")

	if len(links) != 1 {
		t.Fatalf("len(links) = %d, want 1", len(links))
	}
	l := links[0]
	if l.Head != nil {
		t.Errorf("Head = %v, want nil", l.Head)
	}
	if l.Drawable {
		t.Error("an unmatched tail must not be drawable")
	}
}

func TestResolveMultipleLinksAreIsolated(t *testing.T) {
	// Two links crossing the same spine must resolve independently.
	_, links := resolveSource(t,
		"[CP [NP_1 who] [C' [C_2 did] [S [NP you] [VP <2> [V ask] [NP <1>]]]]]")

	if len(links) != 2 {
		t.Fatalf("len(links) = %d, want 2", len(links))
	}
	for i, l := range links {
		if !l.Drawable {
			t.Errorf("link %d must be drawable", i)
		}
	}
	if links[0].Tail.Tail != "2" || links[1].Tail.Tail != "1" {
		t.Errorf("tails resolved in wrong order: %q, %q",
			links[0].Tail.Tail, links[1].Tail.Tail)
	}
}

func TestClearanceScansInterveningSubtrees(t *testing.T) {
	// The curve from the trace back to "what" must clear the subtree under
	// V, which reaches the tree's maximum depth.
	root, links := resolveSource(t,
		"[CP [NP_1 what] [C' [C did] [S [NP you] [VP [V see] [NP <1>]]]]]")

	if links[0].Clearance != root.MaxY {
		t.Errorf("Clearance = %v, want root.MaxY %v", links[0].Clearance, root.MaxY)
	}
	if !NeedsExtraHeight(links, root) {
		t.Error("a curve bottoming out at max depth needs extra canvas height")
	}
}

func TestNoExtraHeightForShallowLink(t *testing.T) {
	// The movement stays in the shallow left part of the tree; the PP on
	// the right is deeper and untouched by the scan.
	root, links := resolveSource(t,
		"[S [NP_1 what] [VP t <1>] [PP [P with] [NP the dog]]]")

	if len(links) != 1 || !links[0].Drawable {
		t.Fatal("expected one drawable link")
	}
	if links[0].Clearance >= root.MaxY {
		t.Errorf("Clearance = %v, want less than root.MaxY %v", links[0].Clearance, root.MaxY)
	}
	if NeedsExtraHeight(links, root) {
		t.Error("shallow link must not request extra canvas height")
	}
}

func TestDirectionAccessors(t *testing.T) {
	if Rightwards.String() != "right" || Leftwards.String() != "left" {
		t.Error("Direction.String() mismatch")
	}
	if Rightwards.Sign() != 1 || Leftwards.Sign() != -1 {
		t.Error("Direction.Sign() mismatch")
	}
}
