// Package dot exports the parse tree as Graphviz DOT and renders it with
// the embedded Graphviz engine. This is a structural debugging view: node
// positions come from Graphviz's own layered layout, not from the metric
// layout engine.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/syntree-dev/syntree/pkg/syntax"
)

// ToDOT converts a parse tree to DOT. Constituents render as plain text
// nodes, terminals as boxes, and resolved movement pairs as dashed
// constraint edges from tail to head.
func ToDOT(root *syntax.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph syntree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"Helvetica\", fontsize=14];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	ids := make(map[*syntax.Node]string)
	i := 0
	root.Walk(func(n *syntax.Node) {
		ids[n] = fmt.Sprintf("n%d", i)
		i++
		attrs := []string{fmt.Sprintf("label=%q", n.Text)}
		if n.IsLeaf() {
			attrs = append(attrs, "shape=box", "style=filled", "fillcolor=\"#f5f5f5\"")
		} else {
			attrs = append(attrs, "shape=none")
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", ids[n], strings.Join(attrs, ", "))
	})

	buf.WriteString("\n")
	root.Walk(func(n *syntax.Node) {
		for _, c := range n.Children {
			fmt.Fprintf(&buf, "  %s -> %s;\n", ids[n], ids[c])
		}
	})

	for _, tail := range root.Tails() {
		head := root.FindHead(tail.Tail)
		if head == nil {
			continue
		}
		fmt.Fprintf(&buf, "  %s -> %s [style=dashed, constraint=false, arrowhead=normal, color=\"#606060\"];\n",
			ids[tail], ids[head])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
