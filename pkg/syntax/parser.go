package syntax

import (
	"strings"
)

// Parse builds a tree from bracket notation. It never fails: unbalanced
// brackets are padded, and empty or malformed input yields a degenerate
// single-node tree. Topology links are not assigned; call Link on the
// result before layout.
func Parse(src string) *Node {
	src = strings.TrimSpace(balance(strings.TrimSpace(src)))
	if src == "" {
		return &Node{}
	}
	if !strings.HasPrefix(src, "[") {
		return newTerminal(src)
	}
	node, _ := parseConstituent(src)
	return node
}

// balance pads missing brackets: unmatched `]` get a `[` prefix and
// unmatched `[` get a `]` suffix, so structural parsing always sees
// balanced input.
func balance(s string) string {
	open, missing := 0, 0
	for _, r := range s {
		switch r {
		case '[':
			open++
		case ']':
			if open == 0 {
				missing++
			} else {
				open--
			}
		}
	}
	return strings.Repeat("[", missing) + s + strings.Repeat("]", open)
}

// parseConstituent parses one bracketed constituent starting at src[0] == '['
// and returns the node along with the number of bytes consumed, including
// the closing bracket.
func parseConstituent(src string) (*Node, int) {
	i := 1
	start := i
	for i < len(src) && src[i] != ' ' && src[i] != '[' && src[i] != ']' {
		i++
	}
	label := parseLabel(src[start:i])
	node := &Node{
		Text:      label.text,
		HeadLabel: label.head,
		Starred:   label.starred,
	}

	textStart := i
	flushText := func(end int) {
		if run := src[textStart:end]; strings.TrimSpace(run) != "" {
			node.Children = append(node.Children, newTerminal(run))
		}
	}

	for i < len(src) {
		switch src[i] {
		case '[':
			flushText(i)
			child, consumed := parseConstituent(src[i:])
			node.Children = append(node.Children, child)
			i += consumed
			textStart = i
		case ']':
			flushText(i)
			return node, i + 1
		default:
			i++
		}
	}

	// Unreachable for balanced input, but parsing must not fail.
	flushText(i)
	return node, i
}

// labelParts is the decomposition of a constituent label.
type labelParts struct {
	text    string
	head    string
	starred bool
}

// parseLabel strips the `^` star marker and `_name` movement-head suffix
// from a raw label. Numeric head names are re-attached to the display text
// as Unicode subscript digits; non-numeric names leave no visible suffix.
func parseLabel(raw string) labelParts {
	var p labelParts
	if strings.HasSuffix(raw, "^") {
		p.starred = true
		raw = strings.TrimSuffix(raw, "^")
	}
	if i := strings.LastIndex(raw, "_"); i >= 0 && i < len(raw)-1 {
		p.head = raw[i+1:]
		raw = raw[:i]
		if isDigits(p.head) {
			raw += subscript(p.head)
		}
	}
	p.text = raw
	return p
}

// newTerminal builds a terminal node from a raw text run, extracting the
// first `<name>` annotation as the movement-tail identifier. Whitespace
// around the annotation collapses to a single space.
func newTerminal(raw string) *Node {
	text, tail := parseTerminalText(raw)
	return &Node{Text: text, Tail: tail}
}

// parseTerminalText splits terminal text into display text and tail
// identifier. Only the first `<...>` occurrence is honored; later ones
// remain literal text.
func parseTerminalText(raw string) (text, tail string) {
	if i := strings.Index(raw, "<"); i >= 0 {
		if j := strings.Index(raw[i:], ">"); j > 0 {
			tail = raw[i+1 : i+j]
			raw = raw[:i] + " " + raw[i+j+1:]
		}
	}
	return strings.Join(strings.Fields(raw), " "), tail
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// subscript converts ASCII digits to their Unicode subscript forms
// (U+2080..U+2089).
func subscript(digits string) string {
	var b strings.Builder
	for _, r := range digits {
		b.WriteRune('₀' + (r - '0'))
	}
	return b.String()
}
