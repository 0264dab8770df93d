package docparse

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/declspec/oas"
)

// operationKeys are the doc comment block keys treated as HTTP methods.
// Extension keys carry their own "x-" prefix and are matched separately.
var operationKeys = map[string]bool{
	"get":     true,
	"put":     true,
	"post":    true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
	"trace":   true,
}

// OperationsFromDoc parses the operations declared in a doc comment's YAML
// block. The block starts at the first line whose content begins with "---"
// and runs to the end of the comment. Keys naming HTTP methods decode into
// operations; "x-" keys are kept when their values decode as operations and
// dropped otherwise; everything else is ignored. Returns nil when the
// comment has no block or the block declares no operations.
func OperationsFromDoc(doc string) (map[string]*oas.Operation, error) {
	block := yamlBlock(doc)
	if block == "" {
		return nil, nil
	}
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return nil, fmt.Errorf("docparse: invalid operations block: %w", err)
	}
	operations := make(map[string]*oas.Operation, len(raw))
	for key, node := range raw {
		isMethod := operationKeys[key]
		if !isMethod && !strings.HasPrefix(key, "x-") {
			continue
		}
		op := new(oas.Operation)
		if err := node.Decode(op); err != nil {
			if isMethod {
				return nil, fmt.Errorf("docparse: decoding %s operation: %w", key, err)
			}
			// Scalar extensions have no operation shape to carry.
			continue
		}
		operations[key] = op
	}
	if len(operations) == 0 {
		return nil, nil
	}
	return operations, nil
}

// DescriptionFromDoc returns the doc comment text above the operations
// marker, dedented and trimmed. Comments without a marker return whole.
func DescriptionFromDoc(doc string) string {
	trimmed := trimDoc(doc)
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "---") {
			return dedent(strings.Join(lines[:i], "\n"))
		}
	}
	return trimmed
}

// yamlBlock cuts the operations block out of a doc comment. The marker line
// itself stays in the result; YAML reads a bare "---" as a document start.
func yamlBlock(doc string) string {
	lines := strings.Split(trimDoc(doc), "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "---") {
			return dedent(strings.Join(lines[i:], "\n"))
		}
	}
	return ""
}

// trimDoc normalizes a raw doc comment: tabs expand to spaces, the common
// leading indent comes off every line, and trailing whitespace goes. Go doc
// comments indent block content with a tab, which YAML forbids, so the
// expansion has to happen before any parsing.
func trimDoc(doc string) string {
	if strings.TrimSpace(doc) == "" {
		return ""
	}
	lines := strings.Split(expandTabs(doc), "\n")
	indent := -1
	for _, line := range lines {
		stripped := strings.TrimLeft(line, " ")
		if stripped == "" {
			continue
		}
		if n := len(line) - len(stripped); indent == -1 || n < indent {
			indent = n
		}
	}
	out := make([]string, len(lines))
	out[0] = strings.TrimLeft(lines[0], " ")
	for i, line := range lines[1:] {
		if indent > 0 && len(line) >= indent {
			line = line[indent:]
		}
		out[i+1] = strings.TrimRight(line, " ")
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// dedent strips the indent shared by every line after the first. The first
// line is excluded because splitting a comment at the marker leaves it
// already flush.
func dedent(content string) string {
	lines := strings.Split(content, "\n")
	indent := -1
	for _, line := range lines[1:] {
		stripped := strings.TrimLeft(line, " ")
		if stripped == "" {
			continue
		}
		if n := len(line) - len(stripped); indent == -1 || n < indent {
			indent = n
		}
	}
	if indent > 0 {
		prefix := strings.Repeat(" ", indent)
		for i, line := range lines {
			lines[i] = strings.TrimPrefix(line, prefix)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// expandTabs replaces tabs with spaces, advancing to the next multiple of
// eight the way terminals and Python's expandtabs do. Column-aware so that
// mixed indentation keeps its alignment.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := 8 - col%8
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
