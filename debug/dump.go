// Package debug prints document trees for inspection.
package debug

import (
	"fmt"
	"io"
	"strings"

	"github.com/kortschak/utter"

	"github.com/treemark/treemark/doc"
)

// DumpNodes writes a readable outline of the tree to w, one line per node.
func DumpNodes(nodes []*doc.Node, w io.Writer) error {
	for _, n := range nodes {
		if err := dumpNode(n, w, 0); err != nil {
			return err
		}
	}
	return nil
}

func dumpNode(n *doc.Node, w io.Writer, indent int) error {
	pad := strings.Repeat("  ", indent)
	if n == nil {
		_, err := fmt.Fprintln(w, pad+"<nil>")
		return err
	}

	if _, err := fmt.Fprintf(w, "%s%s%s\n", pad, n.Kind, attrSummary(n.Attrs)); err != nil {
		return err
	}

	switch c := n.Content.(type) {
	case nil:
	case string:
		if _, err := fmt.Fprintf(w, "%s  %q\n", pad, c); err != nil {
			return err
		}
	case *doc.Node:
		if err := dumpNode(c, w, indent+1); err != nil {
			return err
		}
	case []any:
		for _, item := range c {
			switch t := item.(type) {
			case *doc.Node:
				if err := dumpNode(t, w, indent+1); err != nil {
					return err
				}
			default:
				if _, err := fmt.Fprintf(w, "%s  %q\n", pad, doc.ValueString(t)); err != nil {
					return err
				}
			}
		}
	default:
		if _, err := fmt.Fprintf(w, "%s  %s\n", pad, utter.Sdump(c)); err != nil {
			return err
		}
	}

	for _, child := range n.Children {
		if err := dumpNode(child, w, indent+1); err != nil {
			return err
		}
	}
	return nil
}

func attrSummary(attrs doc.Attrs) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = fmt.Sprintf("%s=%s", a.Key, doc.ValueString(a.Value))
	}
	return " [" + strings.Join(parts, " ") + "]"
}
