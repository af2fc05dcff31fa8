package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	branchPipe = "│   "
	branchNone = "    "
)

// TreeRenderer renders shadow node trees.
type TreeRenderer struct {
	theme   *Theme
	session *shadow.Session

	// ShowProperties adds the changed properties and signal handlers
	// under each widget.
	ShowProperties bool
}

// NewTreeRenderer creates a new TreeRenderer.
func NewTreeRenderer(theme *Theme, session *shadow.Session) *TreeRenderer {
	return &TreeRenderer{theme: theme, session: session}
}

// Render renders every toplevel with a header.
func (r *TreeRenderer) Render(title string, toplevels []*shadow.Node) string {
	header := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconTree), r.theme.Title.Render(title))
	if len(toplevels) == 0 {
		return header + "\n" + r.theme.Subtle.Render("No widgets")
	}

	parts := []string{header}
	for _, top := range toplevels {
		parts = append(parts, r.RenderNode(top))
	}
	return strings.Join(parts, "\n")
}

// RenderNode renders the subtree rooted at n.
func (r *TreeRenderer) RenderNode(n *shadow.Node) string {
	var b strings.Builder
	b.WriteString(r.nodeLine(n))
	b.WriteByte('\n')
	r.renderBody(&b, n, "")
	return strings.TrimRight(b.String(), "\n")
}

func (r *TreeRenderer) nodeLine(n *shadow.Node) string {
	line := r.theme.WidgetName.Render(n.Name()) + " " + r.theme.ClassName.Render(n.Class().Name)
	if n.IsInternal() {
		line += " " + r.theme.MutedBadge("internal "+n.Internal())
	}
	return line
}

type treeEntry struct {
	line  string
	child *shadow.Node
}

func (r *TreeRenderer) renderBody(b *strings.Builder, n *shadow.Node, prefix string) {
	var entries []treeEntry
	if r.ShowProperties {
		for _, line := range r.detailLines(n) {
			entries = append(entries, treeEntry{line: line})
		}
	}
	if n.Object() != nil {
		for _, obj := range n.Adaptor().Children(n.Object()) {
			if child := r.session.NodeForObject(obj); child != nil {
				entries = append(entries, treeEntry{line: r.nodeLine(child), child: child})
				continue
			}
			if r.session.Toolkit().IsPlaceholder(obj) {
				entries = append(entries, treeEntry{line: r.theme.Placeholder.Render("<placeholder>")})
			}
		}
	}

	for i, e := range entries {
		branch, indent := branchMid, branchPipe
		if i == len(entries)-1 {
			branch, indent = branchLast, branchNone
		}
		b.WriteString(r.theme.Branch.Render(prefix + branch))
		b.WriteString(e.line)
		b.WriteByte('\n')
		if e.child != nil {
			r.renderBody(b, e.child, prefix+indent)
		}
	}
}

func (r *TreeRenderer) detailLines(n *shadow.Node) []string {
	var lines []string
	for _, p := range n.Properties() {
		if p.IsOriginalDefault() || !p.Enabled() {
			continue
		}
		lines = append(lines, r.prop(p.ID(), r.formatValue(p)))
	}
	for _, p := range n.PackingProperties() {
		if p.IsOriginalDefault() {
			continue
		}
		lines = append(lines, r.prop("packing:"+p.ID(), r.formatValue(p)))
	}
	for _, sig := range n.Signals().All() {
		lines = append(lines, r.prop("signal:"+sig.Name, sig.Handler))
	}
	return lines
}

func (r *TreeRenderer) prop(key, value string) string {
	return r.theme.PropKey.Render(key+"=") + r.theme.PropValue.Render(value)
}

// formatValue renders object references by widget name.
func (r *TreeRenderer) formatValue(p *shadow.Property) string {
	v := p.Value()
	switch val := v.(type) {
	case []entity.Object:
		names := make([]string, 0, len(val))
		for _, obj := range val {
			names = append(names, r.objectName(obj))
		}
		return "[" + strings.Join(names, " ") + "]"
	case entity.Object:
		return r.objectName(val)
	}
	return entity.FormatValue(v)
}

func (r *TreeRenderer) objectName(obj entity.Object) string {
	if n := r.session.NodeForObject(obj); n != nil {
		return n.Name()
	}
	return "?"
}
