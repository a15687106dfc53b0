package markdown

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/goliatone/go-articles/internal/textutil"
)

// imageRenderer replaces goldmark's image output so non-absolute references
// are rewritten against the entry's image base URL at render time. Raw HTML
// images bypass Markdown syntax entirely and are handled by the post-render
// pass instead.
type imageRenderer struct {
	imageBaseURL string
}

func newImageRenderer(imageBaseURL string) renderer.NodeRenderer {
	return &imageRenderer{imageBaseURL: imageBaseURL}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *imageRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindImage, r.renderImage)
}

func (r *imageRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)

	dest := string(n.Destination)
	if !IsAbsoluteURL(dest) {
		dest = r.imageBaseURL + NormalizeRelativePath(dest)
	}

	// Alt and title arrive unescaped from the parser.
	_, _ = w.WriteString(`<img src="`)
	_, _ = w.WriteString(textutil.EscapeHTML(dest))
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.WriteString(textutil.EscapeHTML(plainText(n, source)))
	_ = w.WriteByte('"')
	if len(n.Title) > 0 {
		_, _ = w.WriteString(` title="`)
		_, _ = w.WriteString(textutil.EscapeHTML(string(n.Title)))
		_ = w.WriteByte('"')
	}
	_, _ = w.WriteString(">")

	return ast.WalkSkipChildren, nil
}

// plainText flattens the node's inline children to their text content.
func plainText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
