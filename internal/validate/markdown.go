package validate

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// HasMarkdownFormatting reports whether a text field parses into
// Markdown inline formatting (emphasis, links, images, code spans,
// strikethrough) or fenced code blocks.
//
// Plain scientific notation must not trip this: `[CH3]+` is not a
// link without a following `(...)`, and `_{aq}` does not satisfy
// emphasis flanking rules. Only actual formatting nodes count.
func HasMarkdownFormatting(field string) bool {
	// Cheap pre-filter before paying for a parse.
	if !strings.ContainsAny(field, "*_`[~") {
		return false
	}

	source := []byte(field)
	doc := md.Parser().Parse(text.NewReader(source))

	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindEmphasis,
			ast.KindLink,
			ast.KindImage,
			ast.KindCodeSpan,
			ast.KindFencedCodeBlock,
			extast.KindStrikethrough:
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}
