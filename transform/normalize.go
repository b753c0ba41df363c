package transform

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Normalizer re-tokenizes rule text and re-emits it in compact canonical
// form: comments are dropped, whitespace runs collapse to a single space
// and declarations are joined with single semicolons. Text the tokenizer
// cannot make sense of is returned unchanged - downstream consumers prefer
// an unnormalized rule over no rule at all.
type Normalizer struct{}

// Transform implements Transformer.
func (Normalizer) Transform(text string) string {
	input := parse.NewInput(strings.NewReader(text))
	p := css.NewParser(input, false)

	var b strings.Builder
	b.Grow(len(text))
	needSemi := false

	for {
		gt, tt, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			if errors.Is(p.Err(), io.EOF) {
				return b.String()
			}
			// Malformed input passes through untouched rather than
			// partially rewritten.
			return text

		case css.CommentGrammar:
			// dropped

		case css.AtRuleGrammar:
			b.Write(data)
			if prelude := collapseTokens(p.Values()); prelude != "" {
				b.WriteByte(' ')
				b.WriteString(prelude)
			}
			b.WriteByte(';')

		case css.BeginAtRuleGrammar:
			b.Write(data)
			if prelude := collapseTokens(p.Values()); prelude != "" {
				b.WriteByte(' ')
				b.WriteString(prelude)
			}
			b.WriteByte('{')
			needSemi = false

		case css.QualifiedRuleGrammar:
			// selector group member before a comma
			b.WriteString(collapseSelector(data, p.Values()))
			b.WriteByte(',')

		case css.BeginRulesetGrammar:
			b.WriteString(collapseSelector(data, p.Values()))
			b.WriteByte('{')
			needSemi = false

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if needSemi {
				b.WriteByte(';')
			}
			b.Write(data)
			b.WriteByte(':')
			b.WriteString(collapseTokens(p.Values()))
			needSemi = true

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			b.WriteByte('}')
			needSemi = false

		case css.TokenGrammar:
			if tt != css.WhitespaceToken && tt != css.CommentToken {
				b.Write(data)
			}
		}
	}
}

// collapseSelector rebuilds a selector from token data, collapsing
// whitespace runs to single spaces.
func collapseSelector(data []byte, values []css.Token) string {
	var b strings.Builder
	b.Write(data)
	for _, v := range values {
		b.Write(v.Data)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// collapseTokens rebuilds a token sequence skipping comments and collapsing
// whitespace, trimming the ends.
func collapseTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			if len(parts) > 0 {
				parts = append(parts, " ")
			}
		case css.CommentToken:
			// dropped
		default:
			parts = append(parts, string(t.Data))
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
