package scope

import (
	"go.uber.org/zap"

	"stylec/css"
)

// resetRules is the fixed set of base rules registered by Reset, in
// registration order.
var resetRules = []struct {
	selector string
	style    css.Style
}{
	{"*,*::before,*::after", css.Style{"boxSizing": "border-box"}},
	{"html", css.Style{"WebkitTextSizeAdjust": "100%", "lineHeight": "1.15"}},
	{"body", css.Style{"margin": 0, "padding": 0}},
	{"h1,h2,h3,h4,h5,h6,p,figure,blockquote,dl,dd", css.Style{"margin": 0}},
	{"img,picture,video,canvas,svg", css.Style{"display": "block", "maxWidth": "100%"}},
	{"input,button,textarea,select", css.Style{"font": "inherit"}},
	{"a", css.Style{"color": "inherit", "textDecoration": "none"}},
}

// Reset registers the fixed base rule set through Global and returns the
// scope for chaining. Calling it twice is idempotent apart from debug
// logging, since globals merge in place.
func (s *Scope) Reset() *Scope {
	for _, r := range resetRules {
		s.Global(r.selector, r.style)
	}
	s.log.Debug("reset rules registered", zap.Int("rules", len(resetRules)))
	return s
}
