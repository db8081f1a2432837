package structlog

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// CaptureHint selects how a property value is captured.
type CaptureHint int

const (
	// CaptureDefault keeps scalars as scalars, sequences as sequences and
	// stringifies other composites.
	CaptureDefault CaptureHint = iota
	// CaptureDestructure ({@Name}) captures the structure of composite values.
	CaptureDestructure
	// CaptureStringify ({$Name}) always captures the fmt.Sprint form.
	CaptureStringify
)

func (h CaptureHint) String() string {
	switch h {
	case CaptureDestructure:
		return "@"
	case CaptureStringify:
		return "$"
	}
	return ""
}

// Token is one element of a parsed Template: a TextToken or a PropertyToken.
type Token interface {
	// RawText is the exact source text the token was parsed from.
	RawText() string
	token()
}

// TextToken is a literal span. Escaped braces are already unescaped in Text.
type TextToken struct {
	Text string
}

func (t TextToken) RawText() string {
	return strings.NewReplacer("{", "{{", "}", "}}").Replace(t.Text)
}

func (TextToken) token() {}

// PropertyToken is a placeholder such as {Name}, {@Name}, {0} or
// {Name,-10:format}.
type PropertyToken struct {
	Name      string
	Hint      CaptureHint
	Format    string
	Alignment int // 0 means none; negative pads on the right
	Raw       string
}

func (p PropertyToken) RawText() string { return p.Raw }

func (PropertyToken) token() {}

// Position returns the index of a positional placeholder ({0}, {1}...) and
// false for named placeholders.
func (p PropertyToken) Position() (int, bool) {
	if p.Name == "" {
		return 0, false
	}
	for i := 0; i < len(p.Name); i++ {
		if p.Name[i] < '0' || p.Name[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(p.Name)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Template is a parsed message template. It is immutable and safe to share
// between goroutines.
type Template struct {
	text          string
	tokens        []Token
	properties    []PropertyToken
	allPositional bool
}

// ParseTemplate parses text into literal and property tokens. It never
// fails: unterminated braces, empty names, invalid names and invalid
// alignments are kept as literal text. Parsing is deterministic.
func ParseTemplate(text string) *Template {
	t := &Template{text: text}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.tokens = append(t.tokens, TextToken{Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		switch c := text[i]; c {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			end, prop, ok := parsePropertyToken(text, i)
			if ok {
				flush()
				t.tokens = append(t.tokens, prop)
				t.properties = append(t.properties, prop)
			} else {
				lit.WriteString(text[i:end])
			}
			i = end
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				i += 2
			} else {
				i++
			}
			lit.WriteByte('}')
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()

	t.allPositional = len(t.properties) > 0
	for _, p := range t.properties {
		if _, ok := p.Position(); !ok {
			t.allPositional = false
			break
		}
	}
	return t
}

// parsePropertyToken parses the placeholder opening at text[start]. It
// returns the offset parsing resumes from; when ok is false the bytes
// text[start:end] are literal.
func parsePropertyToken(text string, start int) (end int, prop PropertyToken, ok bool) {
	j := start + 1
	for j < len(text) && text[j] != '}' && text[j] != '{' {
		j++
	}
	if j == len(text) {
		return j, prop, false
	}
	if text[j] == '{' {
		return j, prop, false
	}

	raw := text[start : j+1]
	prop, ok = parsePropertyContent(text[start+1 : j])
	prop.Raw = raw
	return j + 1, prop, ok
}

func parsePropertyContent(content string) (PropertyToken, bool) {
	var prop PropertyToken
	if content == "" {
		return prop, false
	}

	switch content[0] {
	case '@':
		prop.Hint = CaptureDestructure
		content = content[1:]
	case '$':
		prop.Hint = CaptureStringify
		content = content[1:]
	}

	if i := strings.IndexByte(content, ':'); i >= 0 {
		prop.Format = content[i+1:]
		content = content[:i]
		if prop.Format == "" {
			return prop, false
		}
	}

	if i := strings.IndexByte(content, ','); i >= 0 {
		alignment, err := strconv.Atoi(content[i+1:])
		if err != nil || alignment == 0 {
			return prop, false
		}
		prop.Alignment = alignment
		content = content[:i]
	}

	if !validPropertyName(content) {
		return prop, false
	}
	prop.Name = content
	return prop, true
}

func validPropertyName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c != '_' && (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// Text returns the source string.
func (t *Template) Text() string {
	if t == nil {
		return ""
	}
	return t.text
}

// Tokens returns a copy of the token sequence.
func (t *Template) Tokens() []Token {
	if t == nil {
		return nil
	}
	return append([]Token(nil), t.tokens...)
}

// PropertyTokens returns a copy of the property tokens in template order.
func (t *Template) PropertyTokens() []PropertyToken {
	if t == nil {
		return nil
	}
	return append([]PropertyToken(nil), t.properties...)
}

func (t *Template) String() string { return t.Text() }

// Render writes the template with property values substituted. Placeholders
// without a value are rendered as their source text.
func (t *Template) Render(properties map[string]Value) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	t.render(&b, func(name string) (Value, bool) {
		v, ok := properties[name]
		return v, ok
	})
	return b.String()
}

func (t *Template) render(b *strings.Builder, lookup func(string) (Value, bool)) {
	for _, tok := range t.tokens {
		switch tok := tok.(type) {
		case TextToken:
			b.WriteString(tok.Text)
		case PropertyToken:
			v, ok := lookup(tok.Name)
			if !ok || v == nil {
				b.WriteString(tok.Raw)
				continue
			}
			if tok.Alignment == 0 {
				v.render(b, tok.Format, false)
				continue
			}
			var vb strings.Builder
			v.render(&vb, tok.Format, false)
			writeAligned(b, vb.String(), tok.Alignment)
		}
	}
}

func writeAligned(b *strings.Builder, s string, alignment int) {
	width := alignment
	if width < 0 {
		width = -width
	}
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		b.WriteString(s)
		return
	}
	if alignment > 0 {
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(s)
		return
	}
	b.WriteString(s)
	b.WriteString(strings.Repeat(" ", pad))
}
