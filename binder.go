package structlog

import (
	"sync"

	"go.uber.org/atomic"
)

// Binder binds message templates and values into properties. It is safe
// for concurrent use.
type Binder struct {
	cache       *TemplateCache
	capturer    capturer
	invocations atomic.Int64
}

// NewBinder returns a binder applying limits. cache may be nil.
func NewBinder(limits CaptureLimits, cache *TemplateCache) *Binder {
	return &Binder{
		cache:    cache,
		capturer: newCapturer(limits),
	}
}

// Invocations returns how many bind operations the binder has performed.
func (b *Binder) Invocations() int64 {
	if b == nil {
		return 0
	}
	return b.invocations.Load()
}

// BindMessageTemplate parses template and binds values to its placeholders.
//
// When every placeholder is positional ({0}, {1}...) values are matched by
// index. Otherwise distinct placeholder names are matched to values in order
// of first appearance; a repeated name reuses its first binding. Placeholders
// without a value are bound to MissingValue and surplus values are ignored.
// Properties are unique by name, first bound wins.
//
// ok is false, with no output, only when template is empty. Binding never
// panics.
func (b *Binder) BindMessageTemplate(template string, values []any) (tmpl *Template, props []Property, ok bool) {
	if b == nil || template == "" {
		return nil, nil, false
	}
	b.invocations.Inc()

	defer func() {
		if r := recover(); r != nil {
			selfLogf("binding template %q failed: %v", template, r)
			tmpl, props, ok = nil, nil, false
		}
	}()

	tmpl = b.cache.Parse(template)
	return tmpl, b.bindProperties(tmpl, values), true
}

// BindProperty captures a single value under name using the same rules as
// BindMessageTemplate. ok is false when name is empty.
func (b *Binder) BindProperty(name string, value any, destructure bool) (prop Property, ok bool) {
	if b == nil || name == "" {
		return Property{}, false
	}
	b.invocations.Inc()

	defer func() {
		if r := recover(); r != nil {
			selfLogf("binding property %q failed: %v", name, r)
			prop, ok = Property{}, false
		}
	}()

	hint := CaptureDefault
	if destructure {
		hint = CaptureDestructure
	}
	return Property{Name: name, Value: b.capturer.capture(value, hint, 0)}, true
}

func (b *Binder) bindProperties(tmpl *Template, values []any) []Property {
	tokens := tmpl.properties
	if len(tokens) == 0 {
		if len(values) > 0 {
			selfLogf("template %q has no placeholders but %d values were supplied", tmpl.text, len(values))
		}
		return nil
	}
	if tmpl.allPositional {
		return b.bindPositional(tmpl, values)
	}
	return b.bindNamed(tmpl, values)
}

func (b *Binder) bindPositional(tmpl *Template, values []any) []Property {
	props := make([]Property, 0, len(tmpl.properties))
	seen := make(map[string]struct{}, len(tmpl.properties))
	used := make(map[int]struct{}, len(tmpl.properties))
	for _, tok := range tmpl.properties {
		if _, ok := seen[tok.Name]; ok {
			continue
		}
		seen[tok.Name] = struct{}{}

		idx, _ := tok.Position()
		if idx >= len(values) {
			props = append(props, Property{Name: tok.Name, Value: MissingValue})
			continue
		}
		used[idx] = struct{}{}
		props = append(props, Property{Name: tok.Name, Value: b.capturer.capture(values[idx], tok.Hint, 0)})
	}
	if len(used) < len(values) {
		selfLogf("template %q uses %d of %d supplied values", tmpl.text, len(used), len(values))
	}
	return props
}

func (b *Binder) bindNamed(tmpl *Template, values []any) []Property {
	props := make([]Property, 0, len(tmpl.properties))
	seen := make(map[string]struct{}, len(tmpl.properties))
	next := 0
	for _, tok := range tmpl.properties {
		if _, ok := seen[tok.Name]; ok {
			continue
		}
		seen[tok.Name] = struct{}{}

		if next >= len(values) {
			props = append(props, Property{Name: tok.Name, Value: MissingValue})
			continue
		}
		props = append(props, Property{Name: tok.Name, Value: b.capturer.capture(values[next], tok.Hint, 0)})
		next++
	}
	if next < len(values) {
		selfLogf("template %q uses %d of %d supplied values", tmpl.text, next, len(values))
	}
	return props
}

var defaultBinder = sync.OnceValue(func() *Binder {
	return NewBinder(DefaultCaptureLimits(), NewTemplateCache(DefaultTemplateCacheConfig()))
})

// BindMessageTemplate binds with a package-wide default binder.
func BindMessageTemplate(template string, values ...any) (*Template, []Property, bool) {
	return defaultBinder().BindMessageTemplate(template, values)
}

// BindProperty binds with a package-wide default binder.
func BindProperty(name string, value any, destructure bool) (Property, bool) {
	return defaultBinder().BindProperty(name, value, destructure)
}
