package structlog

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBinder() *Binder {
	return NewBinder(DefaultCaptureLimits(), NewTemplateCache(DefaultTemplateCacheConfig()))
}

func propertyMap(props []Property) map[string]Value {
	m := make(map[string]Value, len(props))
	for _, p := range props {
		m[p.Name] = p.Value
	}
	return m
}

func TestBindMessageTemplate_Named(t *testing.T) {
	b := newTestBinder()
	tmpl, props, ok := b.BindMessageTemplate("Hello, {Thing}!", []any{"World"})
	require.True(t, ok)
	require.Equal(t, []Property{{Name: "Thing", Value: ScalarValue{Value: "World"}}}, props)
	assert.Equal(t, "Hello, World!", tmpl.Render(propertyMap(props)))
}

func TestBindMessageTemplate_Positional(t *testing.T) {
	b := newTestBinder()
	_, props, ok := b.BindMessageTemplate("{0} and {1}", []any{"A", "B"})
	require.True(t, ok)
	assert.Equal(t, []Property{
		{Name: "0", Value: ScalarValue{Value: "A"}},
		{Name: "1", Value: ScalarValue{Value: "B"}},
	}, props)
}

func TestBindMessageTemplate_PositionalByIndex(t *testing.T) {
	b := newTestBinder()
	tmpl, props, ok := b.BindMessageTemplate("{1} before {0}, {1} again, {3} absent", []any{"A", "B", "C"})
	require.True(t, ok)
	assert.Equal(t, []Property{
		{Name: "1", Value: ScalarValue{Value: "B"}},
		{Name: "0", Value: ScalarValue{Value: "A"}},
		{Name: "3", Value: MissingValue},
	}, props)
	assert.Equal(t, "B before A, B again, <missing> absent", tmpl.Render(propertyMap(props)))
}

func TestBindMessageTemplate_MixedIsMatchedInOrder(t *testing.T) {
	b := newTestBinder()
	_, props, ok := b.BindMessageTemplate("{Name} then {0}", []any{"x", "y"})
	require.True(t, ok)
	assert.Equal(t, []Property{
		{Name: "Name", Value: ScalarValue{Value: "x"}},
		{Name: "0", Value: ScalarValue{Value: "y"}},
	}, props)
}

func TestBindMessageTemplate_CountMismatch(t *testing.T) {
	b := newTestBinder()

	t.Run("more placeholders than values", func(t *testing.T) {
		_, props, ok := b.BindMessageTemplate("{A} {B} {C}", []any{1})
		require.True(t, ok)
		assert.Equal(t, []Property{
			{Name: "A", Value: ScalarValue{Value: int64(1)}},
			{Name: "B", Value: MissingValue},
			{Name: "C", Value: MissingValue},
		}, props)
	})

	t.Run("more values than placeholders", func(t *testing.T) {
		_, props, ok := b.BindMessageTemplate("{A}", []any{1, 2, 3})
		require.True(t, ok)
		assert.Equal(t, []Property{{Name: "A", Value: ScalarValue{Value: int64(1)}}}, props)
	})

	t.Run("nil values", func(t *testing.T) {
		_, props, ok := b.BindMessageTemplate("{A}", nil)
		require.True(t, ok)
		assert.Equal(t, []Property{{Name: "A", Value: MissingValue}}, props)
	})
}

func TestBindMessageTemplate_DuplicateNamesFirstWins(t *testing.T) {
	b := newTestBinder()
	tmpl, props, ok := b.BindMessageTemplate("{A} {B} {A}", []any{1, 2})
	require.True(t, ok)
	assert.Equal(t, []Property{
		{Name: "A", Value: ScalarValue{Value: int64(1)}},
		{Name: "B", Value: ScalarValue{Value: int64(2)}},
	}, props)
	assert.Equal(t, "1 2 1", tmpl.Render(propertyMap(props)))
}

func TestBindMessageTemplate_OnePropertyPerUniqueName(t *testing.T) {
	b := newTestBinder()
	templates := map[string]int{
		"no holes":                0,
		"{A}":                     1,
		"{A} {B} {C}":             3,
		"{A} {A} {@B} {$C:x} {A}": 3,
		"{0} {1} {0}":             2,
	}
	for text, unique := range templates {
		values := make([]any, unique)
		for i := range values {
			values[i] = i
		}
		_, props, ok := b.BindMessageTemplate(text, values)
		require.True(t, ok, text)
		assert.Len(t, props, unique, text)
	}
}

func TestBindMessageTemplate_Malformed(t *testing.T) {
	b := newTestBinder()
	for _, text := range []string{"{Unclosed", "empty {}", "{bad name}", "{{", "}"} {
		tmpl, props, ok := b.BindMessageTemplate(text, []any{1})
		require.True(t, ok, text)
		assert.Empty(t, props, text)
		assert.Equal(t, text, tmpl.Text())
	}

	tmpl, props, ok := b.BindMessageTemplate("{Unclosed and {Closed}", []any{"v"})
	require.True(t, ok)
	assert.Equal(t, []Property{{Name: "Closed", Value: ScalarValue{Value: "v"}}}, props)
	assert.Equal(t, "{Unclosed and v", tmpl.Render(propertyMap(props)))
}

func TestBindMessageTemplate_EmptyTemplate(t *testing.T) {
	b := newTestBinder()
	tmpl, props, ok := b.BindMessageTemplate("", []any{1})
	assert.False(t, ok)
	assert.Nil(t, tmpl)
	assert.Nil(t, props)
	assert.EqualValues(t, 0, b.Invocations())
}

func TestBindMessageTemplate_CaptureHints(t *testing.T) {
	b := newTestBinder()
	p := person{Name: "Ada", Age: 37}
	_, props, ok := b.BindMessageTemplate("{@P} {Q} {$R}", []any{p, p, []int{1}})
	require.True(t, ok)

	assert.IsType(t, StructureValue{}, props[0].Value)
	assert.IsType(t, ScalarValue{}, props[1].Value)
	assert.Equal(t, ScalarValue{Value: "[1]"}, props[2].Value)
}

func TestBindMessageTemplate_RecoversFromPanickingValue(t *testing.T) {
	b := newTestBinder()
	assert.NotPanics(t, func() {
		tmpl, props, ok := b.BindMessageTemplate("{Bad}", []any{exploding{}})
		assert.False(t, ok)
		assert.Nil(t, tmpl)
		assert.Nil(t, props)
	})
}

func TestBindProperty(t *testing.T) {
	b := newTestBinder()
	p := person{Name: "Ada", Age: 37}

	prop, ok := b.BindProperty("P", p, true)
	require.True(t, ok)

	_, props, ok := b.BindMessageTemplate("{@P}", []any{p})
	require.True(t, ok)
	assert.Equal(t, props[0], prop)

	plain, ok := b.BindProperty("P", p, false)
	require.True(t, ok)
	_, props, _ = b.BindMessageTemplate("{P}", []any{p})
	assert.Equal(t, props[0], plain)

	_, ok = b.BindProperty("", p, false)
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		_, ok := b.BindProperty("Bad", exploding{}, false)
		assert.False(t, ok)
	})
}

func TestBinder_Invocations(t *testing.T) {
	b := newTestBinder()
	b.BindMessageTemplate("{A}", []any{1})
	b.BindProperty("A", 1, false)
	assert.EqualValues(t, 2, b.Invocations())

	var nilBinder *Binder
	assert.EqualValues(t, 0, nilBinder.Invocations())
	_, _, ok := nilBinder.BindMessageTemplate("{A}", nil)
	assert.False(t, ok)
}

func TestBinder_ConcurrentUse(t *testing.T) {
	b := newTestBinder()
	const goroutines = 32

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, props, ok := b.BindMessageTemplate("worker {Id} iteration {N}", []any{id, j})
				assert.True(t, ok)
				assert.Len(t, props, 2)
			}
		}(i)
	}
	wg.Wait()
	assert.EqualValues(t, goroutines*100, b.Invocations())
}

func TestPackageLevelBinding(t *testing.T) {
	tmpl, props, ok := BindMessageTemplate("Hello, {Thing}!", "World")
	require.True(t, ok)
	assert.Equal(t, "Hello, World!", tmpl.Render(propertyMap(props)))

	prop, ok := BindProperty("N", 3, false)
	require.True(t, ok)
	assert.Equal(t, Property{Name: "N", Value: ScalarValue{Value: int64(3)}}, prop)
}

func TestSelfLog_ReportsSurplusValues(t *testing.T) {
	var buf bytes.Buffer
	EnableSelfLog(&buf)
	t.Cleanup(DisableSelfLog)

	b := newTestBinder()
	_, _, ok := b.BindMessageTemplate("{A}", []any{1, 2})
	require.True(t, ok)
	assert.Contains(t, buf.String(), "uses 1 of 2 supplied values")

	// an index past a skipped value does not count the skipped one as used
	buf.Reset()
	_, props, ok := b.BindMessageTemplate("{1}", []any{"skipped", "bound"})
	require.True(t, ok)
	assert.Equal(t, []Property{{Name: "1", Value: ScalarValue{Value: "bound"}}}, props)
	assert.Contains(t, buf.String(), "uses 1 of 2 supplied values")

	buf.Reset()
	b.BindMessageTemplate("{1} {0} {1}", []any{"a", "b"})
	assert.Empty(t, buf.String())

	buf.Reset()
	b.BindMessageTemplate("{Bad}", []any{exploding{}})
	assert.Contains(t, buf.String(), "boom")
}
