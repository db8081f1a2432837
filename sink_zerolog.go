package structlog

import (
	"time"

	"github.com/rs/zerolog"
)

// ZerologSink writes events as zerolog entries. The rendered message goes
// to the message field, the template text to "message_template" and the
// properties to a nested "properties" object. An attached error is
// enriched with its cause chain.
type ZerologSink struct {
	logger     zerolog.Logger
	timestamps bool
}

// NewZerologSink wraps logger. When timestamps is true the event timestamp
// is written to zerolog.TimestampFieldName.
func NewZerologSink(logger zerolog.Logger, timestamps bool) *ZerologSink {
	return &ZerologSink{logger: logger, timestamps: timestamps}
}

// Emit never exits the process, including for LevelFatal.
func (s *ZerologSink) Emit(ev *Event) {
	if s == nil || ev == nil {
		return
	}
	e := s.event(ev.Level())
	if e == nil {
		return
	}
	if s.timestamps {
		e.Time(zerolog.TimestampFieldName, ev.Timestamp())
	}
	e.Str(fieldMessageTemplate, ev.MessageTemplate())
	if err := ev.Err(); err != nil {
		appendErrorChain(e, zerolog.ErrorFieldName, err)
	}
	if ev.TraceID() != emptyString {
		e.Str(fieldTraceID, ev.TraceID())
	}
	if ev.SpanID() != emptyString {
		e.Str(fieldSpanID, ev.SpanID())
	}
	if props := ev.Properties(); len(props) > 0 {
		e.Object(fieldProperties, zerologFields(props))
	}
	e.Msg(ev.RenderMessage())
}

// event starts an entry at level. WithLevel never calls os.Exit or panics
// for fatal levels. zerolog's global level (Debug unless changed) drops
// Trace, so Verbose entries are started levelless and carry the trace level
// field themselves; the logger's own level still applies.
func (s *ZerologSink) event(level Level) *zerolog.Event {
	if level != LevelVerbose {
		return s.logger.WithLevel(level.zerolog())
	}
	if s.logger.GetLevel() > zerolog.TraceLevel {
		return nil
	}
	return s.logger.Log().Str(zerolog.LevelFieldName, zerolog.LevelFieldMarshalFunc(zerolog.TraceLevel))
}

// appendErrorChain writes err under key along with its chain, root cause,
// joined history and operations.
func appendErrorChain(e *zerolog.Event, key string, err error) {
	e.AnErr(key, err)
	chain := newErrorChain(err)
	if len(chain) == 0 {
		return
	}
	root := chain.root()
	e.Strs(key+"_chain", chain.messages())
	e.Str(key+"_root", root.message)
	e.Str(key+"_history", chain.String())
	e.Strs(key+"_ops", chain.ops())
	if root.op != emptyString {
		e.Str(key+"_root_op", root.op)
	}
}

type zerologFields []Property

func (p zerologFields) MarshalZerologObject(e *zerolog.Event) {
	for _, prop := range p {
		appendZerologValue(e, prop.Name, prop.Value)
	}
}

type zerologStructure StructureValue

func (s zerologStructure) MarshalZerologObject(e *zerolog.Event) {
	if s.TypeTag != emptyString {
		e.Str(fieldTypeTag, s.TypeTag)
	}
	zerologFields(s.Fields).MarshalZerologObject(e)
}

type zerologDictionary DictionaryValue

func (d zerologDictionary) MarshalZerologObject(e *zerolog.Event) {
	for _, entry := range d.Entries {
		appendZerologValue(e, dictionaryKey(entry.Key), entry.Value)
	}
}

type zerologSequence SequenceValue

func (s zerologSequence) MarshalZerologArray(a *zerolog.Array) {
	for _, elem := range s.Elements {
		switch v := elem.(type) {
		case ScalarValue:
			appendZerologArrayScalar(a, v.Value)
		case StructureValue:
			a.Object(zerologStructure(v))
		case DictionaryValue:
			a.Object(zerologDictionary(v))
		case MarkerValue:
			a.Str(string(v))
		default:
			a.Interface(Plain(elem))
		}
	}
}

func appendZerologValue(e *zerolog.Event, key string, v Value) {
	switch v := v.(type) {
	case ScalarValue:
		appendZerologScalar(e, key, v.Value)
	case SequenceValue:
		e.Array(key, zerologSequence(v))
	case StructureValue:
		e.Object(key, zerologStructure(v))
	case DictionaryValue:
		e.Object(key, zerologDictionary(v))
	case MarkerValue:
		e.Str(key, string(v))
	case nil:
		e.Interface(key, nil)
	default:
		e.Interface(key, Plain(v))
	}
}

func appendZerologScalar(e *zerolog.Event, key string, x any) {
	switch x := x.(type) {
	case string:
		e.Str(key, x)
	case bool:
		e.Bool(key, x)
	case int64:
		e.Int64(key, x)
	case uint64:
		e.Uint64(key, x)
	case float32:
		e.Float32(key, x)
	case float64:
		e.Float64(key, x)
	case time.Time:
		e.Time(key, x)
	case time.Duration:
		e.Dur(key, x)
	case []byte:
		e.Hex(key, x)
	default:
		e.Interface(key, x)
	}
}

func appendZerologArrayScalar(a *zerolog.Array, x any) {
	switch x := x.(type) {
	case string:
		a.Str(x)
	case bool:
		a.Bool(x)
	case int64:
		a.Int64(x)
	case uint64:
		a.Uint64(x)
	case float64:
		a.Float64(x)
	case time.Time:
		a.Time(x)
	case time.Duration:
		a.Dur(x)
	default:
		a.Interface(x)
	}
}
