package structlog

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink writes events to a zap core using the same field layout as
// ZerologSink.
type ZapSink struct {
	core zapcore.Core
}

// NewZapSink writes to logger's core. Events bypass the logger's fatal hook,
// so LevelFatal events do not exit the process.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{core: logger.Core()}
}

func (s *ZapSink) Emit(ev *Event) {
	if s == nil || ev == nil {
		return
	}
	entry := zapcore.Entry{
		Level:   ev.Level().zap(),
		Time:    ev.Timestamp(),
		Message: ev.RenderMessage(),
	}
	ce := s.core.Check(entry, nil)
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, 5)
	fields = append(fields, zap.String(fieldMessageTemplate, ev.MessageTemplate()))
	if err := ev.Err(); err != nil {
		fields = append(fields, zap.Error(err))
		if chain := newErrorChain(err); len(chain) > 1 {
			fields = append(fields, zap.Strings("error_chain", chain.messages()), zap.String("error_root", chain.root().message))
		}
	}
	if ev.TraceID() != emptyString {
		fields = append(fields, zap.String(fieldTraceID, ev.TraceID()))
	}
	if ev.SpanID() != emptyString {
		fields = append(fields, zap.String(fieldSpanID, ev.SpanID()))
	}
	if props := ev.Properties(); len(props) > 0 {
		fields = append(fields, zap.Object(fieldProperties, zapFields(props)))
	}
	ce.Write(fields...)
}

type zapFields []Property

func (p zapFields) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, prop := range p {
		if err := addZapValue(enc, prop.Name, prop.Value); err != nil {
			return err
		}
	}
	return nil
}

type zapStructure StructureValue

func (s zapStructure) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if s.TypeTag != emptyString {
		enc.AddString(fieldTypeTag, s.TypeTag)
	}
	return zapFields(s.Fields).MarshalLogObject(enc)
}

type zapDictionary DictionaryValue

func (d zapDictionary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, entry := range d.Entries {
		if err := addZapValue(enc, dictionaryKey(entry.Key), entry.Value); err != nil {
			return err
		}
	}
	return nil
}

type zapSequence SequenceValue

func (s zapSequence) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, elem := range s.Elements {
		var err error
		switch v := elem.(type) {
		case ScalarValue:
			err = appendZapScalar(enc, v.Value)
		case SequenceValue:
			err = enc.AppendArray(zapSequence(v))
		case StructureValue:
			err = enc.AppendObject(zapStructure(v))
		case DictionaryValue:
			err = enc.AppendObject(zapDictionary(v))
		case MarkerValue:
			enc.AppendString(string(v))
		default:
			err = enc.AppendReflected(Plain(elem))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func addZapValue(enc zapcore.ObjectEncoder, key string, v Value) error {
	switch v := v.(type) {
	case ScalarValue:
		return addZapScalar(enc, key, v.Value)
	case SequenceValue:
		return enc.AddArray(key, zapSequence(v))
	case StructureValue:
		return enc.AddObject(key, zapStructure(v))
	case DictionaryValue:
		return enc.AddObject(key, zapDictionary(v))
	case MarkerValue:
		enc.AddString(key, string(v))
		return nil
	}
	return enc.AddReflected(key, Plain(v))
}

func addZapScalar(enc zapcore.ObjectEncoder, key string, x any) error {
	switch x := x.(type) {
	case string:
		enc.AddString(key, x)
	case bool:
		enc.AddBool(key, x)
	case int64:
		enc.AddInt64(key, x)
	case uint64:
		enc.AddUint64(key, x)
	case float32:
		enc.AddFloat32(key, x)
	case float64:
		enc.AddFloat64(key, x)
	case complex128:
		enc.AddComplex128(key, x)
	case time.Time:
		enc.AddTime(key, x)
	case time.Duration:
		enc.AddDuration(key, x)
	case []byte:
		enc.AddBinary(key, x)
	default:
		return enc.AddReflected(key, x)
	}
	return nil
}

func appendZapScalar(enc zapcore.ArrayEncoder, x any) error {
	switch x := x.(type) {
	case string:
		enc.AppendString(x)
	case bool:
		enc.AppendBool(x)
	case int64:
		enc.AppendInt64(x)
	case uint64:
		enc.AppendUint64(x)
	case float64:
		enc.AppendFloat64(x)
	case time.Time:
		enc.AppendTime(x)
	case time.Duration:
		enc.AppendDuration(x)
	default:
		return enc.AppendReflected(x)
	}
	return nil
}
