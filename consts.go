package structlog

const emptyString = ""

// Field names used by the zerolog and zap sinks.
const (
	fieldMessageTemplate = "message_template"
	fieldProperties      = "properties"
	fieldTraceID         = "trace_id"
	fieldSpanID          = "span_id"
	fieldTypeTag         = "$type"
)

const (
	dropReasonBind   = "bind"
	dropReasonPanic  = "panic"
	dropReasonClosed = "closed"
)

const (
	errMsgNilConfig       = "Logging config is nil."
	errMsgNilService      = "Logger service is nil."
	errMsgConfigInvalid   = "Logging configuration is invalid."
	errMsgInvalidLevel    = "Logging level is invalid."
	errMsgWorkingDirUnset = "Working directory is not set."
	errMsgLogDir          = "Failed to create logs directory."
	errMsgExecName        = "Failed to get executable name."
	errMsgNoChannels      = "No logging channels enabled."
)
