// Package structlog provides message-template structured logging over
// rs/zerolog (or go.uber.org/zap), with safe lifecycle management and file
// rotation.
//
// Key features
//   - Message templates: "Processed {OrderID} in {Elapsed}" is rendered for
//     humans and its placeholders are kept as typed properties for machines
//   - Capture hints: {@Order} destructures a value, {$Order} stringifies it;
//     destructuring is bounded by a depth limit so cyclic values terminate
//   - Positional templates such as "{0} and {1}" bind values by index
//   - Level gating before any binding work: a disabled level costs one
//     atomic load
//   - Logging calls never panic; faults drop the event and are reported to
//     the optional self-diagnostics channel (EnableSelfLog)
//   - OpenTelemetry trace and span ids picked up from context.Context
//   - Error history enrichment: for an event error, the zerolog sink
//     includes the full error chain (outermost -> root), the root cause, a
//     joined history and the Station-Manager DetailedError operations
//
// Typical usage
//
//	svc := &structlog.Service{WorkingDir: wd, LoggingConfig: &cfg}
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//
//	svc.Information("Processed {OrderID} in {Elapsed}", id, elapsed)
//	req := svc.ForContext("RequestID", rid, false)
//	req.ErrorErr(err, "Charging {@Card} failed", card)
package structlog
