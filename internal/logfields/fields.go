package logfields

const (
	// Identifiers

	Name      = "name"
	Operation = "operation"

	// Object manager

	Path      = "path"
	Directory = "directory"
	Object    = "object"
	Target    = "target"
	Cursor    = "cursor"
	Restart   = "restart"
	Status    = "status"

	// Common Misc

	Count = "count"

	// Time

	StartTime = "startTime"
	EndTime   = "endTime"
	Duration  = "duration"

	// logging and tracing

	TraceID      = "traceID"
	SpanID       = "spanID"
	ParentSpanID = "parentSpanID"
)
