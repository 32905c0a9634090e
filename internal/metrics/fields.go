package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrKind      = "kind"
	AttrOutcome   = "outcome"
	AttrOperation = "operation"
	AttrReason    = "reason"
)
