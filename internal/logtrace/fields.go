package logtrace

// Fields is a type alias for structured log fields
type Fields map[string]any

// WithFields returns a copy of base with extra fields merged in.
func WithFields(base Fields, extra Fields) Fields {
	fields := Fields{}
	for key, value := range base {
		fields[key] = value
	}
	for key, value := range extra {
		fields[key] = value
	}
	return fields
}

const (
	FieldCorrelationID = "correlation_id"
	FieldMethod        = "method"
	FieldModule        = "module"
	FieldError         = "error"
	FieldArchitecture  = "architecture"
	FieldURL           = "url"
	FieldPath          = "path"
	FieldStatus        = "status"
	FieldPackages      = "packages"
	FieldAttempt       = "attempt"
)
