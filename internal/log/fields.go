package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldAction      = "action"
	FieldPhase       = "phase"
	FieldVersion     = "version"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldEmail       = "email"
	FieldCount       = "count"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldEntryType   = "entry_type"
	FieldSubscribers = "subscribers"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentStore    = "store"
	ComponentSession  = "session"
	ComponentBackend  = "backend"
	ComponentInsights = "insights"
	ComponentCache    = "cache"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpLogin    = "login"
	OpLogout   = "logout"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithAction adds the dispatched action name and the resulting state version.
func (f LogFields) WithAction(name string, version uint64) LogFields {
	f[FieldAction] = name
	f[FieldVersion] = version
	return f
}

// WithEntry adds transaction-like fields.
func (f LogFields) WithEntry(typ string, amount float64, category string) LogFields {
	f[FieldEntryType] = typ
	f[FieldAmount] = amount
	f[FieldCategory] = category
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
