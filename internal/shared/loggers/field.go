package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"

	FieldCycleID  = "cycle_id"
	FieldLookupd  = "lookupd"
	FieldBroker   = "broker"
	FieldDuration = "duration"

	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldRequestID  = "request_id"

	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"
)
