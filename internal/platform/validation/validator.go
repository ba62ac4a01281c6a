package validation

// Validator checks a decoded payload and returns field-level messages, or nil when valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
