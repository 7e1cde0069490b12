package apperr

type Kind string

type AppError struct {
	Kind      Kind
	Status    int               // upstream HTTP status (API / StaleSession kinds)
	PublicMsg string            // message safe to show in the console
	Fields    map[string]string // form/validation field errors (optional)
	Err       error             // internal error (for logs)
}
