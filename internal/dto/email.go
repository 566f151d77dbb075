package dto

// EmailMessage is a templated transactional email: a template name plus a
// flat key/value parameter set, the shape the provider expects.
type EmailMessage struct {
	ToEmail  string
	ToName   string
	Template string
	Params   map[string]string
}
