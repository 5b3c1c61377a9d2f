package x

// Ptr returns a pointer to v. Schema keywords are optional through
// pointer fields, so literals read better with a helper:
//
//	&valida.Schema{Type: "string", MinLength: x.Ptr(3)}
func Ptr[T any](v T) *T {
	return &v
}
