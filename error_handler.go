package commander

// ErrorHandler must be implemented for a type to qualify as a dispatch error handler.
type ErrorHandler interface {
	Handle(name string, err error)
}
