package commander

// Handler must be implemented for a type to qualify as a command handler.
// Handlers do not report failures to the dispatcher.
type Handler interface {
	Handle(args []string)
}

// HandlerFunc is the type used to register plain functions as handlers.
type HandlerFunc func(args []string)

// Handle calls fn(args).
func (fn HandlerFunc) Handle(args []string) {
	fn(args)
}
