package commander

// InwardMiddleware must be implemented for a type to qualify as an inward middleware.
// An inward middleware processes a command before its handler is invoked.
// Returning an error aborts the dispatch.
type InwardMiddleware interface {
	HandleInward(name string, args []string) error
}

// OutwardMiddleware must be implemented for a type to qualify as an outward middleware.
// An outward middleware processes a command after its handler returned.
type OutwardMiddleware interface {
	HandleOutward(name string, args []string)
}
