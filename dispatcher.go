package commander

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// Stats holds the dispatch counters of a Dispatcher.
type Stats struct {
	Dispatched uint64
	Failed     uint64
}

// Dispatcher resolves command names against a Registry and invokes the matching handlers.
// The Dispatcher should be instantiated using the NewDispatcher function.
// The optional configuration functions must be called before the Dispatcher is in use.
type Dispatcher struct {
	registry           *Registry
	logger             logrus.FieldLogger
	errorHandlers      []ErrorHandler
	inwardMiddlewares  []InwardMiddleware
	outwardMiddlewares []OutwardMiddleware
	dispatched         *counter
	failed             *counter
}

// NewDispatcher instantiates a Dispatcher over reg.
// Handlers registered in reg later on are visible to the Dispatcher.
func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{
		registry:           reg,
		logger:             logrus.StandardLogger(),
		errorHandlers:      make([]ErrorHandler, 0),
		inwardMiddlewares:  make([]InwardMiddleware, 0),
		outwardMiddlewares: make([]OutwardMiddleware, 0),
		dispatched:         newCounter(),
		failed:             newCounter(),
	}
}

// Logger may optionally be provided to replace the logrus standard logger.
func (dsp *Dispatcher) Logger(logger logrus.FieldLogger) {
	dsp.logger = logger
}

// ErrorHandlers may optionally be provided.
// They will receive any error returned by Execute along with the offending command name.
func (dsp *Dispatcher) ErrorHandlers(hdls ...ErrorHandler) {
	dsp.errorHandlers = hdls
}

// InwardMiddlewares may optionally be provided.
// They run in order before the handler and any of them may abort the dispatch by returning an error.
func (dsp *Dispatcher) InwardMiddlewares(mdls ...InwardMiddleware) {
	dsp.inwardMiddlewares = mdls
}

// OutwardMiddlewares may optionally be provided.
// They run in order after the handler returned.
func (dsp *Dispatcher) OutwardMiddlewares(mdls ...OutwardMiddleware) {
	dsp.outwardMiddlewares = mdls
}

// Registry returns the Registry the Dispatcher resolves names against.
func (dsp *Dispatcher) Registry() *Registry {
	return dsp.registry
}

// Execute invokes the handler registered under name with args.
// It fails with *UnknownCommandError when name is not registered.
func (dsp *Dispatcher) Execute(name string, args []string) error {
	dsp.dispatched.increment()
	log := dsp.logger.WithFields(logrus.Fields{"command": name, "args": args})

	hdl, ok := dsp.registry.Resolve(name)
	if !ok {
		return dsp.error(log, name, &UnknownCommandError{Name: name})
	}
	for _, mdl := range dsp.inwardMiddlewares {
		if err := mdl.HandleInward(name, args); err != nil {
			return dsp.error(log, name, err)
		}
	}

	log.Debug("dispatching command")
	hdl.Handle(args)

	for _, mdl := range dsp.outwardMiddlewares {
		mdl.HandleOutward(name, args)
	}
	return nil
}

// ExecuteSequence executes every one of names in order, each with its own copy of args.
// It stops at and returns the first failure; the remaining names are not executed.
func (dsp *Dispatcher) ExecuteSequence(names []string, args []string) error {
	for _, name := range names {
		if err := dsp.Execute(name, slices.Clone(args)); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns a snapshot of the dispatch counters.
func (dsp *Dispatcher) Stats() Stats {
	return Stats{
		Dispatched: dsp.dispatched.value(),
		Failed:     dsp.failed.value(),
	}
}

//-----Private Functions------//

func (dsp *Dispatcher) error(log logrus.FieldLogger, name string, err error) error {
	dsp.failed.increment()
	log.WithError(err).Warn("command dispatch failed")
	for _, errHdl := range dsp.errorHandlers {
		errHdl.Handle(name, err)
	}
	return err
}
