package commander

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

//------Handlers------//

type countingHandler struct {
	sync.Mutex
	calls [][]string
}

func (hdl *countingHandler) Handle(args []string) {
	hdl.Lock()
	hdl.calls = append(hdl.calls, slices.Clone(args))
	hdl.Unlock()
}

func (hdl *countingHandler) count() int {
	hdl.Lock()
	defer hdl.Unlock()
	return len(hdl.calls)
}

func (hdl *countingHandler) lastArgs() []string {
	hdl.Lock()
	defer hdl.Unlock()
	if len(hdl.calls) == 0 {
		return nil
	}
	return hdl.calls[len(hdl.calls)-1]
}

//------Error Handlers------//

type storeErrorsHandler struct {
	sync.Mutex
	errs map[string]error
}

func newStoreErrorsHandler() *storeErrorsHandler {
	return &storeErrorsHandler{errs: make(map[string]error)}
}

func (hdl *storeErrorsHandler) Handle(name string, err error) {
	hdl.Lock()
	hdl.errs[name] = err
	hdl.Unlock()
}

func (hdl *storeErrorsHandler) Error(name string) error {
	hdl.Lock()
	defer hdl.Unlock()
	return hdl.errs[name]
}

//------Middlewares------//

type testLoggerMiddleware struct {
	entries []string
}

func (mdl *testLoggerMiddleware) HandleInward(name string, args []string) error {
	mdl.entries = append(mdl.entries, fmt.Sprintf("inward|%s|%s", name, strings.Join(args, ",")))
	return nil
}

func (mdl *testLoggerMiddleware) HandleOutward(name string, args []string) {
	mdl.entries = append(mdl.entries, fmt.Sprintf("outward|%s|%s", name, strings.Join(args, ",")))
}

var errInwardFailure = errors.New("inward middleware failure")

type testErrorMiddleware struct{}

func (mdl *testErrorMiddleware) HandleInward(name string, args []string) error {
	return errInwardFailure
}

//------Readers------//

// scriptedReader returns its lines in order, then io.EOF or err when set.
type scriptedReader struct {
	lines   []string
	prompts []string
	err     error
	onRead  func(n int)
}

func (rd *scriptedReader) ReadLine(prompt string) (string, error) {
	rd.prompts = append(rd.prompts, prompt)
	if rd.onRead != nil {
		rd.onRead(len(rd.prompts))
	}
	if len(rd.lines) == 0 {
		if rd.err != nil {
			return "", rd.err
		}
		return "", io.EOF
	}
	line := rd.lines[0]
	rd.lines = rd.lines[1:]
	return line, nil
}

//------General------//

func newQuietLogger() (*logrus.Logger, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func newTestDispatcher(reg *Registry) (*Dispatcher, *logtest.Hook) {
	logger, hook := newQuietLogger()
	dsp := NewDispatcher(reg)
	dsp.Logger(logger)
	return dsp, hook
}
