package tester

import (
	"reflect"
	"time"

	"github.com/sirupsen/logrus"
)

// Operation names the kind of call a wrapper dispatches.
type Operation string

const (
	OpPerform Operation = "perform"
	OpInspect Operation = "inspect"
	OpLocate  Operation = "locate"
)

// Call describes one dispatch: the operation, the type of the target and
// the type of the interaction or locator.
type Call struct {
	Op       Operation
	Target   reflect.Type
	Argument reflect.Type
}

// OnDispatchFunc is called just before a handler or solver runs.
type OnDispatchFunc func(call Call)

// OnSuccessFunc is called after a handler or solver returns without error.
type OnSuccessFunc func(call Call, duration time.Duration)

// OnFailureFunc is called after a handler or solver returns an error.
type OnFailureFunc func(call Call, err error, duration time.Duration)

// OnNotSupportedFunc is called when no registry supports a call. The error
// is returned to the caller regardless.
type OnNotSupportedFunc func(call Call, err error)

// hooks holds all configured hook functions.
type hooks struct {
	onDispatch     []OnDispatchFunc
	onSuccess      []OnSuccessFunc
	onFailure      []OnFailureFunc
	onNotSupported []OnNotSupportedFunc
}

// WithOnDispatch adds a hook called just before a handler or solver runs.
// Multiple hooks are called in order.
func WithOnDispatch(fn OnDispatchFunc) Option {
	return func(c *config) {
		c.hooks.onDispatch = append(c.hooks.onDispatch, fn)
	}
}

// WithOnSuccess adds a hook called after a handler or solver succeeds.
// Multiple hooks are called in order.
//
// Example:
//
//	tester.WithOnSuccess(func(call tester.Call, d time.Duration) {
//	    timings[call.Argument] += d
//	})
func WithOnSuccess(fn OnSuccessFunc) Option {
	return func(c *config) {
		c.hooks.onSuccess = append(c.hooks.onSuccess, fn)
	}
}

// WithOnFailure adds a hook called after a handler or solver fails.
// Multiple hooks are called in order.
func WithOnFailure(fn OnFailureFunc) Option {
	return func(c *config) {
		c.hooks.onFailure = append(c.hooks.onFailure, fn)
	}
}

// WithOnNotSupported adds a hook called when no registry supports a call.
// Multiple hooks are called in order.
func WithOnNotSupported(fn OnNotSupportedFunc) Option {
	return func(c *config) {
		c.hooks.onNotSupported = append(c.hooks.onNotSupported, fn)
	}
}

// LogHooks returns options that log every dispatch through logger.
// Dispatches and successes are logged at debug level, failures and
// unsupported calls at error level.
func LogHooks(logger logrus.FieldLogger) Option {
	entry := func(call Call) logrus.FieldLogger {
		return logger.WithFields(logrus.Fields{
			"op":       string(call.Op),
			"target":   typeName(call.Target),
			"argument": typeName(call.Argument),
		})
	}
	return func(c *config) {
		c.hooks.onDispatch = append(c.hooks.onDispatch, func(call Call) {
			entry(call).Debug("dispatching")
		})
		c.hooks.onSuccess = append(c.hooks.onSuccess, func(call Call, d time.Duration) {
			entry(call).WithField("duration", d).Debug("dispatch succeeded")
		})
		c.hooks.onFailure = append(c.hooks.onFailure, func(call Call, err error, d time.Duration) {
			entry(call).WithField("duration", d).WithError(err).Error("dispatch failed")
		})
		c.hooks.onNotSupported = append(c.hooks.onNotSupported, func(call Call, err error) {
			entry(call).WithError(err).Error("dispatch not supported")
		})
	}
}

func (h *hooks) callOnDispatch(call Call) {
	for _, fn := range h.onDispatch {
		fn(call)
	}
}

func (h *hooks) callOnSuccess(call Call, d time.Duration) {
	for _, fn := range h.onSuccess {
		fn(call, d)
	}
}

func (h *hooks) callOnFailure(call Call, err error, d time.Duration) {
	for _, fn := range h.onFailure {
		fn(call, err, d)
	}
}

func (h *hooks) callOnNotSupported(call Call, err error) {
	for _, fn := range h.onNotSupported {
		fn(call, err)
	}
}
