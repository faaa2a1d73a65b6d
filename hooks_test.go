package tester

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

type HooksSuite struct {
	suite.Suite
	registry *TargetRegistry
	calls    []string
}

func (s *HooksSuite) SetupTest() {
	s.registry = NewTargetRegistry()
	s.calls = nil
	s.Require().NoError(RegisterInteraction(s.registry, func(*UIWrapper, *widget, click) (any, error) {
		return nil, nil
	}))
	s.Require().NoError(RegisterInteraction(s.registry, func(*UIWrapper, *widget, read) (any, error) {
		return nil, errors.New("read failed")
	}))
}

func TestHooksSuite(t *testing.T) {
	suite.Run(t, new(HooksSuite))
}

func (s *HooksSuite) wrap(opts ...Option) *UIWrapper {
	opts = append([]Option{WithRegistries(s.registry)}, opts...)
	return New(&widget{}, opts...)
}

func (s *HooksSuite) recordAll() []Option {
	return []Option{
		WithOnDispatch(func(call Call) { s.calls = append(s.calls, "dispatch "+string(call.Op)) }),
		WithOnSuccess(func(call Call, _ time.Duration) { s.calls = append(s.calls, "success "+string(call.Op)) }),
		WithOnFailure(func(call Call, _ error, _ time.Duration) { s.calls = append(s.calls, "failure "+string(call.Op)) }),
		WithOnNotSupported(func(call Call, _ error) { s.calls = append(s.calls, "not supported "+string(call.Op)) }),
	}
}

func (s *HooksSuite) TestSuccess() {
	s.Require().NoError(s.wrap(s.recordAll()...).Perform(click{}))
	s.Assert().Equal([]string{"dispatch perform", "success perform"}, s.calls)
}

func (s *HooksSuite) TestFailure() {
	var got error
	w := s.wrap(append(s.recordAll(), WithOnFailure(func(_ Call, err error, _ time.Duration) { got = err }))...)

	_, err := w.Inspect(read{})
	s.Require().Error(err)
	s.Assert().Same(err, got)
	s.Assert().Equal([]string{"dispatch inspect", "failure inspect"}, s.calls)
}

func (s *HooksSuite) TestNotSupported() {
	var call Call
	w := s.wrap(append(s.recordAll(), WithOnNotSupported(func(c Call, _ error) { call = c }))...)

	_, err := w.Locate(child{})
	s.Require().ErrorIs(err, ErrNotSupported)
	s.Assert().Equal([]string{"not supported locate"}, s.calls)
	s.Assert().Equal(Call{Op: OpLocate, Target: reflect.TypeFor[*widget](), Argument: reflect.TypeFor[child]()}, call)
}

func (s *HooksSuite) TestLocateReportsEventProcessorFailure() {
	solved := false
	s.Require().NoError(RegisterLocation(s.registry, func(*UIWrapper, *widget, child) (any, error) {
		solved = true
		return &widget{}, nil
	}))
	wantErr := errors.New("event loop gone")
	var got error
	w := s.wrap(append(s.recordAll(),
		WithEventProcessor(func() error { return wantErr }),
		WithOnFailure(func(_ Call, err error, _ time.Duration) { got = err }),
	)...)

	_, err := w.Locate(child{})
	s.Require().ErrorIs(err, wantErr)
	s.Assert().Same(wantErr, got)
	s.Assert().False(solved)
	s.Assert().Equal([]string{"dispatch locate", "failure locate"}, s.calls)
}

func (s *HooksSuite) TestHooksRunInOrder() {
	w := s.wrap(
		WithOnDispatch(func(Call) { s.calls = append(s.calls, "first") }),
		WithOnDispatch(func(Call) { s.calls = append(s.calls, "second") }),
	)

	s.Require().NoError(w.Perform(click{}))
	s.Assert().Equal([]string{"first", "second"}, s.calls)
}

func (s *HooksSuite) TestLogHooks() {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	w := s.wrap(LogHooks(logger))

	s.Require().NoError(w.Perform(click{}))
	s.Require().Len(hook.AllEntries(), 2)
	s.Assert().Equal("dispatching", hook.AllEntries()[0].Message)
	last := hook.LastEntry()
	s.Assert().Equal(logrus.DebugLevel, last.Level)
	s.Assert().Equal("dispatch succeeded", last.Message)
	s.Assert().Equal("perform", last.Data["op"])
	s.Assert().Equal("*tester.widget", last.Data["target"])
	s.Assert().Equal("tester.click", last.Data["argument"])

	hook.Reset()
	_, err := w.Inspect(read{})
	s.Require().Error(err)
	last = hook.LastEntry()
	s.Assert().Equal(logrus.ErrorLevel, last.Level)
	s.Assert().Equal("dispatch failed", last.Message)
	s.Assert().Equal(err, last.Data[logrus.ErrorKey])

	hook.Reset()
	s.Require().Error(w.Perform(isFoo{}))
	last = hook.LastEntry()
	s.Assert().Equal(logrus.ErrorLevel, last.Level)
	s.Assert().Equal("dispatch not supported", last.Message)
}
