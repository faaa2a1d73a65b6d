package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type InspectSuite struct {
	suite.Suite
}

func TestInspectSuite(t *testing.T) {
	suite.Run(t, new(InspectSuite))
}

func (s *InspectSuite) TestReturnsViewForValidJSON() {
	view, err := Inspect([]byte(`{"steps": []}`))

	s.Require().NoError(err)
	s.Assert().NotNil(view)
}

func (s *InspectSuite) TestReturnsErrorForInvalidJSON() {
	_, err := Inspect([]byte(`{not valid}`))

	s.Assert().ErrorIs(err, ErrInvalidJSON)
}

func (s *InspectSuite) TestReturnsErrorForEmptyInput() {
	_, err := Inspect([]byte{})

	s.Assert().ErrorIs(err, ErrInvalidJSON)
}

type ViewSuite struct {
	suite.Suite
	view View
}

func (s *ViewSuite) SetupTest() {
	raw := []byte(`{
		"inspect": "displayed_text",
		"repeat": 3,
		"ratio": 1.5,
		"active": true,
		"perform": {"key_click": "Enter"},
		"locate": [{"name": "form"}, {"index": 2}]
	}`)

	var err error
	s.view, err = Inspect(raw)
	s.Require().NoError(err)
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(ViewSuite))
}

func (s *ViewSuite) TestHasField() {
	tests := map[string]struct {
		path   string
		exists bool
	}{
		"inspect":           {"inspect", true},
		"perform.key_click": {"perform.key_click", true},
		"locate.1.index":    {"locate.1.index", true},
		"missing":           {"missing", false},
		"perform.missing":   {"perform.missing", false},
		"locate.2":          {"locate.2", false},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			s.Assert().Equal(tt.exists, s.view.HasField(tt.path))
		})
	}
}

func (s *ViewSuite) TestGetString() {
	val, ok := s.view.GetString("perform.key_click")
	s.Require().True(ok)
	s.Assert().Equal("Enter", val)

	_, ok = s.view.GetString("repeat")
	s.Assert().False(ok, "number is not a string")
	_, ok = s.view.GetString("active")
	s.Assert().False(ok, "boolean is not a string")
	_, ok = s.view.GetString("missing")
	s.Assert().False(ok)
}

func (s *ViewSuite) TestGetInt() {
	val, ok := s.view.GetInt("repeat")
	s.Require().True(ok)
	s.Assert().Equal(3, val)

	_, ok = s.view.GetInt("ratio")
	s.Assert().False(ok, "fractions are not integers")
	_, ok = s.view.GetInt("inspect")
	s.Assert().False(ok)
	_, ok = s.view.GetInt("missing")
	s.Assert().False(ok)
}

func (s *ViewSuite) TestGetBytes() {
	val, ok := s.view.GetBytes("inspect")
	s.Require().True(ok)
	s.Assert().Equal(`"displayed_text"`, string(val))

	val, ok = s.view.GetBytes("perform")
	s.Require().True(ok)
	s.Assert().Equal(`{"key_click": "Enter"}`, string(val))

	_, ok = s.view.GetBytes("missing")
	s.Assert().False(ok)
}

func (s *ViewSuite) TestEach() {
	var names []string
	ok, err := s.view.Each("locate", func(i int, v View) error {
		if name, ok := v.GetString("name"); ok {
			names = append(names, name)
		}
		if index, ok := v.GetInt("index"); ok {
			s.Assert().Equal(1, i)
			s.Assert().Equal(2, index)
		}
		return nil
	})
	s.Require().True(ok)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"form"}, names)
}

func (s *ViewSuite) TestEachStopsOnError() {
	wantErr := errors.New("stop")
	calls := 0
	ok, err := s.view.Each("locate", func(int, View) error {
		calls++
		return wantErr
	})
	s.Assert().True(ok)
	s.Assert().Same(wantErr, err)
	s.Assert().Equal(1, calls)
}

func (s *ViewSuite) TestEachRejectsNonArray() {
	ok, err := s.view.Each("perform", func(int, View) error { return nil })
	s.Assert().False(ok)
	s.Assert().NoError(err)
}
