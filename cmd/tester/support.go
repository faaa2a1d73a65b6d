package main

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
	"github.com/urfave/cli"

	"github.com/bjaus/tester/term/termtest"
)

type widgetSupport struct {
	Widget       string
	Interactions []string
	Locations    []string
}

// support lists what the builtin registries offer for every term widget.
func support() ([]widgetSupport, error) {
	r, err := termtest.NewRegistry()
	if err != nil {
		return nil, err
	}
	registries := termtest.Registries()

	var out []widgetSupport
	for _, typ := range r.TargetTypes() {
		target := reflect.New(typ.Elem()).Interface()
		ws := widgetSupport{Widget: typ.String()}
		for _, reg := range registries {
			ws.Interactions = append(ws.Interactions, names(reg.Interactions(target))...)
			ws.Locations = append(ws.Locations, names(reg.Locations(target))...)
		}
		out = append(out, ws)
	}
	return out, nil
}

func names(types []reflect.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}

func writeSupportText(w io.Writer, widgets []widgetSupport) error {
	for _, ws := range widgets {
		if _, err := fmt.Fprintf(w, "%s\n  interactions: %s\n  locations:    %s\n",
			ws.Widget, orNone(ws.Interactions), orNone(ws.Locations)); err != nil {
			return err
		}
	}
	return nil
}

func orNone(s []string) string {
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ", ")
}

func writeSupportJSON(w io.Writer, widgets []widgetSupport) error {
	out := []byte(`{"widgets":[]}`)
	var err error
	set := func(path string, value any) {
		if err == nil {
			out, err = sjson.SetBytes(out, path, value)
		}
	}
	for i, ws := range widgets {
		prefix := "widgets." + strconv.Itoa(i) + "."
		set(prefix+"widget", ws.Widget)
		set(prefix+"interactions", nonNil(ws.Interactions))
		set(prefix+"locations", nonNil(ws.Locations))
	}
	if err != nil {
		return errors.Wrap(err, "render support")
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func supportAction(c *cli.Context) error {
	widgets, err := support()
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return writeSupportJSON(c.App.Writer, widgets)
	}
	return writeSupportText(c.App.Writer, widgets)
}
