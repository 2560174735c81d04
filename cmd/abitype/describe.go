package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/JacksonBernier523/eth-abi/coder"
	"github.com/JacksonBernier523/eth-abi/grammar"
	"github.com/JacksonBernier523/eth-abi/registry"
	"github.com/JacksonBernier523/eth-abi/wittype"
)

type description struct {
	coder    coder.Coder
	witErr   error
	typeStr  string
	class    string
	wit      string
	settings []string
	layout   wittype.Info
	dynamic  bool
}

func resolve(reg *registry.Registry, direction, typeStr string) (coder.Coder, error) {
	if direction == "decoder" {
		return reg.Decoder(typeStr)
	}
	return reg.Encoder(typeStr)
}

func describe(reg *registry.Registry, direction, typeStr string, withWIT bool) (*description, error) {
	c, err := resolve(reg, direction, typeStr)
	if err != nil {
		return nil, err
	}

	d := &description{
		coder:   c,
		typeStr: typeStr,
		class:   c.ClassName(),
		dynamic: c.IsDynamic(),
	}

	settings := c.Settings()
	for _, k := range slices.Sorted(maps.Keys(settings)) {
		d.settings = append(d.settings, k+"="+formatValue(settings[k]))
	}

	if withWIT {
		// The registry already accepted typeStr, so it parses.
		t := grammar.MustParse(grammar.Normalize(typeStr))
		wt, err := wittype.FromType(t)
		if err == nil {
			d.layout, err = wittype.Layout(wt)
		}
		if err != nil {
			d.witErr = err
		} else {
			d.wit = wittype.Name(wt)
		}
	}
	return d, nil
}

func formatValue(v any) string {
	if c, ok := v.(coder.Coder); ok {
		return c.ClassName()
	}
	return fmt.Sprintf("%v", v)
}

func (d *description) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.typeStr, d.class)
	if d.dynamic {
		b.WriteString(" (dynamic)")
	}
	b.WriteByte('\n')
	for _, s := range d.settings {
		fmt.Fprintf(&b, "  %s\n", s)
	}
	switch {
	case d.witErr != nil:
		fmt.Fprintf(&b, "  wit: %v\n", d.witErr)
	case d.wit != "":
		fmt.Fprintf(&b, "  wit: %s (size %d, align %d)\n", d.wit, d.layout.Size, d.layout.Align)
	}
	return b.String()
}
