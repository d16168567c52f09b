package opengrok

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Role is the part of an output line a segment plays.
type Role int

const (
	RoleProject Role = iota
	RolePath
	RoleSeparator
	RoleLineno
	RoleMatch
)

// Decorator turns a segment of output into the text written for it.
type Decorator interface {
	Decorate(segment string, role Role) string
}

// Plain is the Decorator for targets that do not understand escapes.
type Plain struct{}

func (Plain) Decorate(segment string, _ Role) string {
	return segment
}

// Colors decorates every role with a fixed color, resetting after each
// segment.
type Colors struct {
	roles map[Role]*color.Color
}

func NewColors() *Colors {
	c := Colors{
		roles: map[Role]*color.Color{
			RoleProject:   color.New(color.FgYellow),
			RolePath:      color.New(color.FgMagenta),
			RoleSeparator: color.New(color.FgCyan),
			RoleLineno:    color.New(color.FgGreen),
			RoleMatch:     color.New(color.FgRed),
		},
	}
	// the target has already been judged color-capable, don't let
	// fatih/color second-guess it from os.Stdout.
	for _, col := range c.roles {
		col.EnableColor()
	}
	return &c
}

func (c *Colors) Decorate(segment string, role Role) string {
	if segment == "" {
		return ""
	}
	col, ok := c.roles[role]
	if !ok {
		return segment
	}
	return col.Sprint(segment)
}

// IsColorTerminal reports whether f is a terminal that should receive color.
func IsColorTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Hyperlink wraps text in an OSC-8 terminal hyperlink to url.
func Hyperlink(url, text string) string {
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}
