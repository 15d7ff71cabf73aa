// Package report renders the doctor diagnostic report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/macsdk/internal/ui/style"
)

// Data holds everything the doctor report displays.
type Data struct {
	HostVersion     string
	HostFullVersion string
	Language        string
	MacPortsOrFink  bool

	CLTInstalled       bool
	CLTProvidesSDK     bool
	CLTHeadersSeparate bool

	XcodeInstalled bool
	DeveloperDir   string

	SDKFound      bool
	SDKVersion    string
	SDKPath       string
	SDKSource     string
	SDKRootNeeded bool
}

// Renderer writes doctor reports to a single destination. Styling follows
// the destination's terminal capabilities.
type Renderer struct {
	w       io.Writer
	heading lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	dim     lipgloss.Style
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return newRenderer(w, lipgloss.NewRenderer(w))
}

// NewPlainRenderer creates a Renderer that never emits escape sequences,
// regardless of the destination.
func NewPlainRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	return newRenderer(w, r)
}

func newRenderer(w io.Writer, r *lipgloss.Renderer) *Renderer {
	return &Renderer{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(style.Blue),
		good:    r.NewStyle().Foreground(style.Green),
		bad:     r.NewStyle().Foreground(style.Red),
		warn:    r.NewStyle().Foreground(style.Yellow),
		dim:     r.NewStyle().Foreground(style.Slate),
	}
}

// Render writes the full report.
func (r *Renderer) Render(d Data) error {
	var b strings.Builder

	b.WriteString(r.heading.Render("Host") + "\n")
	version := d.HostVersion
	if version == "" {
		version = "unknown"
	}
	if d.HostFullVersion != "" && d.HostFullVersion != version {
		version += " (" + d.HostFullVersion + ")"
	}
	r.field(&b, "macOS version", version)
	if d.Language != "" {
		r.field(&b, "language", d.Language)
	}
	if d.MacPortsOrFink {
		b.WriteString("  " + r.warn.Render(style.Warning+" MacPorts or Fink is installed") + "\n")
	}

	b.WriteString("\n" + r.heading.Render("Command Line Tools") + "\n")
	r.check(&b, d.CLTInstalled, "installed", "not installed")
	if d.CLTInstalled {
		r.check(&b, d.CLTProvidesSDK, "provides an SDK", "no SDK in the install tree")
		r.check(&b, !d.CLTHeadersSeparate, "headers installed with the tools", "headers ship as a separate SDK")
	}

	b.WriteString("\n" + r.heading.Render("Xcode") + "\n")
	r.check(&b, d.XcodeInstalled, "installed", "not installed")
	if d.DeveloperDir != "" {
		r.field(&b, "developer directory", d.DeveloperDir)
	}

	b.WriteString("\n" + r.heading.Render("SDK") + "\n")
	if d.SDKFound {
		b.WriteString("  " + r.good.Render(style.Check+" macOS "+d.SDKVersion+" ("+d.SDKSource+")") + "\n")
		r.field(&b, "path", d.SDKPath)
	} else {
		b.WriteString("  " + r.bad.Render(style.Cross+" no SDK found") + "\n")
	}
	needed := "no"
	if d.SDKRootNeeded {
		needed = "yes"
	}
	r.field(&b, "SDKROOT required", needed)

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) field(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %s %s\n", r.dim.Render(name+":"), value)
}

func (r *Renderer) check(b *strings.Builder, ok bool, yes, no string) {
	if ok {
		b.WriteString("  " + r.good.Render(style.Check+" "+yes) + "\n")
		return
	}
	b.WriteString("  " + r.bad.Render(style.Cross+" "+no) + "\n")
}
