// Package cli implements an apex/log handler for the terminal.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/utils"
	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
)

// Default handler outputting to stderr.
var Default = New(os.Stderr)

var bold = color.New(color.Bold)

// Colors mapping.
var Colors = [...]*color.Color{
	log.DebugLevel: color.New(color.FgWhite),
	log.InfoLevel:  color.New(color.FgBlue),
	log.WarnLevel:  color.New(color.FgYellow),
	log.ErrorLevel: color.New(color.FgRed),
	log.FatalLevel: color.New(color.FgRed),
}

// Strings mapping.
var Strings = [...]string{
	log.DebugLevel: "•",
	log.InfoLevel:  "•",
	log.WarnLevel:  "•",
	log.ErrorLevel: "⨯",
	log.FatalLevel: "⨯",
}

// Handler implementation.
type Handler struct {
	mu      sync.Mutex
	Writer  io.Writer
	Padding int
}

// New handler.
func New(w io.Writer) *Handler {
	if f, ok := w.(*os.File); ok {
		return &Handler{
			Writer:  colorable.NewColorable(f),
			Padding: 3,
		}
	}

	return &Handler{
		Writer:  w,
		Padding: 3,
	}
}

// minWidth is the minimum width of the rule lines.
const minWidth = 40

func rule(width int) string {
	return strings.Repeat("=", width)
}

func logSectionTitle(w io.Writer, f log.Fields) error {
	colWidth := 24

	title, _ := f.Get("title").(string)
	if n := utils.EscapeAwareRuneCountInString(title); n > colWidth {
		colWidth = n
	}
	fmt.Fprintf(w, "┏%s┓\n", strings.Repeat("━", colWidth+2))
	fmt.Fprintf(w, "┃ %s ┃\n", utils.RightPad(title, colWidth))
	fmt.Fprintf(w, "┗%s┛\n", strings.Repeat("━", colWidth+2))
	return nil
}

func logFields(w io.Writer, f log.Fields) error {
	title, _ := f.Get("title").(string)
	pairs, _ := f.Get("pairs").([]output.Pair)

	labelWidth := 0
	for _, p := range pairs {
		if n := utils.EscapeAwareRuneCountInString(p.Label); n > labelWidth {
			labelWidth = n
		}
	}

	fmt.Fprintf(w, "\n%s\n", rule(minWidth))
	fmt.Fprintf(w, "  %s\n", bold.Sprint(title))
	fmt.Fprintf(w, "%s\n", rule(minWidth))
	for _, p := range pairs {
		if p.Label == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", utils.RightPad(p.Label+":", labelWidth+1), p.Value)
	}
	fmt.Fprintf(w, "%s\n", rule(minWidth))
	return nil
}

func logGrid(w io.Writer, f log.Fields) error {
	title, _ := f.Get("title").(string)
	columns, _ := f.Get("columns").([]output.Column)
	rows, _ := f.Get("rows").([][]string)

	width := 2
	for _, c := range columns {
		width += c.Width
	}
	width += 5
	if width < minWidth {
		width = minWidth
	}

	cell := func(c output.Column, value string) string {
		if c.Right {
			return utils.LeftPad(value, c.Width-2) + "  "
		}
		return utils.RightPad(value, c.Width)
	}

	fmt.Fprintf(w, "\n%s\n", rule(width))
	fmt.Fprintf(w, "  %s\n", bold.Sprint(title))
	fmt.Fprintf(w, "%s\n", rule(width))
	var header strings.Builder
	for _, c := range columns {
		header.WriteString(cell(c, c.Title))
	}
	fmt.Fprintf(w, "  %s\n", strings.TrimRight(header.String(), " "))
	fmt.Fprintf(w, "  %s\n", strings.Repeat("-", width-5))
	for _, row := range rows {
		var line strings.Builder
		for idx, c := range columns {
			value := ""
			if idx < len(row) {
				value = row[idx]
			}
			line.WriteString(cell(c, value))
		}
		fmt.Fprintf(w, "  %s\n", strings.TrimRight(line.String(), " "))
	}
	fmt.Fprintf(w, "%s\n", rule(width))
	return nil
}

func logParagraph(w io.Writer, f log.Fields) error {
	title, _ := f.Get("title").(string)
	text, _ := f.Get("text").(string)
	fmt.Fprintf(w, "\n%s\n%s\n", bold.Sprint(title+":"), text)
	return nil
}

func logJSON(w io.Writer, f log.Fields) error {
	data, err := json.MarshalIndent(f.Get("value"), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", data)
	return nil
}

// TypedLog is used for handling special "typed" logs to the CLI
func (h *Handler) TypedLog(t string, e *log.Entry) error {
	switch t {
	case "section_title":
		return logSectionTitle(h.Writer, e.Fields)
	case "fields":
		return logFields(h.Writer, e.Fields)
	case "grid":
		return logGrid(h.Writer, e.Fields)
	case "paragraph":
		return logParagraph(h.Writer, e.Fields)
	case "json":
		return logJSON(h.Writer, e.Fields)
	default:
		return h.DefaultLog(e)
	}
}

// DefaultLog is the default way of printing out logs
func (h *Handler) DefaultLog(e *log.Entry) error {
	color := Colors[e.Level]
	level := Strings[e.Level]
	names := e.Fields.Names()

	s := color.Sprintf("%s %-25s", bold.Sprintf("%*s", h.Padding+1, level), e.Message)
	for _, name := range names {
		if name == "source" || name == "type" {
			continue
		}
		s += fmt.Sprintf(" %s=%v", color.Sprint(name), e.Fields.Get(name))
	}

	fmt.Fprintln(h.Writer, s)
	return nil
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, isTyped := e.Fields["type"].(string)
	if isTyped {
		return h.TypedLog(t, e)
	}

	return h.DefaultLog(e)
}
