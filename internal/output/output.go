// Package output emits typed log entries that the CLI handler renders.
package output

import (
	"fmt"

	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/mitchellh/go-wordwrap"
)

// Pair is a labeled value of a fields block.
type Pair struct {
	Label string
	Value string
}

// P is a shorthand for constructing a [Pair].
func P(label string, value any) Pair {
	return Pair{Label: label, Value: fmt.Sprint(value)}
}

// Column is a grid column.
type Column struct {
	Title string
	Width int
	Right bool
}

// SectionTitle logs a section title
func SectionTitle(logger log.Interface, title string) {
	logger.WithFields(log.Fields{
		"type":  "section_title",
		"title": title,
	}).Info(title)
}

// Fields logs a titled block of labeled values, in order.
func Fields(logger log.Interface, title string, pairs []Pair) {
	logger.WithFields(log.Fields{
		"type":  "fields",
		"title": title,
		"pairs": pairs,
	}).Info(title)
}

// Grid logs a titled table with fixed width columns.
func Grid(logger log.Interface, title string, columns []Column, rows [][]string) {
	logger.WithFields(log.Fields{
		"type":    "grid",
		"title":   title,
		"columns": columns,
		"rows":    rows,
	}).Info(title)
}

// Paragraph logs a titled text wrapped at width columns.
func Paragraph(logger log.Interface, title, text string, width uint) {
	logger.WithFields(log.Fields{
		"type":  "paragraph",
		"title": title,
		"text":  wordwrap.WrapString(text, width),
	}).Info(title)
}

// JSON logs a value rendered as indented JSON.
func JSON(logger log.Interface, title string, value any) {
	logger.WithFields(log.Fields{
		"type":  "json",
		"title": title,
		"value": value,
	}).Info(title)
}

// Outcome logs a non successful lookup outcome as a single line.
func Outcome(logger log.Interface, kind pipeline.Kind, reason string) {
	switch kind {
	case pipeline.KindSuccess:
		return
	case pipeline.KindTransportFailure:
		logger.Errorf("request failed: %s", reason)
	case pipeline.KindInputError:
		logger.Warnf("invalid input: %s", reason)
	default:
		logger.Warn(reason)
	}
}

// Saved logs that a snapshot has been written.
func Saved(logger log.Interface, path string) {
	logger.Infof("data saved to %s", path)
}
