// Package ui writes command results in the format the user asked for:
// styled terminal text, plain text, JSON, YAML or an XML manifest.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/codemerge/pkg/errors"
	"github.com/arthur-debert/codemerge/pkg/style"
	"github.com/arthur-debert/codemerge/pkg/types"
	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"
)

// WriteList writes a listing in format f
func WriteList(w io.Writer, f Format, result *types.ListResult) error {
	switch f.Resolve(w) {
	case FormatTerminal:
		return writeLine(w, style.NewTerminalRenderer().RenderList(result))
	case FormatText:
		return writeLine(w, style.NewPlainRenderer().RenderList(result))
	case FormatJSON:
		return writeJSON(w, result)
	case FormatYAML:
		return writeYAML(w, result)
	case FormatXML:
		return writeListXML(w, result)
	default:
		return errors.Newf(errors.ErrInvalidInput, "cannot write a listing as %s", f)
	}
}

// WriteSummary writes the outcome of a merge in format f. XML is not
// offered for summaries.
func WriteSummary(w io.Writer, f Format, result *types.MergeResult) error {
	switch f.Resolve(w) {
	case FormatTerminal:
		return writeLine(w, style.NewTerminalRenderer().RenderSummary(result))
	case FormatText:
		return writeLine(w, style.NewPlainRenderer().RenderSummary(result))
	case FormatJSON:
		return writeJSON(w, result)
	case FormatYAML:
		return writeYAML(w, result)
	default:
		return errors.Newf(errors.ErrInvalidInput, "cannot write a summary as %s", f)
	}
}

// WriteError writes err for humans; machine formats get plain text too
func WriteError(w io.Writer, f Format, err error) {
	if f.Resolve(w) == FormatTerminal {
		_ = writeLine(w, style.NewTerminalRenderer().RenderError(err))
		return
	}
	_ = writeLine(w, style.NewPlainRenderer().RenderError(err))
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeListXML writes
//
//	<codemerge root="..." total="N" problems="N">
//	  <category name="make">
//	    <file>/abs/Makefile</file>
//	  </category>
//	</codemerge>
func writeListXML(w io.Writer, result *types.ListResult) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("codemerge")
	root.CreateAttr("root", result.Root)
	root.CreateAttr("total", strconv.Itoa(result.Total))
	root.CreateAttr("problems", strconv.Itoa(result.Problems))

	for _, group := range result.Groups {
		cat := root.CreateElement("category")
		cat.CreateAttr("name", group.Category.String())
		for _, path := range group.Files {
			cat.CreateElement("file").SetText(path)
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
