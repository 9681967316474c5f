// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// output writes command results in the configured format.
//
type output struct {
	format string
	w      io.Writer
}

func newOutput(opts *RootOptions, w io.Writer) *output {
	return &output{format: opts.Format, w: w}
}

// write prints v as indented JSON, or calls text to print it in text format.
func (o *output) write(v interface{}, text func(w io.Writer) error) error {
	if o.format == "json" {
		enc := json.NewEncoder(o.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return text(o.w)
}

func (o *output) printf(format string, args ...interface{}) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}
}
