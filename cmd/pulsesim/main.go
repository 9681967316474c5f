// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command pulsesim runs pulse propagation networks.
//
package main

import (
	"fmt"
	"os"

	"github.com/db47h/pulsesim/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pulsesim:", err)
		os.Exit(1)
	}
}
