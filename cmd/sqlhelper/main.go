// Command sqlhelper resolves connection descriptors from configuration files.
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
