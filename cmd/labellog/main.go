package main

import (
	"os"

	"github.com/philipp01105/labellog/registry"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Exit)
	if err != nil {
		diag := registry.New(registry.Config{Writer: os.Stderr})
		diag.GetLabeledInstance("labellog", "", nil).Error(err.Error())
		os.Exit(1)
	}
}
