// Command hrportal is a terminal HR portal for employees.
package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/hrportal/internal/config"
	"github.com/javiermolinar/hrportal/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hrportal: %v\n", err)
		os.Exit(1)
	}
}

// run loads the employee config and hands control to the CLI.
func run() error {
	path := config.DefaultConfigPath()
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}

	return ui.NewApp(cfg).Execute()
}
