// Package main starts the deskcorners daemon.
package main

import "context"

// main is the entrypoint for the deskcorners daemon.
func main() {
	root := newRootCommand(run)
	if err := root.ExecuteContext(context.Background()); err != nil {
		logFatal(err)
	}
}
