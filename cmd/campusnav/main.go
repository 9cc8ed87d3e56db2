// Command campusnav finds walking routes across a campus map.
//
//	campusnav route "South Gate" Library
//	campusnav nearest 41.5 18.2 --category building
//	campusnav locations
//	campusnav serve --addr :8080 --watch
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
