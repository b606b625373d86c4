// Command fieldcheck validates record writes against a set of field
// descriptors using the built-in field validators.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errRecordsRejected) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "fieldcheck: %v\n", err)
		os.Exit(2)
	}
}
