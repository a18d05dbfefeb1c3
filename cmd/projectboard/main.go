// Command projectboard serves the project board and checks submissions from
// the command line.
//
//	projectboard serve --profile local
//	projectboard check --title "Build API" --description "Design and implement" --people 3
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
