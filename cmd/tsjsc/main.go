// Command tsjsc is the CLI driver around the pkg/tsjs façade. It is
// an external collaborator to the compiler (spec §1/§6): everything
// here is thin argument/IO plumbing, with no compiler logic of its own.
package main

import (
	"os"

	"github.com/cwbudde/tsjs/cmd/tsjsc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
