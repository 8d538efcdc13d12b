// vacuumworld solves vacuum world instances with iterative-deepening search.
package main

import (
	"os"

	"github.com/katalvlaran/vacuumworld/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
