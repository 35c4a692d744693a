package main

import (
	"github.com/respack/respack/cmd"

	// Modules of respack
	_ "github.com/respack/respack/utils"
)

func main() {
	cmd.Execute()
}
