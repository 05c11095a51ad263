package main

import (
	"github.com/zxfonline/structperf/cmd"
)

func main() {
	cmd.Execute()
}
