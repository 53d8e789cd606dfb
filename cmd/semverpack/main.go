package main

import (
	"github.com/tansive/semverpack/internal/cli"
	"github.com/tansive/semverpack/internal/common/logtrace"
)

func init() {
	logtrace.InitLogger("")
}

func main() {
	cli.Execute()
}
