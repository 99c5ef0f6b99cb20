package main

import "github.com/oshokin/stopwatch/cmd/stopwatch/cmd"

func main() {
	cmd.Execute()
}
