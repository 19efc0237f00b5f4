package main

import "github.com/sched-sim/sched-sim/cmd"

func main() {
	cmd.Execute()
}
