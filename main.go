package main

import "artifact-planner/cmd"

func main() {
	cmd.Execute()
}
