package main

import "daily-planner.com/daily-planner/cmd"

func main() {
	cmd.Execute()
}
