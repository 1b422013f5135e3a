package main

import "panelops/wfctl/cmd"

func main() {
	cmd.Execute()
}
