package main

import "github.com/sjzsdu/scriptmenu/cmd"

func main() {
	cmd.Execute()
}
