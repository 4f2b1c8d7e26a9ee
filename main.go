package main

import "kotc/cmd"

func main() {
	cmd.Execute()
}
