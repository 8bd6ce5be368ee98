package main

import "focusflow/cmd/ff/root"

func main() {
	root.Execute()
}
