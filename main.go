package main

import "nathanbeddoewebdev/loopia/cmd"

func main() {
	cmd.Execute()
}
