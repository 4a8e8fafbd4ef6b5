// main.go
package main

import "github.com/gewnthar/flightpath/cmd"

func main() {
	cmd.Execute()
}
