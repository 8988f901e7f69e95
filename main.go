package main

import "github.com/pders01/fna-context/cmd"

func main() {
	cmd.Execute()
}
