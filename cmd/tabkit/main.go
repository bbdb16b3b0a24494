package main

import "github.com/dbsmedya/tabkit/cmd/tabkit/cmd"

func main() {
	cmd.Execute()
}
