package main

import (
	"log"

	"github.com/spigell/internmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
