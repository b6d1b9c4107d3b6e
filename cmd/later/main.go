package main

import (
	"log"

	"github.com/brandonbloom/later/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("later: ")
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
