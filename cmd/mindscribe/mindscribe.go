package main

import (
	"log"

	"github.com/Arjun1106030909119/MindScribe/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
