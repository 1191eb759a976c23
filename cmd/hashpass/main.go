package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/erlynorbel/chemical-process-simulator/internal/auth"
)

func main() {
	password := flag.String("password", "", "operator password to hash")
	flag.Parse()
	if *password == "" {
		log.Fatal("-password is required")
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}
