package main

import (
	"log"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/transport/http"
)

func main() {
	if err := http.Run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
