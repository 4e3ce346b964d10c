package main

import (
	"github.com/hacklog-app/hacklog/internal/server"
)

func main() {
	server.NewServer().Run()
}
