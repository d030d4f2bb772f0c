package main

import (
	"github.com/joho/godotenv"

	"textintel/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
