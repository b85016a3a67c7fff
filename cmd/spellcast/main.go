// Package main is the entry point for the spellcast CLI, a debugging
// surface over the casting engine. It evaluates casts and inspects
// concentration state; it is not a network transport.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spellcast",
	Short: "Mana-point spellcasting engine CLI",
	Long:  `Spellcast evaluates spell casts (cost, effect, concentration) against the configured catalogs and prints the result as JSON.`,
}

func main() {
	// Optional .env for REDIS_ADDR and friends
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(concentrationCmd)
}
