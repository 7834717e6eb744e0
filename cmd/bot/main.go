// Package main is the entry point for the Discord bot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dnd-companion",
	Short: "D&D companion Discord bot",
	Long:  `dnd-companion runs the Discord bot for guided and random D&D 5e character creation, session persistence, and NPC management.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(botCmd)
}
