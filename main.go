package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg"
)

func main() {
	initConfig()

	rootCmd, err := pkg.NewCommand()
	if err != nil {
		log.Fatalln(err)
	}

	// Ctrl-C cancels the command context; a running render batch stops at
	// the next file instead of dying mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// initConfig wires viper to an optional audiobook.env file next to the
// project or in the home directory, with real environment variables taking
// precedence.
func initConfig() {
	viper.SetConfigName("audiobook")
	viper.SetConfigType("env")

	viper.AddConfigPath(".")
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Println("Error reading config file:", err)
		}
	}
}
