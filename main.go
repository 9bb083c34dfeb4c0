package main

import (
	"log"
	"os"
	"time"

	"ogeprepbot/bot"
	"ogeprepbot/config"
)

const (
	restartDelay = 5 * time.Second

	// A run shorter than this counts as an immediate failure. Repeated
	// immediate failures point at a broken token or database rather than
	// a transient network problem, so the process gives up instead of
	// masking the error forever.
	stableRunTime        = time.Minute
	maxImmediateFailures = 5
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting OGE prep bot...")

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the bot
	b, err := bot.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize bot: %v", err)
	}
	defer b.Close()

	log.Println("Bot initialized successfully")

	failures := 0
	for {
		started := time.Now()
		err := b.Run()

		if time.Since(started) < stableRunTime {
			failures++
		} else {
			failures = 0
		}
		if failures >= maxImmediateFailures {
			log.Fatalf("Bot loop failed %d times in a row, giving up: %v", failures, err)
		}

		log.Printf("Bot loop exited: %v; restarting in %s", err, restartDelay)
		time.Sleep(restartDelay)
	}
}
