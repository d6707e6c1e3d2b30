package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/crystal-mush/gosoul/pkg/server"
)

func main() {
	name := flag.String("name", "tester", "Player name to use")
	gender := flag.String("gender", "f", "Player gender (m/f/n)")
	worldFile := flag.String("world", "", "Path to world YAML file, built-in demo world when empty")
	socialsFile := flag.String("socials", "", "Path to custom socials YAML file")
	command := flag.String("e", "", "Command to run (non-interactive mode)")
	batch := flag.String("batch", "", "File with commands to run (one per line)")
	flag.Parse()

	var w *server.World
	if *worldFile != "" {
		var err error
		w, err = server.LoadWorld(*worldFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
			os.Exit(1)
		}
	} else {
		w = server.DemoWorld()
	}

	game := server.NewGame(server.DefaultConfig(), w)
	if *socialsFile != "" {
		if err := game.LoadSocialsFile(*socialsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading socials: %v\n", err)
			os.Exit(1)
		}
	}

	sess := game.NewSession(server.TransportTCP, "repl")
	sess.SendFunc = func(msg string) { fmt.Println(msg) }
	game.HandleLine(sess, *name)
	game.HandleLine(sess, *gender)
	if sess.State != server.StatePlaying {
		fmt.Fprintf(os.Stderr, "Login failed for %s/%s\n", *name, *gender)
		os.Exit(1)
	}

	if *command != "" {
		game.Dispatch(sess, *command)
		return
	}

	if *batch != "" {
		f, err := os.Open(*batch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening batch file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			fmt.Printf("> %s\n", line)
			game.Dispatch(sess, line)
			if sess.Closed() {
				return
			}
		}
		return
	}

	// Interactive REPL mode
	fmt.Println()
	fmt.Println("Type commands to try out. 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		game.Dispatch(sess, line)
		if sess.Closed() {
			break
		}
	}
}
