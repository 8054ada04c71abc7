package main

import (
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"github.com/ZygmuntJakub/parlor/internal/config"
	"github.com/ZygmuntJakub/parlor/internal/session"
	"github.com/ZygmuntJakub/parlor/internal/terminal"
)

func main() {
	log.SetPrefix("[TICTACTOE] ")
	cfg, err := config.LoadTicTacToe()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut := io.Discard
	if cfg.Debug {
		logOut = os.Stderr
	}
	logger := log.New(logOut, log.Prefix(), log.LstdFlags)

	rnd := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	s := session.NewTicTacToe(cfg, terminal.NewConsole(os.Stdin, os.Stdout), rnd, logger)
	if err := s.Run(); err != nil {
		log.Fatalf("play: %v", err)
	}
}
