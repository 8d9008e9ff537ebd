package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"campus-market.backend/pkg/crypto"
)

const usage = "usage: genhash <password> [cost]"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run prints a bcrypt hash suitable for seeding users.password by hand.
func run(args []string, out io.Writer) error {
	if len(args) < 1 || len(args) > 2 || args[0] == "" {
		return errors.New(usage)
	}
	cost := crypto.DefaultCost
	if len(args) == 2 {
		c, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid cost %q: %w", args[1], err)
		}
		cost = c
	}

	hash, err := crypto.HashPasswordWithCost(args[0], cost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}
