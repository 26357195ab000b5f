// Package main provides a small CLI that bcrypt-hashes a password for
// seeding the administrator credential (INITIAL_PASSWORD_HASH or a manual
// database insert).
package main

import (
	"fmt"
	"os"

	"github.com/Karimnasr7/el-bustan-clean/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashgen <password>")
		os.Exit(2)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
