// Command resetpw resets a user's password in the legacy relational
// database. It exists for the earlier server-side design and does not
// touch the document store.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/larder-app/larder/internal/legacy"
)

func main() {
	dbPath := flag.String("db", "larder-legacy.db", "path to the legacy database")
	email := flag.String("email", "", "email of the user to reset")
	password := flag.String("password", "", "new password")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	db, err := legacy.Open(*dbPath)
	if err != nil {
		log.Fatalf("open legacy database: %v", err)
	}
	defer db.Close()

	users := legacy.NewUserStore(db)

	user, err := users.GetByEmail(*email)
	if err != nil {
		log.Fatalf("look up user: %v", err)
	}
	if user == nil {
		log.Fatalf("no user with email %q", *email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	if err := users.SetPasswordHash(*email, string(hash)); err != nil {
		log.Fatalf("set password: %v", err)
	}

	fmt.Printf("Password updated for %s\n", *email)
}
