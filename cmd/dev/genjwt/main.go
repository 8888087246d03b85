// Command genjwt prints a signed development token for exercising the
// API locally, in the same format the external auth service issues.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"patron/internal/config"
	"patron/internal/models"
	"patron/internal/utils"
)

func main() {
	creatorID := flag.Uint("creator", 1, "creator id to embed in the token")
	email := flag.String("email", "ada@example.com", "email claim")
	role := flag.String("role", models.RoleCreator, "role claim (creator or admin)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	config.LoadEnv()

	token, err := utils.GenerateCreatorToken(*creatorID, *email, *role, *ttl)
	if err != nil {
		log.Fatal("Failed to sign token:", err)
	}

	fmt.Println(token)
}
