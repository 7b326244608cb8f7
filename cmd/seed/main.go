package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/oralvis-health/scan-api/internal/config"
	dbpkg "github.com/oralvis-health/scan-api/internal/db"
	"github.com/oralvis-health/scan-api/internal/domain/user"
	"github.com/oralvis-health/scan-api/internal/httperr"
	infraRepo "github.com/oralvis-health/scan-api/internal/infra/repository"
)

// Seeds the two default clinic accounts so a fresh install is usable
// without hitting /api/register first.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	users := infraRepo.NewUserGormRepository(db)

	accounts := []struct {
		email    string
		password string
		role     user.Role
	}{
		{"technician@oralvis.com", "password123", user.RoleTechnician},
		{"dentist@oralvis.com", "password123", user.RoleDentist},
	}

	ctx := context.Background()

	for _, a := range accounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password for %s: %v", a.email, err)
		}

		created, err := users.Create(ctx, a.email, string(hashed), a.role)
		if err != nil {
			if httperr.IsBusiness(err, "email_already_exists") {
				log.Printf("user %s already exists, skipping", a.email)
				continue
			}
			log.Fatalf("create user %s: %v", a.email, err)
		}

		log.Printf("user %s created with id %d", created.Email, created.ID)
	}
}
