package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/HiI2O/lunch-hub/config"
	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
	"github.com/HiI2O/lunch-hub/internal/infrastructure/postgres"
	"github.com/HiI2O/lunch-hub/internal/infrastructure/security"
)

// Seeds the first administrator account. Safe to run repeatedly: an
// existing account with the configured email is left untouched.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)

	exists, err := users.ExistsByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		log.Fatalf("failed to check admin user: %v", err)
	}
	if exists {
		fmt.Printf("admin user %s already exists, nothing to do\n", cfg.AdminEmail)
		return
	}

	email, err := valueobject.NewEmailAddress(cfg.AdminEmail)
	if err != nil {
		log.Fatalf("invalid admin email: %v", err)
	}
	displayName, err := valueobject.NewDisplayName(cfg.AdminDisplayName)
	if err != nil {
		log.Fatalf("invalid admin display name: %v", err)
	}

	hasher := security.NewBcryptPasswordHasher()
	hashed, err := hasher.Hash(ctx, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	passwordHash, err := valueobject.NewPasswordHash(hashed)
	if err != nil {
		log.Fatalf("invalid password hash: %v", err)
	}

	user := entity.InviteUser(uuid.NewString(), email, valueobject.MustRole(valueobject.RoleAdministrator), "")
	if err := user.Activate(passwordHash, displayName); err != nil {
		log.Fatalf("failed to activate admin user: %v", err)
	}
	// Seeding dispatches nothing.
	user.ClearDomainEvents()

	if err := users.Save(ctx, user); err != nil {
		log.Fatalf("failed to save admin user: %v", err)
	}
	fmt.Printf("seeded administrator: id=%s email=%s\n", user.ID(), cfg.AdminEmail)
}
