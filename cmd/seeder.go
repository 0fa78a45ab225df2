package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/grantify/grant-management/internal/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the permission catalog and starter accounts",
	Long:  `Seed the permission catalog, the hidden seed account and an admin account holding every permission.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM permission_types_users_assn").Error; err != nil {
				log.Fatalf("failed to clear associations: %v", err)
			}
			if err := db.Exec("DELETE FROM users").Error; err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing users and permission associations")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		// Catalog first so associations have something to point at
		permissions := []string{
			"viewGrant",
			"editGrant",
			"deleteGrant",
			"addGrant",
			"editPermissions",
		}

		for _, name := range permissions {
			var pid int64
			row := db.Raw("SELECT id FROM permission_types WHERE display_name = ?", name).Row()
			if err := row.Scan(&pid); err != nil {
				if err := db.Exec("INSERT INTO permission_types (display_name) VALUES (?)", name).Error; err != nil {
					log.Fatalf("failed to insert permission %s: %v", name, err)
				}
				fmt.Println("Seeded permission:", name)
			}
		}

		seedUser := func(email, firstName, lastName string) string {
			var id string
			row := db.Raw("SELECT id FROM users WHERE email = ?", email).Row()
			if err := row.Scan(&id); err == nil {
				fmt.Printf("user %s already exists; will ensure permissions\n", email)
				return id
			}

			id = uuid.NewString()
			if err := db.Exec(
				"INSERT INTO users (id, email, first_name, last_name, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				id, email, firstName, lastName, string(hash),
			).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", email, err)
			}
			fmt.Println("Seeded user:", email)
			return id
		}

		// The seed account anchors the instance and is hidden from user listings
		seedUser(user.SeedAccountEmail, "Seed", "Account")

		adminID := seedUser("admin@dev.edu", "Admin", "User")

		for _, name := range permissions {
			var pid int64
			if err := db.Raw("SELECT id FROM permission_types WHERE display_name = ?", name).Row().Scan(&pid); err != nil {
				log.Fatalf("permission not found after insert %s: %v", name, err)
			}

			var exists int
			if err := db.Raw(
				"SELECT 1 FROM permission_types_users_assn WHERE user_id = ? AND permission_type_id = ?",
				adminID, pid,
			).Row().Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec(
				"INSERT INTO permission_types_users_assn (id, user_id, permission_type_id) VALUES (?, ?, ?)",
				uuid.NewString(), adminID, pid,
			).Error; err != nil {
				log.Fatalf("failed to grant permission %s to admin user: %v", name, err)
			}
		}

		fmt.Println("Granted all permissions to admin user: admin@dev.edu")
	},
}
