package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type User struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	PhoneNumber string `gorm:"size:20"`
	Address     string `gorm:"size:255"`
	Email       string `gorm:"size:100;uniqueIndex;not null"`
	Password    string `gorm:"size:100;not null"`
	Role        string `gorm:"size:50;default:'Customer'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func main() {
	// Parse command line flags
	email := flag.String("email", "admin@sandwichshop.local", "Admin email")
	password := flag.String("password", "admin123", "Admin password")
	dbPath := flag.String("db", "sandwich_shop.sqlite", "SQLite database path")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		log.Fatal("Failed to sync users table:", err)
	}

	// Check if the admin already exists
	var existing User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		fmt.Println("Admin user already exists!")
		fmt.Printf("Email: %s\n", *email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := User{
		Name:     "Shop Admin",
		Email:    *email,
		Password: string(hashed),
		Role:     "Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Println("Admin user created!")
	fmt.Printf("Email: %s\n", *email)
	fmt.Printf("Password: %s\n", *password)
	fmt.Printf("User ID: %d\n", admin.ID)
}
