package main

import (
	"fmt"
	"log"

	"venue-management-platform/internal/config"
	"venue-management-platform/internal/database"
)

func main() {
	fmt.Println("Seeding sample customers and catalog...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	dbConfig := database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}

	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create sample customers
	customers := []struct {
		Name  string
		Email string
		Phone string
	}{
		{"Alice Wanjiku", "alice@example.com", "+254700000001"},
		{"Brian Otieno", "brian@example.com", "+254700000002"},
		{"Carol Njeri", "carol@example.com", ""},
	}

	for _, c := range customers {
		var id int
		err := db.DB.QueryRow(`
			INSERT INTO customers (name, email, phone)
			VALUES ($1, $2, NULLIF($3, ''))
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
			RETURNING id`,
			c.Name, c.Email, c.Phone).Scan(&id)
		if err != nil {
			log.Fatal("Failed to seed customer:", err)
		}
		fmt.Printf("Customer ready: %s (id %d)\n", c.Name, id)
	}

	// Create ticket types (prices in cents)
	ticketTypes := []struct {
		Name        string
		Description string
		Price       int
	}{
		{"Day Pass", "Single-day venue admission", 2500},
		{"Evening Pass", "Admission after 5pm", 1500},
		{"Season Pass", "Unlimited admission for the season", 25000},
	}

	for _, tt := range ticketTypes {
		_, err := db.DB.Exec(`
			INSERT INTO ticket_types (name, description, price)
			VALUES ($1, $2, $3)`,
			tt.Name, tt.Description, tt.Price)
		if err != nil {
			log.Fatal("Failed to seed ticket type:", err)
		}
		fmt.Printf("Ticket type ready: %s\n", tt.Name)
	}

	// Create menu items
	menuItems := []struct {
		Name        string
		Description string
		Price       int
	}{
		{"Cheeseburger Combo", "Burger, fries and a soft drink", 1200},
		{"Veggie Wrap", "Grilled vegetable wrap", 950},
		{"Ice Cream Sundae", "Two scoops with toppings", 600},
	}

	for _, mi := range menuItems {
		_, err := db.DB.Exec(`
			INSERT INTO menu_items (name, description, price)
			VALUES ($1, $2, $3)`,
			mi.Name, mi.Description, mi.Price)
		if err != nil {
			log.Fatal("Failed to seed menu item:", err)
		}
		fmt.Printf("Menu item ready: %s\n", mi.Name)
	}

	// Create merchandise items with stock
	merchandise := []struct {
		Name        string
		Description string
		Price       int
		Stock       int
	}{
		{"Venue T-Shirt", "Cotton t-shirt with venue logo", 2000, 150},
		{"Souvenir Mug", "Ceramic mug", 1100, 80},
		{"Plush Mascot", "Soft toy of the venue mascot", 1800, 40},
	}

	for _, m := range merchandise {
		_, err := db.DB.Exec(`
			INSERT INTO merchandise_items (name, description, price, stock)
			VALUES ($1, $2, $3, $4)`,
			m.Name, m.Description, m.Price, m.Stock)
		if err != nil {
			log.Fatal("Failed to seed merchandise item:", err)
		}
		fmt.Printf("Merchandise ready: %s (stock %d)\n", m.Name, m.Stock)
	}

	fmt.Println("Seeding completed successfully!")
}
