package main

import (
	"database/sql"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/ozerastore/ozera-backend/internal/cart"
	"github.com/ozerastore/ozera-backend/internal/category"
	"github.com/ozerastore/ozera-backend/internal/checkout"
	"github.com/ozerastore/ozera-backend/internal/config"
	"github.com/ozerastore/ozera-backend/internal/notify"
	"github.com/ozerastore/ozera-backend/internal/order"
	"github.com/ozerastore/ozera-backend/internal/product"
	"github.com/ozerastore/ozera-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	mustBootstrapSchema(db)

	publisher, err := notify.Dial(cfg.AMQPURL)
	if err != nil {
		// order events are optional; the store runs without a broker
		fmt.Printf("warning: order event publisher disabled: %v\n", err)
		publisher = notify.NopPublisher{}
	}

	userService := user.NewService(user.NewPostgresRepository(db))
	if err := userService.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		fmt.Printf("warning: could not seed admin account: %v\n", err)
	}
	userHandler := user.NewHandler(userService)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))

	cartService := cart.NewService(cart.NewPostgresRepository(db), productService)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(order.NewPostgresRepository(db))
	orderHandler := order.NewHandler(orderService, publisher)

	checkoutHandler := checkout.NewHandler(checkout.NewService(cartService, orderService, publisher, cfg.StorePhone))

	// public storefront surface
	userHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	checkoutHandler.RegisterPublicRoutes(app)

	// everything past this point is the admin back office
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	categoryHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func mustBootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			category_id SERIAL PRIMARY KEY,
			category_name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC NOT NULL DEFAULT 0,
			base_price NUMERIC,
			discount_percent INT,
			image_url TEXT NOT NULL DEFAULT '',
			category_id INT,
			benefits TEXT[],
			usage_text TEXT,
			ingredients TEXT[],
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			cart_id TEXT PRIMARY KEY,
			items JSONB NOT NULL DEFAULT '{}',
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			items JSONB NOT NULL DEFAULT '[]',
			total_amount NUMERIC NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			customer_phone TEXT NOT NULL DEFAULT '',
			delivery_address TEXT NOT NULL DEFAULT '',
			payment_method TEXT NOT NULL DEFAULT 'cod',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			admin_id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			created_at TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
