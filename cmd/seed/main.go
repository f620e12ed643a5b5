// seed crea el esquema de la base y carga los datos iniciales del comercio:
// la categoría por defecto, un usuario administrador y productos de ejemplo.
//
// Uso: go run ./cmd/seed
// La conexión se toma de las mismas env vars que la API (DATABASE_URL o DB_*).
// La contraseña del admin sale de SEED_ADMIN_PASSWORD (default "cambiame123").
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ordico-pos/internal/domain/entity"
	"github.com/jhoicas/ordico-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/ordico-pos/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS usuarios (
    id            TEXT PRIMARY KEY,
    nombre        TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    dni           TEXT NOT NULL UNIQUE,
    rol           TEXT NOT NULL DEFAULT 'cajero',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS productos (
    id         TEXT PRIMARY KEY,
    nombre     TEXT NOT NULL UNIQUE,
    marca      TEXT NOT NULL DEFAULT '',
    cantidad   INTEGER NOT NULL CHECK (cantidad >= 0),
    precio     NUMERIC(12,2) NOT NULL CHECK (precio >= 0),
    categoria  TEXT NOT NULL DEFAULT 'Productos Varios',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categorias (
    id         TEXT PRIMARY KEY,
    nombre     TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "Crear esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Esquema creado (usuarios, productos, categorias)")

	// Categoría por defecto
	if _, err := pool.Exec(ctx,
		`INSERT INTO categorias (id, nombre) VALUES ($1, $2) ON CONFLICT (nombre) DO NOTHING`,
		uuid.New().String(), entity.DefaultCategory,
	); err != nil {
		fmt.Fprintf(os.Stderr, "Seed categorías: %v\n", err)
		os.Exit(1)
	}

	// Usuario administrador
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "cambiame123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO usuarios (id, nombre, password_hash, email, dni, rol)
		 VALUES ($1, 'admin', $2, 'admin@ordico.local', '00000000', $3)
		 ON CONFLICT (nombre) DO NOTHING`,
		uuid.New().String(), string(hash), entity.RoleAdmin,
	); err != nil {
		fmt.Fprintf(os.Stderr, "Seed admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Usuario admin listo (cambiar la contraseña en el primer uso)")

	// Productos de ejemplo para probar la terminal
	demo := []struct {
		nombre, marca, categoria string
		cantidad                 int
		precio                   string
	}{
		{"Arroz Largo Fino 1kg", "Gallo", "Almacén", 50, "150.00"},
		{"Fideos Spaghetti 500g", "Matarazzo", "Almacén", 40, "120.00"},
		{"Leche Entera 1L", "La Serenísima", "Lácteos", 30, "95.50"},
		{"Yerba Mate 1kg", "Taragüí", "Almacén", 25, "480.00"},
	}
	for _, p := range demo {
		if _, err := pool.Exec(ctx,
			`INSERT INTO productos (id, nombre, marca, cantidad, precio, categoria)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (nombre) DO NOTHING`,
			uuid.New().String(), p.nombre, p.marca, p.cantidad, p.precio, p.categoria,
		); err != nil {
			fmt.Fprintf(os.Stderr, "Seed producto %q: %v\n", p.nombre, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Seed completo: %d productos de ejemplo\n", len(demo))
}
