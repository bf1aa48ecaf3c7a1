// Seed crea las tablas del dashboard y carga datos de ejemplo: un usuario de
// prueba, clientes, facturas e ingresos mensuales. Es idempotente: las tablas
// se crean con IF NOT EXISTS y las filas con ON CONFLICT DO NOTHING.
//
// Uso: go run ./cmd/seed (lee la misma configuración que la API).
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Facturas-api/pkg/config"
	"github.com/jhoicas/Facturas-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	image_url VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
	id UUID PRIMARY KEY,
	customer_id UUID NOT NULL REFERENCES customers(id),
	amount BIGINT NOT NULL,
	status VARCHAR(255) NOT NULL,
	date DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS revenue (
	month VARCHAR(4) NOT NULL UNIQUE,
	revenue BIGINT NOT NULL
);
`

type seedCustomer struct {
	id, name, email, imageURL string
}

type seedInvoice struct {
	customer int // índice en customers
	cents    int64
	status   string
	date     string
}

var customers = []seedCustomer{
	{"d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", "Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"3958dc9e-712f-4377-85e9-fec4b6a6442a", "Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"3958dc9e-742f-4377-85e9-fec4b6a6442a", "Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"76d65c26-f784-44a2-ac19-586678f7c2f2", "Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"cc27c14a-0acf-4f4a-a6c9-d45682c144b9", "Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"13d07535-c59e-4157-a011-f8d2ef4e0cbb", "Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var invoices = []seedInvoice{
	{0, 15795, "pending", "2022-12-06"},
	{1, 20348, "pending", "2022-11-14"},
	{4, 3040, "paid", "2022-10-29"},
	{3, 44800, "paid", "2023-09-10"},
	{5, 34577, "pending", "2023-08-05"},
	{2, 54246, "pending", "2023-07-16"},
	{0, 666, "pending", "2023-06-27"},
	{3, 32545, "paid", "2023-06-09"},
	{4, 1250, "paid", "2023-06-17"},
	{5, 8546, "paid", "2023-06-07"},
	{1, 500, "paid", "2023-08-19"},
	{5, 8945, "paid", "2023-06-03"},
	{2, 1000, "paid", "2022-06-05"},
}

var revenue = map[string]int64{
	"Jan": 2000, "Feb": 1800, "Mar": 2200, "Apr": 2500,
	"May": 2300, "Jun": 3200, "Jul": 3500, "Aug": 3700,
	"Sep": 2500, "Oct": 2800, "Nov": 3000, "Dec": 4800,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear tablas")
	}
	log.Info().Msg("tablas creadas (o ya existentes)")

	// Usuario de prueba: user@nextmail.com / 123456
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña del usuario de prueba")
	}
	if _, err := pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		"410544b2-4001-4271-9855-fec4b6a6442a", "User", "user@nextmail.com", string(hash),
	); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario")
	}

	for _, c := range customers {
		if _, err := pool.Exec(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			c.id, c.name, c.email, c.imageURL,
		); err != nil {
			log.Fatal().Err(err).Str("customer", c.name).Msg("sembrar cliente")
		}
	}

	for _, inv := range invoices {
		// Id determinístico para que re-ejecutar el seed no duplique facturas.
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf(
			"invoice|%s|%s|%d", customers[inv.customer].id, inv.date, inv.cents,
		))).String()
		if _, err := pool.Exec(ctx, `
			INSERT INTO invoices (id, customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			id, customers[inv.customer].id, inv.cents, inv.status, inv.date,
		); err != nil {
			log.Fatal().Err(err).Msg("sembrar factura")
		}
	}

	for month, amount := range revenue {
		if _, err := pool.Exec(ctx, `
			INSERT INTO revenue (month, revenue)
			VALUES ($1, $2)
			ON CONFLICT (month) DO NOTHING`,
			month, amount,
		); err != nil {
			log.Fatal().Err(err).Str("month", month).Msg("sembrar ingresos")
		}
	}

	log.Info().
		Int("customers", len(customers)).
		Int("invoices", len(invoices)).
		Int("revenue_months", len(revenue)).
		Msg("seed completado")
}
