// seed puebla la base de datos con un catálogo de demostración:
// categorías, productos con stock inicial y clientes.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que el API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-api/pkg/config"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)

	now := time.Now()

	categories := []*entity.Category{
		{ID: uuid.NewString(), Name: "Bebidas", Description: "Bebidas frías y calientes", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Snacks", Description: "Pasabocas y paquetes", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Aseo", Description: "Productos de limpieza", CreatedAt: now},
	}
	for _, c := range categories {
		if err := categoryRepo.Create(c); err != nil {
			if err == domain.ErrDuplicate {
				fmt.Printf("categoría %q ya existe, omitiendo\n", c.Name)
				continue
			}
			fmt.Fprintf(os.Stderr, "crear categoría %q: %v\n", c.Name, err)
			os.Exit(1)
		}
	}

	products := []*entity.Product{
		{SKU: "BEB-001", Name: "Café molido 500g", UnitPrice: decimal.RequireFromString("18500.00"), Stock: 40, CategoryID: categories[0].ID},
		{SKU: "BEB-002", Name: "Jugo de naranja 1L", UnitPrice: decimal.RequireFromString("7200.00"), Stock: 25, CategoryID: categories[0].ID},
		{SKU: "SNK-001", Name: "Papas fritas 150g", UnitPrice: decimal.RequireFromString("4300.00"), Stock: 60, CategoryID: categories[1].ID},
		{SKU: "SNK-002", Name: "Maní salado 200g", UnitPrice: decimal.RequireFromString("5100.00"), Stock: 35, CategoryID: categories[1].ID},
		{SKU: "ASE-001", Name: "Jabón líquido 1L", UnitPrice: decimal.RequireFromString("9800.00"), Stock: 20, CategoryID: categories[2].ID},
	}
	for _, p := range products {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := productRepo.Create(p); err != nil {
			if err == domain.ErrDuplicate {
				fmt.Printf("producto %s ya existe, omitiendo\n", p.SKU)
				continue
			}
			fmt.Fprintf(os.Stderr, "crear producto %s: %v\n", p.SKU, err)
			os.Exit(1)
		}
	}

	clients := []*entity.Client{
		{FirstName: "Laura", LastName: "Gómez", Email: "laura.gomez@example.com", Phone: "3001234567", Address: "Calle 10 # 5-23"},
		{FirstName: "Andrés", LastName: "Rojas", Email: "andres.rojas@example.com", Phone: "3109876543", Address: "Carrera 45 # 12-08"},
	}
	for _, c := range clients {
		c.ID = uuid.NewString()
		c.CreatedAt = now
		if err := clientRepo.Create(c); err != nil {
			if err == domain.ErrDuplicate {
				fmt.Printf("cliente %s ya existe, omitiendo\n", c.Email)
				continue
			}
			fmt.Fprintf(os.Stderr, "crear cliente %s: %v\n", c.Email, err)
			os.Exit(1)
		}
	}

	fmt.Printf("seed completado: %d categorías, %d productos, %d clientes\n",
		len(categories), len(products), len(clients))
}
