// seed_products importa el catálogo inicial de productos a Firestore desde un
// archivo JSON de definiciones (un objeto por tipo de producto, con sus
// variantes válidas de color y talla).
//
// Uso: go run ./cmd/seed_products [ruta/product_types.json]
// Por defecto busca product_types.json en el directorio actual.
//
// Formato del JSON:
//
//	[
//	  {
//	    "product": "Wool Runner",
//	    "material": "Wool",
//	    "valid_colors": ["Black", "Grey"],
//	    "valid_sizes": ["M8", "M9", "M10"],
//	    "optimal_units_per_carton": 24,
//	    "variants": [
//	      {"asin": "B0EXAMPLE1", "sku": "WR-BLK-M9", "upc": "123456789012", "color": "Black", "size": "M9"}
//	    ]
//	  }
//	]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	infrafs "github.com/jhoicas/Logistica-api/internal/infrastructure/firestore"
	"github.com/jhoicas/Logistica-api/pkg/config"
	"github.com/jhoicas/Logistica-api/pkg/logger"
)

type productType struct {
	Product               string    `json:"product"`
	Material              string    `json:"material"`
	ValidColors           []string  `json:"valid_colors"`
	ValidSizes            []string  `json:"valid_sizes"`
	OptimalUnitsPerCarton int       `json:"optimal_units_per_carton"`
	Variants              []variant `json:"variants"`
}

type variant struct {
	ASIN  string `json:"asin"`
	SKU   string `json:"sku"`
	UPC   string `json:"upc"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

func main() {
	jsonPath := "product_types.json"
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer JSON: %v\n", err)
		os.Exit(1)
	}

	var types []productType
	if err := json.Unmarshal(raw, &types); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar JSON: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	client, err := infrafs.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Firestore")
	}
	defer client.Close()

	repo := infrafs.NewProductRepo(client)
	now := time.Now()

	added, skipped := 0, 0
	for _, pt := range types {
		for _, v := range pt.Variants {
			if v.ASIN == "" {
				skipped++
				log.Warn().Str("product", pt.Product).Msg("variante sin ASIN, se salta")
				continue
			}
			existing, err := repo.GetByASIN(ctx, v.ASIN)
			if err != nil {
				log.Fatal().Err(err).Str("asin", v.ASIN).Msg("consultar catálogo")
			}
			if existing != nil {
				skipped++
				continue
			}
			product := &entity.Product{
				ASIN:                  v.ASIN,
				SKU:                   v.SKU,
				UPC:                   v.UPC,
				ProductType:           pt.Product,
				Material:              pt.Material,
				Color:                 v.Color,
				Size:                  v.Size,
				ValidColors:           pt.ValidColors,
				ValidSizes:            pt.ValidSizes,
				OptimalUnitsPerCarton: pt.OptimalUnitsPerCarton,
				CreatedAt:             now,
				UpdatedAt:             now,
			}
			if _, err := repo.Create(ctx, product); err != nil {
				log.Fatal().Err(err).Str("asin", v.ASIN).Msg("escribir producto")
			}
			added++
		}
	}

	log.Info().Int("added", added).Int("skipped", skipped).Msg("catálogo sembrado")
}
