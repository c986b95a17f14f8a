// cmd/seeddata/main.go — Resiembra los datos de demo.
// Uso: go run cmd/seeddata/main.go [-limpiar]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"cupogas/internal/infra"
	"cupogas/internal/model"
)

func main() {
	limpiar := flag.Bool("limpiar", false, "borra todos los datos antes de sembrar")
	flag.Parse()

	ruta := os.Getenv("DB_PATH")
	if ruta == "" {
		ruta = "cupogas.db"
	}

	db, err := infra.NewDatabase(ruta)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}

	if *limpiar {
		for _, tabla := range []any{
			&model.Carga{}, &model.Notificacion{}, &model.Vehiculo{},
			&model.Surtidor{}, &model.Estacion{}, &model.Usuario{},
			&model.Configuracion{}, &model.Sesion{},
		} {
			if err := db.Where("1 = 1").Delete(tabla).Error; err != nil {
				log.Fatalf("delete error: %v", err)
			}
		}
	}

	if err := infra.SeedDefaults(db); err != nil {
		log.Fatalf("seed error: %v", err)
	}
	fmt.Printf("✅ Datos de demo sembrados en '%s'\n", ruta)
}
