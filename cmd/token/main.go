// token emite un JWT firmado con el secreto configurado, para ejercitar las
// rutas protegidas de la API (por ejemplo la importación CSV, que exige rol
// admin). Con JWT_SECRET vacío la API corre en modo demo y no necesita token.
//
// Uso: go run ./cmd/token -role admin -name Carolina
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/greenforce/gf-crm/pkg/config"
	"github.com/greenforce/gf-crm/pkg/jwt"
)

func main() {
	userID := flag.String("user", "00000000-0000-0000-0000-000000000001", "ID del usuario del token")
	name := flag.String("name", "Admin", "nombre visible del usuario")
	role := flag.String("role", "admin", "rol del token: admin | staff")
	flag.Parse()

	if *role != "admin" && *role != "staff" {
		fmt.Fprintf(os.Stderr, "rol inválido %q: debe ser admin o staff\n", *role)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET vacío: la API corre en modo demo y no exige token")
		os.Exit(1)
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *userID, *name, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
