// Comando token emite un JWT firmado con JWT_SECRET para operar las rutas de escritura.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/mercado-api/pkg/config"
	"github.com/jhoicas/mercado-api/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "operador", "sujeto del token")
	role := flag.String("role", jwt.RoleOperator, "rol: operator|auditor")
	minutes := flag.Int("exp", 0, "expiración en minutos (0: JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido")
		os.Exit(1)
	}
	if *role != jwt.RoleOperator && *role != jwt.RoleAuditor {
		fmt.Fprintf(os.Stderr, "rol desconocido %q\n", *role)
		os.Exit(1)
	}
	exp := cfg.JWT.Expiration
	if *minutes > 0 {
		exp = *minutes
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *subject, *role, cfg.JWT.Issuer, exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
