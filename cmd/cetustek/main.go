package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/cetustek-einvoice/cmd/cetustek/cmd"
)

// @title                       Cetustek e-invoice gateway
// @version                     1.0
// @description                 Emisión, consulta y anulación de facturas electrónicas sobre el WS SOAP de Cetustek.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer + token emitido con el comando cetustek token. Sólo si JWT_SECRET está definido.
func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
