package main

import (
	"os"
	"strings"
	"time"

	"pets-api/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

const defaultBaseURL = "http://localhost:8080"

type rootOptions struct {
	baseURL string
	timeout time.Duration
}

// newRootCmd arma el árbol de comandos. Sin estado global para poder testearlo.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "petctl",
		Short: "Cliente de línea de comandos para pets-api",
		Long: `petctl habla con pets-api por HTTP.

Comandos:
  create  - Crea una mascota (JSON por --data o stdin)
  list    - Lista mascotas, opcionalmente filtradas por trait
  get     - Muestra una mascota
  update  - Actualiza campos de una mascota (JSON por --data o stdin)
  delete  - Borra una mascota`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	baseURL := strings.TrimSpace(os.Getenv("PETS_API_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", baseURL, "URL base de la API (env PETS_API_URL)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", httpclient.DefaultTimeout, "timeout por request")

	root.AddCommand(
		newCreateCmd(opts),
		newListCmd(opts),
		newGetCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
	)
	return root
}

func (o *rootOptions) client() (*httpclient.Client, error) {
	return httpclient.New(o.baseURL, o.timeout)
}
