package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const petsPath = "/pets/"

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crea una mascota",
		Example: `  petctl create --data '{"name":"Luna","age":2,"weight":3.5,"group":{"scientific_name":"Felis catus"},"traits":[{"name":"Calm"}]}'
  cat pet.json | petctl create`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := readPayload(cmd, data)
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}

			var out json.RawMessage
			if err := c.DoJSON(cmd.Context(), http.MethodPost, petsPath, nil, payload, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "payload JSON (si falta se lee de stdin)")
	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		trait string
		page  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista mascotas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := url.Values{}
			if t := strings.TrimSpace(trait); t != "" {
				q.Set("trait", t)
			}
			if page > 1 {
				q.Set("page", strconv.Itoa(page))
			}

			c, err := opts.client()
			if err != nil {
				return err
			}

			var out json.RawMessage
			if err := c.DoJSON(cmd.Context(), http.MethodGet, petsPath, q, nil, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&trait, "trait", "", "filtrar por nombre de trait")
	cmd.Flags().IntVar(&page, "page", 1, "número de página")
	return cmd
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Muestra una mascota",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := petPath(args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}

			var out json.RawMessage
			if err := c.DoJSON(cmd.Context(), http.MethodGet, path, nil, nil, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:     "update ID",
		Short:   "Actualiza campos de una mascota",
		Example: `  petctl update 3 --data '{"age":4}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := petPath(args[0])
			if err != nil {
				return err
			}
			payload, err := readPayload(cmd, data)
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}

			var out json.RawMessage
			if err := c.DoJSON(cmd.Context(), http.MethodPatch, path, nil, payload, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "payload JSON (si falta se lee de stdin)")
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Borra una mascota",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := petPath(args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}

			if err := c.DoJSON(cmd.Context(), http.MethodDelete, path, nil, nil, nil); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted pet %s\n", strings.TrimSpace(args[0]))
			return err
		},
	}
}

func petPath(rawID string) (string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return "", fmt.Errorf("invalid pet id %q", rawID)
	}
	return petsPath + strconv.FormatInt(id, 10) + "/", nil
}

// readPayload usa --data o, si viene vacío, el stdin del comando. Solo acepta JSON válido.
func readPayload(cmd *cobra.Command, data string) (json.RawMessage, error) {
	raw := []byte(strings.TrimSpace(data))
	if len(raw) == 0 {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = []byte(strings.TrimSpace(string(b)))
	}
	if len(raw) == 0 {
		return nil, errors.New("empty payload: use --data or pipe JSON to stdin")
	}
	if !json.Valid(raw) {
		return nil, errors.New("payload is not valid JSON")
	}
	return json.RawMessage(raw), nil
}

func printJSON(w io.Writer, raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
