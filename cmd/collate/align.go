// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcollate/collation"
	"github.com/katalvlaran/lvcollate/token"
	"github.com/katalvlaran/lvcollate/witness"
)

func (a *app) alignCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "align FILE...",
		Short: "Collate witness files and print the alignment table",
		Long: "Each file is one witness; its sigil is the file name without extension.\n" +
			"Files ending in .xml are parsed as witness documents, all others as plain text.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := readWitnesses(args)
			if err != nil {
				return err
			}
			opts := append(a.cfg.CollationOptions(), collation.WithLogger(a.logger))
			res, err := collation.Collate(cmd.Context(), ws, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Table  any              `json:"table"`
					Passes []collation.Pass `json:"passes"`
				}{res.Table, res.Passes})
			}
			_, err = fmt.Fprint(out, res.Table.String())

			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print table and per-witness passes as JSON")

	return cmd
}

// readWitnesses loads one witness per path in argument order.
func readWitnesses(paths []string) ([]token.Witness, error) {
	ws := make([]token.Witness, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read witness %q", path)
		}
		ext := filepath.Ext(path)
		sigil := strings.TrimSuffix(filepath.Base(path), ext)

		var w token.Witness
		if strings.EqualFold(ext, ".xml") {
			tree, err := witness.Parse(sigil, string(data))
			if err != nil {
				return nil, errors.Wrapf(err, "parse witness %q", path)
			}
			w = tree.Tokens()
		} else if w, err = token.Tokenize(sigil, string(data)); err != nil {
			return nil, errors.Wrapf(err, "tokenize witness %q", path)
		}
		ws = append(ws, w)
	}

	return ws, nil
}
