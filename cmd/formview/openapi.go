package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/openapi"
)

func newOpenAPICmd(g *globals) *cobra.Command {
	var (
		source    string
		operation string
		mediaType string
		validate  bool
		list      bool
		serveFlag bool
	)
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Present the request body form of an OpenAPI operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			var loadOpts []openapi.LoaderOption
			if validate {
				loadOpts = append(loadOpts, openapi.WithValidation())
			}
			doc, err := openapi.LoadFile(cmd.Context(), source, loadOpts...)
			if err != nil {
				return err
			}
			if list {
				for _, id := range openapi.OperationIDs(doc) {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}

			p, err := newPresenter(g, operation)
			if err != nil {
				return err
			}
			p.serve = serveFlag
			opts, err := p.formOptions()
			if err != nil {
				return err
			}
			builder := openapi.NewBuilder(p.factory,
				openapi.WithFormOptions(opts...),
				openapi.WithMediaType(mediaType),
				openapi.WithLogger(logger))
			newForm := func() (*form.Form[openapi.Values], error) {
				return builder.BuildOperation(doc, operation)
			}
			if _, err := newForm(); err != nil {
				return err
			}
			return present(cmd.Context(), p, newForm, func() openapi.Values { return openapi.Values{} }, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&source, "source", "", "OpenAPI document path")
	flags.StringVar(&operation, "operation", "", "operation ID whose request body is presented")
	flags.StringVar(&mediaType, "media-type", "", "request body media type (JSON or form first)")
	flags.BoolVar(&validate, "validate", false, "validate the document before building")
	flags.BoolVar(&list, "list", false, "list operation IDs and exit")
	flags.BoolVar(&serveFlag, "serve", false, "serve the html form over HTTP")
	_ = cmd.MarkFlagRequired("source")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !list && operation == "" {
			return fmt.Errorf("formview: --operation is required")
		}
		return nil
	}
	return cmd
}
