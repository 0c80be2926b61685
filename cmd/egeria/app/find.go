package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/egeria-client-go/pkg/collections"
	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/glossary"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/projects"
	"github.com/stacklok/egeria-client-go/pkg/referencedata"
	"github.com/stacklok/egeria-client-go/pkg/requests"
)

type finder func(ctx context.Context, c *egeria.Client, search string, opts output.Options) (egeria.Result[output.Rendered], error)

var finders = map[string]finder{
	"collections": func(ctx context.Context, c *egeria.Client, search string, opts output.Options) (egeria.Result[output.Rendered], error) {
		return collections.NewManager(c).FindCollections(ctx, search, nil, opts)
	},
	"digital-products": func(ctx context.Context, c *egeria.Client, search string, opts output.Options) (egeria.Result[output.Rendered], error) {
		return collections.NewManager(c).FindDigitalProducts(ctx, search, nil, opts)
	},
	"glossaries": func(ctx context.Context, c *egeria.Client, search string, opts output.Options) (egeria.Result[output.Rendered], error) {
		return glossary.NewManager(c).FindGlossaries(ctx, search, nil, opts)
	},
	"terms": func(ctx context.Context, c *egeria.Client, search string, opts output.Options) (egeria.Result[output.Rendered], error) {
		return glossary.NewManager(c).FindTerms(ctx, search, nil, opts)
	},
	"categories": func(ctx context.Context, c *egeria.Client, search string, opts output.Options) (egeria.Result[output.Rendered], error) {
		return glossary.NewManager(c).FindCategories(ctx, search, nil, opts)
	},
	"projects": func(ctx context.Context, c *egeria.Client, search string, opts output.Options) (egeria.Result[output.Rendered], error) {
		return projects.NewManager(c).FindProjects(ctx, search, nil, opts)
	},
	"valid-values": func(ctx context.Context, c *egeria.Client, search string, opts output.Options) (egeria.Result[output.Rendered], error) {
		return referencedata.NewManager(c).FindValidValueDefinitions(ctx, search, nil, opts)
	},
}

func kinds[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newFindCmd(v *viper.Viper) *cobra.Command {
	var printOpts printOptions

	findCmd := &cobra.Command{
		Use:   "find <kind> [search-string]",
		Short: "Search for metadata elements and render the matches",
		Long: fmt.Sprintf(`Search for metadata elements of one kind. The search string is a regular
expression; "*" (the default) matches everything.

Kinds: %s`, strings.Join(kinds(finders), ", ")),
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: kinds(finders),
		RunE: func(cmd *cobra.Command, args []string) error {
			find, ok := finders[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q, expected one of: %s", args[0], strings.Join(kinds(finders), ", "))
			}
			search := requests.MatchAll
			if len(args) == 2 {
				search = args[1]
			}

			ctx := cmd.Context()
			s, err := openSession(ctx, v)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close(ctx) }()

			res, err := find(ctx, s.client, search, s.options())
			if err != nil {
				return err
			}
			rendered, ok := res.Get()
			if !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), egeria.NoElementsFound)
				return err
			}
			return printRendered(cmd.OutOrStdout(), rendered, printOpts)
		},
	}
	printOpts.addFlags(findCmd)
	return findCmd
}
