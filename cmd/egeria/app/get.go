package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/egeria-client-go/pkg/collections"
	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/glossary"
	"github.com/stacklok/egeria-client-go/pkg/output"
	"github.com/stacklok/egeria-client-go/pkg/projects"
	"github.com/stacklok/egeria-client-go/pkg/referencedata"
)

// getter retrieves one element and names the format set used to render it
type getter struct {
	typeName string
	get      func(ctx context.Context, c *egeria.Client, guid string) (egeria.Result[output.Element], error)
}

var getters = map[string]getter{
	"collection": {
		typeName: collections.TypeCollections,
		get: func(ctx context.Context, c *egeria.Client, guid string) (egeria.Result[output.Element], error) {
			return collections.NewManager(c).GetCollectionByGUID(ctx, guid, nil)
		},
	},
	"glossary": {
		typeName: glossary.TypeGlossaries,
		get: func(ctx context.Context, c *egeria.Client, guid string) (egeria.Result[output.Element], error) {
			return glossary.NewManager(c).GetGlossaryByGUID(ctx, guid, nil)
		},
	},
	"term": {
		typeName: glossary.TypeTerm,
		get: func(ctx context.Context, c *egeria.Client, guid string) (egeria.Result[output.Element], error) {
			return glossary.NewManager(c).GetTermByGUID(ctx, guid, nil)
		},
	},
	"project": {
		typeName: projects.TypeProjects,
		get: func(ctx context.Context, c *egeria.Client, guid string) (egeria.Result[output.Element], error) {
			return projects.NewManager(c).GetProjectByGUID(ctx, guid, nil)
		},
	},
	"valid-value": {
		typeName: referencedata.TypeValidValueDefinition,
		get: func(ctx context.Context, c *egeria.Client, guid string) (egeria.Result[output.Element], error) {
			return referencedata.NewManager(c).GetValidValueDefinitionByGUID(ctx, guid, nil)
		},
	},
}

func newGetCmd(v *viper.Viper) *cobra.Command {
	var printOpts printOptions

	getCmd := &cobra.Command{
		Use:   "get <kind> <guid>",
		Short: "Retrieve one metadata element by its unique identifier",
		Long: fmt.Sprintf(`Retrieve one metadata element and render it with the format set for its kind.

Kinds: %s`, strings.Join(kinds(getters), ", ")),
		Args:      cobra.ExactArgs(2),
		ValidArgs: kinds(getters),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := getters[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q, expected one of: %s", args[0], strings.Join(kinds(getters), ", "))
			}

			ctx := cmd.Context()
			s, err := openSession(ctx, v)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close(ctx) }()

			res, err := g.get(ctx, s.client, args[1])
			if err != nil {
				return err
			}
			el, ok := res.Get()
			if !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), egeria.NoElementsFound)
				return err
			}

			rendered, err := s.client.Formatter().Generate(ctx, g.typeName, []output.Element{el}, s.options())
			if err != nil {
				return err
			}
			return printRendered(cmd.OutOrStdout(), rendered, printOpts)
		},
	}
	printOpts.addFlags(getCmd)
	return getCmd
}
