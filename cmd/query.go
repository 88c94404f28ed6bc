package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/executor"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/vektah/gqlparser/v2/gqlerror"

	gql "github.com/dtroode/notekeeper-server/internal/api/graphql"
)

var (
	queryJSON       bool
	queryVariables  string
	queryOperation  string
	queryToken      string
	querySchemaOnly bool
)

var queryCmd = &cobra.Command{
	Use:     "query <query>",
	Aliases: []string{"graphql"},
	Short:   "Execute a GraphQL query or mutation in-process",
	Long: `Execute a GraphQL query or mutation against the configured database.

Examples:
  # List all notes with their authors
  notekeeper query '{ getNotes { _id title username } }'

  # Act as a user
  notekeeper query --token "$TOKEN" '{ getUserNotes { _id title } }'

  # Use variables
  notekeeper query -v '{"id": "abc"}' 'query Note($id: ID!) { getNoteById(id: $id) { title } }'

  # Read from stdin
  cat query.graphql | notekeeper query

  # Print the schema
  notekeeper query --schema`,
	Args: func(cmd *cobra.Command, args []string) error {
		if querySchemaOnly {
			return nil
		}
		if len(args) > 1 {
			return fmt.Errorf("accepts at most 1 argument (the GraphQL query)")
		}
		return nil
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if querySchemaOnly {
			return nil
		}
		return rootCmd.PersistentPreRunE(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if querySchemaOnly {
			fmt.Print(gql.SchemaSource())
			return nil
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		} else {
			stdinQuery, err := readFromStdin()
			if err != nil {
				return err
			}
			if stdinQuery == "" {
				return fmt.Errorf("no query provided (pass as argument or pipe to stdin)")
			}
			query = stdinQuery
		}

		var variables map[string]any
		if queryVariables != "" {
			if err := json.Unmarshal([]byte(queryVariables), &variables); err != nil {
				return fmt.Errorf("invalid variables JSON: %w", err)
			}
		}

		result, err := executeQuery(cmd.Context(), query, variables, queryOperation)
		if err != nil {
			return err
		}

		if queryJSON {
			fmt.Println(string(result))
		} else {
			fmt.Println(string(pretty.Color(pretty.Pretty(result), nil)))
		}
		return nil
	},
}

// readFromStdin reads the query from stdin if it is a pipe or a file.
func readFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("checking stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// executeQuery runs one operation and returns the data portion of the response.
func executeQuery(ctx context.Context, query string, variables map[string]any, operationName string) ([]byte, error) {
	a, err := newApp(ctx, false)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	if queryToken != "" {
		identity, err := a.tokens.ParseToken(queryToken)
		if err != nil {
			return nil, fmt.Errorf("invalid token: %w", err)
		}
		ctx = a.contextManager.SetIdentityToContext(ctx, identity)
	}

	exec := executor.New(gql.NewExecutableSchema(gql.Config{Resolvers: a.resolver}))

	ctx = graphql.StartOperationTrace(ctx)
	params := &graphql.RawParams{
		Query:         query,
		Variables:     variables,
		OperationName: operationName,
	}

	opCtx, errs := exec.CreateOperationContext(ctx, params)
	if errs != nil {
		return nil, formatGraphQLErrors(errs)
	}

	ctx = graphql.WithOperationContext(ctx, opCtx)
	handler, ctx := exec.DispatchOperation(ctx, opCtx)
	resp := handler(ctx)

	if len(resp.Errors) > 0 {
		return nil, formatGraphQLErrors(resp.Errors)
	}
	return resp.Data, nil
}

// formatGraphQLErrors joins GraphQL errors into a single error.
func formatGraphQLErrors(errs gqlerror.List) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return fmt.Errorf("graphql: %s", errs[0].Message)
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("graphql errors:\n  %s", strings.Join(msgs, "\n  "))
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "Output raw JSON (no formatting)")
	queryCmd.Flags().StringVarP(&queryVariables, "variables", "v", "", "Query variables as JSON string")
	queryCmd.Flags().StringVarP(&queryOperation, "operation", "o", "", "Operation name (for multi-operation documents)")
	queryCmd.Flags().StringVar(&queryToken, "token", "", "Bearer token to run the operation as")
	queryCmd.Flags().BoolVar(&querySchemaOnly, "schema", false, "Print the GraphQL schema and exit")
	rootCmd.AddCommand(queryCmd)
}
