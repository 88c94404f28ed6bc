package graphql

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/dtroode/notekeeper-server/internal/model"
)

var (
	queryImplementors       = []string{"Query"}
	mutationImplementors    = []string{"Mutation"}
	userImplementors        = []string{"User"}
	noteImplementors        = []string{"Note"}
	authPayloadImplementors = []string{"AuthPayload"}
)

// Config configures the executable schema.
type Config struct {
	Resolvers *Resolver
}

// NewExecutableSchema creates a graphql.ExecutableSchema backed by the resolver services.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{resolvers: cfg.Resolvers}
}

type executableSchema struct {
	resolvers *Resolver
}

func (e *executableSchema) Schema() *ast.Schema {
	return parsedSchema
}

func (e *executableSchema) Complexity(_, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := &executionContext{
		OperationContext: opCtx,
		resolvers:        e.resolvers,
		identity:         e.resolvers.identity(ctx),
	}

	var data graphql.Marshaler
	switch opCtx.Operation.Operation {
	case ast.Query:
		data = ec.executeQuery(ctx, opCtx.Operation.SelectionSet)
	case ast.Mutation:
		data = ec.executeMutation(ctx, opCtx.Operation.SelectionSet)
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	var buf bytes.Buffer
	data.MarshalGQL(&buf)

	return graphql.OneShot(&graphql.Response{
		Data:   buf.Bytes(),
		Errors: ec.errors,
	})
}

// executionContext carries per-operation state. Root fields run in document order on one goroutine.
type executionContext struct {
	*graphql.OperationContext
	resolvers *Resolver
	identity  model.Identity
	errors    gqlerror.List
}

func (ec *executionContext) addError(path ast.Path, field graphql.CollectedField, err error) {
	gqlErr := &gqlerror.Error{
		Message: err.Error(),
		Path:    append(ast.Path(nil), path...),
		Extensions: map[string]any{
			"code": string(model.KindOf(err)),
		},
	}
	if field.Field != nil && field.Position != nil {
		gqlErr.Locations = []gqlerror.Location{{Line: field.Position.Line, Column: field.Position.Column}}
	}
	ec.errors = append(ec.errors, gqlErr)
}

func (ec *executionContext) introspectionDisabled(field graphql.CollectedField) graphql.Marshaler {
	ec.errors = append(ec.errors, &gqlerror.Error{
		Message:    "introspection disabled",
		Path:       ast.Path{ast.PathName(field.Alias)},
		Extensions: map[string]any{"code": string(model.KindInternal)},
	})
	return graphql.Null
}

func (ec *executionContext) executeQuery(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, queryImplementors)
	out := graphql.NewFieldSet(fields)
	r := ec.resolvers

	for i, field := range fields {
		path := ast.Path{ast.PathName(field.Alias)}
		args := field.ArgumentMap(ec.Variables)

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Query")
		case "__schema", "__type":
			out.Values[i] = ec.introspectionDisabled(field)
		case "hello":
			out.Values[i] = graphql.MarshalString(greeting)
		case "getNotes":
			notes, err := r.Notes.GetNotes(ctx)
			if err != nil {
				ec.addError(path, field, err)
				out.Values[i] = graphql.Null
				continue
			}
			list := make(graphql.Array, len(notes))
			for j := range notes {
				username := notes[j].Username
				list[j] = ec.marshalNote(field.Selections, &notes[j].Note, &username)
			}
			out.Values[i] = list
		case "getUserNotes":
			notes, err := r.Notes.GetUserNotes(ctx, ec.identity)
			if err != nil {
				ec.addError(path, field, err)
				out.Values[i] = graphql.Null
				continue
			}
			out.Values[i] = ec.marshalNotes(field.Selections, notes)
		case "getUsers":
			users, err := r.Users.GetUsers(ctx)
			if err != nil {
				ec.addError(path, field, err)
				out.Values[i] = graphql.Null
				continue
			}
			list := make(graphql.Array, len(users))
			for j := range users {
				list[j] = ec.marshalUser(field.Selections, &users[j])
			}
			out.Values[i] = list
		case "getNoteById":
			id, err := argID(args, "id")
			if err != nil {
				ec.addError(path, field, err)
				out.Values[i] = graphql.Null
				continue
			}
			note, err := r.Notes.GetNoteByID(ctx, ec.identity, id)
			if err != nil {
				ec.addError(path, field, err)
				out.Values[i] = graphql.Null
				continue
			}
			out.Values[i] = ec.marshalNote(field.Selections, note, nil)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}

	return out
}

func (ec *executionContext) executeMutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mutationImplementors)
	out := graphql.NewFieldSet(fields)

	for i, field := range fields {
		path := ast.Path{ast.PathName(field.Alias)}
		if field.Name == "__typename" {
			out.Values[i] = graphql.MarshalString("Mutation")
			continue
		}

		v, err := ec.resolveMutationField(ctx, field)
		if err != nil {
			ec.addError(path, field, err)
			out.Values[i] = graphql.Null
			continue
		}
		out.Values[i] = v
	}

	return out
}

func (ec *executionContext) resolveMutationField(ctx context.Context, field graphql.CollectedField) (graphql.Marshaler, error) {
	r := ec.resolvers
	args := field.ArgumentMap(ec.Variables)

	switch field.Name {
	case "uploadImage":
		url, err := r.Media.UploadImage(ctx, decodeUpload(args, "file"))
		if err != nil {
			return nil, err
		}
		return graphql.MarshalString(url), nil
	case "addUser":
		input, err := decodeUserInput(args)
		if err != nil {
			return nil, err
		}
		payload, err := r.Auth.AddUser(ctx, input)
		if err != nil {
			return nil, err
		}
		return ec.marshalAuthPayload(field.Selections, &payload), nil
	case "addNote":
		params, err := decodeCreateNote(args)
		if err != nil {
			return nil, err
		}
		note, err := r.Notes.AddNote(ctx, ec.identity, params)
		if err != nil {
			return nil, err
		}
		return ec.marshalNote(field.Selections, &note, nil), nil
	case "login":
		input, err := decodeLoginInput(args)
		if err != nil {
			return nil, err
		}
		payload, err := r.Auth.Login(ctx, input)
		if err != nil {
			return nil, err
		}
		return ec.marshalAuthPayload(field.Selections, &payload), nil
	case "deleteNote":
		id, err := argID(args, "id")
		if err != nil {
			return nil, err
		}
		deleted, err := r.Notes.DeleteNote(ctx, ec.identity, id)
		if err != nil {
			return nil, err
		}
		return graphql.MarshalBoolean(deleted), nil
	case "updateNote":
		id, err := argID(args, "_id")
		if err != nil {
			return nil, err
		}
		patch, err := decodeNotePatch(args)
		if err != nil {
			return nil, err
		}
		note, err := r.Notes.UpdateNote(ctx, ec.identity, id, patch)
		if err != nil {
			return nil, err
		}
		return ec.marshalNote(field.Selections, note, nil), nil
	default:
		panic("unknown field " + strconv.Quote(field.Name))
	}
}

func (ec *executionContext) marshalNotes(sel ast.SelectionSet, notes []model.Note) graphql.Marshaler {
	list := make(graphql.Array, len(notes))
	for i := range notes {
		list[i] = ec.marshalNote(sel, &notes[i], nil)
	}
	return list
}

// marshalNote renders a note. username is nil for notes read without their author.
func (ec *executionContext) marshalNote(sel ast.SelectionSet, note *model.Note, username *string) graphql.Marshaler {
	if note == nil {
		return graphql.Null
	}

	fields := graphql.CollectFields(ec.OperationContext, sel, noteImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Note")
		case "_id":
			out.Values[i] = graphql.MarshalID(note.ID.String())
		case "title":
			out.Values[i] = graphql.MarshalString(note.Title)
		case "note":
			out.Values[i] = graphql.MarshalString(note.Note)
		case "imageUrls":
			urls := make(graphql.Array, len(note.ImageURLs))
			for j, u := range note.ImageURLs {
				urls[j] = graphql.MarshalString(u)
			}
			out.Values[i] = urls
		case "userId":
			out.Values[i] = graphql.MarshalID(note.UserID.String())
		case "username":
			if username == nil {
				out.Values[i] = graphql.Null
				continue
			}
			out.Values[i] = graphql.MarshalString(*username)
		case "createdAt":
			out.Values[i] = marshalTimestamp(note.CreatedAt)
		case "updatedAt":
			out.Values[i] = marshalTimestamp(note.UpdatedAt)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

func (ec *executionContext) marshalUser(sel ast.SelectionSet, user *model.User) graphql.Marshaler {
	if user == nil {
		return graphql.Null
	}

	fields := graphql.CollectFields(ec.OperationContext, sel, userImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("User")
		case "_id":
			out.Values[i] = graphql.MarshalID(user.ID.String())
		case "username":
			out.Values[i] = graphql.MarshalString(user.Username)
		case "email":
			out.Values[i] = graphql.MarshalString(user.Email)
		case "password":
			out.Values[i] = graphql.MarshalString(user.Password)
		case "createdAt":
			out.Values[i] = marshalTimestamp(user.CreatedAt)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

func (ec *executionContext) marshalAuthPayload(sel ast.SelectionSet, payload *model.AuthPayload) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, authPayloadImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("AuthPayload")
		case "token":
			out.Values[i] = graphql.MarshalString(payload.Token)
		case "user":
			out.Values[i] = ec.marshalUser(field.Selections, &payload.User)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return out
}

// marshalTimestamp renders milliseconds since the Unix epoch as a string, or null for the zero time.
func marshalTimestamp(t time.Time) graphql.Marshaler {
	if t.IsZero() {
		return graphql.Null
	}
	return graphql.MarshalString(strconv.FormatInt(t.UnixMilli(), 10))
}
