package graphql

import (
	"fmt"

	"github.com/99designs/gqlgen/graphql"

	"github.com/dtroode/notekeeper-server/internal/model"
)

func argString(args map[string]any, name string) (string, error) {
	s, err := graphql.UnmarshalString(args[name])
	if err != nil {
		return "", fmt.Errorf("argument %s: %w", name, err)
	}
	return s, nil
}

func argID(args map[string]any, name string) (string, error) {
	id, err := graphql.UnmarshalID(args[name])
	if err != nil {
		return "", fmt.Errorf("argument %s: %w", name, err)
	}
	return id, nil
}

// argOptionalString returns nil when the argument is absent or null.
func argOptionalString(args map[string]any, name string) (*string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	s, err := graphql.UnmarshalString(v)
	if err != nil {
		return nil, fmt.Errorf("argument %s: %w", name, err)
	}
	return &s, nil
}

// argStringList returns nil when the argument is absent or null. Null elements are dropped.
func argStringList(args map[string]any, name string) (*[]string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}

	var raw []any
	switch vv := v.(type) {
	case []any:
		raw = vv
	default:
		// A single value is coerced to a list of one.
		raw = []any{vv}
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if item == nil {
			continue
		}
		s, err := graphql.UnmarshalString(item)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", name, err)
		}
		out = append(out, s)
	}
	return &out, nil
}

func argObject(args map[string]any, name string) (map[string]any, error) {
	obj, ok := args[name].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("argument %s: expected an input object", name)
	}
	return obj, nil
}

func decodeUserInput(args map[string]any) (model.UserInput, error) {
	obj, err := argObject(args, "input")
	if err != nil {
		return model.UserInput{}, err
	}
	var in model.UserInput
	if in.Username, err = argString(obj, "username"); err != nil {
		return model.UserInput{}, err
	}
	if in.Email, err = argString(obj, "email"); err != nil {
		return model.UserInput{}, err
	}
	if in.Password, err = argString(obj, "password"); err != nil {
		return model.UserInput{}, err
	}
	return in, nil
}

func decodeLoginInput(args map[string]any) (model.LoginInput, error) {
	obj, err := argObject(args, "input")
	if err != nil {
		return model.LoginInput{}, err
	}
	var in model.LoginInput
	if in.Email, err = argString(obj, "email"); err != nil {
		return model.LoginInput{}, err
	}
	if in.Password, err = argString(obj, "password"); err != nil {
		return model.LoginInput{}, err
	}
	return in, nil
}

func decodeCreateNote(args map[string]any) (model.CreateNoteParams, error) {
	var params model.CreateNoteParams
	var err error
	if params.Title, err = argString(args, "title"); err != nil {
		return model.CreateNoteParams{}, err
	}
	if params.Note, err = argString(args, "note"); err != nil {
		return model.CreateNoteParams{}, err
	}
	urls, err := argStringList(args, "imageUrls")
	if err != nil {
		return model.CreateNoteParams{}, err
	}
	if urls != nil {
		params.ImageURLs = *urls
	}
	return params, nil
}

func decodeNotePatch(args map[string]any) (model.NotePatch, error) {
	var patch model.NotePatch
	var err error
	if patch.Title, err = argOptionalString(args, "title"); err != nil {
		return model.NotePatch{}, err
	}
	if patch.Note, err = argOptionalString(args, "note"); err != nil {
		return model.NotePatch{}, err
	}
	if patch.ImageURLs, err = argStringList(args, "imageUrls"); err != nil {
		return model.NotePatch{}, err
	}
	return patch, nil
}

// decodeUpload returns nil when no file was attached to the argument.
func decodeUpload(args map[string]any, name string) *model.File {
	var upload graphql.Upload
	switch v := args[name].(type) {
	case graphql.Upload:
		upload = v
	case *graphql.Upload:
		if v == nil {
			return nil
		}
		upload = *v
	default:
		return nil
	}
	if upload.File == nil {
		return nil
	}
	return &model.File{
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		Content:     upload.File,
	}
}
