package commands

import (
	"Portfolio/internal/cli/api"
	"Portfolio/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type createCmd struct{}

func (createCmd) Name() string        { return "create" }
func (createCmd) Description() string { return "Create a record (multipart upload)" }
func (createCmd) Usage() string {
	return "create <blog|projects> title=.. [subtitle=..] link=.. image=<file>"
}

func (createCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	path, err := collectionPath(args[0])
	if err != nil {
		return err
	}
	form, err := parseForm(args[1:])
	if err != nil {
		return err
	}
	id, err := loadIdentity(cfg)
	if err != nil {
		return err
	}
	ct, body, err := form.Encode()
	if err != nil {
		return err
	}

	resp, rb, err := api.Do(ctx, http.MethodPost, api.Endpoint(cfg.ServerURL, path), body, ct, id)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return &api.StatusError{Code: resp.StatusCode, Message: api.MessageOf(rb)}
	}
	var cr struct {
		Message string `json:"message"`
		PostID  string `json:"postId"`
	}
	if err := json.Unmarshal(rb, &cr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "%s: %s\n", cr.Message, cr.PostID)
	return nil
}

type updateCmd struct{}

func (updateCmd) Name() string        { return "update" }
func (updateCmd) Description() string { return "Replace a record (all fields and image required)" }
func (updateCmd) Usage() string {
	return "update <blog|projects> <id> title=.. [subtitle=..] link=.. image=<file>"
}

func (updateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	path, err := collectionPath(args[0])
	if err != nil {
		return err
	}
	form, err := parseForm(args[2:])
	if err != nil {
		return err
	}
	id, err := loadIdentity(cfg)
	if err != nil {
		return err
	}
	ct, body, err := form.Encode()
	if err != nil {
		return err
	}

	resp, rb, err := api.Do(ctx, http.MethodPut, api.Endpoint(cfg.ServerURL, path, args[1]), body, ct, id)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &api.StatusError{Code: resp.StatusCode, Message: api.MessageOf(rb)}
	}
	var it resourceView
	if err := json.Unmarshal(rb, &it); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Updated %s: %s\n", it.ID, it.Title)
	return nil
}

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete a record" }
func (deleteCmd) Usage() string       { return "delete <blog|projects> <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	path, err := collectionPath(args[0])
	if err != nil {
		return err
	}
	id, err := loadIdentity(cfg)
	if err != nil {
		return err
	}

	resp, rb, err := api.Do(ctx, http.MethodDelete, api.Endpoint(cfg.ServerURL, path, args[1]), nil, "", id)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &api.StatusError{Code: resp.StatusCode, Message: api.MessageOf(rb)}
	}
	fmt.Fprintln(Out, api.MessageOf(rb))
	return nil
}

func init() {
	RegisterCmd(createCmd{})
	RegisterCmd(updateCmd{})
	RegisterCmd(deleteCmd{})
}
