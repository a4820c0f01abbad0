package commands

import (
	"Portfolio/internal/cli/api"
	"Portfolio/internal/cli/store"
	"Portfolio/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check server liveness and local identity" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.Do(ctx, http.MethodGet, api.Endpoint(cfg.ServerURL), nil, "", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &api.StatusError{Code: resp.StatusCode, Message: api.MessageOf(body)}
	}
	fmt.Fprintln(Out, "Server:", strings.TrimSpace(string(body)))

	id, err := identityStore(cfg).Load()
	switch {
	case errors.Is(err, store.ErrNoIdentity):
		fmt.Fprintln(Out, "Identity: not logged in")
	case err != nil:
		return err
	default:
		fmt.Fprintf(Out, "Identity: uuid=%d email=%s\n", id.UUID, id.Email)
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
