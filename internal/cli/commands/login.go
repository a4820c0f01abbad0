package commands

import (
	"Portfolio/internal/cli/api"
	"Portfolio/internal/cli/store"
	"Portfolio/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UUID    int64  `json:"uuid"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store uuid/token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	req := LoginRequest{Email: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(ctx, api.Endpoint(cfg.ServerURL, "auth"), req, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &api.StatusError{Code: resp.StatusCode, Message: api.MessageOf(body)}
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	id := store.Identity{UUID: lr.UUID, Token: lr.Token, Email: req.Email}
	if err := identityStore(cfg).Save(id); err != nil {
		return fmt.Errorf("saving identity: %w", err)
	}
	fmt.Fprintln(Out, lr.Message)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
