package commands

import (
	"Portfolio/internal/cli/api"
	"Portfolio/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List blog posts or projects" }
func (listCmd) Usage() string       { return "list <blog|projects>" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	path, err := collectionPath(args[0])
	if err != nil {
		return err
	}
	resp, body, err := api.Do(ctx, http.MethodGet, api.Endpoint(cfg.ServerURL, path), nil, "", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &api.StatusError{Code: resp.StatusCode, Message: api.MessageOf(body)}
	}

	var list []resourceView
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range list {
		fmt.Fprintf(Out, "- %s  title=%s  link=%s\n", it.ID, it.Title, it.Link)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(listCmd{}) }
