package commands

import (
	"Portfolio/internal/cli/api"
	"Portfolio/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Show one record, optionally saving its image" }
func (getCmd) Usage() string       { return "get <blog|projects> <id> [image-out]" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	path, err := collectionPath(args[0])
	if err != nil {
		return err
	}
	resp, body, err := api.Do(ctx, http.MethodGet, api.Endpoint(cfg.ServerURL, path, args[1]), nil, "", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &api.StatusError{Code: resp.StatusCode, Message: api.MessageOf(body)}
	}

	var it resourceView
	if err := json.Unmarshal(body, &it); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "id:        %s\n", it.ID)
	fmt.Fprintf(Out, "title:     %s\n", it.Title)
	if path == "blog" {
		fmt.Fprintf(Out, "subtitle:  %s\n", it.Subtitle)
	}
	fmt.Fprintf(Out, "link:      %s\n", it.Link)
	fmt.Fprintf(Out, "image:     %s, %d bytes\n", it.Image.ContentType, len(it.Image.Data))

	if len(args) == 3 {
		if err := os.WriteFile(args[2], it.Image.Data, 0o644); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
		fmt.Fprintf(Out, "image saved to %s\n", args[2])
	}
	return nil
}

func init() { RegisterCmd(getCmd{}) }
