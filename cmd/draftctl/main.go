// Command draftctl inspects and manages locally persisted drafts: the
// questionnaire builder draft, the onboarding draft and the onboarding
// completion flag.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"formly.backend/internal/config"
	"formly.backend/internal/onboarding"
	"formly.backend/internal/questionnaire"
	"formly.backend/pkg/draftstore"
	"formly.backend/pkg/redis"
)

var loadDotenv = godotenv.Load

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf(`usage: draftctl <command>

commands:
  show <namespace>       print a draft as JSON
  clear <namespace>      discard a draft
  namespaces             list known namespaces
  onboarding status      report onboarding completion
  onboarding complete    mark onboarding done and drop its draft`)
}

func run(args []string, out io.Writer) error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return usage()
	}

	ctx := context.Background()
	switch args[0] {
	case "show":
		if len(args) != 2 {
			return usage()
		}
		return show(ctx, store, args[1], out)
	case "clear":
		if len(args) != 2 {
			return usage()
		}
		store.Clear(ctx, args[1])
		fmt.Fprintf(out, "cleared %s\n", args[1])
		return nil
	case "namespaces":
		for _, ns := range []string{questionnaire.DraftNamespace, onboarding.DraftNamespace} {
			fmt.Fprintln(out, ns)
		}
		return nil
	case "onboarding":
		if len(args) != 2 {
			return usage()
		}
		switch args[1] {
		case "status":
			if onboarding.IsCompleted(ctx, store) {
				fmt.Fprintln(out, "completed")
			} else {
				fmt.Fprintln(out, "pending")
			}
			return nil
		case "complete":
			onboarding.Complete(ctx, store)
			fmt.Fprintln(out, "completed")
			return nil
		}
		return usage()
	default:
		return usage()
	}
}

func openStore(cfg *config.Config) (*draftstore.Store, error) {
	switch cfg.Draft.Backend {
	case "redis":
		if err := redis.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		return draftstore.New(draftstore.NewRedisBackend(redis.GetClient())), nil
	case "memory":
		return draftstore.New(draftstore.NewMemoryBackend()), nil
	default:
		backend, err := draftstore.NewFileBackend(cfg.Draft.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open draft dir: %w", err)
		}
		return draftstore.New(backend), nil
	}
}

func show(ctx context.Context, store *draftstore.Store, ns string, out io.Writer) error {
	record := store.Load(ctx, ns)
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make(map[string]json.RawMessage, len(record))
	for _, k := range keys {
		ordered[k] = record[k]
	}
	data, err := json.MarshalIndent(ordered, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}
