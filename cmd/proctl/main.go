package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"pcpro/internal/shared/config"
	"pcpro/pkg/apiclient"
	"pcpro/pkg/logger"
	"pcpro/pkg/pro"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
)

const usage = `usage: proctl <command> [args]

commands:
  features          list backend feature flags
  me                show the signed-in pro user
  offerers          list the offerers of the signed-in user
  venues            list the venues of the signed-in user
  offer <id>        show one individual offer
  booking <token>   look a booking up by its token`

func main() {
	if err := godotenv.Load(); err != nil {
		logger.GetDefault().Debug("No .env file found, using system environment variables")
	}
	cfg := config.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := apiclient.NewClient(cfg.ClientConfig())
	if err != nil {
		log.Fatalf("invalid backend configuration: %v", err)
	}

	if cfg.HasLogin() {
		if err := signin(ctx, client, cfg.Login); err != nil {
			log.Fatalf("sign-in failed: %v", err)
		}
	}

	if err := run(ctx, client, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

// signin opens a session; the client's cookie jar keeps it for later calls.
func signin(ctx context.Context, c *apiclient.Client, login config.LoginConfig) error {
	call, err := pro.Signin(&pro.LoginUserBodyModel{Identifier: login.Email, Password: login.Password})
	if err != nil {
		return c.RecordBuildError(ctx, err)
	}
	if _, err := apiclient.Do(ctx, c, call); err != nil {
		return err
	}
	logger.GetDefault().LogAuthSuccess(ctx, login.Email, "session")
	return nil
}

func run(ctx context.Context, c *apiclient.Client, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}

	var (
		result any
		err    error
	)
	switch args[0] {
	case "features":
		call, buildErr := pro.ListFeatures()
		result, err = execute(ctx, c, call, buildErr)
	case "me":
		call, buildErr := pro.GetProfile()
		result, err = execute(ctx, c, call, buildErr)
	case "offerers":
		call, buildErr := pro.ListOfferersNames(nil)
		result, err = execute(ctx, c, call, buildErr)
	case "venues":
		call, buildErr := pro.GetVenues(nil)
		result, err = execute(ctx, c, call, buildErr)
	case "offer":
		if len(args) != 2 {
			return fmt.Errorf("usage: proctl offer <id>")
		}
		id, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			return fmt.Errorf("invalid offer id %q: %w", args[1], convErr)
		}
		call, buildErr := pro.GetOffer(id)
		result, err = execute(ctx, c, call, buildErr)
	case "booking":
		token := ""
		if len(args) > 1 {
			token = args[1]
		}
		call, buildErr := pro.GetBookingByToken(token)
		result, err = execute(ctx, c, call, buildErr)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// execute sends call unless building it failed.
func execute[T any](ctx context.Context, c *apiclient.Client, call *apiclient.Call[T], err error) (any, error) {
	if err != nil {
		return nil, c.RecordBuildError(ctx, err)
	}
	result, err := apiclient.Do(ctx, c, call)
	if err != nil {
		return nil, err
	}
	return result, nil
}
