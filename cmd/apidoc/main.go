package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"pcpro/internal/apidoc"
	"pcpro/internal/shared/config"
	"pcpro/pkg/adage"
	"pcpro/pkg/apiclient"
	"pcpro/pkg/pro"

	"github.com/joho/godotenv"
)

const usage = `usage:
  apidoc dump [-o file]                  write the OpenAPI document of the client
  apidoc diff [-group pro|adage] <file>  compare the client with the backend's document`

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "dump":
		err = dump(cfg, os.Args[2:], os.Stdout)
	case "diff":
		var clean bool
		clean, err = diff(os.Args[2:], os.Stdout)
		if err == nil && !clean {
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("apidoc %s: %v", os.Args[1], err)
	}
}

func groups() []apidoc.Group {
	return []apidoc.Group{
		{Name: "pro", Operations: pro.Operations()},
		{Name: "adage", Operations: adage.Operations()},
	}
}

func dump(cfg *config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, err := apidoc.JSON(cfg.Docs.Title, cfg.API.Version, groups()...)
	if err != nil {
		return err
	}
	if *out == "" {
		_, err = fmt.Fprintln(stdout, string(doc))
		return err
	}
	if err := os.WriteFile(*out, doc, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}
	fmt.Fprintf(stdout, "✅ wrote %s\n", *out)
	return nil
}

// diff returns whether the backend document and the client agree.
func diff(args []string, stdout io.Writer) (bool, error) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	group := fs.String("group", "pro", "endpoint table to compare")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if fs.NArg() != 1 {
		return false, fmt.Errorf("expected one schema file, got %d", fs.NArg())
	}

	var ops []*apiclient.Operation
	for _, g := range groups() {
		if g.Name == *group {
			ops = g.Operations
		}
	}
	if ops == nil {
		return false, fmt.Errorf("unknown group %q", *group)
	}

	doc, err := apidoc.LoadBackendSpec(fs.Arg(0))
	if err != nil {
		return false, err
	}
	report := apidoc.Diff(doc, ops)

	fmt.Fprintf(stdout, "%d operations matched\n", report.Matched)
	for _, r := range report.Missing {
		fmt.Fprintf(stdout, "missing in client:  %s\n", r)
	}
	for _, r := range report.Unknown {
		fmt.Fprintf(stdout, "unknown to backend: %s\n", r)
	}
	return report.Clean(), nil
}
