package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/drujensen/chatkeeper/internal/impl/auth"
	"github.com/drujensen/chatkeeper/internal/impl/config"

	"github.com/dustin/go-humanize"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  apikey generate -username <name> [-secret <key>]\n")
	fmt.Fprintf(w, "  apikey inspect [-secret <key>] <api-key>\n")
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return fmt.Errorf("a command is required")
	}

	switch args[0] {
	case "generate":
		return generate(args[1:], out)
	case "inspect":
		return inspect(args[1:], out)
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func defaultSecret() string {
	cfg, err := config.InitConfig()
	if err != nil {
		return ""
	}
	return cfg.SecretKey
}

func generate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	username := fs.String("username", "", "Username to generate the API key for")
	secret := fs.String("secret", "", "Secret key (defaults to SECRET_KEY)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *secret == "" {
		*secret = defaultSecret()
	}

	key, err := auth.GenerateKey(*secret, *username, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Username: %s\n", *username)
	fmt.Fprintf(out, "API Key: %s\n\n", key)
	fmt.Fprintf(out, "Usage example:\n")
	fmt.Fprintf(out, "curl -X POST \"http://localhost:8080/v1/chat/completions\" \\\n")
	fmt.Fprintf(out, "     -H \"Authorization: Bearer %s\" \\\n", key)
	fmt.Fprintf(out, "     -H \"Content-Type: application/json\" \\\n")
	fmt.Fprintf(out, "     -d '{\"model\": \"gpt-4o\", \"messages\": [{\"role\": \"user\", \"content\": \"Hello!\"}]}'\n")
	return nil
}

func inspect(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	secret := fs.String("secret", "", "Secret key (defaults to SECRET_KEY)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("inspect takes exactly one API key")
	}
	if *secret == "" {
		*secret = defaultSecret()
	}

	claims, err := auth.DecodeKey(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Username: %s\n", claims.Username)
	if issued, ok := claims.IssuedAt(); ok {
		fmt.Fprintf(out, "Issued: %s (%s)\n", issued.Format(time.RFC3339), humanize.Time(issued))
	} else {
		fmt.Fprintf(out, "Issued: %s\n", string(claims.CreatedAt))
	}

	if err := auth.CheckSignature(*secret, claims); err != nil {
		fmt.Fprintf(out, "Signature: invalid\n")
		return err
	}
	fmt.Fprintf(out, "Signature: valid\n")
	return nil
}
