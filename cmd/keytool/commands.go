// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/secret"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const usage = `usage: keytool <command> [flags] [args]

commands:
  generate [-copy]                  print a new master secret
  check                             check the configured master secret
  nonce                             print a random nonce
  digest [text]                     print the SHA-256 digest of text
  verify <text> <digest>            compare text against a digest
  encrypt -user <id> [plaintext]    encrypt for a user
  decrypt -user <id> [envelope]     decrypt an envelope of a user
  token -user <id>                  issue an ops server bearer token
  probe [-addr host:port]           report health and version of a running server
  version                           print build information

Text arguments are read from stdin when omitted.
The master secret is read from <SECRET_ENV_PREFIX>MASTER_SECRET or SECRET_FILE.`

var (
	errUsage               = errors.New("invalid usage")
	errInvalidMasterSecret = errors.New("master secret is invalid")
	errDigestMismatch      = errors.New("digest does not match")
	errServerDegraded      = errors.New("server reports an invalid master secret")
)

type tool struct {
	cfg    *config.StructuredConfig
	source secret.Source

	in  io.Reader
	out io.Writer

	// copy puts a value on the system clipboard.
	copy func(string) error

	// dial connects to a running ops server.
	dial func(address string, timeout time.Duration) (adapter.ServerAdapter, error)

	logger *logger.Logger
}

func (t *tool) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, rest := args[0], args[1:]
	switch command {
	case "generate":
		return t.generate(rest)
	case "check":
		return t.check(rest)
	case "nonce":
		return t.nonce(rest)
	case "digest":
		return t.digest(ctx, rest)
	case "verify":
		return t.verify(ctx, rest)
	case "encrypt":
		return t.encrypt(ctx, rest)
	case "decrypt":
		return t.decrypt(ctx, rest)
	case "token":
		return t.token(ctx, rest)
	case "probe":
		return t.probe(ctx, rest)
	case "version":
		fmt.Fprintln(t.out, models.NewBuildInfo(buildVersion, buildDate, buildCommit))
		return nil
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(t.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (t *tool) generate(args []string) error {
	fs := newFlagSet("generate")
	copyToClipboard := fs.Bool("copy", false, "copy the secret to the clipboard instead of printing it")
	if err := parse(fs, args, 0); err != nil {
		return err
	}

	masterSecret, err := crypto.GenerateMasterSecret()
	if err != nil {
		return fmt.Errorf("error generating master secret: %w", err)
	}

	if *copyToClipboard {
		if err = t.copy(masterSecret); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		t.logger.Info().Msg("master secret copied to the clipboard")
		return nil
	}

	fmt.Fprintln(t.out, masterSecret)
	return nil
}

func (t *tool) check(args []string) error {
	if err := parse(newFlagSet("check"), args, 0); err != nil {
		return err
	}

	if !crypto.ValidateMasterSecret(t.source) {
		fmt.Fprintln(t.out, models.MasterSecretInvalid)
		t.logger.Warn().
			Int("min_length", crypto.MinMasterSecretLength).
			Msg("master secret is missing or too short")
		return errInvalidMasterSecret
	}

	fmt.Fprintln(t.out, models.MasterSecretValid)
	return nil
}

func (t *tool) nonce(args []string) error {
	if err := parse(newFlagSet("nonce"), args, 0); err != nil {
		return err
	}

	nonce, err := crypto.GenerateNonce()
	if err != nil {
		return fmt.Errorf("error generating nonce: %w", err)
	}

	fmt.Fprintln(t.out, nonce)
	return nil
}

func (t *tool) digest(ctx context.Context, args []string) error {
	fs := newFlagSet("digest")
	if err := parse(fs, args, -1); err != nil {
		return err
	}

	content, err := t.textArg(fs)
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out, t.credentials().Digest(ctx, content))
	return nil
}

func (t *tool) verify(ctx context.Context, args []string) error {
	fs := newFlagSet("verify")
	if err := parse(fs, args, 2); err != nil {
		return err
	}

	valid, err := t.credentials().VerifyDigest(ctx, fs.Arg(0), fs.Arg(1))
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out, valid)
	if !valid {
		return errDigestMismatch
	}
	return nil
}

func (t *tool) encrypt(ctx context.Context, args []string) error {
	fs := newFlagSet("encrypt")
	userID := fs.String("user", "", "user identifier the credential belongs to")
	if err := parseWithUser(fs, args, userID); err != nil {
		return err
	}

	plaintext, err := t.textArg(fs)
	if err != nil {
		return err
	}

	envelope, err := t.credentials().Encrypt(ctx, *userID, plaintext)
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out, envelope)
	return nil
}

func (t *tool) decrypt(ctx context.Context, args []string) error {
	fs := newFlagSet("decrypt")
	userID := fs.String("user", "", "user identifier the envelope belongs to")
	if err := parseWithUser(fs, args, userID); err != nil {
		return err
	}

	envelope, err := t.textArg(fs)
	if err != nil {
		return err
	}

	plaintext, err := t.credentials().Decrypt(ctx, *userID, strings.TrimSpace(envelope))
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out, plaintext)
	return nil
}

func (t *tool) token(ctx context.Context, args []string) error {
	fs := newFlagSet("token")
	userID := fs.String("user", "", "user identifier placed in the token subject")
	if err := parseWithUser(fs, args, userID); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%w: token takes no arguments", errUsage)
	}

	token, err := service.NewAuthService(t.cfg.App, t.logger).CreateToken(ctx, *userID)
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out, token.SignedString)
	return nil
}

func (t *tool) probe(ctx context.Context, args []string) error {
	fs := newFlagSet("probe")
	address := fs.String("addr", t.cfg.Server.HTTPAddress, "address of the ops server")
	if err := parse(fs, args, 0); err != nil {
		return err
	}

	server, err := t.dial(*address, t.cfg.Server.RequestTimeout)
	if err != nil {
		return err
	}

	version, err := server.Version(ctx)
	if err != nil {
		return fmt.Errorf("error getting server version: %w", err)
	}

	health, err := server.Health(ctx)
	if err != nil {
		return fmt.Errorf("error getting server health: %w", err)
	}

	fmt.Fprintf(t.out, "version: %s\nstatus: %s\nmaster secret: %s\n", version, health.Status, health.MasterSecret)
	if health.MasterSecret != models.MasterSecretValid {
		return errServerDegraded
	}
	return nil
}

// credentials builds the same service stack the server runs, minus the
// ownership check that needs an authenticated caller.
func (t *tool) credentials() service.CredentialService {
	protector := crypto.NewCredentialProtector(t.source, t.logger)
	return service.NewCredentialValidationService().
		Wrap(service.NewCredentialService(protector, t.logger))
}

// textArg returns the single positional argument, or stdin with trailing
// newlines removed when there is none.
func (t *tool) textArg(fs *flag.FlagSet) (string, error) {
	switch fs.NArg() {
	case 0:
		raw, err := io.ReadAll(io.LimitReader(t.in, service.MaxCredentialLength+1))
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return strings.TrimRight(string(raw), "\r\n"), nil
	case 1:
		return fs.Arg(0), nil
	default:
		return "", fmt.Errorf("%w: %s takes at most one argument", errUsage, fs.Name())
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parse parses args and checks the number of positional arguments; a
// negative want accepts any number.
func parse(fs *flag.FlagSet, args []string, want int) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if want >= 0 && fs.NArg() != want {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", errUsage, fs.Name(), want, fs.NArg())
	}
	return nil
}

func parseWithUser(fs *flag.FlagSet, args []string, userID *string) error {
	if err := parse(fs, args, -1); err != nil {
		return err
	}
	if *userID == "" {
		return fmt.Errorf("%w: %s requires -user", errUsage, fs.Name())
	}
	return nil
}
