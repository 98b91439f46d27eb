package commands

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/hotelsuite/hotelsuite/internal/apiclient"
	"github.com/hotelsuite/hotelsuite/internal/cli/userconfig"
	"github.com/hotelsuite/hotelsuite/internal/config"
	"github.com/hotelsuite/hotelsuite/internal/hotel"
	"github.com/hotelsuite/hotelsuite/internal/logger"
	"github.com/hotelsuite/hotelsuite/internal/session"
)

// ErrSessionExpired is returned when the API rejected the stored token. The
// token has already been removed from the keyring.
var ErrSessionExpired = errors.New("session expired, run 'hotelctl login'")

// Globals are the persistent flags shared by every command.
type Globals struct {
	APIURL  string
	Verbose bool
}

type env struct {
	api         *hotel.API
	apiURL      string
	out         io.Writer
	in          io.Reader
	log         zerolog.Logger
	interactive bool
}

// Option configures how a command runs. Tests use these to inject an API
// bound to a mock server and to capture output.
type Option func(*env)

// WithAPI runs the command against api instead of the keyring-backed one.
func WithAPI(api *hotel.API) Option {
	return func(e *env) {
		e.api = api
	}
}

// WithOutput redirects command output.
func WithOutput(w io.Writer) Option {
	return func(e *env) {
		e.out = w
	}
}

// WithInput redirects command input.
func WithInput(r io.Reader) Option {
	return func(e *env) {
		e.in = r
		e.interactive = false
	}
}

func newEnv(g *Globals, opts ...Option) (*env, error) {
	level := zerolog.WarnLevel
	if g.Verbose {
		level = zerolog.DebugLevel
	}

	e := &env{
		out:         os.Stdout,
		in:          os.Stdin,
		log:         logger.New(os.Stderr, "console").Level(level),
		interactive: term.IsTerminal(int(syscall.Stdin)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.api != nil {
		return e, nil
	}

	apiURL, err := userconfig.ResolveAPIURL(g.APIURL)
	if err != nil {
		return nil, err
	}
	e.apiURL = apiURL

	timeout, err := config.APITimeout()
	if err != nil {
		return nil, err
	}

	store := session.NewStore(session.NewKeyringStorage(apiURL), session.WithLogger(e.log))
	client := apiclient.New(apiURL, store,
		apiclient.WithLogger(e.log),
		apiclient.WithTimeout(timeout),
	)
	e.api = hotel.New(client, e.log)
	return e, nil
}
