package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/client"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/config"
)

// ErrUsage is returned for unknown commands or wrong arguments.
var ErrUsage = errors.New("usage error")

type App struct {
	client  client.Client
	timeout time.Duration
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewTokenKeeperClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(apiClient, c.RequestTimeout, os.Stdin, os.Stdout), nil
}

func newApp(c client.Client, timeout time.Duration, in io.Reader, out io.Writer) *App {
	return &App{client: c, timeout: timeout, reader: bufio.NewReader(in), out: out}
}

func (a *App) Close() error {
	return a.client.Close()
}

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

const (
	usageRegister = "register [-never-expires] <username>"
	usageLogin    = "login <username>"
	usageGenerate = "generate [-never-expires[=bool]] <username>"
	usageRefresh  = "refresh [-never-expires[=bool]] <username>"
	usageDelete   = "delete <username>"
	usageCurrent  = "current <username>"
	usageVerify   = "verify <token>"
)

var commands = map[string]command{
	"register": {usageRegister, (*App).register},
	"login":    {usageLogin, (*App).login},
	"generate": {usageGenerate, (*App).generate},
	"refresh":  {usageRefresh, (*App).refresh},
	"delete":   {usageDelete, (*App).delete},
	"current":  {usageCurrent, (*App).current},
	"verify":   {usageVerify, (*App).verify},
}

var commandOrder = []string{"register", "login", "generate", "refresh", "delete", "current", "verify"}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, "Usage: tokenkeeper-cli [-a host:port] [-t seconds] [-c config.json] <command> [args]")
	fmt.Fprintln(a.out, "Commands:")
	for _, name := range commandOrder {
		fmt.Fprintln(a.out, "  "+commands[name].usage)
	}
}

// Run executes the subcommand in args (global flags already removed).
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.printUsage()
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	return cmd.run(a, ctx, args[1:])
}

// parse parses flags of a subcommand that takes exactly one positional
// argument and returns it.
func (a *App) parse(usage string, fs *flag.FlagSet, args []string) (string, error) {
	fs.SetOutput(a.out)
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return fs.Arg(0), nil
}

func (a *App) password() (string, error) {
	return GetPassword(a.reader, a.out)
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	neverExpires := fs.Bool("never-expires", false, "issue tokens without expiry by default")
	userName, err := a.parse(usageRegister, fs, args)
	if err != nil {
		return err
	}

	pw, err := a.password()
	if err != nil {
		return err
	}

	publicID, err := a.client.Register(ctx, userName, pw, *neverExpires)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User named %s created successfully\npublic id: %s\n", userName, publicID)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	userName, err := a.parse(usageLogin, flag.NewFlagSet("login", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	pw, err := a.password()
	if err != nil {
		return err
	}

	res, err := a.client.Login(ctx, userName, pw)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "username: %s\npublic id: %s\n", res.UserName, res.PublicID)
	if res.Token != "" {
		fmt.Fprintf(a.out, "token: %s\n", res.Token)
	}
	return nil
}

// authenticate reads the password and logs in to learn the public id the
// gated operations are addressed to.
func (a *App) authenticate(ctx context.Context, userName string) (client.Credentials, string, error) {
	pw, err := a.password()
	if err != nil {
		return client.Credentials{}, "", err
	}

	res, err := a.client.Login(ctx, userName, pw)
	if err != nil {
		return client.Credentials{}, "", err
	}

	return client.Credentials{UserName: userName, Password: pw}, res.PublicID, nil
}

func (a *App) generate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	var neverExpires optionalBool
	fs.Var(&neverExpires, "never-expires", "issue a token without expiry")
	userName, err := a.parse(usageGenerate, fs, args)
	if err != nil {
		return err
	}

	creds, publicID, err := a.authenticate(ctx, userName)
	if err != nil {
		return err
	}

	token, err := a.client.GenerateToken(ctx, creds, publicID, neverExpires.value)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "token: %s\n", token)
	return nil
}

func (a *App) refresh(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("refresh", flag.ContinueOnError)
	var neverExpires optionalBool
	fs.Var(&neverExpires, "never-expires", "issue a token without expiry")
	userName, err := a.parse(usageRefresh, fs, args)
	if err != nil {
		return err
	}

	creds, publicID, err := a.authenticate(ctx, userName)
	if err != nil {
		return err
	}

	token, err := a.client.RefreshToken(ctx, creds, publicID, neverExpires.value)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "token: %s\n", token)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	userName, err := a.parse(usageDelete, flag.NewFlagSet("delete", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	creds, publicID, err := a.authenticate(ctx, userName)
	if err != nil {
		return err
	}

	if err := a.client.DeleteToken(ctx, creds, publicID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Token deleted")
	return nil
}

func (a *App) current(ctx context.Context, args []string) error {
	userName, err := a.parse(usageCurrent, flag.NewFlagSet("current", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	creds, publicID, err := a.authenticate(ctx, userName)
	if err != nil {
		return err
	}

	cur, err := a.client.CurrentToken(ctx, creds, publicID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "token: %s\nnever expires: %t\n", cur.Token, cur.NeverExpires)
	return nil
}

func (a *App) verify(ctx context.Context, args []string) error {
	token, err := a.parse(usageVerify, flag.NewFlagSet("verify", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	v, err := a.client.VerifyToken(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "public id: %s\nvalid: %t\nexpired: %t\n", v.PublicID, v.Valid, v.Expired)
	return nil
}
