package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eduardofuncao/connstring/internal/config"
	"github.com/eduardofuncao/connstring/internal/engine"
	"github.com/eduardofuncao/connstring/internal/initui"
	"github.com/eduardofuncao/connstring/internal/styles"
)

type initFlags struct {
	name   string
	engine string
	params engine.Params
}

var initValueFlags = map[string]bool{
	"host":     true,
	"port":     true,
	"database": true,
	"db":       true,
	"user":     true,
	"timeout":  true,
	"sslmode":  true,
	"param":    true,
}

func parseInitFlags(args []string) (initFlags, error) {
	flags := initFlags{}
	positional := []string{}

	for i := 0; i < len(args); i++ {
		if !isFlag(args[i]) {
			positional = append(positional, args[i])
			continue
		}

		name, value, next, err := flagArg(args, i, initValueFlags[flagName(args[i])])
		if err != nil {
			return initFlags{}, err
		}
		i = next

		switch name {
		case "host":
			flags.params.Host = value
		case "port":
			port, err := strconv.ParseUint(value, 10, 16)
			if err != nil {
				return initFlags{}, fmt.Errorf("invalid port %q: must be between 0 and 65535", value)
			}
			flags.params.Port = uint16(port)
		case "database", "db":
			flags.params.Database = value
		case "user":
			flags.params.User = value
		case "timeout":
			timeout, err := strconv.ParseUint(value, 10, 0)
			if err != nil {
				return initFlags{}, fmt.Errorf("invalid timeout %q: must be a whole number of seconds", value)
			}
			flags.params.ConnectTimeout = uint(timeout)
		case "sslmode":
			flags.params.SSLMode = value
		case "encrypt":
			flags.params.Encrypt = true
		case "trust-cert":
			flags.params.Encrypt = true
			flags.params.TrustServerCertificate = true
		case "param":
			key, val, ok := strings.Cut(value, "=")
			if !ok || key == "" {
				return initFlags{}, fmt.Errorf("invalid --param %q: expected key=value", value)
			}
			if flags.params.Extra == nil {
				flags.params.Extra = make(map[string]string)
			}
			flags.params.Extra[key] = val
		default:
			return initFlags{}, fmt.Errorf("unknown flag --%s", name)
		}
	}

	if len(positional) > 2 {
		return initFlags{}, fmt.Errorf("unexpected argument %q", positional[2])
	}
	if len(positional) > 0 {
		flags.name = positional[0]
	}
	if len(positional) > 1 {
		flags.engine = positional[1]
	}
	return flags, nil
}

func (a *App) handleInit() {
	flags, err := parseInitFlags(os.Args[2:])
	if err != nil {
		printError("%v", err)
	}

	name, engineName, params := flags.name, flags.engine, flags.params
	if name == "" || engineName == "" {
		name, engineName, params, err = initui.CollectInitParameters(name, engineName, params)
		if errors.Is(err, initui.ErrAborted) {
			fmt.Println(styles.Faint.Render("Init cancelled"))
			return
		}
		if err != nil {
			printError("Could not collect profile parameters: %v", err)
		}
	}

	engineName, err = engine.Normalize(engineName)
	if err != nil {
		printError("%v. Supported engines: %s", err, strings.Join(engine.GetSupportedEngines(), ", "))
	}

	_, existed := a.config.Profiles[name]
	profile := config.ToProfileYAML(name, engineName, params)
	preview, err := profile.Render("")
	if err != nil {
		printError("Could not render profile '%s': %v", name, err)
	}

	a.config.PutProfile(profile)
	if err := a.config.Save(); err != nil {
		printError("Could not save configuration file: %v", err)
	}

	label := "✓ Profile created:"
	if existed {
		label = "✓ Profile updated:"
	}
	fmt.Println(styles.Success.Render(label), styles.Title.Render(fmt.Sprintf("%s/%s", engineName, name)))
	fmt.Println(styles.Faint.Render(preview))
}
