package flags

import (
	"io"
	"strings"

	"github.com/HexmosTech/httpie-lite/config"
	"github.com/HexmosTech/httpie-lite/exchange"
	"github.com/HexmosTech/httpie-lite/output"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
)

// "\000" is a special value that indicates the user did not specify the flag
const unset = "\000"

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	ExchangeOptions exchange.Options
	OutputOptions   output.Options
	Debug           bool
	ShowVersion     bool
	ShowLicense     bool
}

var readPassword = askPassword

// Parse parses the flags in args (args[0] is the program name). Values not
// given on the command line fall back to cfg. stdout decides the automatic
// --pretty mode. The returned FlagSet is non-nil whenever its usage is worth
// showing, including on error.
func Parse(args []string, cfg *config.Config, stdout io.Writer) (FlagSet, *OptionSet, error) {
	return parse(args, cfg, isTerminal(stdout))
}

func parse(args []string, cfg *config.Config, stdoutIsTerminal bool) (*getopt.Set, *OptionSet, error) {
	optionSet := &OptionSet{}
	printFlag := unset
	timeout := unset
	verify := unset
	pretty := cfg.Pretty
	authFlag := ""
	follow := cfg.Follow
	debug := cfg.Debug

	flagSet := getopt.New()
	flagSet.SetParameters("[METHOD] URL [REQUEST_ITEM [REQUEST_ITEM ...]]")
	flagSet.StringVarLong(&printFlag, "print", 'p', "specifies what the output should contain (hb)")
	flagSet.StringVarLong(&pretty, "pretty", 0, "controls output processing (all, colors, format, none)")
	flagSet.StringVarLong(&timeout, "timeout", 0, "Timeout seconds that you allow the whole operation to take")
	flagSet.BoolVarLong(&follow, "follow", 'F', "follow 30x Location redirects")
	flagSet.StringVarLong(&verify, "verify", 0, "verify the server's TLS certificate (yes, no)")
	flagSet.StringVarLong(&authFlag, "auth", 'a', "colon-separated username and password for basic authentication")
	flagSet.BoolVarLong(&debug, "debug", 0, "print diagnostics to stderr")
	flagSet.BoolVarLong(&optionSet.ShowVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&optionSet.ShowLicense, "license", 0, "print license information and exit")
	if err := flagSet.Getopt(args, nil); err != nil {
		return flagSet, nil, errors.WithStack(err)
	}

	if err := parsePrintFlag(printFlag, &optionSet.OutputOptions); err != nil {
		return flagSet, nil, err
	}
	if err := parsePrettyFlag(pretty, stdoutIsTerminal, &optionSet.OutputOptions); err != nil {
		return flagSet, nil, err
	}

	exchangeOptions := &optionSet.ExchangeOptions
	exchangeOptions.Timeout = cfg.Timeout
	if timeout != unset {
		d, err := config.ParseDurationOrSeconds(timeout)
		if err != nil {
			return flagSet, nil, err
		}
		exchangeOptions.Timeout = d
	}

	exchangeOptions.SkipVerify = !cfg.Verify
	if verify != unset {
		v, err := parseVerifyFlag(verify)
		if err != nil {
			return flagSet, nil, err
		}
		exchangeOptions.SkipVerify = !v
	}

	exchangeOptions.FollowRedirects = follow
	if err := parseAuth(authFlag, &exchangeOptions.Auth); err != nil {
		return flagSet, nil, err
	}

	optionSet.Debug = debug
	return flagSet, optionSet, nil
}

func parsePrintFlag(printFlag string, outputOptions *output.Options) error {
	if printFlag == unset {
		outputOptions.PrintResponseHeader = true
		outputOptions.PrintResponseBody = true
		return nil
	}
	for _, c := range printFlag {
		switch c {
		case 'h':
			outputOptions.PrintResponseHeader = true
		case 'b':
			outputOptions.PrintResponseBody = true
		default:
			return errors.Errorf("invalid char in --print value (must consist of hb): %c", c)
		}
	}
	return nil
}

func parsePrettyFlag(pretty string, stdoutIsTerminal bool, outputOptions *output.Options) error {
	switch pretty {
	case "":
		outputOptions.EnableFormat = true
		outputOptions.EnableColor = stdoutIsTerminal
	case "all":
		outputOptions.EnableFormat = true
		outputOptions.EnableColor = true
	case "colors":
		outputOptions.EnableColor = true
	case "format":
		outputOptions.EnableFormat = true
	case "none":
	default:
		return errors.Errorf("value of --pretty must be one of all, colors, format, none: %s", pretty)
	}
	return nil
}

func parseVerifyFlag(verify string) (bool, error) {
	switch strings.ToLower(verify) {
	case "yes", "true":
		return true, nil
	case "no", "false":
		return false, nil
	default:
		return false, errors.Errorf("value of --verify must be yes or no: %s", verify)
	}
}

func parseAuth(authFlag string, authOptions *exchange.AuthOptions) error {
	if authFlag == "" {
		return nil
	}

	authOptions.Enabled = true
	userName, password, ok := strings.Cut(authFlag, ":")
	authOptions.UserName = userName
	if ok {
		authOptions.Password = password
		return nil
	}

	password, err := readPassword(userName)
	if err != nil {
		return err
	}
	authOptions.Password = password
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
