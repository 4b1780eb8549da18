package flags

import (
	"reflect"
	"testing"
	"time"

	"github.com/HexmosTech/httpie-lite/config"
	"github.com/HexmosTech/httpie-lite/exchange"
	"github.com/HexmosTech/httpie-lite/output"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *config.Config {
	return &config.Config{
		Timeout: 30 * time.Second,
		Verify:  true,
	}
}

func TestParse(t *testing.T) {
	flagSet, optionSet, err := parse([]string{"ht"}, defaultConfig(), true)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	if len(flagSet.Args()) != 0 {
		t.Errorf("unexpected returned args: %v", flagSet.Args())
	}
	expectedOptionSet := &OptionSet{
		ExchangeOptions: exchange.Options{
			Timeout: 30 * time.Second,
		},
		OutputOptions: output.Options{
			PrintResponseHeader: true,
			PrintResponseBody:   true,
			EnableFormat:        true,
			EnableColor:         true,
		},
	}
	if !reflect.DeepEqual(expectedOptionSet, optionSet) {
		t.Errorf("unexpected option set: expected=\n%+v\nactual=\n%+v", expectedOptionSet, optionSet)
	}
}

func TestParse_PositionalArgs(t *testing.T) {
	flagSet, _, err := parse([]string{"ht", "--follow", "POST", "example.com", "name=Ada", "X-A:1"}, defaultConfig(), false)
	require.NoError(t, err)

	assert.Equal(t, []string{"POST", "example.com", "name=Ada", "X-A:1"}, flagSet.Args())
}

func TestParse_OutputOptions(t *testing.T) {
	testCases := []struct {
		title            string
		args             []string
		stdoutIsTerminal bool
		expected         output.Options
	}{
		{
			title:    "Piped output is formatted but not colored",
			args:     []string{"ht"},
			expected: output.Options{PrintResponseHeader: true, PrintResponseBody: true, EnableFormat: true},
		},
		{
			title:    "--pretty=all",
			args:     []string{"ht", "--pretty=all"},
			expected: output.Options{PrintResponseHeader: true, PrintResponseBody: true, EnableFormat: true, EnableColor: true},
		},
		{
			title:            "--pretty=colors",
			args:             []string{"ht", "--pretty=colors"},
			stdoutIsTerminal: true,
			expected:         output.Options{PrintResponseHeader: true, PrintResponseBody: true, EnableColor: true},
		},
		{
			title:            "--pretty=format",
			args:             []string{"ht", "--pretty", "format"},
			stdoutIsTerminal: true,
			expected:         output.Options{PrintResponseHeader: true, PrintResponseBody: true, EnableFormat: true},
		},
		{
			title:            "--pretty=none",
			args:             []string{"ht", "--pretty=none"},
			stdoutIsTerminal: true,
			expected:         output.Options{PrintResponseHeader: true, PrintResponseBody: true},
		},
		{
			title:    "--print=b",
			args:     []string{"ht", "--print=b"},
			expected: output.Options{PrintResponseBody: true, EnableFormat: true},
		},
		{
			title:    "-p h",
			args:     []string{"ht", "-p", "h"},
			expected: output.Options{PrintResponseHeader: true, EnableFormat: true},
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			_, optionSet, err := parse(tt.args, defaultConfig(), tt.stdoutIsTerminal)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, optionSet.OutputOptions)
		})
	}
}

func TestParse_ExchangeOptions(t *testing.T) {
	testCases := []struct {
		title    string
		args     []string
		expected exchange.Options
	}{
		{
			title:    "--timeout in seconds",
			args:     []string{"ht", "--timeout=2.5"},
			expected: exchange.Options{Timeout: 2500 * time.Millisecond},
		},
		{
			title:    "--timeout as duration",
			args:     []string{"ht", "--timeout", "1m"},
			expected: exchange.Options{Timeout: time.Minute},
		},
		{
			title:    "--follow",
			args:     []string{"ht", "--follow"},
			expected: exchange.Options{Timeout: 30 * time.Second, FollowRedirects: true},
		},
		{
			title:    "-F",
			args:     []string{"ht", "-F"},
			expected: exchange.Options{Timeout: 30 * time.Second, FollowRedirects: true},
		},
		{
			title:    "--verify=no",
			args:     []string{"ht", "--verify=no"},
			expected: exchange.Options{Timeout: 30 * time.Second, SkipVerify: true},
		},
		{
			title:    "--verify=yes",
			args:     []string{"ht", "--verify=YES"},
			expected: exchange.Options{Timeout: 30 * time.Second},
		},
		{
			title: "--auth with password",
			args:  []string{"ht", "--auth=alice:pa:ss"},
			expected: exchange.Options{
				Timeout: 30 * time.Second,
				Auth:    exchange.AuthOptions{Enabled: true, UserName: "alice", Password: "pa:ss"},
			},
		},
		{
			title: "-a with empty password",
			args:  []string{"ht", "-a", "alice:"},
			expected: exchange.Options{
				Timeout: 30 * time.Second,
				Auth:    exchange.AuthOptions{Enabled: true, UserName: "alice"},
			},
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			_, optionSet, err := parse(tt.args, defaultConfig(), false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, optionSet.ExchangeOptions)
		})
	}
}

func TestParse_AuthPromptsForPassword(t *testing.T) {
	original := readPassword
	defer func() { readPassword = original }()
	var prompted string
	readPassword = func(userName string) (string, error) {
		prompted = userName
		return "s3cret", nil
	}

	_, optionSet, err := parse([]string{"ht", "-a", "bob"}, defaultConfig(), false)
	require.NoError(t, err)

	assert.Equal(t, "bob", prompted)
	assert.Equal(t, exchange.AuthOptions{Enabled: true, UserName: "bob", Password: "s3cret"}, optionSet.ExchangeOptions.Auth)
}

func TestParse_AuthPromptFailure(t *testing.T) {
	original := readPassword
	defer func() { readPassword = original }()
	readPassword = func(string) (string, error) {
		return "", errors.New("no terminal")
	}

	_, _, err := parse([]string{"ht", "--auth=bob"}, defaultConfig(), false)
	assert.EqualError(t, err, "no terminal")
}

func TestParse_ConfigDefaults(t *testing.T) {
	cfg := &config.Config{
		Timeout: 5 * time.Second,
		Follow:  true,
		Verify:  false,
		Pretty:  "none",
		Debug:   true,
	}

	_, optionSet, err := parse([]string{"ht"}, cfg, true)
	require.NoError(t, err)

	assert.Equal(t, exchange.Options{Timeout: 5 * time.Second, FollowRedirects: true, SkipVerify: true}, optionSet.ExchangeOptions)
	assert.False(t, optionSet.OutputOptions.EnableColor)
	assert.False(t, optionSet.OutputOptions.EnableFormat)
	assert.True(t, optionSet.Debug)

	_, optionSet, err = parse([]string{"ht", "--timeout=1", "--verify=yes", "--pretty=all"}, cfg, false)
	require.NoError(t, err)
	assert.Equal(t, time.Second, optionSet.ExchangeOptions.Timeout)
	assert.False(t, optionSet.ExchangeOptions.SkipVerify)
	assert.True(t, optionSet.OutputOptions.EnableColor)
}

func TestParse_Switches(t *testing.T) {
	_, optionSet, err := parse([]string{"ht", "--debug", "--version", "--license"}, defaultConfig(), false)
	require.NoError(t, err)

	assert.True(t, optionSet.Debug)
	assert.True(t, optionSet.ShowVersion)
	assert.True(t, optionSet.ShowLicense)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		title   string
		args    []string
		message string
	}{
		{title: "Unknown flag", args: []string{"ht", "--bogus"}},
		{title: "Invalid --print", args: []string{"ht", "--print=hbH"}, message: "invalid char in --print value (must consist of hb): H"},
		{title: "Invalid --pretty", args: []string{"ht", "--pretty=rainbow"}, message: "value of --pretty must be one of all, colors, format, none: rainbow"},
		{title: "Invalid --timeout", args: []string{"ht", "--timeout=soon"}, message: "timeout must be a number or duration string: soon"},
		{title: "Invalid --verify", args: []string{"ht", "--verify=maybe"}, message: "value of --verify must be yes or no: maybe"},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			flagSet, optionSet, err := parse(tt.args, defaultConfig(), false)
			require.Error(t, err)
			assert.Nil(t, optionSet)
			assert.NotNil(t, flagSet)
			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
			}
		})
	}
}
