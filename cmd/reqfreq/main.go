// Command reqfreq reports the most frequent kinds of request in access logs.
//
// Usage:
//
//	reqfreq [flags] [FILE|URL ...]
//
// With no arguments, reqfreq reads standard input.
package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bitfield/reqfreq"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		flagCfg    config
	)
	cmd := &cobra.Command{
		Use:   "reqfreq [FILE|URL ...]",
		Short: "Count the kinds of request in an access log",
		Long: "reqfreq groups log lines by method, endpoint and status, with numeric IDs\n" +
			"at the end of the endpoint replaced by '#', and prints each group with its\n" +
			"count, most frequent first.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config{}
			if configPath != "" {
				var err error
				cfg, err = loadConfig(configPath)
				if err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("policy") {
				cfg.Policy = flagCfg.Policy
			}
			if flags.Changed("exec") {
				cfg.Exec = flagCfg.Exec
			}
			if flags.Changed("jq") {
				cfg.JQ = flagCfg.JQ
			}
			if flags.Changed("match") {
				cfg.Match = flagCfg.Match
			}
			if flags.Changed("reject") {
				cfg.Reject = flagCfg.Reject
			}
			if flags.Changed("top") {
				cfg.Top = flagCfg.Top
			}
			if flags.Changed("verbose") {
				cfg.Verbose = flagCfg.Verbose
			}
			return report(cfg, args, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "read settings from this YAML `file`")
	f.StringVar(&flagCfg.Policy, "policy", "abort", "what to do with unparseable lines: abort or skip")
	f.StringVar(&flagCfg.Exec, "exec", "", "read the log from the output of this `command`")
	f.StringVar(&flagCfg.JQ, "jq", "", "convert JSON input to log lines with this jq `query`")
	f.StringArrayVar(&flagCfg.Match, "match", nil, "only count lines containing this `text` (repeatable)")
	f.StringArrayVar(&flagCfg.Reject, "reject", nil, "ignore lines containing this `text` (repeatable)")
	f.IntVar(&flagCfg.Top, "top", 0, "print only the `n` most frequent kinds of request")
	f.BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "trace each parsed line on stderr")
	return cmd
}

func report(cfg config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	policy, err := reqfreq.ParsePolicy(cfg.Policy)
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	p, err := source(cfg, args, stdin)
	if err != nil {
		return err
	}
	p = p.WithPolicy(policy).WithLogger(logger).WithStdout(stdout)
	if cfg.JQ != "" {
		p = p.JQ(cfg.JQ)
	}
	for _, s := range cfg.Match {
		p = p.Match(s)
	}
	for _, s := range cfg.Reject {
		p = p.Reject(s)
	}
	p = p.Report()
	if cfg.Top > 0 {
		p = p.First(cfg.Top)
	}
	_, err = p.Stdout()
	return err
}

// source returns a pipe holding the whole input: the output of cfg.Exec, the
// named files and URLs one after another, or else stdin.
func source(cfg config, args []string, stdin io.Reader) (*reqfreq.Pipe, error) {
	if cfg.Exec != "" {
		p := reqfreq.Exec(cfg.Exec)
		return p, p.Error()
	}
	if len(args) == 0 {
		return reqfreq.NewPipe().WithReader(stdin), nil
	}
	var all strings.Builder
	for _, arg := range args {
		var p *reqfreq.Pipe
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			p = reqfreq.Get(arg)
		} else {
			p = reqfreq.File(arg)
		}
		text, err := p.String()
		if err != nil {
			return nil, err
		}
		all.WriteString(text)
		if text != "" && !strings.HasSuffix(text, "\n") {
			all.WriteByte('\n')
		}
	}
	return reqfreq.Echo(all.String()), nil
}
