package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordbook/internal/client"
)

type OutputFormat string

func (o *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*o = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (o OutputFormat) String() string {
	return string(o)
}

func (o *OutputFormat) Type() string {
	return "OutputFormat"
}

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatText, OutputFormatJSON}
)

type clientFlags struct {
	server string
	output OutputFormat
}

func (f *clientFlags) register(flags *pflag.FlagSet) {
	f.output = OutputFormatText
	flags.StringVar(&f.server, "server", "", "server base URL. Defaults to client.base_url in the config")
	flags.Var(&f.output, "output", fmt.Sprintf("output format. Possible values are %v", allOutputFormats))
}

func newLookupCommand() *cobra.Command {
	var flags clientFlags
	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up the definition of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := newClient(flags.server)
			if err != nil {
				return err
			}
			defer func() {
				_ = apiClient.Close()
			}()

			response, err := apiClient.Lookup(cmd.Context(), args[0])
			if err != nil {
				if client.IsNotFound(err) {
					return printFailure(cmd.OutOrStdout(), flags.output, err)
				}
				return fmt.Errorf("client.Lookup > %w", err)
			}
			return printResponse(cmd.OutOrStdout(), flags.output, response)
		},
	}
	flags.register(command.Flags())
	return command
}

func newAddCommand() *cobra.Command {
	var flags clientFlags
	command := &cobra.Command{
		Use:   "add <word> <definition>...",
		Short: "Add a word and its definition",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := newClient(flags.server)
			if err != nil {
				return err
			}
			defer func() {
				_ = apiClient.Close()
			}()

			response, err := apiClient.Add(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				if client.IsConflict(err) {
					return printFailure(cmd.OutOrStdout(), flags.output, err)
				}
				return fmt.Errorf("client.Add > %w", err)
			}
			return printResponse(cmd.OutOrStdout(), flags.output, response)
		},
	}
	flags.register(command.Flags())
	return command
}

func printResponse(w io.Writer, format OutputFormat, response client.Response) error {
	if format == OutputFormatJSON {
		return json.NewEncoder(w).Encode(response)
	}

	if response.Word != "" {
		_, err := color.New(color.FgGreen).Fprintf(w, "%s: %s\n", response.Word, response.Definition)
		return err
	}
	_, err := color.New(color.FgGreen).Fprintln(w, response.Message)
	return err
}

// printFailure prints an expected API failure, such as a missing word, without failing the command.
func printFailure(w io.Writer, format OutputFormat, err error) error {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	if format == OutputFormatJSON {
		return json.NewEncoder(w).Encode(apiErr.Response)
	}
	_, printErr := color.New(color.FgRed).Fprintln(w, apiErr.Response.Message)
	return printErr
}
