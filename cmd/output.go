package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"gitlab.com/lightning-bot/sanctum-go/sanctum"
)

// payloadFlags holds the --data and --file flags of commands that send a body
type payloadFlags struct {
	data string
	file string
}

func addPayloadFlags(cmd *cobra.Command, flags *payloadFlags) {
	cmd.Flags().StringVar(&flags.data, "data", "", "JSON object to send")
	cmd.Flags().StringVar(&flags.file, "file", "", "read the JSON object from a file ('-' for stdin)")
}

// payload reads the request body selected by the flags
func (f *payloadFlags) payload(cmd *cobra.Command) (sanctum.Payload, error) {
	return decodePayload(f.data, f.file, cmd.InOrStdin())
}

// decodePayload decodes a JSON object from data, or from file when data is
// empty. Numbers are kept as json.Number so IDs are sent back unchanged.
func decodePayload(data, file string, stdin io.Reader) (sanctum.Payload, error) {
	var raw []byte
	switch {
	case data != "" && file != "":
		return nil, errors.New("use either --data or --file, not both")
	case data != "":
		raw = []byte(data)
	case file == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		raw = b
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}
		raw = b
	default:
		return nil, errors.New("a payload is required: use --data or --file")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload sanctum.Payload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("payload must be a JSON object: %w", err)
	}
	if payload == nil {
		return nil, errors.New("payload must be a JSON object, got null")
	}
	return payload, nil
}

// parseID parses a snowflake-style ID argument
func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID %q", kind, arg)
	}
	return id, nil
}

func parseIDs(kind string, args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(kind, arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// printResult writes a decoded API response as indented JSON
func printResult(w io.Writer, result any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// printBulkResult summarizes a bulk deletion and fails when any item failed
func printBulkResult(cmd *cobra.Command, noun string, result sanctum.BulkResult) error {
	for _, failure := range result.Failed {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", failure)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d of %d %s\n", len(result.Successful), result.Requested, noun)

	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d deletions failed", len(result.Failed), result.Requested)
	}
	return nil
}
