package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	iso8583 "github.com/zileongggg/ISOMsgParser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Decode an ISO 8583 message into its fields",
	Long: `Decode one or more ISO 8583 messages.

With a message argument, that single message is decoded. Otherwise input is
read line by line from stdin; when stdin is a terminal this becomes an
interactive prompt, exited with "quit" or "exit".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("schema", "", "schema file (.json, .yaml or .toml); built-in ISO 8583:1987 schema if omitted")
}

func runParse(cmd *cobra.Command, args []string) error {
	setupColor(cmd)

	schema, err := loadSchema(cmd)
	if err != nil {
		return err
	}
	parser, err := iso8583.NewParser(schema)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		res := parser.Parse(strings.TrimSpace(args[0]))
		renderResult(os.Stdout, res)
		if res.Err != nil {
			os.Exit(1)
		}
		return nil
	}

	interactive := isTerminal(os.Stdin)
	if interactive {
		fmt.Println("Interactive ISO 8583 parser. Paste a message and press Enter.")
		fmt.Println(`Type "exit" or "quit" to leave.`)
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		if interactive {
			fmt.Print("\nEnter ISO Message > ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if interactive && (strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit")) {
			break
		}
		renderResult(os.Stdout, parser.Parse(line))
	}
	return scanner.Err()
}

func loadSchema(cmd *cobra.Command) (iso8583.Schema, error) {
	path, _ := cmd.Flags().GetString("schema")
	if path == "" {
		return iso8583.DefaultSchema(), nil
	}
	return iso8583.LoadSchemaFile(path)
}
