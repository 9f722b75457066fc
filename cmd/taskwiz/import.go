package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	taskerrors "github.com/abatilo/taskwiz/internal/errors"
	"github.com/abatilo/taskwiz/internal/storage"
	"github.com/abatilo/taskwiz/internal/task"
)

// importCmd implements 'taskwiz import'.
func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Create tasks from JSON (an array or one object per line)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}

			var r io.Reader = os.Stdin
			if args[0] != "-" {
				f, openErr := os.Open(args[0])
				if openErr != nil {
					printError(openErr)
				}
				defer f.Close()
				r = f
			}

			imported, skipped, err := importRecords(cmd.Context(), r, newConstructor(), store, logger)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Imported %d task(s), skipped %d", imported, skipped)))
		},
	}
}

// importRecords creates and saves every field bag in r. Deleted entries
// are skipped; any other failure stops the import.
func importRecords(
	ctx context.Context,
	r io.Reader,
	c *task.Constructor,
	store *storage.Store,
	logger *log.Logger,
) (int, int, error) {
	bags, err := decodeFieldBags(r)
	if err != nil {
		return 0, 0, err
	}

	var imported, skipped int
	for i, fields := range bags {
		rec, createErr := c.Create(ctx, fields)
		if taskerrors.IsNothingToDo(createErr) {
			logger.Warn("skipping deleted task", "entry", i+1, "description", fields[task.FieldDescription])
			skipped++
			continue
		}
		if createErr != nil {
			return imported, skipped, fmt.Errorf("import entry %d: %w", i+1, createErr)
		}
		if saveErr := store.Save(rec); saveErr != nil {
			return imported, skipped, fmt.Errorf("import entry %d: %w", i+1, saveErr)
		}
		logger.Debug("imported task", "uuid", rec.UUID)
		imported++
	}
	return imported, skipped, nil
}

// decodeFieldBags reads either a JSON array of objects or a stream of
// objects, the two shapes `task export` produces.
func decodeFieldBags(r io.Reader) ([]task.Fields, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(br)
	if first == '[' {
		var bags []task.Fields
		if err = decoder.Decode(&bags); err != nil {
			return nil, fmt.Errorf("failed to decode task json: %w", err)
		}
		return bags, nil
	}

	var bags []task.Fields
	for {
		var fields task.Fields
		if err = decoder.Decode(&fields); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode task json: %w", err)
		}
		bags = append(bags, fields)
	}
	return bags, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if bytes.IndexByte([]byte(" \t\r\n"), b) >= 0 {
			continue
		}
		return b, br.UnreadByte()
	}
}
