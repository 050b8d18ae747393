package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"linkforge/types"
)

// readLines sends the non-blank lines of r, trimmed, until r is exhausted or
// ctx is done. Once lines is closed errc holds the reason.
func readLines(ctx context.Context, r io.Reader) (lines <-chan string, errc <-chan error) {
	out := make(chan string)
	errOut := make(chan error, 1)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case out <- line:
			case <-ctx.Done():
				errOut <- ctx.Err()
				return
			}
		}
		errOut <- scanner.Err()
	}()
	return out, errOut
}

// readInput builds a list from the lines of r. It returns as soon as ctx is
// done, even while a read on r is still blocked.
func readInput(ctx context.Context, r io.Reader) (*types.List[string], error) {
	lines, errc := readLines(ctx, r)
	l, err := types.FromChan(ctx, lines)
	if err != nil {
		return nil, err
	}
	if err := <-errc; err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return l, nil
}

// toValues keeps lines that are valid JSON as raw JSON and quotes the rest.
func toValues(lines *types.List[string]) *types.List[any] {
	return types.Map(lines, func(line string, _ int) any {
		if json.Valid([]byte(line)) {
			return json.RawMessage(line)
		}
		return line
	})
}

// render prints the drained list as a JSON array, optionally reversed, and
// with unique set the number of distinct values.
func render(w io.Writer, l *types.List[any], reverse, unique bool) error {
	if reverse {
		l.Reverse()
	}
	out, err := json.Marshal(l.ToSlice())
	if err != nil {
		return fmt.Errorf("encode list: %w", err)
	}
	fmt.Fprintln(w, string(out))

	if unique {
		// Decoded JSON objects are maps, which cannot be set members; compare
		// their encodings instead.
		var encodeErr error
		keys := types.Map(l, func(v any, _ int) string {
			b, err := json.Marshal(v)
			if err != nil && encodeErr == nil {
				encodeErr = err
			}
			return string(b)
		})
		if encodeErr != nil {
			return fmt.Errorf("encode list: %w", encodeErr)
		}
		fmt.Fprintf(w, "distinct: %d\n", len(types.ToSet(keys)))
	}
	return nil
}
