package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"

	"github.com/s0up4200/myshows/filter"
	"github.com/s0up4200/myshows/myshows"
)

// printResult writes raw as indented JSON, narrowed to the items matching
// the active filter expression when there is one
func printResult(w io.Writer, raw json.RawMessage) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	var out any = raw
	if expression != "" {
		f, err := filter.CompileFilter(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}

		items, err := filter.DecodeItems(raw)
		if err != nil {
			return fmt.Errorf("result cannot be filtered: %w", err)
		}

		selected := filter.Select(f, items)
		logger.Debug().
			Str("filter", expression).
			Int("matched", len(selected)).
			Int("total", len(items)).
			Msg("Filtered result")
		out = selected
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// printReply prints the result member of a typed reply
func printReply[R any](w io.Writer, reply *myshows.Reply[R]) error {
	return printResult(w, reply.Raw.Result())
}

// printBatch prints the fetched items in the order of ids; failures are
// already logged by the fan-out
func printBatch[T any](w io.Writer, ids []int, batch myshows.BatchResult[T]) error {
	ordered := lo.FilterMap(lo.Uniq(ids), func(id int, _ int) (T, bool) {
		item, ok := batch.Items[id]
		return item, ok
	})

	data, err := json.Marshal(ordered)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := printResult(w, data); err != nil {
		return err
	}

	if len(batch.Failed) > 0 {
		return fmt.Errorf("%d of %d requests failed", len(batch.Failed), batch.Requested)
	}
	return nil
}

// parseIDs converts positional arguments to numeric ids
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
