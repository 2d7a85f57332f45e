package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/strength"
)

// writeResult prints result as JSON or as a table. A non-empty password is
// included, which is how generated passwords reach the user.
func writeResult(w io.Writer, format string, result strength.Result, password string) error {
	switch strings.ToLower(format) {
	case outputJSON:
		var v any = result
		if password != "" {
			v = model.GenerateResponse{Result: result, Password: password}
		}
		o, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(o))
		return err
	case outputText:
		fallthrough
	default:
		var displayOut bytes.Buffer
		table := tablewriter.NewWriter(&displayOut)
		table.Header([]any{"field", "value"}...)
		if password != "" {
			table.Append([]string{"password", password})
		}
		table.Append([]string{"strength", result.Strength})
		table.Append([]string{"score", fmt.Sprintf("%d/%d", result.Score, strength.MaxScore)})
		table.Append([]string{"percentage", strconv.FormatFloat(result.Percentage, 'f', 1, 64) + "%"})
		for _, hint := range result.Feedback {
			table.Append([]string{"feedback", hint})
		}
		table.Render()
		_, err := fmt.Fprint(w, displayOut.String())
		return err
	}
}
