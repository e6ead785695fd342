package app

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"

	"spotadvisor/pkg/known"
	"spotadvisor/pkg/models"
)

const (
	instanceTypeColumn = "Instance Info"
	vCPUColumn         = "vCPU"
	memoryColumn       = "Memory GiB"
	savingsColumn      = "Savings over On-Demand"
	interruptionColumn = "Frequency of interruption"
)

// band colors, indexed by interruption code
var rangeColors = []text.Color{text.FgHiGreen, text.FgGreen, text.FgHiYellow, text.FgHiMagenta, text.FgHiRed}

func printRecords(w io.Writer, records []models.Record, format string, pretty bool) error {
	switch format {
	case known.JSONFormat:
		return printJSON(w, records, pretty)
	case known.GridFormat:
		printAdvicesTable(w, records, isTerminal(w))
		return nil
	}
	for _, r := range records {
		var err error
		switch format {
		case known.CSVFormat:
			_, err = fmt.Fprintf(w, "%s, %s\n", r.Instance, r.Range.Label)
		case known.InstanceListFormat:
			_, err = fmt.Fprintln(w, r.Instance)
		default:
			_, err = fmt.Fprintf(w, "%-12s\t%s\n", r.Instance, r.Range.Label)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printNames(w io.Writer, names []string) error {
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, records []models.Record, pretty bool) error {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = models.JSON.MarshalIndent(records, "", "  ")
	} else {
		b, err = models.JSON.Marshal(records)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printAdvicesTable(w io.Writer, records []models.Record, colors bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{instanceTypeColumn, vCPUColumn, memoryColumn, savingsColumn, interruptionColumn})
	for _, r := range records {
		label := r.Range.Label
		if colors && r.Code >= 0 && r.Code < len(rangeColors) {
			label = text.Colors{rangeColors[r.Code]}.Sprint(label)
		}
		t.AppendRow(table.Row{r.Instance, r.Info.Cores, r.Info.RAM, r.Savings, label})
	}
	// NewNumberTransformer colors its output, so it is only used on a terminal
	savings := text.Transformer(func(val interface{}) string { return fmt.Sprintf("%d%%", val) })
	if colors {
		savings = text.NewNumberTransformer("%d%%")
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{
			Name:        savingsColumn,
			Transformer: savings,
		},
		{
			Name:  vCPUColumn,
			Align: text.AlignRight,
		},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
