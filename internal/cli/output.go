package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/mcoot/playerlist/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RecordView:
		o.printRecord(v)
	case []RecordView:
		o.printRecordList(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RecordView is a record together with the id it is stored under
type RecordView struct {
	SteamID       string        `json:"steamid"`
	Steam3        string        `json:"steam3"`
	Verdict       model.Verdict `json:"verdict"`
	CustomData    any           `json:"custom_data"`
	PreviousNames []string      `json:"previous_names"`
	Modified      time.Time     `json:"modified"`
	Created       time.Time     `json:"created"`
}

// NewRecordView associates a record with its id
func NewRecordView(id model.SteamID, r *model.Record) RecordView {
	return RecordView{
		SteamID:       id.String(),
		Steam3:        id.Steam3(),
		Verdict:       r.Verdict,
		CustomData:    r.CustomData,
		PreviousNames: r.PreviousNames,
		Modified:      r.Modified,
		Created:       r.Created,
	}
}

func (v RecordView) lastName() string {
	if len(v.PreviousNames) == 0 {
		return "-"
	}
	return v.PreviousNames[len(v.PreviousNames)-1]
}

func (o *Output) printRecord(v RecordView) {
	fmt.Fprintf(o.w, "Player: %s (%s)\n", v.SteamID, v.Steam3)
	fmt.Fprintf(o.w, "Verdict: %s\n", v.Verdict)
	if len(v.PreviousNames) > 0 {
		fmt.Fprintf(o.w, "Names: %s\n", strings.Join(v.PreviousNames, ", "))
	}
	data, _ := json.Marshal(v.CustomData)
	fmt.Fprintf(o.w, "Custom Data: %s\n", data)
	fmt.Fprintf(o.w, "Created: %s\n", v.Created.Format(time.RFC3339))
	fmt.Fprintf(o.w, "Modified: %s\n", v.Modified.Format(time.RFC3339))
}

func (o *Output) printRecordList(views []RecordView) {
	if len(views) == 0 {
		fmt.Fprintln(o.w, "No players")
		return
	}
	fmt.Fprintf(o.w, "Players (%d):\n", len(views))
	for _, v := range views {
		fmt.Fprintf(o.w, "  - %s %-10s %s\n", v.SteamID, v.Verdict, v.lastName())
	}
}
