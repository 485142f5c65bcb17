package report

import (
	"encoding/json"
	"io"
)

// JSONOutput is the JSON structure written to output files.
type JSONOutput struct {
	Source       string     `json:"source,omitempty"`
	Valid        bool       `json:"valid"`
	Cases        []JSONCase `json:"cases"`
	Faults       []Message  `json:"faults"`
	InvalidCount int        `json:"invalid_count"`
	FatalCount   int        `json:"fatal_count"`
	ErrorCount   int        `json:"error_count"`
	WarningCount int        `json:"warning_count"`
}

// JSONCase is one test case in JSON output.
type JSONCase struct {
	Case    int    `json:"case"`
	Lines   int    `json:"lines"`
	Valid   bool   `json:"valid"`
	Kind    string `json:"kind"`
	CheckID string `json:"check_id,omitempty"`
	Line    int    `json:"line,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message,omitempty"`
	Verdict string `json:"verdict"`
}

// WriteJSON writes the report in JSON format to w.
func (r *Report) WriteJSON(w io.Writer) error {
	out := JSONOutput{
		Source:       r.Source,
		Valid:        r.IsValid(),
		Cases:        make([]JSONCase, 0, len(r.Cases)),
		Faults:       r.Faults,
		InvalidCount: r.InvalidCount(),
		FatalCount:   r.FatalCount(),
		ErrorCount:   r.ErrorCount(),
		WarningCount: r.WarningCount(),
	}
	for _, c := range r.Cases {
		v := c.Verdict
		out.Cases = append(out.Cases, JSONCase{
			Case:    c.Number,
			Lines:   c.Lines,
			Valid:   v.IsOK(),
			Kind:    v.Kind.String(),
			CheckID: v.Kind.CheckID(),
			Line:    v.Line,
			Tag:     v.Tag,
			Message: v.Message(),
			Verdict: v.String(),
		})
	}
	if out.Faults == nil {
		out.Faults = []Message{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
