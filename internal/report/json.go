package report

import (
	"encoding/json"
	"io"

	"tidypath/internal/errors"
	"tidypath/internal/model"
)

type jsonEntry struct {
	model.PathEntry
	Kept bool `json:"kept"`
}

type jsonReport struct {
	Name     string      `json:"name"`
	Entries  []jsonEntry `json:"entries"`
	Value    string      `json:"value"`
	Original int         `json:"original"`
	Final    int         `json:"final"`
	Removed  int         `json:"removed"`
}

// JSON writes the classified entries and counts as indented JSON.
func JSON(w io.Writer, name string, res model.Result) error {
	out := jsonReport{
		Name:     name,
		Entries:  make([]jsonEntry, 0, len(res.Entries)),
		Value:    res.Value(),
		Original: res.Original(),
		Final:    res.Final(),
		Removed:  res.Removed(),
	}
	for _, e := range res.Entries {
		out.Entries = append(out.Entries, jsonEntry{PathEntry: e, Kept: e.Kept()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.WithStackTrace(enc.Encode(out))
}
