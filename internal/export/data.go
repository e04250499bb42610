package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/lissajous/internal/curve"
	"github.com/san-kum/lissajous/internal/render"
)

// Samples is the JSON form of one figure's data.
type Samples struct {
	Title  string    `json:"title"`
	Params any       `json:"params,omitempty"`
	Times  []float64 `json:"t"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

// WriteJSON writes the figure's samples against the time grid.
func WriteJSON(w io.Writer, grid curve.TimeGrid, fig render.Figure, params any) error {
	n := min(len(grid), fig.Len())
	data := Samples{
		Title:  fig.Title,
		Params: params,
		Times:  grid[:n],
		X:      fig.Trace.X[:n],
		Y:      fig.Trace.Y[:n],
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes t,x,y rows with a header.
func WriteCSV(w io.Writer, grid curve.TimeGrid, fig render.Figure) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t", "x", "y"}); err != nil {
		return err
	}
	n := min(len(grid), fig.Len())
	for i := 0; i < n; i++ {
		row := []string{
			strconv.FormatFloat(grid[i], 'f', 6, 64),
			strconv.FormatFloat(fig.Trace.X[i], 'f', 6, 64),
			strconv.FormatFloat(fig.Trace.Y[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
