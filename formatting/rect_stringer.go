package formatting

import (
	"fmt"
	"io"

	"github.com/iceisfun/tinmesh/types"
)

// RectString returns a concise string for a bounding rectangle.
func RectString(box types.Rect) string {
	return fmt.Sprintf("[(%.6g, %.6g)-(%.6g, %.6g)]", box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
}

// WriteRect writes a verbose representation of a bounding rectangle to a writer.
func WriteRect(w io.Writer, box types.Rect) error {
	_, err := fmt.Fprintf(w, "Rect{Min: %v, Max: %v}", PointString(box.Min), PointString(box.Max))
	return err
}
