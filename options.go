package carousel

import "github.com/tsawler/carousel/model"

// convertOptions holds the configurable conversion parameters. Converters
// copy options on every chained call, so a stored Converter is never
// affected by later configuration.
type convertOptions struct {
	geometry       model.PageGeometry
	title          string // overrides the extracted document title when set
	fontPaths      []string
	highlightStyle string
}

func defaultOptions() convertOptions {
	return convertOptions{
		geometry: model.A4Geometry(),
	}
}

// clone creates a deep copy of convertOptions.
func (o convertOptions) clone() convertOptions {
	out := o
	if o.fontPaths != nil {
		out.fontPaths = make([]string, len(o.fontPaths))
		copy(out.fontPaths, o.fontPaths)
	}
	return out
}
