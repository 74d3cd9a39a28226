package model

// Palette is an ordered list of color tokens indexed cyclically against a
// dataset. It may be shorter than the dataset; colors repeat on wraparound.
type Palette []string

// At returns the color for entry i. An empty palette is a programming error.
func (p Palette) At(i int) string {
	return p[i%len(p)]
}
