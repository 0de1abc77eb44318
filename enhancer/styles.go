package enhancer

import (
	"sort"
)

// Table maps a style key to the descriptive suffix appended to prompts.
type Table map[string]string

var ImageStyles = Table{
	"realistic":  "photorealistic, high quality, detailed, professional photography",
	"artistic":   "artistic style, creative, expressive, beautiful artwork",
	"cartoon":    "cartoon style, animated, colorful, fun, illustration",
	"abstract":   "abstract art, creative interpretation, artistic expression",
	"vintage":    "vintage style, retro, classic, nostalgic aesthetic",
	"futuristic": "futuristic style, sci-fi, modern, high-tech aesthetic",
}

var VideoStyles = Table{
	"cinematic":   "cinematic style, dramatic lighting, high quality, professional videography, film-like",
	"documentary": "documentary style, natural lighting, realistic, authentic footage",
	"animated":    "animated style, colorful, smooth motion, cartoon-like animation",
	"artistic":    "artistic style, creative visuals, expressive, beautiful cinematography",
	"vintage":     "vintage style, retro aesthetic, classic film look, nostalgic",
	"modern":      "modern style, sleek visuals, contemporary, high-tech aesthetic",
}

const (
	DefaultImageStyle = "realistic"
	DefaultVideoStyle = "cinematic"
)

// Enhance decorates prompt with the suffix registered for style.
// Unknown styles return the prompt untouched.
func Enhance(prompt, style string, table Table) string {
	suffix, ok := table[style]
	if !ok {
		return prompt
	}
	return prompt + ", " + suffix
}

func Styles(table Table) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
