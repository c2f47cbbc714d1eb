package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify genera un slug URL-safe a partir del nombre del producto.
// Es idempotente: Slugify(Slugify(x)) == Slugify(x).
func Slugify(name string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

var imageFormats = map[string]string{
	"jpg":  "jpg",
	"jpeg": "jpeg",
	"png":  "png",
	"gif":  "gif",
	"webp": "webp",
	"svg":  "svg",
}

// ImageFormatFromURL detecta el formato por la extensión de la URL.
// Si no se reconoce, cae en "jpg".
func ImageFormatFromURL(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		rawURL = rawURL[:i]
	}
	dot := strings.LastIndex(rawURL, ".")
	if dot < 0 {
		return "jpg"
	}
	ext := strings.ToLower(rawURL[dot+1:])
	if format, ok := imageFormats[ext]; ok {
		return format
	}
	return "jpg"
}
