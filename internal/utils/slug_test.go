package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"nombre con temporada", "Home Kit 23/24", "home-kit-23-24"},
		{"mayúsculas y espacios", "  Camiseta Titular  ", "camiseta-titular"},
		{"símbolos consecutivos", "Boca Juniors -- Retro  1981!", "boca-juniors-retro-1981"},
		{"acentos reemplazados", "Edición Especial", "edici-n-especial"},
		{"ya es slug", "home-kit-23-24", "home-kit-23-24"},
		{"vacío", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Home Kit 23/24", "Short Alternativo 2024", "ya-un-slug"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestImageFormatFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/kits/home.png", "png"},
		{"https://cdn.example.com/kits/home.JPEG", "jpeg"},
		{"https://cdn.example.com/kits/home.webp?v=3", "webp"},
		{"https://cdn.example.com/kits/home.gif#frag", "gif"},
		{"https://cdn.example.com/kits/home", "jpg"},
		{"https://cdn.example.com/kits/home.bmp", "jpg"},
		{"https://cdn.example.com/v1.2/kits/home", "jpg"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ImageFormatFromURL(tc.url), "url %s", tc.url)
	}
}
