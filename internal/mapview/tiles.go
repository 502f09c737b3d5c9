package mapview

import (
	"strconv"
	"strings"
)

const (
	DefaultTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = "© OpenStreetMap contributors"
	DefaultMaxZoom     = 19
)

var subdomains = []string{"a", "b", "c"}

type TileLayer struct {
	URLTemplate string `json:"url_template"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"max_zoom"`
}

// Available false, когда источник тайлов не настроен и карту рисовать не из чего
func (t TileLayer) Available() bool {
	return t.URLTemplate != ""
}

// URL подставляет координаты тайла в шаблон {s}/{z}/{x}/{y}
func (t TileLayer) URL(z, x, y int) string {
	sub := subdomains[(x+y)%len(subdomains)]
	return strings.NewReplacer(
		"{s}", sub,
		"{z}", strconv.Itoa(z),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
	).Replace(t.URLTemplate)
}
