package view

import "net/url"

// Route раздел приложения
type Route struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Routes шесть разделов в порядке бокового меню
var Routes = []Route{
	{Name: "dashboard", Path: "/"},
	{Name: "incidents", Path: "/incidents"},
	{Name: "tasks", Path: "/tasks"},
	{Name: "volunteers", Path: "/volunteers"},
	{Name: "reports", Path: "/reports"},
	{Name: "settings", Path: "/settings"},
}

// Link раздел со ссылкой, несущей общий поисковый запрос
type Link struct {
	Route
	Query string `json:"q,omitempty"`
	URL   string `json:"url"`
}

// Navigation ссылки всех разделов; непустой q переносится в каждую как параметр ?q=
func Navigation(q string) []Link {
	links := make([]Link, 0, len(Routes))
	for _, r := range Routes {
		l := Link{Route: r, Query: q, URL: r.Path}
		if q != "" {
			l.URL = r.Path + "?" + url.Values{"q": {q}}.Encode()
		}
		links = append(links, l)
	}
	return links
}

// RouteByPath раздел по пути, false для неизвестного пути
func RouteByPath(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
