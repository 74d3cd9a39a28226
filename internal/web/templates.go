package web

// pageTemplate is the html/template for the dashboard page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Social Pulse</title>
  <style>
:root {
  --bg: {{.Colors.Background}};
  --surface: {{.Colors.Surface}};
  --border: {{.Colors.Border}};
  --text: {{.Colors.Text}};
  --muted: {{.Colors.Muted}};
  --accent: {{.Colors.Accent}};
  --overlay: {{.Colors.Overlay}};
}
{{.CSS}}
  </style>
</head>
<body>
  <nav class="sidebar{{if .Page.Sidebar.Open}} open{{end}}"{{if not .Page.Sidebar.Open}} inert{{end}}>
    <div class="sidebar-header">
      <h2>{{.Page.Sidebar.Title}}</h2>
      <a class="icon-button close" href="{{.CloseHref}}" aria-label="Close sidebar">{{.Icons.Close}}</a>
    </div>
    {{range .Page.Sidebar.Sections}}
    <div class="nav-section">
      {{if .Heading}}<h3>{{.Heading}}</h3>{{end}}
      <ul>
        {{range .Links}}<li><a href="{{.Href}}">{{.Label}}</a></li>{{end}}
      </ul>
    </div>
    {{end}}
  </nav>
  {{if .Page.Overlay}}<a class="overlay" href="{{.OverlayHref}}" aria-label="Close sidebar"></a>{{end}}
  <div class="shell">
    <header class="top-bar">
      <a class="icon-button menu" href="{{.MenuHref}}" aria-label="{{.Page.Header.MenuLabel}}">{{.Icons.Menu}}</a>
      <div class="search">
        {{.Icons.Search}}
        <input type="search" placeholder="{{.Page.Header.SearchPlaceholder}}" aria-label="{{.Page.Header.SearchPlaceholder}}">
      </div>
      <button class="icon-button profile" type="button" aria-label="{{.Page.Header.ProfileLabel}}">{{.Icons.User}}</button>
    </header>
    <main class="content">
      {{range .Sections}}
      <section class="dashboard-section">
        {{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
        <div class="panels cols-{{.Columns}}">
          {{range .Panels}}
          <div class="panel" id="{{.ID}}">
            {{if .Title}}<h3>{{.Title}}</h3>{{end}}
            <div class="plot">{{.SVG}}</div>
            {{if .Legend}}
            <ul class="legend">
              {{range .Legend}}<li><span class="swatch" style="background: {{.Color}}"></span>{{.Label}}</li>{{end}}
            </ul>
            {{end}}
          </div>
          {{end}}
        </div>
      </section>
      {{end}}
    </main>
  </div>
</body>
</html>`

const cssContent = `* { box-sizing: border-box; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
}
a { color: inherit; }
.icon-button {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  width: 36px;
  height: 36px;
  border: none;
  border-radius: 6px;
  background: transparent;
  color: var(--muted);
  cursor: pointer;
}
.icon-button:hover { background: var(--border); color: var(--text); }
.top-bar {
  position: sticky;
  top: 0;
  z-index: 10;
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 8px 16px;
  background: var(--surface);
  border-bottom: 1px solid var(--border);
}
.search {
  flex: 1;
  display: flex;
  align-items: center;
  gap: 8px;
  max-width: 420px;
  padding: 4px 10px;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--muted);
}
.search input {
  flex: 1;
  border: none;
  outline: none;
  background: transparent;
  color: var(--text);
}
.profile { margin-left: auto; }
.sidebar {
  position: fixed;
  top: 0;
  bottom: 0;
  left: 0;
  z-index: 30;
  width: 256px;
  padding: 16px;
  background: var(--surface);
  border-right: 1px solid var(--border);
  transform: translateX(-100%);
  transition: transform 0.2s ease;
}
.sidebar.open { transform: translateX(0); }
.sidebar-header { display: flex; align-items: center; justify-content: space-between; }
.sidebar h2 { margin: 0; font-size: 1.1rem; }
.nav-section h3 {
  margin: 16px 0 4px;
  font-size: 0.75rem;
  text-transform: uppercase;
  color: var(--muted);
}
.nav-section ul { list-style: none; margin: 0; padding: 0; }
.nav-section a {
  display: block;
  padding: 6px 8px;
  border-radius: 6px;
  text-decoration: none;
}
.nav-section a:hover { background: var(--border); }
.overlay {
  position: fixed;
  inset: 0;
  z-index: 20;
  background: var(--overlay);
  opacity: 0.6;
}
.content { padding: 16px; }
.dashboard-section { margin-bottom: 24px; }
.dashboard-section > h2 { font-size: 1.1rem; margin: 0 0 12px; }
.panels { display: grid; gap: 16px; grid-template-columns: 1fr; }
@media (min-width: 768px) {
  .panels.cols-2 { grid-template-columns: 1fr 1fr; }
}
.panel {
  padding: 16px;
  background: var(--surface);
  border: 1px solid var(--border);
  border-radius: 8px;
}
.panel h3 { margin: 0 0 8px; font-size: 0.95rem; }
.chart { width: 100%; height: auto; font-size: 12px; }
.chart .grid { stroke: var(--border); stroke-dasharray: 3 3; }
.chart .axis { stroke: var(--muted); }
.chart .tick { fill: var(--muted); }
.chart .label { font-weight: 600; pointer-events: none; }
.chart .hit { fill: transparent; }
.chart .mark:hover .hit { fill: rgba(255, 255, 255, 0.12); }
.chart .tip { visibility: hidden; pointer-events: none; }
.chart .mark:hover .tip { visibility: visible; }
.chart .tip-header { fill: var(--text); font-weight: 600; }
.chart .tip-row { fill: var(--muted); }
.chart .tip-value { fill: var(--text); font-weight: 600; }
.chart .tip-rule { stroke: var(--border); }
.legend {
  display: flex;
  flex-wrap: wrap;
  justify-content: center;
  gap: 12px;
  list-style: none;
  margin: 8px 0 0;
  padding: 0;
  color: var(--muted);
  font-size: 0.85rem;
}
.swatch {
  display: inline-block;
  width: 10px;
  height: 10px;
  margin-right: 6px;
  border-radius: 2px;
}`

const (
	iconMenu   = `<svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/></svg>`
	iconSearch = `<svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="11" cy="11" r="8"/><line x1="21" y1="21" x2="16.65" y2="16.65"/></svg>`
	iconUser   = `<svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M20 21v-2a4 4 0 0 0-4-4H8a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/></svg>`
	iconClose  = `<svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><line x1="18" y1="6" x2="6" y2="18"/><line x1="6" y1="6" x2="18" y2="18"/></svg>`
)
