package render

const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>` + cssContent + `</style>
</head>
<body>
  <header class="top"><a href="{{.Home}}">{{.SiteName}}</a></header>
  <main>
{{template "content" .}}
  </main>
</body>
</html>
{{end}}`

const gridTemplate = `{{define "content"}}
{{if .Interactive}}
<form class="controls" method="get" action="{{.Home}}">
  <input type="search" id="q" name="q" value="{{.Filters.Q}}" placeholder="Search name, title or NMLS" autocomplete="off">
  <select id="role" name="role">
    <option value="">All roles</option>
    {{- range .RoleOptions}}
    <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
    {{- end}}
  </select>
  <select id="state" name="state">
    <option value="">All states</option>
    {{- range .StateOptions}}
    <option value="{{.Value}}" data-dynamic="true"{{if .Selected}} selected{{end}}>{{.Label}}</option>
    {{- end}}
  </select>
  <select id="sort" name="sort">
    {{- range .SortOptions}}
    <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
    {{- end}}
  </select>
  <button type="submit">Apply</button>
</form>
{{else if .StateLinks}}
<nav class="controls states">
  <a href="{{.Home}}">All states</a>
  {{- range .StateLinks}}
  <a class="badge{{if .Selected}} on{{end}}" href="{{.Href}}">{{.Label}}</a>
  {{- end}}
</nav>
{{end}}
{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
<p class="count">{{.Shown}} of {{.Total}} teammates</p>
<section id="grid" class="grid">
{{- range .Cards}}
{{template "card" .}}
{{- end}}
</section>
{{end}}`

const cardTemplate = `{{define "card"}}<a class="cardlink" href="{{.Href}}">
  <article class="card" style="--bg:{{.Tint}}">
    <figure class="portrait"><img src="{{.Photo}}" alt="{{.Alt}}" loading="lazy" decoding="async"></figure>
    <div class="meta">
      <h3 class="name">{{.Name}}</h3>
      <p class="role">{{.JobTitle}}</p>
      {{- if .NMLS}}
      <p class="role">{{.NMLS}}</p>
      {{- end}}
      <div class="badges">{{range .States}}<span class="badge">{{.}}</span>{{end}}</div>
      <div class="actions">
        {{- if .Phone}}<a href="tel:{{.Phone}}" aria-label="Call {{.Name}}">📞</a>{{end -}}
        {{- if .Email}}<a href="mailto:{{.Email}}" aria-label="Email {{.Name}}">✉️</a>{{end -}}
      </div>
    </div>
  </article>
</a>{{end}}`

const profileTemplate = `{{define "content"}}
<section id="profile">
{{- if not .Found}}
<p>Profile not found.</p>
{{- else}}
  <div class="hero">
    <img src="{{.Photo}}" alt="{{.Name}}">
    <div>
      <h2>{{.Name}}</h2>
      <p class="role">{{.JobTitle}} {{if .NMLS}}• {{.NMLS}}{{end}}</p>
      <div class="badges">{{range .States}}<span class="badge">{{.}}</span>{{end}}</div>
      <div class="links">
        {{- if .Phone}}<a class="linkbtn" href="tel:{{.Phone}}">📞 Call</a>{{end -}}
        {{- if .Email}}<a class="linkbtn" href="mailto:{{.Email}}">✉️ Email</a>{{end -}}
        {{- range .Links}}<a class="linkbtn" href="{{.URL}}" target="_blank" rel="noopener">{{.Label}}</a>{{end -}}
      </div>
    </div>
  </div>
  {{- if .Bio}}
  <div class="bio">{{.Bio}}</div>
  {{- end}}
{{- end}}
  <p><a href="{{.Home}}">← Back to the team</a></p>
</section>
{{end}}`

const messageTemplate = `{{define "content"}}
<section class="message"><p>{{.Message}}</p></section>
{{end}}`

const cssContent = `
:root{--ink:#1f2937;--muted:#6b7280;--line:#e5e7eb}
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,-apple-system,"Segoe UI",sans-serif;color:var(--ink);background:#fafafa}
main{max-width:1100px;margin:0 auto;padding:16px}
.top{padding:12px 16px;border-bottom:1px solid var(--line);background:#fff}
.top a{color:inherit;text-decoration:none;font-weight:700}
.controls{display:flex;gap:8px;flex-wrap:wrap;margin-bottom:12px}
.controls input,.controls select,.controls button{padding:6px 8px;border:1px solid var(--line);border-radius:6px;background:#fff}
.count{color:var(--muted);font-size:13px}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:12px}
.cardlink{color:inherit;text-decoration:none}
.card{background:var(--bg);border-radius:12px;overflow:hidden;height:100%}
.portrait{margin:0;aspect-ratio:1;overflow:hidden;background:#fff}
.portrait img{width:100%;height:100%;object-fit:cover}
.meta{padding:10px 12px}
.name{margin:0 0 4px;font-size:16px}
.role{margin:0;color:var(--muted);font-size:13px}
.badges{display:flex;gap:4px;flex-wrap:wrap;margin:6px 0}
.badge{font-size:11px;padding:2px 6px;border-radius:999px;background:#fff;border:1px solid var(--line);color:inherit;text-decoration:none}
.badge.on{background:var(--ink);color:#fff}
.actions a{margin-right:8px;text-decoration:none}
.hero{display:flex;gap:20px;align-items:flex-start;flex-wrap:wrap}
.hero img{width:220px;border-radius:12px}
.linkbtn{display:inline-block;margin:4px 6px 0 0;padding:6px 10px;border:1px solid var(--line);border-radius:6px;background:#fff;color:inherit;text-decoration:none}
.bio{margin-top:16px;line-height:1.5}
.notice{padding:8px 12px;border-radius:6px;background:#fff4e5}
`
