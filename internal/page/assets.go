package page

import "strconv"

// ReloadScriptPath is where the server exposes ReloadScript in development.
const ReloadScriptPath = "/reload.js"

// ReloadScript reconnects to /ws and reloads the page when told to.
const ReloadScript = `(function () {
  var retry;
  function connect() {
    var protocol = window.location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(protocol + '//' + window.location.host + '/ws');
    ws.onopen = function () { clearTimeout(retry); };
    ws.onmessage = function (event) {
      var message = JSON.parse(event.data);
      if (message.type === 'reload') {
        window.location.reload();
      }
    };
    ws.onclose = function () { retry = setTimeout(connect, 2000); };
  }
  connect();
})();
`

// Icon outlines, keyed by the names used in the content tables.
var iconPaths = map[string]string{
	"ArrowRight": `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	"Send":       `<path d="m22 2-7 20-4-9-9-4Z"/><path d="M22 2 11 13"/>`,
	"TrendingUp": `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	"Users":      `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	"BarChart3":  `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`,
	"Target":     `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
	"Lightbulb":  `<path d="M15 14c.2-1 .7-1.7 1.5-2.5 1-.9 1.5-2.2 1.5-3.5A6 6 0 0 0 6 8c0 1 .2 2.2 1.5 3.5.7.7 1.3 1.5 1.5 2.5"/><path d="M9 18h6"/><path d="M10 22h4"/>`,
	"Shield":     `<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10"/>`,
	"MapPin":     `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,
	"Phone":      `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.91.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92z"/>`,
	"Mail":       `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	"Clock":      `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`,
	"Linkedin":   `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"/><rect width="4" height="12" x="2" y="9"/><circle cx="4" cy="4" r="2"/>`,
	"Facebook":   `<path d="M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z"/>`,
	"Twitter":    `<path d="M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z"/>`,
	"Instagram":  `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"/><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"/><line x1="17.5" x2="17.51" y1="6.5" y2="6.5"/>`,
}

// icon returns an inline SVG for name. Unknown names render an empty
// placeholder of the same size so the layout does not shift.
func icon(name string, size int) string {
	px := strconv.Itoa(size)
	return `<svg class="icon" aria-hidden="true" width="` + px + `" height="` + px +
		`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
		iconPaths[name] + `</svg>`
}

const styles = `
:root {
  --primary: #2563eb;
  --secondary: #1e293b;
  --muted: #64748b;
  --tint: #f1f5f9;
  --destructive: #dc2626;
  --radius: 0.75rem;
}
* { box-sizing: border-box; }
html { scroll-behavior: smooth; scroll-padding-top: 5rem; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif; color: var(--secondary); line-height: 1.5; }
img { max-width: 100%; }
a { color: inherit; text-decoration: none; }
.container { max-width: 72rem; margin: 0 auto; padding: 0 1rem; }
.container.narrow { max-width: 48rem; }
.container.medium { max-width: 56rem; }
.center { text-align: center; }
.muted { color: var(--muted); }
section { padding: 5rem 0; }
.tinted { background: var(--tint); }
h2 { font-size: 2.25rem; margin: 0 0 1rem; }
.section-heading { text-align: center; margin-bottom: 3rem; }
.site-header { position: fixed; top: 0; width: 100%; background: rgba(255,255,255,0.95); backdrop-filter: blur(4px); border-bottom: 1px solid #e2e8f0; z-index: 50; }
.nav { display: flex; justify-content: space-between; align-items: center; padding-top: 1rem; padding-bottom: 1rem; }
.brand { font-size: 1.5rem; font-weight: 700; }
.nav-links { display: none; gap: 1.5rem; }
.nav-links a:hover { color: var(--primary); }
@media (min-width: 768px) { .nav-links { display: flex; } }
.btn { display: inline-flex; align-items: center; justify-content: center; gap: 0.5rem; border-radius: 0.5rem; padding: 0.5rem 1rem; font-weight: 500; border: 2px solid transparent; cursor: pointer; font-size: 1rem; }
.btn-lg { padding: 0.75rem 1.5rem; font-size: 1.125rem; }
.btn-block { width: 100%; }
.btn-primary { background: var(--primary); color: #fff; }
.btn-outline { border-color: var(--secondary); }
.hero { padding-top: 8rem; }
.hero-title { font-size: 3rem; line-height: 1.1; margin: 0 0 1.5rem; }
.lead { font-size: 1.25rem; color: var(--muted); margin-bottom: 2rem; }
.actions { display: flex; gap: 1rem; flex-wrap: wrap; }
.hero-image { border-radius: 1rem; box-shadow: 0 25px 50px -12px rgba(0,0,0,0.25); }
.grid-2, .grid-3, .grid-services, .grid-team { display: grid; gap: 2rem; }
@media (min-width: 768px) {
  .grid-2 { grid-template-columns: repeat(2, 1fr); align-items: start; }
  .grid-3 { grid-template-columns: repeat(3, 1fr); }
  .grid-services, .grid-team { grid-template-columns: repeat(2, 1fr); }
}
@media (min-width: 1024px) {
  .grid-services { grid-template-columns: repeat(3, 1fr); }
  .grid-team { grid-template-columns: repeat(4, 1fr); }
}
.stats { background: var(--secondary); color: #fff; text-align: center; padding: 4rem 0; }
.stat-value { font-size: 3rem; font-weight: 700; }
.stat-label { font-size: 1.125rem; opacity: 0.9; }
.card { background: #fff; border: 1px solid #e2e8f0; border-radius: var(--radius); padding: 1.5rem; }
.service { border-width: 2px; transition: box-shadow 0.2s; }
.service:hover { box-shadow: 0 20px 25px -5px rgba(0,0,0,0.1); }
.icon-box { width: 3rem; height: 3rem; border-radius: 0.5rem; background: rgba(37,99,235,0.1); color: var(--primary); display: flex; align-items: center; justify-content: center; margin-bottom: 1rem; }
.member { text-align: center; }
.avatar { width: 8rem; height: 8rem; border-radius: 9999px; border: 4px solid rgba(37,99,235,0.2); }
.cards { display: grid; gap: 1.5rem; }
.card-title { display: flex; align-items: center; gap: 0.5rem; margin: 0 0 1rem; }
.card-title .icon { color: var(--primary); }
.contact-form { display: grid; gap: 1rem; }
.field label { display: block; font-weight: 500; margin-bottom: 0.25rem; }
.field input, .field textarea { width: 100%; padding: 0.5rem 0.75rem; border: 1px solid #cbd5e1; border-radius: 0.5rem; font: inherit; }
.border-destructive { border-color: var(--destructive) !important; }
.field-error { color: var(--destructive); font-size: 0.875rem; margin: 0.25rem 0 0; }
.site-footer { background: var(--secondary); color: #fff; padding: 3rem 0; }
.tagline { color: rgba(255,255,255,0.8); margin-bottom: 1.5rem; }
.socials { display: flex; justify-content: center; gap: 1.5rem; margin-bottom: 1.5rem; }
.socials a:hover { color: var(--primary); }
.copyright { color: rgba(255,255,255,0.6); font-size: 0.875rem; }
.toast { position: fixed; right: 1rem; bottom: 1rem; background: #fff; border: 1px solid #e2e8f0; border-radius: var(--radius); padding: 1rem 1.25rem; box-shadow: 0 10px 15px -3px rgba(0,0,0,0.1); animation: toast 5s forwards; z-index: 60; }
.toast-title { font-weight: 600; margin: 0; }
.toast-description { margin: 0.25rem 0 0; color: var(--muted); }
@keyframes toast { 0%, 90% { opacity: 1; visibility: visible; } 100% { opacity: 0; visibility: hidden; } }
.fade-in { animation: fade-in 0.6s ease-out both; }
.scale-in { animation: scale-in 0.5s ease-out both; }
@keyframes fade-in { from { opacity: 0; transform: translateY(10px); } to { opacity: 1; transform: none; } }
@keyframes scale-in { from { opacity: 0; transform: scale(0.95); } to { opacity: 1; transform: none; } }
`
